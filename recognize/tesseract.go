//go:build ocr

package recognize

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/scandoc/model"
)

// tesseractEngine implements Engine over gosseract. Every call constructs
// its own client, so concurrent calls never share native Tesseract state
// and an abandoned attempt can close its client when it eventually
// finishes.
type tesseractEngine struct {
	cfg           EngineConfig
	clientFactory func() *gosseract.Client
}

// NewEngine creates the Tesseract-backed recognition engine.
func NewEngine(cfg EngineConfig) Engine {
	return &tesseractEngine{cfg: cfg, clientFactory: gosseract.NewClient}
}

func (e *tesseractEngine) Name() string { return "tesseract" }

func (e *tesseractEngine) newClient(mode int) (*gosseract.Client, error) {
	c := e.clientFactory()
	if e.cfg.TessdataPrefix != "" {
		if err := c.SetTessdataPrefix(e.cfg.TessdataPrefix); err != nil {
			c.Close()
			return nil, fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if len(e.cfg.Languages) > 0 {
		if err := c.SetLanguage(e.cfg.Languages...); err != nil {
			c.Close()
			return nil, fmt.Errorf("set languages: %w", err)
		}
	}
	if mode >= 0 {
		if err := c.SetPageSegMode(gosseract.PageSegMode(mode)); err != nil {
			c.Close()
			return nil, fmt.Errorf("set segmentation mode: %w", err)
		}
	}
	return c, nil
}

// Words recognizes word-level tokens under the given profile.
func (e *tesseractEngine) Words(img []byte, p Profile) ([]model.Token, error) {
	c, err := e.newClient(p.Mode)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	if err := c.SetImageFromBytes(img); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	boxes, err := c.GetBoundingBoxesVerbose()
	if err != nil {
		return nil, fmt.Errorf("recognize words: %w", err)
	}

	tokens := make([]model.Token, 0, len(boxes))
	for _, b := range boxes {
		text := norm.NFC.String(strings.TrimSpace(b.Word))
		if text == "" {
			continue
		}
		tokens = append(tokens, model.Token{
			Text:       text,
			Confidence: b.Confidence,
			Box: model.BoundingBox{
				Left:   b.Box.Min.X,
				Top:    b.Box.Min.Y,
				Width:  b.Box.Dx(),
				Height: b.Box.Dy(),
			},
			Block:     b.BlockNum,
			Paragraph: b.ParNum,
			Line:      b.LineNum,
			Word:      b.WordNum,
		})
	}
	return tokens, nil
}

// Text performs an unstructured full-page recognition pass.
func (e *tesseractEngine) Text(img []byte) (string, error) {
	c, err := e.newClient(-1)
	if err != nil {
		return "", err
	}
	defer c.Close()

	if err := c.SetImageFromBytes(img); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return norm.NFC.String(text), nil
}
