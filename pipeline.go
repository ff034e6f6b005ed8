package scandoc

import (
	"fmt"
	"strings"

	"github.com/tsawler/scandoc/fetch"
	"github.com/tsawler/scandoc/layout"
	"github.com/tsawler/scandoc/model"
	"github.com/tsawler/scandoc/preprocess"
	"github.com/tsawler/scandoc/raster"
)

// processingMethod identifies the extraction strategy in result metadata.
const processingMethod = "preprocessed-ocr"

// extractPage runs preprocessing, recognition, and layout reconstruction
// for one page. Nothing in here can fail the document: preprocessing and
// layout degrade internally, and recognition degrades to sentinels.
func (p *Processor) extractPage(page model.PageImage) model.ExtractionResult {
	bounds := page.Image.Bounds()
	res := model.ExtractionResult{
		PageNumber:    page.PageNumber,
		Preview:       raster.EncodePreview(page.Image),
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Tokens:        []model.Token{},
		KeyValuePairs: map[string]string{},
		Tables:        [][]string{},
	}

	enhanced := preprocess.EnhanceLogged(page.Image, p.log)
	encoded, err := raster.EncodePNG(enhanced)
	if err != nil {
		// Encoding the enhanced raster should not fail; if it somehow
		// does, recognize the original instead.
		p.log.Warn("encoding enhanced raster failed, using original",
			"stage", "pipeline", "page", page.PageNumber, "error", err)
		if encoded, err = raster.EncodePNG(page.Image); err != nil {
			p.log.Error("page raster not encodable, skipping recognition",
				"stage", "pipeline", "page", page.PageNumber, "error", err)
			return res
		}
	}

	rec := p.recognizer.Extract(encoded, page.PageNumber)
	res.PlainText = rec.PlainText
	res.Profile = rec.Profile
	res.MeanConfidence = rec.MeanConfidence
	res.Degraded = rec.Degraded

	res.Tokens = make([]model.Token, len(rec.Tokens))
	for i, t := range rec.Tokens {
		t.Page = page.PageNumber
		res.Tokens[i] = t
	}

	lines := layout.GroupIntoLines(res.Tokens, p.cfg.Layout.VerticalTolerance)
	res.KeyValuePairs = layout.ExtractKeyValuePairs(lines, p.cfg.Layout)
	res.Tables = layout.ExtractTables(lines, p.cfg.Layout)

	p.log.Info("page extracted",
		"stage", "pipeline", "page", page.PageNumber,
		"tokens", len(res.Tokens),
		"pairs", len(res.KeyValuePairs),
		"table_rows", len(res.Tables),
		"profile", res.Profile,
		"degraded", res.Degraded)
	return res
}

// assemble merges per-page results into the document-level result. A
// single image passes through directly; paged documents concatenate text
// with page-boundary markers, merge key-value maps with later pages
// winning collisions, and concatenate table rows in page order.
func (p *Processor) assemble(sourceURL string, kind fetch.Kind, pages []model.ExtractionResult) *model.DocumentResult {
	doc := &model.DocumentResult{
		Success:       true,
		SourceURL:     sourceURL,
		FileKind:      kind.String(),
		Tokens:        []model.Token{},
		KeyValuePairs: map[string]string{},
		Tables:        [][]string{},
		PreviewImages: []model.PagePreview{},
	}

	if kind == fetch.KindImage && len(pages) == 1 {
		page := pages[0]
		doc.PlainText = page.PlainText
		doc.Tokens = page.Tokens
		doc.KeyValuePairs = page.KeyValuePairs
		doc.Tables = page.Tables
		doc.PrimaryImage = page.Preview
		doc.PreviewImages = []model.PagePreview{{PageNumber: 1, EncodedImage: page.Preview}}
		doc.Metadata = model.Metadata{
			PageCount:         1,
			TotalTokens:       len(page.Tokens),
			AverageConfidence: averageConfidence(page.Tokens),
			TablesFound:       len(page.Tables),
			ImageWidth:        page.Width,
			ImageHeight:       page.Height,
			ProcessingMethod:  processingMethod,
		}
		return doc
	}

	var text strings.Builder
	for _, page := range pages {
		fmt.Fprintf(&text, "\n--- Page %d ---\n", page.PageNumber)
		text.WriteString(page.PlainText)

		doc.Tokens = append(doc.Tokens, page.Tokens...)
		for k, v := range page.KeyValuePairs {
			doc.KeyValuePairs[k] = v
		}
		doc.Tables = append(doc.Tables, page.Tables...)
		doc.PreviewImages = append(doc.PreviewImages, model.PagePreview{
			PageNumber:   page.PageNumber,
			EncodedImage: page.Preview,
		})
		if page.PageNumber == 1 {
			doc.PrimaryImage = page.Preview
		}
	}

	doc.PlainText = strings.TrimSpace(text.String())
	doc.PerPageResults = pages
	doc.Metadata = model.Metadata{
		PageCount:         len(pages),
		TotalTokens:       len(doc.Tokens),
		AverageConfidence: averageConfidence(doc.Tokens),
		TablesFound:       len(doc.Tables),
		ResolutionScale:   raster.Scale,
		ProcessingMethod:  processingMethod,
	}
	return doc
}

// averageConfidence is the document-level mean token confidence rounded to
// two decimals, 0 for no tokens. Unlike profile selection, this averages
// over every retained token; the structured pass already dropped
// low-confidence ones.
func averageConfidence(tokens []model.Token) float64 {
	if len(tokens) == 0 {
		return 0
	}
	var sum float64
	for _, t := range tokens {
		sum += t.Confidence
	}
	return model.Round2(sum / float64(len(tokens)))
}

// publicMessage reduces a pipeline error to the message shown to callers.
// Typed stage errors already describe themselves without leaking
// internals.
func publicMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
