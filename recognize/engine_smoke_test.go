package recognize

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// smokePNG creates a white image with a black rectangle. The engine may or
// may not find text in it; the smoke tests only verify the calls survive.
func smokePNG(width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := 10; x < 50; x++ {
		for y := 10; y < 30; y++ {
			img.Set(x, y, color.Black)
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func TestEngine_TextSmoke(t *testing.T) {
	e := NewEngine(EngineConfig{})
	_, err := e.Text(smokePNG(100, 50))
	if errors.Is(err, ErrOCRNotEnabled) {
		t.Skip("built without the ocr tag")
	}
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
}

func TestEngine_WordsSmoke(t *testing.T) {
	e := NewEngine(EngineConfig{})
	_, err := e.Words(smokePNG(100, 50), GeneralPurpose)
	if errors.Is(err, ErrOCRNotEnabled) {
		t.Skip("built without the ocr tag")
	}
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
}
