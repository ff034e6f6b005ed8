package raster

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
)

// EncodePNG encodes an image as PNG bytes, the format handed to the
// recognition engine.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodePreview encodes an image as a base64 PNG string for the preview
// fields of the result. Encoding failures yield an empty string; a missing
// preview never fails the pipeline.
func EncodePreview(img image.Image) string {
	data, err := EncodePNG(img)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}
