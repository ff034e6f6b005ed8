//go:build !ocr

package recognize

import "github.com/tsawler/scandoc/model"

// stubEngine is used when the "ocr" build tag is not set. Every call fails
// with ErrOCRNotEnabled.
type stubEngine struct{}

// NewEngine returns the stub engine. Rebuild with -tags ocr for the real
// Tesseract-backed engine.
func NewEngine(cfg EngineConfig) Engine {
	return stubEngine{}
}

func (stubEngine) Name() string { return "stub" }

func (stubEngine) Words(img []byte, p Profile) ([]model.Token, error) {
	return nil, ErrOCRNotEnabled
}

func (stubEngine) Text(img []byte) (string, error) {
	return "", ErrOCRNotEnabled
}
