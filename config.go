package scandoc

import (
	"log/slog"

	"github.com/tsawler/scandoc/fetch"
	"github.com/tsawler/scandoc/layout"
	"github.com/tsawler/scandoc/raster"
	"github.com/tsawler/scandoc/recognize"
)

// Config wires the whole pipeline. It is constructed once and passed to
// New; nothing in the pipeline reads configuration from process-wide
// state. Zero values are filled with stage defaults, so Config{} and
// DefaultConfig() behave identically.
type Config struct {
	// Fetch configures the document downloader.
	Fetch fetch.Config

	// Raster configures page rasterization.
	Raster raster.Config

	// Recognize configures recognition budgets and the engine.
	Recognize recognize.Config

	// Layout configures line grouping, key-value, and table heuristics.
	Layout layout.Config

	// Engine overrides the recognition engine. Nil uses the package
	// default (Tesseract when built with -tags ocr). Tests inject fakes
	// here.
	Engine recognize.Engine

	// Logger receives diagnostic records from every stage. Defaults to
	// slog.Default(). Log records carry stage, profile, and page context;
	// error strings returned to callers never expose internals beyond the
	// failing stage.
	Logger *slog.Logger
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Fetch:     fetch.DefaultConfig(),
		Raster:    raster.DefaultConfig(),
		Recognize: recognize.DefaultConfig(),
		Layout:    layout.DefaultConfig(),
	}
}
