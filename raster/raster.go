package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	// Register decoders for the image formats accepted as single-image input.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/tsawler/scandoc/fetch"
	"github.com/tsawler/scandoc/model"
)

// Scale is the fixed upscaling factor applied when rendering PDF pages.
const Scale = 2.0

// Config holds rasterizer configuration. The zero value is usable; empty
// fields are filled with defaults by New.
type Config struct {
	// Pdftoppm is the binary name or absolute path of the pdftoppm tool.
	// Default "pdftoppm".
	Pdftoppm string

	// DPI is the render resolution for paged documents. Default 144,
	// which is Scale times the 72 dpi PDF point grid.
	DPI int

	// MaxPages caps the number of rendered pages; 0 means no limit.
	MaxPages int

	// Runner executes external commands. Nil means a real exec-backed
	// runner; tests supply a stub.
	Runner Runner

	// Logger receives diagnostic records. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default rasterizer configuration.
func DefaultConfig() Config {
	return Config{
		Pdftoppm: "pdftoppm",
		DPI:      144,
	}
}

// RasterizationError reports a corrupt document or a render failure. It is
// fatal: the whole document aborts with no partial pages.
type RasterizationError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *RasterizationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rasterize: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("rasterize: %s", e.Reason)
}

// Unwrap returns the underlying error, if any.
func (e *RasterizationError) Unwrap() error {
	return e.Err
}

// Rasterizer produces ordered page images from raw document bytes.
type Rasterizer struct {
	cfg    Config
	runner Runner
	log    *slog.Logger
}

// New creates a rasterizer, filling zero-valued config fields with defaults.
func New(cfg Config) *Rasterizer {
	def := DefaultConfig()
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = def.Pdftoppm
	}
	if cfg.DPI <= 0 {
		cfg.DPI = def.DPI
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = execRunner{log: cfg.Logger}
	}
	return &Rasterizer{cfg: cfg, runner: cfg.Runner, log: cfg.Logger}
}

// Rasterize converts document bytes into one page image per page, in page
// order. Images become a single page; paged documents are rendered page by
// page. Failure aborts the whole document.
func (r *Rasterizer) Rasterize(ctx context.Context, kind fetch.Kind, data []byte) ([]model.PageImage, error) {
	if len(data) == 0 {
		return nil, &RasterizationError{Reason: "empty document"}
	}
	switch kind {
	case fetch.KindPaged:
		return r.rasterizePaged(ctx, data)
	default:
		return r.rasterizeImage(data)
	}
}

// rasterizeImage wraps a single decoded image as page 1.
func (r *Rasterizer) rasterizeImage(data []byte) ([]model.PageImage, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &RasterizationError{Reason: "decode image", Err: err}
	}
	r.log.Debug("decoded image",
		"stage", "raster", "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return []model.PageImage{{PageNumber: 1, Image: img}}, nil
}

// rasterizePaged renders every page of a PDF through pdftoppm. The document
// is first page-counted with pdfcpu, which rejects corrupt files before any
// external tool runs.
func (r *Rasterizer) rasterizePaged(ctx context.Context, data []byte) ([]model.PageImage, error) {
	pageCount, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return nil, &RasterizationError{Reason: "corrupt document", Err: err}
	}
	if pageCount == 0 {
		return nil, &RasterizationError{Reason: "document has no pages"}
	}

	tmpDir, err := os.MkdirTemp("", "scandoc-*")
	if err != nil {
		return nil, &RasterizationError{Reason: "create temp dir", Err: err}
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			r.log.Warn("failed to remove temp dir", "stage", "raster", "dir", tmpDir, "error", rmErr)
		}
	}()

	docPath := filepath.Join(tmpDir, "doc.pdf")
	if err := os.WriteFile(docPath, data, 0o600); err != nil {
		return nil, &RasterizationError{Reason: "write temp document", Err: err}
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <doc.pdf> <tmp/page>
	_, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", r.cfg.DPI), "-png", docPath, prefix)
	if err != nil {
		return nil, &RasterizationError{Reason: fmt.Sprintf("render failed: %s", truncate(string(errb), 512)), Err: err}
	}

	// pdftoppm names output page-1.png, page-2.png, ... zero-padding the
	// index when the document has 10+ pages, so a lexical sort is also a
	// numeric sort.
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if r.cfg.MaxPages > 0 && len(matches) > r.cfg.MaxPages {
		matches = matches[:r.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, &RasterizationError{Reason: "renderer produced no pages"}
	}

	pages := make([]model.PageImage, 0, len(matches))
	for i, path := range matches {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, &RasterizationError{Reason: fmt.Sprintf("read page %d", i+1), Err: err}
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, &RasterizationError{Reason: fmt.Sprintf("decode page %d", i+1), Err: err}
		}
		pages = append(pages, model.PageImage{PageNumber: i + 1, Image: img})
	}

	r.log.Debug("rasterized document",
		"stage", "raster", "pages", len(pages), "dpi", r.cfg.DPI)
	return pages, nil
}
