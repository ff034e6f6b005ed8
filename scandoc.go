// Package scandoc extracts structured content from scanned documents:
// plain text, positioned tokens, key-value pairs, and table rows, from an
// image or multi-page PDF supplied by URL or as raw bytes.
//
// Basic usage:
//
//	p := scandoc.New(scandoc.DefaultConfig())
//	result := p.ProcessURL(ctx, "https://example.com/invoice.pdf")
//	if !result.Success {
//	    log.Println("extraction failed:", result.Error)
//	}
//	fmt.Println(result.KeyValuePairs["invoice no"])
//
// ProcessURL always returns a result: fatal pipeline failures (download,
// corrupt document) are converted into a uniform failure result rather
// than an error, and everything downstream of rasterization degrades to
// empty or sentinel values instead of failing.
//
// Recognition requires Tesseract and the "ocr" build tag; see the
// recognize package for details. Pages are processed sequentially to bound
// the peak memory held by rasterized pages.
package scandoc

import (
	"context"
	"log/slog"

	"github.com/tsawler/scandoc/fetch"
	"github.com/tsawler/scandoc/layout"
	"github.com/tsawler/scandoc/model"
	"github.com/tsawler/scandoc/raster"
	"github.com/tsawler/scandoc/recognize"
)

// Processor is the pipeline entry point. Construct one with New and reuse
// it across documents; it holds no per-document state.
type Processor struct {
	cfg        Config
	fetcher    *fetch.Client
	rasterizer *raster.Rasterizer
	recognizer *recognize.Recognizer
	log        *slog.Logger
}

// New creates a processor from the given configuration. Zero-valued config
// fields are filled with defaults.
func New(cfg Config) *Processor {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Fetch.Logger == nil {
		cfg.Fetch.Logger = cfg.Logger
	}
	if cfg.Raster.Logger == nil {
		cfg.Raster.Logger = cfg.Logger
	}
	if cfg.Recognize.Logger == nil {
		cfg.Recognize.Logger = cfg.Logger
	}
	if cfg.Layout == (layout.Config{}) {
		cfg.Layout = layout.DefaultConfig()
	}
	return &Processor{
		cfg:        cfg,
		fetcher:    fetch.NewClient(cfg.Fetch),
		rasterizer: raster.New(cfg.Raster),
		recognizer: recognize.NewRecognizer(cfg.Engine, cfg.Recognize),
		log:        cfg.Logger,
	}
}

// ProcessURL downloads the document at url, classifies it by extension,
// and runs the full extraction pipeline. The returned result always has
// Success set; it is never nil.
func (p *Processor) ProcessURL(ctx context.Context, url string) *model.DocumentResult {
	kind := fetch.ClassifyURL(url)

	data, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		p.log.Error("document fetch failed", "url", url, "error", err)
		return model.FailureResult(url, kind.String(), "failed to fetch document: "+publicMessage(err))
	}

	return p.ProcessBytes(ctx, url, kind, data)
}

// ProcessBytes runs the extraction pipeline over already-fetched bytes
// with a declared kind. sourceURL is recorded in the result but not
// fetched.
func (p *Processor) ProcessBytes(ctx context.Context, sourceURL string, kind fetch.Kind, data []byte) *model.DocumentResult {
	pages, err := p.rasterizer.Rasterize(ctx, kind, data)
	if err != nil {
		p.log.Error("rasterization failed", "url", sourceURL, "kind", kind.String(), "error", err)
		return model.FailureResult(sourceURL, kind.String(), "failed to rasterize document: "+publicMessage(err))
	}

	// Pages run one at a time: each raster is released before the next is
	// recognized.
	results := make([]model.ExtractionResult, 0, len(pages))
	for _, page := range pages {
		results = append(results, p.extractPage(page))
	}

	return p.assemble(sourceURL, kind, results)
}
