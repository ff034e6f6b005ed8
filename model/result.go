package model

import (
	"image"
	"math"
)

// PageImage is one rasterized page awaiting recognition. Page numbers are
// 1-based. The decoded raster is discarded after recognition; only the
// encoded preview survives into the result.
type PageImage struct {
	PageNumber int
	Image      image.Image
}

// PagePreview is an encoded (base64 PNG) snapshot of one page, retained in
// the final result so downstream consumers can display the source page.
type PagePreview struct {
	PageNumber   int    `json:"pageNumber"`
	EncodedImage string `json:"encodedImage"`
}

// ExtractionResult holds everything extracted from a single page.
type ExtractionResult struct {
	// PageNumber is 1-based.
	PageNumber int `json:"pageNumber"`

	// PlainText is the best whole-page text produced by the profile sweep,
	// or a sentinel string when every recognition path failed.
	PlainText string `json:"plainText"`

	// Tokens are the positioned words retained by the structured pass.
	Tokens []Token `json:"tokens"`

	// KeyValuePairs maps lowercased, trimmed labels to values. Unique by
	// key within a page.
	KeyValuePairs map[string]string `json:"keyValuePairs"`

	// Tables holds extracted table rows, each row an ordered list of cell
	// texts.
	Tables [][]string `json:"tables"`

	// MeanConfidence is the mean confidence of the winning recognition
	// profile, and Profile names it. Together they describe how trustworthy
	// PlainText is.
	MeanConfidence float64 `json:"meanConfidence"`
	Profile        string  `json:"profile,omitempty"`

	// Degraded names the fallback taken when the profile sweep produced no
	// usable text. Empty means the page was extracted normally; a non-empty
	// value distinguishes degraded extraction from pipeline failure.
	Degraded string `json:"degraded,omitempty"`

	// Preview is the base64 PNG encoding of the original (unpreprocessed)
	// page raster.
	Preview string `json:"preview,omitempty"`

	// Width and Height are the raster dimensions in pixels.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// Metadata summarizes a document-level result.
type Metadata struct {
	// PageCount is the number of pages processed.
	PageCount int `json:"pageCount"`

	// TotalTokens is the number of positioned tokens across all pages.
	TotalTokens int `json:"totalTokens"`

	// AverageConfidence is the document-level mean token confidence,
	// rounded to two decimals.
	AverageConfidence float64 `json:"averageConfidence"`

	// TablesFound is the number of table rows in the merged result.
	TablesFound int `json:"tablesFound"`

	// ImageWidth and ImageHeight are set for single-image documents.
	ImageWidth  int `json:"imageWidth,omitempty"`
	ImageHeight int `json:"imageHeight,omitempty"`

	// ResolutionScale is the upscaling factor used when rasterizing paged
	// documents.
	ResolutionScale float64 `json:"resolutionScale,omitempty"`

	// ProcessingMethod identifies the extraction strategy.
	ProcessingMethod string `json:"processingMethod"`
}

// DocumentResult is the final, document-level result returned to callers.
// It is the only object exposed outside the pipeline. On failure, Success is
// false, Error carries a message, and every collection field is empty but
// non-nil.
type DocumentResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	SourceURL string `json:"sourceUrl"`
	FileKind  string `json:"fileKind"`

	PlainText     string            `json:"plainText"`
	Tokens        []Token           `json:"tokens"`
	KeyValuePairs map[string]string `json:"keyValuePairs"`
	Tables        [][]string        `json:"tables"`

	// PrimaryImage is the preview of page 1, kept as a stable field for
	// consumers that only want one image.
	PrimaryImage string `json:"primaryImage,omitempty"`

	// PreviewImages holds one encoded preview per page, in page order.
	PreviewImages []PagePreview `json:"previewImages"`

	// PerPageResults is populated for paged documents, in page order.
	PerPageResults []ExtractionResult `json:"perPageResults,omitempty"`

	Metadata Metadata `json:"metadata"`
}

// FailureResult builds the uniform failure shape: success=false, the given
// error message, and empty (non-nil) collections.
func FailureResult(sourceURL, fileKind, message string) *DocumentResult {
	return &DocumentResult{
		Success:       false,
		Error:         message,
		SourceURL:     sourceURL,
		FileKind:      fileKind,
		Tokens:        []Token{},
		KeyValuePairs: map[string]string{},
		Tables:        [][]string{},
		PreviewImages: []PagePreview{},
	}
}

// Round2 rounds a confidence value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
