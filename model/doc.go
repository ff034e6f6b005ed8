// Package model provides the data types produced by the extraction pipeline.
//
// This package defines the user-facing structures that represent recognized
// document content. All pipeline stages ultimately produce these types,
// making them the primary API for consuming extracted content.
//
// # Result Structure
//
// The [DocumentResult] type is the single object returned to callers:
//
//	result := processor.ProcessURL(ctx, url)
//	fmt.Println(result.PlainText)
//	for key, value := range result.KeyValuePairs {
//	    fmt.Printf("%s = %s\n", key, value)
//	}
//
// A [DocumentResult] aggregates one [ExtractionResult] per page. For paged
// documents the per-page results are retained alongside the merged
// document-level fields.
//
// # Tokens
//
// A [Token] is one recognized word with its engine-reported confidence
// (0-100), pixel-space [BoundingBox], and the structural indices (block,
// paragraph, line, word) reported by the recognition engine. Tokens are
// immutable once produced.
//
// # Geometry
//
// [BoundingBox] uses raster coordinates with the origin in the upper-left
// corner, matching the coordinate space of rasterized pages. Helpers support
// the horizontal-gap and vertical-band calculations used by layout
// reconstruction.
package model
