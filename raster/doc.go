// Package raster turns fetched document bytes into ordered page images.
//
// Single images decode directly into one page. Paged documents (PDF) are
// validated with pdfcpu, written to a scoped temporary file, and rendered
// one PNG per page by the external pdftoppm tool at a fixed 2.0x upscale
// (144 dpi against the 72 dpi PDF point grid). Temporary storage is
// released on every exit path.
//
// External commands run through the Runner interface so tests can stub
// them. Rasterization failures are fatal to the whole document: a corrupt
// file or render failure yields a *RasterizationError and no partial pages.
package raster
