package fetch

import (
	"net/url"
	"path"
	"strings"
)

// Kind classifies a fetched resource.
type Kind int

const (
	// KindImage indicates a single raster image (one page).
	KindImage Kind = iota
	// KindPaged indicates a multi-page document that must be rasterized
	// page by page.
	KindPaged
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPaged:
		return "paged"
	default:
		return "image"
	}
}

// pagedExtensions lists extensions treated as paged documents. Everything
// else is handled as a single image, matching the decoder surface of the
// rasterizer (png, jpeg, gif, bmp, tiff, webp).
var pagedExtensions = map[string]bool{
	".pdf": true,
}

// ClassifyURL determines the resource kind from the URL path's extension.
// URLs that fail to parse are classified as images; the subsequent decode
// reports a useful error if the bytes turn out not to be an image.
func ClassifyURL(rawURL string) Kind {
	u, err := url.Parse(rawURL)
	if err != nil {
		return KindImage
	}
	return ClassifyPath(u.Path)
}

// ClassifyPath determines the resource kind from a file path's extension.
func ClassifyPath(p string) Kind {
	ext := strings.ToLower(path.Ext(p))
	if pagedExtensions[ext] {
		return KindPaged
	}
	return KindImage
}
