package preprocess

import (
	"image"
	"image/color"
	"log/slog"

	xdraw "golang.org/x/image/draw"
)

// Fixed chain constants. These are deliberately not configurable: the chain
// was tuned as a unit and recognition accuracy degrades when individual
// steps drift.
const (
	claheTilesX    = 8
	claheTilesY    = 8
	claheClipLimit = 2.0

	bilateralWindow     = 9
	bilateralSigmaSpace = 75.0
	bilateralSigmaColor = 75.0

	morphKernelSize = 1

	thresholdBlockSize = 11
	thresholdConstant  = 2.0

	sharpnessFactor = 2.0
)

// Enhance runs the full enhancement chain on a page raster and returns the
// binarized, sharpened result. For any valid non-empty raster it returns a
// raster; on any internal failure it returns the input unchanged.
func Enhance(src image.Image) image.Image {
	return EnhanceLogged(src, slog.Default())
}

// EnhanceLogged is Enhance with an explicit logger for step diagnostics.
func EnhanceLogged(src image.Image, log *slog.Logger) (out image.Image) {
	if src == nil {
		return nil
	}
	out = src
	defer func() {
		if r := recover(); r != nil {
			log.Warn("preprocessing failed, using original raster",
				"stage", "preprocess", "panic", r)
			out = src
		}
	}()

	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return src
	}

	g := toGray(normalizeColorspace(src))
	g = clahe(g, claheTilesX, claheTilesY, claheClipLimit)
	g = bilateral(g, bilateralWindow, bilateralSigmaSpace, bilateralSigmaColor)
	g = morphClose(g, morphKernelSize)
	g = morphOpen(g, morphKernelSize)
	g = adaptiveThreshold(g, thresholdBlockSize, thresholdConstant)
	g = median3(g)
	g = sharpen(g, sharpnessFactor)
	return g
}

// normalizeColorspace redraws the source into a plain NRGBA image so every
// later step sees one pixel layout regardless of the decoded format
// (paletted GIF, YCbCr JPEG, 16-bit TIFF, ...).
func normalizeColorspace(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return dst
}

// toGray converts to 8-bit grayscale using the standard luminance weights.
func toGray(src *image.NRGBA) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(b)
	xdraw.Draw(dst, b, src, b.Min, xdraw.Src)
	return dst
}

// colorGray wraps a byte as a color.Gray value.
func colorGray(v uint8) color.Gray {
	return color.Gray{Y: v}
}

// clampU8 clamps v to the 0-255 range.
func clampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// clampInt clamps v into [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
