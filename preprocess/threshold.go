package preprocess

import (
	"image"
	"math"
)

// adaptiveThreshold binarizes the image against a locally computed
// threshold: a Gaussian-weighted mean over a blockSize window, minus the
// constant c. Pixels above the local threshold become white (255), the
// rest black (0). Local thresholding keeps text legible under uneven
// lighting where a single global threshold would wipe out whole regions.
func adaptiveThreshold(src *image.Gray, blockSize int, c float64) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	radius := blockSize / 2

	kernel := gaussianKernel1D(blockSize)

	// Separable Gaussian: horizontal pass into a float buffer, vertical
	// pass while thresholding.
	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sx := clampInt(x+k, 0, w-1)
				sum += kernel[k+radius] * float64(src.GrayAt(b.Min.X+sx, b.Min.Y+y).Y)
			}
			tmp[y*w+x] = sum
		}
	}

	dst := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var mean float64
			for k := -radius; k <= radius; k++ {
				sy := clampInt(y+k, 0, h-1)
				mean += kernel[k+radius] * tmp[sy*w+x]
			}
			v := float64(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			if v > mean-c {
				dst.SetGray(b.Min.X+x, b.Min.Y+y, colorGray(255))
			} else {
				dst.SetGray(b.Min.X+x, b.Min.Y+y, colorGray(0))
			}
		}
	}
	return dst
}

// gaussianKernel1D returns a normalized 1D Gaussian kernel of the given
// size, with sigma derived from the size the way adaptive thresholding
// conventionally does (sigma = 0.3*((size-1)*0.5 - 1) + 0.8).
func gaussianKernel1D(size int) []float64 {
	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	radius := size / 2
	kernel := make([]float64, size)
	var sum float64
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
