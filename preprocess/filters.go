package preprocess

import (
	"image"
	"math"
	"sort"
)

// bilateral applies an edge-preserving bilateral filter: each output pixel
// is a weighted mean of its window, where weights fall off with both
// spatial distance and intensity difference, so edges survive smoothing.
func bilateral(src *image.Gray, window int, sigmaSpace, sigmaColor float64) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	radius := window / 2

	// Spatial weights depend only on the offset; precompute once.
	spatial := make([]float64, window*window)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			spatial[(dy+radius)*window+(dx+radius)] = math.Exp(-d2 / (2 * sigmaSpace * sigmaSpace))
		}
	}
	// Color weights depend only on the intensity delta; precompute all 256.
	colorW := make([]float64, 256)
	for d := 0; d < 256; d++ {
		colorW[d] = math.Exp(-float64(d*d) / (2 * sigmaColor * sigmaColor))
	}

	dst := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := src.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			var sum, weight float64
			for dy := -radius; dy <= radius; dy++ {
				sy := clampInt(y+dy, 0, h-1)
				for dx := -radius; dx <= radius; dx++ {
					sx := clampInt(x+dx, 0, w-1)
					v := src.GrayAt(b.Min.X+sx, b.Min.Y+sy).Y
					delta := int(v) - int(center)
					if delta < 0 {
						delta = -delta
					}
					wgt := spatial[(dy+radius)*window+(dx+radius)] * colorW[delta]
					sum += wgt * float64(v)
					weight += wgt
				}
			}
			dst.SetGray(b.Min.X+x, b.Min.Y+y, colorGray(clampU8(sum/weight)))
		}
	}
	return dst
}

// dilate replaces each pixel with the maximum over a square structuring
// element of the given size. A size of 1 is the identity.
func dilate(src *image.Gray, size int) *image.Gray {
	return morphApply(src, size, func(vals []uint8) uint8 {
		max := vals[0]
		for _, v := range vals[1:] {
			if v > max {
				max = v
			}
		}
		return max
	})
}

// erode replaces each pixel with the minimum over a square structuring
// element of the given size. A size of 1 is the identity.
func erode(src *image.Gray, size int) *image.Gray {
	return morphApply(src, size, func(vals []uint8) uint8 {
		min := vals[0]
		for _, v := range vals[1:] {
			if v < min {
				min = v
			}
		}
		return min
	})
}

// morphClose is dilation followed by erosion; it fills small gaps in
// foreground strokes.
func morphClose(src *image.Gray, size int) *image.Gray {
	return erode(dilate(src, size), size)
}

// morphOpen is erosion followed by dilation; it removes isolated specks.
func morphOpen(src *image.Gray, size int) *image.Gray {
	return dilate(erode(src, size), size)
}

func morphApply(src *image.Gray, size int, reduce func([]uint8) uint8) *image.Gray {
	if size <= 1 {
		out := image.NewGray(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	radius := size / 2
	dst := image.NewGray(b)
	vals := make([]uint8, 0, size*size)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			vals = vals[:0]
			for dy := -radius; dy <= radius; dy++ {
				sy := clampInt(y+dy, 0, h-1)
				for dx := -radius; dx <= radius; dx++ {
					sx := clampInt(x+dx, 0, w-1)
					vals = append(vals, src.GrayAt(b.Min.X+sx, b.Min.Y+sy).Y)
				}
			}
			dst.SetGray(b.Min.X+x, b.Min.Y+y, colorGray(reduce(vals)))
		}
	}
	return dst
}

// median3 applies a 3x3 median filter, knocking out salt-and-pepper noise
// introduced by thresholding.
func median3(src *image.Gray) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(b)
	window := make([]int, 0, 9)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			window = window[:0]
			for dy := -1; dy <= 1; dy++ {
				sy := clampInt(y+dy, 0, h-1)
				for dx := -1; dx <= 1; dx++ {
					sx := clampInt(x+dx, 0, w-1)
					window = append(window, int(src.GrayAt(b.Min.X+sx, b.Min.Y+sy).Y))
				}
			}
			sort.Ints(window)
			dst.SetGray(b.Min.X+x, b.Min.Y+y, colorGray(uint8(window[4])))
		}
	}
	return dst
}

// sharpen boosts sharpness by the given factor: the output is the smoothed
// image plus factor times the difference between the original and the
// smoothed image. Factor 1.0 is the identity.
func sharpen(src *image.Gray, factor float64) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	// 3x3 smoothing kernel with a dominant center, the classic "soft blur".
	kernel := [9]float64{1, 1, 1, 1, 5, 1, 1, 1, 1}
	const kernelSum = 13.0

	dst := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var smooth float64
			i := 0
			for dy := -1; dy <= 1; dy++ {
				sy := clampInt(y+dy, 0, h-1)
				for dx := -1; dx <= 1; dx++ {
					sx := clampInt(x+dx, 0, w-1)
					smooth += kernel[i] * float64(src.GrayAt(b.Min.X+sx, b.Min.Y+sy).Y)
					i++
				}
			}
			smooth /= kernelSum
			orig := float64(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			dst.SetGray(b.Min.X+x, b.Min.Y+y, colorGray(clampU8(smooth+factor*(orig-smooth))))
		}
	}
	return dst
}
