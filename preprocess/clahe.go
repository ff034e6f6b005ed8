package preprocess

import "image"

// clahe performs contrast-limited adaptive histogram equalization. The
// image is divided into a tilesX x tilesY grid; each tile gets a clipped,
// equalized lookup table, and every pixel is mapped through a bilinear
// blend of the four nearest tile tables to avoid visible tile seams.
func clahe(src *image.Gray, tilesX, tilesY int, clipLimit float64) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < tilesX || h < tilesY {
		return src
	}

	tileW := (w + tilesX - 1) / tilesX
	tileH := (h + tilesY - 1) / tilesY

	luts := make([][256]uint8, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileW
			y0 := ty * tileH
			x1 := clampInt(x0+tileW, 0, w)
			y1 := clampInt(y0+tileH, 0, h)
			luts[ty*tilesX+tx] = tileLUT(src, x0, y0, x1, y1, clipLimit)
		}
	}

	dst := image.NewGray(b)
	for y := 0; y < h; y++ {
		// Position of the pixel relative to tile centers, for blending.
		fy := (float64(y)+0.5)/float64(tileH) - 0.5
		ty0 := clampInt(int(fy), 0, tilesY-1)
		ty1 := clampInt(ty0+1, 0, tilesY-1)
		wy := fy - float64(ty0)
		if wy < 0 {
			wy = 0
		}

		for x := 0; x < w; x++ {
			fx := (float64(x)+0.5)/float64(tileW) - 0.5
			tx0 := clampInt(int(fx), 0, tilesX-1)
			tx1 := clampInt(tx0+1, 0, tilesX-1)
			wx := fx - float64(tx0)
			if wx < 0 {
				wx = 0
			}

			v := src.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			v00 := float64(luts[ty0*tilesX+tx0][v])
			v01 := float64(luts[ty0*tilesX+tx1][v])
			v10 := float64(luts[ty1*tilesX+tx0][v])
			v11 := float64(luts[ty1*tilesX+tx1][v])

			top := v00*(1-wx) + v01*wx
			bot := v10*(1-wx) + v11*wx
			dst.SetGray(b.Min.X+x, b.Min.Y+y, colorGray(clampU8(top*(1-wy)+bot*wy)))
		}
	}
	return dst
}

// tileLUT builds the clipped equalization table for one tile. The clip
// limit is expressed as a multiple of the uniform histogram level; excess
// counts are redistributed evenly across all bins before the CDF is built.
func tileLUT(src *image.Gray, x0, y0, x1, y1 int, clipLimit float64) [256]uint8 {
	b := src.Bounds()
	var hist [256]int
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			hist[src.GrayAt(b.Min.X+x, b.Min.Y+y).Y]++
			n++
		}
	}

	var lut [256]uint8
	if n == 0 {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}

	clip := int(clipLimit * float64(n) / 256.0)
	if clip < 1 {
		clip = 1
	}
	excess := 0
	for i := range hist {
		if hist[i] > clip {
			excess += hist[i] - clip
			hist[i] = clip
		}
	}
	redistribute := excess / 256
	residual := excess % 256
	for i := range hist {
		hist[i] += redistribute
		if i < residual {
			hist[i]++
		}
	}

	cdf := 0
	scale := 255.0 / float64(n)
	for i := range hist {
		cdf += hist[i]
		lut[i] = clampU8(float64(cdf) * scale)
	}
	return lut
}
