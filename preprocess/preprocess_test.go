package preprocess

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

// noiseImage builds a gray image filled with deterministic pseudo-random
// pixels.
func noiseImage(w, h int, seed int64) *image.Gray {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	return img
}

func TestEnhance_Total(t *testing.T) {
	inputs := []image.Image{
		image.NewGray(image.Rect(0, 0, 1, 1)),
		image.NewGray(image.Rect(0, 0, 3, 200)),
		image.NewRGBA(image.Rect(0, 0, 64, 48)),
		image.NewPaletted(image.Rect(0, 0, 32, 32), color.Palette{color.Black, color.White}),
		noiseImage(100, 80, 1),
		image.NewGray(image.Rect(0, 0, 0, 0)), // empty bounds
	}

	for i, in := range inputs {
		out := Enhance(in)
		if out == nil {
			t.Errorf("Input %d: Enhance returned nil", i)
		}
	}
}

func TestEnhance_PreservesDimensions(t *testing.T) {
	in := noiseImage(123, 77, 2)
	out := Enhance(in)

	if out.Bounds().Dx() != 123 || out.Bounds().Dy() != 77 {
		t.Errorf("Expected 123x77 output, got %v", out.Bounds())
	}
}

func TestEnhance_EmptyRasterPassthrough(t *testing.T) {
	in := image.NewGray(image.Rect(0, 0, 0, 0))
	out := Enhance(in)
	if out != image.Image(in) {
		t.Error("Expected empty raster to pass through unchanged")
	}
}

func TestAdaptiveThreshold_Binary(t *testing.T) {
	in := noiseImage(50, 50, 3)
	out := adaptiveThreshold(in, thresholdBlockSize, thresholdConstant)

	for i, v := range out.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("Pixel %d: expected binary output, got %d", i, v)
		}
	}
}

func TestAdaptiveThreshold_UniformImage(t *testing.T) {
	in := image.NewGray(image.Rect(0, 0, 20, 20))
	for i := range in.Pix {
		in.Pix[i] = 128
	}
	out := adaptiveThreshold(in, thresholdBlockSize, thresholdConstant)

	// Every pixel sits above its local mean minus the constant, so the
	// whole image thresholds to white.
	for i, v := range out.Pix {
		if v != 255 {
			t.Fatalf("Pixel %d: expected 255 for uniform image, got %d", i, v)
		}
	}
}

func TestMorphology_MinimalElementIsIdentity(t *testing.T) {
	in := noiseImage(30, 30, 4)

	closed := morphClose(in, morphKernelSize)
	opened := morphOpen(closed, morphKernelSize)

	for i := range in.Pix {
		if opened.Pix[i] != in.Pix[i] {
			t.Fatalf("Pixel %d: expected 1x1 morphology to be identity, got %d != %d",
				i, opened.Pix[i], in.Pix[i])
		}
	}
}

func TestMorphology_DilateErodeOrdering(t *testing.T) {
	in := noiseImage(20, 20, 5)

	dilated := dilate(in, 3)
	eroded := erode(in, 3)

	for i := range in.Pix {
		if dilated.Pix[i] < in.Pix[i] {
			t.Fatalf("Pixel %d: dilation must not darken (%d < %d)", i, dilated.Pix[i], in.Pix[i])
		}
		if eroded.Pix[i] > in.Pix[i] {
			t.Fatalf("Pixel %d: erosion must not brighten (%d > %d)", i, eroded.Pix[i], in.Pix[i])
		}
	}
}

func TestMedian3_UniformImage(t *testing.T) {
	in := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range in.Pix {
		in.Pix[i] = 42
	}
	out := median3(in)
	for i, v := range out.Pix {
		if v != 42 {
			t.Fatalf("Pixel %d: expected uniform image to survive median, got %d", i, v)
		}
	}
}

func TestMedian3_RemovesSalt(t *testing.T) {
	in := image.NewGray(image.Rect(0, 0, 11, 11))
	in.SetGray(5, 5, color.Gray{Y: 255}) // lone bright pixel in a black field

	out := median3(in)
	if out.GrayAt(5, 5).Y != 0 {
		t.Errorf("Expected isolated speck to be removed, got %d", out.GrayAt(5, 5).Y)
	}
}

func TestSharpen_FactorOneIsIdentity(t *testing.T) {
	in := noiseImage(25, 25, 6)
	out := sharpen(in, 1.0)

	for i := range in.Pix {
		if out.Pix[i] != in.Pix[i] {
			t.Fatalf("Pixel %d: expected factor 1.0 to be identity, got %d != %d",
				i, out.Pix[i], in.Pix[i])
		}
	}
}

func TestCLAHE_SpreadsContrast(t *testing.T) {
	// A low-contrast image confined to a narrow band should come out with
	// a wider value range.
	in := image.NewGray(image.Rect(0, 0, 64, 64))
	rng := rand.New(rand.NewSource(7))
	for i := range in.Pix {
		in.Pix[i] = uint8(120 + rng.Intn(16))
	}

	out := clahe(in, claheTilesX, claheTilesY, claheClipLimit)

	inMin, inMax := pixRange(in)
	outMin, outMax := pixRange(out)
	if int(outMax)-int(outMin) <= int(inMax)-int(inMin) {
		t.Errorf("Expected CLAHE to widen the value range: in [%d,%d], out [%d,%d]",
			inMin, inMax, outMin, outMax)
	}
}

func TestCLAHE_TinyImagePassthrough(t *testing.T) {
	in := noiseImage(4, 4, 8)
	out := clahe(in, claheTilesX, claheTilesY, claheClipLimit)
	if out != in {
		t.Error("Expected images smaller than the tile grid to pass through")
	}
}

func pixRange(img *image.Gray) (uint8, uint8) {
	min, max := uint8(255), uint8(0)
	for _, v := range img.Pix {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
