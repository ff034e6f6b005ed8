package model

import "testing"

func TestBoundingBox_Edges(t *testing.T) {
	b := NewBoundingBox(10, 20, 30, 40)

	if b.Right() != 40 {
		t.Errorf("Expected right edge 40, got %d", b.Right())
	}
	if b.Bottom() != 60 {
		t.Errorf("Expected bottom edge 60, got %d", b.Bottom())
	}
	if b.CenterX() != 25 || b.CenterY() != 40 {
		t.Errorf("Expected center (25,40), got (%d,%d)", b.CenterX(), b.CenterY())
	}
}

func TestBoundingBox_HGapTo(t *testing.T) {
	a := NewBoundingBox(10, 0, 50, 10)
	b := NewBoundingBox(100, 0, 20, 10)

	if gap := a.HGapTo(b); gap != 40 {
		t.Errorf("Expected gap 40, got %d", gap)
	}

	// Overlapping boxes produce a negative gap
	c := NewBoundingBox(30, 0, 20, 10)
	if gap := a.HGapTo(c); gap != -30 {
		t.Errorf("Expected gap -30, got %d", gap)
	}
}

func TestBoundingBox_VDistance(t *testing.T) {
	a := NewBoundingBox(0, 100, 10, 10)
	b := NewBoundingBox(0, 93, 10, 10)

	if d := a.VDistance(b); d != 7 {
		t.Errorf("Expected distance 7, got %d", d)
	}
	if d := b.VDistance(a); d != 7 {
		t.Errorf("Expected symmetric distance 7, got %d", d)
	}
}

func TestBoundingBox_Union(t *testing.T) {
	a := NewBoundingBox(10, 10, 10, 10)
	b := NewBoundingBox(30, 5, 10, 10)

	u := a.Union(b)
	want := BoundingBox{Left: 10, Top: 5, Width: 30, Height: 15}
	if u != want {
		t.Errorf("Expected union %+v, got %+v", want, u)
	}
}

func TestMeanConfidence(t *testing.T) {
	tokens := []Token{
		{Text: "a", Confidence: 80},
		{Text: "b", Confidence: 60},
		{Text: "sep", Confidence: 0}, // excluded
		{Text: "c", Confidence: 100},
	}

	mean, n := MeanConfidence(tokens)
	if n != 3 {
		t.Errorf("Expected 3 counted tokens, got %d", n)
	}
	if mean != 80 {
		t.Errorf("Expected mean 80, got %f", mean)
	}
}

func TestMeanConfidence_Empty(t *testing.T) {
	mean, n := MeanConfidence(nil)
	if mean != 0 || n != 0 {
		t.Errorf("Expected (0, 0) for no tokens, got (%f, %d)", mean, n)
	}

	mean, n = MeanConfidence([]Token{{Text: "x", Confidence: 0}})
	if mean != 0 || n != 0 {
		t.Errorf("Expected (0, 0) for zero-confidence tokens, got (%f, %d)", mean, n)
	}
}

func TestFailureResult_Shape(t *testing.T) {
	res := FailureResult("https://example.com/a.pdf", "paged", "boom")

	if res.Success {
		t.Error("Expected failure result to have Success=false")
	}
	if res.Error != "boom" {
		t.Errorf("Expected error message 'boom', got %q", res.Error)
	}
	if res.Tokens == nil || len(res.Tokens) != 0 {
		t.Errorf("Expected empty non-nil tokens, got %v", res.Tokens)
	}
	if res.KeyValuePairs == nil || len(res.KeyValuePairs) != 0 {
		t.Errorf("Expected empty non-nil key-value map, got %v", res.KeyValuePairs)
	}
	if res.Tables == nil || len(res.Tables) != 0 {
		t.Errorf("Expected empty non-nil tables, got %v", res.Tables)
	}
	if res.PreviewImages == nil || len(res.PreviewImages) != 0 {
		t.Errorf("Expected empty non-nil previews, got %v", res.PreviewImages)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(81.4567); got != 81.46 {
		t.Errorf("Expected 81.46, got %f", got)
	}
	if got := Round2(81.454); got != 81.45 {
		t.Errorf("Expected 81.45, got %f", got)
	}
}
