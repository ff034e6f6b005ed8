package layout

import (
	"testing"

	"github.com/tsawler/scandoc/model"
)

// makeToken creates a test token at the given position.
func makeToken(text string, left, top int) model.Token {
	return model.Token{
		Text:       text,
		Confidence: 90,
		Box:        model.NewBoundingBox(left, top, len(text)*10, 12),
	}
}

func TestGroupIntoLines_Empty(t *testing.T) {
	if lines := GroupIntoLines(nil, 10); lines != nil {
		t.Errorf("Expected nil for no tokens, got %v", lines)
	}
}

func TestGroupIntoLines_SingleLine(t *testing.T) {
	tokens := []model.Token{
		makeToken("World", 150, 100),
		makeToken("Hello", 100, 102),
	}

	lines := GroupIntoLines(tokens, 10)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Text() != "Hello World" {
		t.Errorf("Expected 'Hello World', got %q", lines[0].Text())
	}
}

func TestGroupIntoLines_ToleranceBoundary(t *testing.T) {
	// 10 units below the anchor joins the line; 11 starts a new one.
	joined := GroupIntoLines([]model.Token{
		makeToken("a", 0, 100),
		makeToken("b", 50, 110),
	}, 10)
	if len(joined) != 1 {
		t.Errorf("Expected tokens 10 units apart to share a line, got %d lines", len(joined))
	}

	split := GroupIntoLines([]model.Token{
		makeToken("a", 0, 100),
		makeToken("b", 50, 111),
	}, 10)
	if len(split) != 2 {
		t.Errorf("Expected tokens 11 units apart to split, got %d lines", len(split))
	}
}

func TestGroupIntoLines_AnchorIsFirstToken(t *testing.T) {
	// Each token is within tolerance of its predecessor but the third
	// drifts past the first token's band, so it starts a new line.
	tokens := []model.Token{
		makeToken("a", 0, 100),
		makeToken("b", 50, 108),
		makeToken("c", 100, 116),
	}

	lines := GroupIntoLines(tokens, 10)
	if len(lines) != 2 {
		t.Fatalf("Expected drift past the first token to split lines, got %d lines", len(lines))
	}
	if lines[0].Text() != "a b" {
		t.Errorf("Expected first line 'a b', got %q", lines[0].Text())
	}
	if lines[1].Text() != "c" {
		t.Errorf("Expected second line 'c', got %q", lines[1].Text())
	}
}

func TestGroupIntoLines_Permutation(t *testing.T) {
	tokens := []model.Token{
		makeToken("d", 30, 300),
		makeToken("a", 200, 100),
		makeToken("c", 10, 205),
		makeToken("b", 100, 98),
		makeToken("e", 90, 302),
	}

	lines := GroupIntoLines(tokens, 10)

	seen := map[string]int{}
	total := 0
	for _, line := range lines {
		for _, tok := range line.Tokens {
			seen[tok.Text]++
			total++
		}
	}
	if total != len(tokens) {
		t.Fatalf("Expected all %d tokens in output, got %d", len(tokens), total)
	}
	for _, tok := range tokens {
		if seen[tok.Text] != 1 {
			t.Errorf("Token %q appears %d times, expected exactly once", tok.Text, seen[tok.Text])
		}
	}
}

func TestGroupIntoLines_Invariants(t *testing.T) {
	tokens := []model.Token{
		makeToken("w3", 300, 50),
		makeToken("w1", 10, 52),
		makeToken("w2", 150, 48),
		makeToken("x2", 200, 140),
		makeToken("x1", 20, 145),
	}

	lines := GroupIntoLines(tokens, 10)

	for li, line := range lines {
		if len(line.Tokens) == 0 {
			t.Fatalf("Line %d is empty", li)
		}
		first := line.Tokens[0]
		prevLeft := -1
		for _, tok := range line.Tokens {
			if tok.Box.Left < prevLeft {
				t.Errorf("Line %d: left coordinates not non-decreasing", li)
			}
			prevLeft = tok.Box.Left
			if tok.Box.VDistance(first.Box) > 10 {
				t.Errorf("Line %d: token %q is %d units from the line anchor",
					li, tok.Text, tok.Box.VDistance(first.Box))
			}
		}
	}
}
