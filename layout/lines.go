package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/scandoc/model"
)

// Line is an ordered sequence of tokens sharing a vertical band,
// representing one visual text line. Tokens are sorted by ascending left
// coordinate.
type Line struct {
	Tokens []model.Token
}

// Text returns the space-joined text of the line.
func (l Line) Text() string {
	parts := make([]string, len(l.Tokens))
	for i, t := range l.Tokens {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}

// GroupIntoLines clusters tokens into visual lines. Tokens are scanned in
// ascending top order; a token joins the current line when its top is
// within tolerance of the line's first token's top, otherwise it starts a
// new line. Every completed line is sorted left to right.
//
// The union of all returned lines is exactly the input token set.
func GroupIntoLines(tokens []model.Token, tolerance int) []Line {
	if len(tokens) == 0 {
		return nil
	}

	sorted := make([]model.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Box.Top < sorted[j].Box.Top
	})

	var lines []Line
	current := []model.Token{sorted[0]}
	anchor := sorted[0].Box.Top

	closeLine := func() {
		sort.SliceStable(current, func(i, j int) bool {
			return current[i].Box.Left < current[j].Box.Left
		})
		lines = append(lines, Line{Tokens: current})
	}

	for _, tok := range sorted[1:] {
		if abs(tok.Box.Top-anchor) <= tolerance {
			current = append(current, tok)
			continue
		}
		closeLine()
		current = []model.Token{tok}
		anchor = tok.Box.Top
	}
	closeLine()

	return lines
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
