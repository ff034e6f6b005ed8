package layout

import (
	"log/slog"
	"strings"
)

// headerKeywords mark a line as a table header. Header lines are consumed
// (they prove a table is present) but never returned as rows.
var headerKeywords = []string{
	"description", "qty", "rate", "amount", "hsn",
	"total", "particulars", "item", "quantity",
}

func containsHeaderKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range headerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractTables derives table rows from grouped lines. A line with at
// least cfg.MinRowTokens tokens is a row candidate; candidates whose text
// contains a header keyword are excluded as headers; the remaining rows
// are returned in order, capped at cfg.MaxRows. Fewer than cfg.MinRows
// qualifying rows yields an empty table. Internal failures degrade to an
// empty table.
func ExtractTables(lines []Line, cfg Config) (rows [][]string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Default().Warn("table extraction failed",
				"stage", "layout", "panic", r)
			rows = [][]string{}
		}
	}()

	rows = [][]string{}
	for _, line := range lines {
		if len(line.Tokens) < cfg.MinRowTokens {
			continue
		}
		if containsHeaderKeyword(line.Text()) {
			continue
		}
		cells := make([]string, len(line.Tokens))
		for i, t := range line.Tokens {
			cells[i] = t.Text
		}
		rows = append(rows, cells)
	}

	if len(rows) < cfg.MinRows {
		return [][]string{}
	}
	if len(rows) > cfg.MaxRows {
		rows = rows[:cfg.MaxRows]
	}
	return rows
}
