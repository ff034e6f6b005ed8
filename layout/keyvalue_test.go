package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/scandoc/model"
)

// makeLine builds a Line directly, already sorted left to right.
func makeLine(tokens ...model.Token) Line {
	return Line{Tokens: tokens}
}

func TestExtractKeyValuePairs_ColonSeparated(t *testing.T) {
	lines := []Line{makeLine(
		makeToken("Invoice", 10, 100),
		makeToken("No:", 90, 100),
		makeToken("INV-001", 140, 100),
	)}

	pairs := ExtractKeyValuePairs(lines, DefaultConfig())

	if got := pairs["invoice no"]; got != "INV-001" {
		t.Errorf("Expected pairs to contain {\"invoice no\": \"INV-001\"}, got %v", pairs)
	}
}

func TestExtractKeyValuePairs_FirstColonWins(t *testing.T) {
	lines := []Line{makeLine(
		makeToken("Date:", 10, 100),
		makeToken("12:30", 80, 100),
		makeToken("PM", 140, 100),
	)}

	pairs := ExtractKeyValuePairs(lines, DefaultConfig())

	if got := pairs["date"]; got != "12:30 PM" {
		t.Errorf("Expected value '12:30 PM' from first-colon split, got %q", got)
	}
}

func TestExtractKeyValuePairs_PlausibleUnmatchedKey(t *testing.T) {
	lines := []Line{makeLine(
		makeToken("Shipping", 10, 100),
		makeToken("address:", 100, 100),
		makeToken("12", 190, 100),
		makeToken("Main", 220, 100),
		makeToken("St", 270, 100),
	)}

	pairs := ExtractKeyValuePairs(lines, DefaultConfig())

	if got := pairs["shipping address"]; got != "12 Main St" {
		t.Errorf("Expected plausible unmatched key to be kept, got %v", pairs)
	}
}

func TestExtractKeyValuePairs_ImplausibleKeysRejected(t *testing.T) {
	cfg := DefaultConfig()

	// Key too short and no pattern match.
	short := []Line{makeLine(
		makeToken("zz:", 10, 100),
		makeToken("value", 50, 100),
	)}
	if pairs := ExtractKeyValuePairs(short, cfg); len(pairs) != 0 {
		t.Errorf("Expected 2-rune key to be rejected, got %v", pairs)
	}

	// Key too long.
	longKey := strings.Repeat("x", 60)
	long := []Line{makeLine(
		makeToken(longKey+":", 10, 100),
		makeToken("value", 700, 100),
	)}
	if pairs := ExtractKeyValuePairs(long, cfg); len(pairs) != 0 {
		t.Errorf("Expected oversized key to be rejected, got %v", pairs)
	}

	// Empty value.
	empty := []Line{makeLine(
		makeToken("remarks", 10, 100),
		makeToken("field:", 100, 100),
	)}
	if pairs := ExtractKeyValuePairs(empty, cfg); len(pairs) != 0 {
		t.Errorf("Expected empty value to be rejected, got %v", pairs)
	}
}

func TestExtractKeyValuePairs_AdjacentTokens(t *testing.T) {
	// No colon anywhere; "Total" matches a domain pattern and the next
	// token starts 20 units after it ends.
	total := makeToken("Total", 10, 100) // width 50, right edge 60
	value := makeToken("1499.00", 80, 100)

	pairs := ExtractKeyValuePairs([]Line{makeLine(total, value)}, DefaultConfig())

	if got := pairs["total"]; got != "1499.00" {
		t.Errorf("Expected adjacent pair {\"total\": \"1499.00\"}, got %v", pairs)
	}
}

func TestExtractKeyValuePairs_AdjacentGapTooWide(t *testing.T) {
	total := makeToken("Total", 10, 100) // right edge 60
	far := makeToken("1499.00", 200, 100)

	pairs := ExtractKeyValuePairs([]Line{makeLine(total, far)}, DefaultConfig())

	if _, ok := pairs["total"]; ok {
		t.Errorf("Expected pair beyond the adjacency gap to be rejected, got %v", pairs)
	}
}

func TestExtractKeyValuePairs_LaterMatchOverwrites(t *testing.T) {
	lines := []Line{
		makeLine(
			makeToken("Total:", 10, 100),
			makeToken("100.00", 90, 100),
		),
		makeLine(
			makeToken("Total:", 10, 200),
			makeToken("250.00", 90, 200),
		),
	}

	pairs := ExtractKeyValuePairs(lines, DefaultConfig())

	if got := pairs["total"]; got != "250.00" {
		t.Errorf("Expected later match to overwrite, got %q", got)
	}
}

func TestExtractKeyValuePairs_ShortLinesIgnored(t *testing.T) {
	lines := []Line{makeLine(makeToken("Total:", 10, 100))}

	pairs := ExtractKeyValuePairs(lines, DefaultConfig())
	if len(pairs) != 0 {
		t.Errorf("Expected single-token lines to be ignored, got %v", pairs)
	}
}

func TestMatchesLabel_DomainPatterns(t *testing.T) {
	matching := []string{
		"invoice no", "bill number", "invoice #", "date", "dated",
		"gstin", "gst no", "pan", "vendor name", "supplier",
		"grand total", "qty", "rate", "hsn", "sac", "cgst", "igst",
		"taxable amount", "description", "particulars",
	}
	for _, s := range matching {
		if !matchesLabel(s) {
			t.Errorf("Expected %q to match a domain pattern", s)
		}
	}

	if matchesLabel("zzzz") {
		t.Error("Expected 'zzzz' to match no pattern")
	}
}
