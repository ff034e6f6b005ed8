package layout

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"
)

// labelMatcher pairs a stable label name with the pattern that recognizes
// it. The table is fixed: invoice-style documents use a small, well-known
// label vocabulary, and matching is a static lookup rather than anything
// extensible.
type labelMatcher struct {
	label string
	re    *regexp.Regexp
}

var labelMatchers = []labelMatcher{
	{"invoice-number", regexp.MustCompile(`(?i)(?:invoice|bill)\s*(?:no|number|#)`)},
	{"date", regexp.MustCompile(`(?i)(?:date|dated)`)},
	{"tax-registration", regexp.MustCompile(`(?i)(?:gst|gstin)\s*(?:no|number)?`)},
	{"business-identity", regexp.MustCompile(`(?i)(?:pan|pan\s*no)`)},
	{"vendor-name", regexp.MustCompile(`(?i)(?:vendor|supplier|company)\s*(?:name)?`)},
	{"total", regexp.MustCompile(`(?i)(?:total|grand\s*total|final\s*amount)`)},
	{"quantity", regexp.MustCompile(`(?i)(?:quantity|qty)`)},
	{"rate-amount", regexp.MustCompile(`(?i)(?:rate|price|amount)`)},
	{"classification-code", regexp.MustCompile(`(?i)(?:hsn|sac)`)},
	{"tax-component", regexp.MustCompile(`(?i)(?:cgst|sgst|igst)`)},
	{"taxable-amount", regexp.MustCompile(`(?i)(?:taxable|tax)\s*(?:amount|value)`)},
	{"line-item", regexp.MustCompile(`(?i)(?:description|particulars|item)`)},
}

// matchesLabel reports whether s contains any of the fixed domain label
// patterns.
func matchesLabel(s string) bool {
	for _, m := range labelMatchers {
		if m.re.MatchString(s) {
			return true
		}
	}
	return false
}

// ExtractKeyValuePairs derives label/value pairs from grouped lines. Keys
// are lowercased and trimmed, unique per page; a later match overwrites an
// earlier one sharing the same key. Internal failures degrade to an empty
// map.
func ExtractKeyValuePairs(lines []Line, cfg Config) (pairs map[string]string) {
	pairs = map[string]string{}
	defer func() {
		if r := recover(); r != nil {
			slog.Default().Warn("key-value extraction failed",
				"stage", "layout", "panic", r)
			pairs = map[string]string{}
		}
	}()

	for _, line := range lines {
		if len(line.Tokens) < 2 {
			continue
		}
		text := line.Text()

		if strings.Contains(text, ":") {
			key, value, _ := strings.Cut(text, ":")
			key = strings.ToLower(strings.TrimSpace(key))
			value = strings.TrimSpace(value)

			if matchesLabel(key) {
				pairs[key] = value
				continue
			}
			keyLen := utf8.RuneCountInString(key)
			valueLen := utf8.RuneCountInString(value)
			if keyLen > cfg.MinKeyLen && keyLen < cfg.MaxKeyLen &&
				valueLen > 0 && valueLen < cfg.MaxValueLen {
				pairs[key] = value
			}
			continue
		}

		// No colon: look for a label token closely followed by a value
		// token.
		for i := 0; i < len(line.Tokens)-1; i++ {
			tok := line.Tokens[i]
			next := line.Tokens[i+1]
			key := strings.ToLower(tok.Text)
			if !matchesLabel(key) {
				continue
			}
			if tok.Box.HGapTo(next.Box) < cfg.AdjacencyGap {
				pairs[key] = next.Text
			}
		}
	}
	return pairs
}
