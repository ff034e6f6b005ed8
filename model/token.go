package model

// Token is a single recognized word with its confidence score, position,
// and the structural indices assigned by the recognition engine.
// Tokens are immutable once produced by the recognizer; the only field set
// afterward is Page, which the pipeline stamps when it knows which page the
// token came from.
type Token struct {
	// Text is the recognized word with surrounding whitespace trimmed.
	Text string `json:"text"`

	// Confidence is the engine-reported certainty, 0-100.
	Confidence float64 `json:"confidence"`

	// Box is the word's bounding box in raster coordinates.
	Box BoundingBox `json:"boundingBox"`

	// Block, Paragraph, Line and Word are the engine's structural indices:
	// the word is word number Word of line Line of paragraph Paragraph of
	// block Block on its page.
	Block     int `json:"block"`
	Paragraph int `json:"paragraph"`
	Line      int `json:"line"`
	Word      int `json:"word"`

	// Page is the 1-based page number the token was recognized on.
	Page int `json:"pageNumber"`
}

// MeanConfidence returns the mean confidence over tokens with a strictly
// positive confidence, and the number of tokens counted. Zero-confidence
// tokens are engine artifacts (separators, layout markers) and are excluded.
func MeanConfidence(tokens []Token) (float64, int) {
	var sum float64
	var n int
	for _, t := range tokens {
		if t.Confidence > 0 {
			sum += t.Confidence
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}
