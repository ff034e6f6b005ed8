package layout

// Config holds layout reconstruction parameters.
type Config struct {
	// VerticalTolerance is the maximum difference, in raster units,
	// between a token's top and the line's first token's top for the
	// token to join the line.
	VerticalTolerance int

	// AdjacencyGap is the maximum horizontal gap, in raster units,
	// between a label token and the following token for the two to form
	// a key-value pair in lines without a colon.
	AdjacencyGap int

	// MinKeyLen and MaxKeyLen bound plausible keys for colon-separated
	// pairs that match no domain pattern (exclusive bounds).
	MinKeyLen int
	MaxKeyLen int

	// MaxValueLen bounds plausible values (exclusive).
	MaxValueLen int

	// MinRowTokens is the minimum token count for a line to be a table
	// row candidate.
	MinRowTokens int

	// MinRows is the minimum number of qualifying rows for a table to be
	// reported at all; below this the table is empty.
	MinRows int

	// MaxRows caps the number of rows returned.
	MaxRows int
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		VerticalTolerance: 10,
		AdjacencyGap:      100,
		MinKeyLen:         2,
		MaxKeyLen:         50,
		MaxValueLen:       200,
		MinRowTokens:      3,
		MinRows:           2,
		MaxRows:           50,
	}
}
