package recognize

import (
	"errors"

	"github.com/tsawler/scandoc/model"
)

// ErrOCRNotEnabled is returned by the stub engine used when the module is
// built without the "ocr" build tag.
var ErrOCRNotEnabled = errors.New("ocr support not enabled: rebuild with -tags ocr (requires Tesseract)")

// Profile is a named recognition configuration. Mode is the engine's page
// segmentation mode; profiles are tried in a fixed order and the order is
// part of the selection contract (ties go to the earliest profile).
type Profile struct {
	Name string
	Mode int
}

// Page segmentation modes, numbered as Tesseract numbers them.
const (
	ModeAuto          = 3  // fully automatic segmentation
	ModeSingleColumn  = 4  // single column of variable-height text
	ModeSingleBlock   = 6  // single uniform block of text
	ModeSparseText    = 11 // find as much sparse text as possible
	ModeSparseTextOSD = 12 // sparse text with orientation detection
)

// GeneralPurpose is the profile used for the structured token pass.
var GeneralPurpose = Profile{Name: "general-purpose", Mode: ModeSingleBlock}

// FallbackProfile is the unstructured last-resort pass.
var FallbackProfile = Profile{Name: "fallback", Mode: ModeAuto}

// Profiles returns the fixed, ordered profile list for the plain-text
// sweep. The single-block entry repeats the general-purpose segmentation
// mode deliberately: selection is order-sensitive and a later identical
// attempt can still lose a tie to the earlier one.
func Profiles() []Profile {
	return []Profile{
		{Name: "general-purpose", Mode: ModeSingleBlock},
		{Name: "uniform-block", Mode: ModeSingleColumn},
		{Name: "single-block", Mode: ModeSingleBlock},
		{Name: "sparse-text", Mode: ModeSparseText},
		{Name: "sparse-text-osd", Mode: ModeSparseTextOSD},
	}
}

// EngineConfig holds settings applied to each engine invocation.
type EngineConfig struct {
	// TessdataPrefix overrides the directory Tesseract loads trained data
	// from. Empty uses the system default.
	TessdataPrefix string

	// Languages lists trained-data language codes (e.g. "eng"). Empty
	// uses the engine default.
	Languages []string
}

// Engine is the recognition provider contract. Implementations must be
// safe for concurrent calls: the recognizer may start a new attempt while
// an abandoned one is still running.
type Engine interface {
	// Name identifies the engine for logging.
	Name() string

	// Words recognizes the image under the given profile and returns
	// word-level tokens with confidence, bounding box, and structural
	// indices. The Page field of returned tokens is left zero.
	Words(img []byte, p Profile) ([]model.Token, error)

	// Text performs a single unstructured recognition pass and returns
	// the raw page text.
	Text(img []byte) (string, error)
}
