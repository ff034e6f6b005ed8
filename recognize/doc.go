// Package recognize runs optical character recognition over preprocessed
// page rasters.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
//
// The gosseract binding is only compiled when the "ocr" build tag is set:
//
//	go build -tags ocr
//
// Without the tag, NewEngine returns a stub whose calls fail with
// ErrOCRNotEnabled, which keeps the rest of the module buildable and
// testable on systems without Tesseract.
//
// # Profile sweep
//
// The [Recognizer] tries a fixed, ordered list of segmentation profiles
// under a global time budget, keeping the result with the strictly highest
// mean token confidence that produced non-empty text. Each attempt runs on
// an abandonable worker bounded by a per-attempt budget; an expired worker
// is left to finish on its own and its result is discarded. If no profile
// produces usable text, a single unstructured pass runs as a fallback, and
// if that also fails the plain text degrades to a sentinel string. A
// separate structured pass always extracts positioned tokens independently
// of the plain-text outcome.
package recognize
