package recognize

import (
	"log/slog"
	"strings"
	"time"

	"github.com/tsawler/scandoc/model"
)

// Sentinel plain-text values produced when every recognition path is
// exhausted. Downstream consumers match on these strings.
const (
	TimedOutText = "OCR processing timed out - unable to extract text"
	FailedText   = "OCR processing failed"
)

// Degradation reasons recorded on a Result. An empty reason means a
// profile won normally.
const (
	DegradedFallback        = "fallback"
	DegradedFallbackTimeout = "fallback-timeout"
	DegradedFallbackFailure = "fallback-failure"
)

// Config holds recognizer budgets and filters. The zero value is usable;
// empty fields are filled with defaults by NewRecognizer.
type Config struct {
	// GlobalBudget bounds the whole profile sweep. It is checked before
	// each attempt, so a running attempt may overshoot it by at most one
	// AttemptBudget. Default 180s.
	GlobalBudget time.Duration

	// AttemptBudget bounds a single profile attempt. Default 60s.
	AttemptBudget time.Duration

	// FallbackBudget bounds the unstructured last-resort pass. Default 30s.
	FallbackBudget time.Duration

	// StructuredBudget bounds the positioned-token pass. Default 60s.
	StructuredBudget time.Duration

	// MinTokenConfidence filters the structured pass: tokens at or below
	// this confidence are dropped. Default 30.
	MinTokenConfidence float64

	// Engine settings, applied when the recognizer constructs its own
	// engine.
	Engine EngineConfig

	// Logger receives diagnostic records. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default recognizer configuration.
func DefaultConfig() Config {
	return Config{
		GlobalBudget:       180 * time.Second,
		AttemptBudget:      60 * time.Second,
		FallbackBudget:     30 * time.Second,
		StructuredBudget:   60 * time.Second,
		MinTokenConfidence: 30,
	}
}

// Result is the recognizer's output for one page raster.
type Result struct {
	// PlainText is the winning profile's text, the fallback text, or a
	// sentinel string. Trimmed.
	PlainText string

	// Tokens are positioned words from the structured pass, filtered to
	// confidence above the configured minimum. Empty when the structured
	// pass timed out or failed; that is degradation, not pipeline failure.
	Tokens []model.Token

	// Profile names the winning profile, or is empty when the sweep fell
	// through to the fallback.
	Profile string

	// MeanConfidence is the winning profile's mean token confidence.
	MeanConfidence float64

	// Degraded names the fallback taken, empty for a normal result. It
	// lets callers tell "recognized nothing" from "recognition degraded".
	Degraded string
}

// Recognizer coordinates the profile sweep, fallback, and structured pass
// over a single Engine. It is safe for concurrent use.
type Recognizer struct {
	cfg    Config
	engine Engine
	log    *slog.Logger
}

// NewRecognizer creates a recognizer around the given engine. A nil engine
// gets the package default (Tesseract when built with -tags ocr, otherwise
// the stub).
func NewRecognizer(engine Engine, cfg Config) *Recognizer {
	def := DefaultConfig()
	if cfg.GlobalBudget <= 0 {
		cfg.GlobalBudget = def.GlobalBudget
	}
	if cfg.AttemptBudget <= 0 {
		cfg.AttemptBudget = def.AttemptBudget
	}
	if cfg.FallbackBudget <= 0 {
		cfg.FallbackBudget = def.FallbackBudget
	}
	if cfg.StructuredBudget <= 0 {
		cfg.StructuredBudget = def.StructuredBudget
	}
	if cfg.MinTokenConfidence <= 0 {
		cfg.MinTokenConfidence = def.MinTokenConfidence
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if engine == nil {
		engine = NewEngine(cfg.Engine)
	}
	return &Recognizer{cfg: cfg, engine: engine, log: cfg.Logger}
}

// Extract runs the full recognition flow on one encoded page raster: the
// plain-text profile sweep with fallback, then the independent structured
// token pass. It never returns an error; exhausted recognition degrades to
// sentinel text and empty tokens.
func (r *Recognizer) Extract(img []byte, page int) Result {
	res := r.sweep(img, page)
	res.Tokens = r.structuredPass(img, page)
	return res
}

// sweep tries each profile in order within the global budget and keeps the
// strictly best non-empty result, falling back to an unstructured pass if
// nothing usable emerges.
func (r *Recognizer) sweep(img []byte, page int) Result {
	deadline := time.Now().Add(r.cfg.GlobalBudget)

	var best Result
	for _, p := range Profiles() {
		if !time.Now().Before(deadline) {
			r.log.Warn("global recognition budget exhausted",
				"stage", "recognize", "page", page, "profile", p.Name)
			break
		}

		tokens, err, timedOut := runDetached(r.cfg.AttemptBudget, func() ([]model.Token, error) {
			return r.engine.Words(img, p)
		})
		if timedOut {
			r.log.Warn("profile attempt timed out",
				"stage", "recognize", "page", page, "profile", p.Name,
				"budget", r.cfg.AttemptBudget)
			continue
		}
		if err != nil {
			r.log.Warn("profile attempt failed",
				"stage", "recognize", "page", page, "profile", p.Name, "error", err)
			continue
		}

		mean, counted := model.MeanConfidence(tokens)
		if counted == 0 {
			continue
		}
		text := joinTokenText(tokens)
		r.log.Debug("profile attempt complete",
			"stage", "recognize", "page", page, "profile", p.Name,
			"mean_confidence", mean, "tokens", counted)

		// Strictly greater, so ties resolve to the earliest profile.
		if mean > best.MeanConfidence && text != "" {
			best = Result{PlainText: text, Profile: p.Name, MeanConfidence: mean}
		}
	}

	if strings.TrimSpace(best.PlainText) != "" {
		best.PlainText = strings.TrimSpace(best.PlainText)
		return best
	}
	return r.fallback(img, page)
}

// fallback runs the single unstructured pass used when no profile produced
// usable text.
func (r *Recognizer) fallback(img []byte, page int) Result {
	r.log.Info("falling back to unstructured recognition",
		"stage", "recognize", "page", page)

	text, err, timedOut := runDetached(r.cfg.FallbackBudget, func() (string, error) {
		return r.engine.Text(img)
	})
	switch {
	case timedOut:
		r.log.Warn("fallback recognition timed out",
			"stage", "recognize", "page", page, "budget", r.cfg.FallbackBudget)
		return Result{PlainText: TimedOutText, Degraded: DegradedFallbackTimeout}
	case err != nil:
		r.log.Error("fallback recognition failed",
			"stage", "recognize", "page", page, "error", err)
		return Result{PlainText: FailedText, Degraded: DegradedFallbackFailure}
	default:
		return Result{PlainText: strings.TrimSpace(text), Degraded: DegradedFallback}
	}
}

// structuredPass extracts positioned tokens with the general-purpose
// profile, independent of the plain-text outcome. Timeouts and errors
// degrade to an empty token list.
func (r *Recognizer) structuredPass(img []byte, page int) []model.Token {
	tokens, err, timedOut := runDetached(r.cfg.StructuredBudget, func() ([]model.Token, error) {
		return r.engine.Words(img, GeneralPurpose)
	})
	if timedOut {
		r.log.Warn("structured pass timed out",
			"stage", "recognize", "page", page, "budget", r.cfg.StructuredBudget)
		return []model.Token{}
	}
	if err != nil {
		r.log.Warn("structured pass failed",
			"stage", "recognize", "page", page, "error", err)
		return []model.Token{}
	}

	kept := make([]model.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Confidence > r.cfg.MinTokenConfidence {
			kept = append(kept, t)
		}
	}
	return kept
}

// joinTokenText assembles profile-attempt plain text from word tokens, one
// word per line, skipping empties.
func joinTokenText(tokens []model.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if s := strings.TrimSpace(t.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

type outcome[T any] struct {
	val T
	err error
}

// runDetached invokes fn on its own goroutine and waits at most budget for
// it to finish. On expiry the worker is abandoned: its eventual result is
// discarded and the goroutine is left to run to completion so it can
// release its own resources. An abandoned Tesseract attempt keeps
// consuming CPU until it finishes; the binding offers no cancellation.
func runDetached[T any](budget time.Duration, fn func() (T, error)) (val T, err error, timedOut bool) {
	ch := make(chan outcome[T], 1)
	go func() {
		v, e := fn()
		ch <- outcome[T]{val: v, err: e}
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case o := <-ch:
		return o.val, o.err, false
	case <-timer.C:
		var zero T
		return zero, nil, true
	}
}
