// Package continuous implements standing end-of-turn detection: a
// persistent model scores the pending transcript on every finalized
// fragment and a threshold turns the score into a verdict. No external
// call happens on the hot path.
package continuous

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/koscakluka/turngate-core/core/turndetection"
)

// Model is a persistent end-of-turn scorer. Implementations are expected to
// be loaded once per process (see [Prewarm]) and shared across sessions.
type Model interface {
	// PredictEndOfTurn returns the probability (0-1) that the user has
	// finished speaking given the pending transcript so far.
	PredictEndOfTurn(ctx context.Context, transcript string) (float64, error)

	// UnlikelyThreshold returns the tuned decision threshold for the given
	// language, or an error if the language is unsupported.
	UnlikelyThreshold(language string) (float64, error)
}

// Detector applies a model's threshold to its end-of-turn score.
type Detector struct {
	model     Model
	language  string
	threshold *float64
}

type DetectorOption func(*Detector)

// WithLanguage sets the language hint used to resolve the model threshold.
func WithLanguage(language string) DetectorOption {
	return func(d *Detector) { d.language = language }
}

// WithThreshold overrides the model's tuned threshold.
func WithThreshold(threshold float64) DetectorOption {
	return func(d *Detector) { d.threshold = &threshold }
}

func NewDetector(model Model, opts ...DetectorOption) *Detector {
	detector := &Detector{model: model, language: "en"}
	for _, opt := range opts {
		opt(detector)
	}
	return detector
}

func (d *Detector) Evaluate(ctx context.Context, transcript string) (turndetection.Verdict, error) {
	threshold := 0.5
	if d.threshold != nil {
		threshold = *d.threshold
	} else if t, err := d.model.UnlikelyThreshold(d.language); err == nil {
		threshold = t
	}

	probability, err := d.model.PredictEndOfTurn(ctx, transcript)
	if err != nil {
		return turndetection.VerdictIncomplete, fmt.Errorf("failed to predict end of turn: %w", err)
	}

	if probability >= threshold {
		return turndetection.VerdictComplete, nil
	}
	return turndetection.VerdictIncomplete, nil
}

// Prewarmed holds a model loaded once at process startup. It is injected by
// reference into each session and torn down at process exit; sessions never
// load models themselves.
type Prewarmed struct {
	model     Model
	closeOnce sync.Once
}

// Prewarm loads the model eagerly so the first session does not pay the
// load cost.
func Prewarm(load func() (Model, error)) (*Prewarmed, error) {
	model, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to prewarm end-of-turn model: %w", err)
	}
	return &Prewarmed{model: model}, nil
}

// Detector creates a session detector backed by the prewarmed model.
func (p *Prewarmed) Detector(opts ...DetectorOption) *Detector {
	return NewDetector(p.model, opts...)
}

func (p *Prewarmed) Close() {
	p.closeOnce.Do(func() {
		switch m := p.model.(type) {
		case interface{ Close() error }:
			m.Close()
		case interface{ Close() }:
			m.Close()
		}
	})
}

// LexicalModel is a dependency-free fallback model. It scores transcripts
// on terminal punctuation and utterance length, which is enough for demos
// and tests; production sessions should prewarm a real inference model.
type LexicalModel struct{}

func NewLexicalModel() *LexicalModel { return &LexicalModel{} }

func (m *LexicalModel) UnlikelyThreshold(language string) (float64, error) {
	if !strings.HasPrefix(language, "en") {
		return 0, fmt.Errorf("unsupported language: %s", language)
	}
	return 0.6, nil
}

func (m *LexicalModel) PredictEndOfTurn(_ context.Context, transcript string) (float64, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return 0, nil
	}

	score := 0.3
	if strings.ContainsAny(transcript[len(transcript)-1:], ".!?") {
		score += 0.5
	}
	if len(strings.Fields(transcript)) >= 4 {
		score += 0.1
	}

	lowered := strings.ToLower(transcript)
	for _, trailing := range []string{"and", "but", "or", "to", "the", "a", "so", "because", "with", "of"} {
		if strings.HasSuffix(lowered, " "+trailing) || lowered == trailing {
			return 0.1, nil
		}
	}

	return score, nil
}
