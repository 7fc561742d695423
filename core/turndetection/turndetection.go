// Package turndetection defines the shared turn-completion contract used by
// both detection strategies: continuous model-driven detection and deferred
// classifier-backed evaluation.
package turndetection

import "context"

// Verdict is the outcome of a single turn-completion evaluation. It is a
// pure function of the transcript supplied to the evaluator.
type Verdict string

const (
	VerdictIncomplete Verdict = "incomplete"
	VerdictComplete   Verdict = "complete"
)

// Evaluator decides whether a pending transcript forms a complete turn.
//
// Evaluate must be safe to call while further fragments are being appended
// to the pending transcript; it only ever sees the snapshot it was handed.
// An error implies the verdict could not be produced and callers must treat
// the turn as incomplete.
type Evaluator interface {
	Evaluate(ctx context.Context, transcript string) (Verdict, error)
}
