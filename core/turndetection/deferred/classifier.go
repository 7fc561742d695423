// Package deferred implements classifier-backed turn evaluation: once per
// finalized fragment (or on explicit host request) the full pending
// transcript is sent to a binary yes/no classifier. The call is asynchronous
// from the controller's point of view and may be outrun by new fragments;
// the controller re-checks freshness before acting on the verdict.
package deferred

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/koscakluka/turngate-core/core/llms"
	"github.com/koscakluka/turngate-core/core/turndetection"
	"go.opentelemetry.io/otel/attribute"
)

//go:embed classifierInstr.tmpl
var turnClassifierSystemPrompt string

type LLMWithGeneralPrompt interface {
	Prompt(ctx context.Context, prompt string, opts ...llms.PromptOption) (*llms.Response, error)
}

type LLMWithStructuredPrompt interface {
	PromptWithStructure(ctx context.Context, prompt string, outputSchema any, opts ...llms.PromptOption) error
}

type LLM any

type classification struct {
	Answer string `json:"answer" jsonschema:"title=Answer,description=Whether the user has finished speaking,enum=yes,enum=no"`
}

// Classifier evaluates the pending transcript through an LLM. Anything
// other than an unambiguous affirmative is an incomplete verdict.
type Classifier struct {
	llm     LLM
	timeout time.Duration
}

type ClassifierOption func(*Classifier)

// WithTimeout bounds a single classifier call. Timed-out calls yield an
// incomplete verdict and an error for the host to surface.
func WithTimeout(timeout time.Duration) ClassifierOption {
	return func(c *Classifier) { c.timeout = timeout }
}

// NewClassifier creates a classifier over llm, which must implement
// [LLMWithStructuredPrompt] or [LLMWithGeneralPrompt].
func NewClassifier(llm LLM, opts ...ClassifierOption) (*Classifier, error) {
	switch llm.(type) {
	case LLMWithStructuredPrompt, LLMWithGeneralPrompt:
	default:
		return nil, fmt.Errorf("llm supports neither structured nor general prompting")
	}

	classifier := &Classifier{llm: llm, timeout: 5 * time.Second}
	for _, opt := range opts {
		opt(classifier)
	}
	return classifier, nil
}

func (c *Classifier) Evaluate(ctx context.Context, transcript string) (turndetection.Verdict, error) {
	ctx, span := tracer.Start(ctx, "classify turn completion")
	defer span.End()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	prompt := fmt.Sprintf("Transcript: %q\nIs the turn complete?", transcript)

	var answer string
	switch llm := c.llm.(type) {
	case LLMWithStructuredPrompt:
		resp := classification{}
		if err := llm.PromptWithStructure(ctx, prompt,
			&resp,
			llms.WithSystemPrompt(turnClassifierSystemPrompt),
		); err != nil {
			// TODO: Retry?
			return turndetection.VerdictIncomplete, fmt.Errorf("failed to prompt turn classifier: %w", err)
		}
		answer = resp.Answer

	case LLMWithGeneralPrompt:
		response, err := llm.Prompt(ctx, prompt,
			llms.WithSystemPrompt(turnClassifierSystemPrompt),
		)
		if err != nil {
			return turndetection.VerdictIncomplete, fmt.Errorf("failed to prompt turn classifier: %w", err)
		}
		answer = response.Content

	default:
		return turndetection.VerdictIncomplete, fmt.Errorf("unknown llm type")
	}

	span.SetAttributes(attribute.String("classifier.answer", answer))
	return toVerdict(answer), nil
}

// toVerdict normalizes the classifier output. Malformed output is not an
// error: the safe reading of anything but "yes" is that the user is still
// speaking.
func toVerdict(answer string) turndetection.Verdict {
	answer = strings.ToLower(strings.TrimSpace(answer))
	answer = strings.Trim(answer, ".!\"'")
	if answer == "yes" {
		return turndetection.VerdictComplete
	}
	return turndetection.VerdictIncomplete
}
