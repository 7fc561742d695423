package deferred

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/koscakluka/turngate-core/core/llms"
	"github.com/koscakluka/turngate-core/core/turndetection"
)

type scriptedGeneralLLM struct {
	answer  func(prompt string) string
	err     error
	prompts []string
}

func (l *scriptedGeneralLLM) Prompt(_ context.Context, prompt string, _ ...llms.PromptOption) (*llms.Response, error) {
	l.prompts = append(l.prompts, prompt)
	if l.err != nil {
		return nil, l.err
	}
	return &llms.Response{Content: l.answer(prompt)}, nil
}

type scriptedStructuredLLM struct {
	answer string
	err    error
}

func (l *scriptedStructuredLLM) PromptWithStructure(_ context.Context, _ string, outputSchema any, _ ...llms.PromptOption) error {
	if l.err != nil {
		return l.err
	}
	if resp, ok := outputSchema.(*classification); ok {
		resp.Answer = l.answer
	}
	return nil
}

func TestEvaluateIncompleteFragmentThenCompleteUtterance(t *testing.T) {
	llm := &scriptedGeneralLLM{answer: func(prompt string) string {
		if strings.Contains(prompt, "book a flight to Paris.") {
			return "yes"
		}
		return "no"
	}}
	classifier, err := NewClassifier(llm)
	if err != nil {
		t.Fatalf("failed to create classifier: %v", err)
	}

	verdict, err := classifier.Evaluate(context.Background(), "I want to")
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	if verdict != turndetection.VerdictIncomplete {
		t.Fatalf("expected incomplete verdict for fragment, got %q", verdict)
	}

	verdict, err = classifier.Evaluate(context.Background(), "I want to book a flight to Paris.")
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	if verdict != turndetection.VerdictComplete {
		t.Fatalf("expected complete verdict for full utterance, got %q", verdict)
	}
}

func TestEvaluateTreatsMalformedAnswerAsIncomplete(t *testing.T) {
	for _, answer := range []string{"maybe", "yes, the user is done talking", "", "Sure!"} {
		llm := &scriptedStructuredLLM{answer: answer}
		classifier, err := NewClassifier(llm)
		if err != nil {
			t.Fatalf("failed to create classifier: %v", err)
		}

		verdict, err := classifier.Evaluate(context.Background(), "hello there")
		if err != nil {
			t.Fatalf("unexpected evaluation error for answer %q: %v", answer, err)
		}
		if verdict != turndetection.VerdictIncomplete {
			t.Fatalf("expected malformed answer %q to yield incomplete, got %q", answer, verdict)
		}
	}
}

func TestEvaluateNormalizesAffirmativeAnswer(t *testing.T) {
	for _, answer := range []string{"yes", "Yes.", " YES ", "yes!"} {
		llm := &scriptedStructuredLLM{answer: answer}
		classifier, err := NewClassifier(llm)
		if err != nil {
			t.Fatalf("failed to create classifier: %v", err)
		}

		verdict, err := classifier.Evaluate(context.Background(), "book a flight to Paris.")
		if err != nil {
			t.Fatalf("unexpected evaluation error for answer %q: %v", answer, err)
		}
		if verdict != turndetection.VerdictComplete {
			t.Fatalf("expected answer %q to yield complete, got %q", answer, verdict)
		}
	}
}

func TestEvaluateSurfacesClassifierErrorAsIncomplete(t *testing.T) {
	llm := &scriptedStructuredLLM{err: fmt.Errorf("upstream unavailable")}
	classifier, err := NewClassifier(llm)
	if err != nil {
		t.Fatalf("failed to create classifier: %v", err)
	}

	verdict, err := classifier.Evaluate(context.Background(), "hello")
	if err == nil {
		t.Fatalf("expected classifier error to be surfaced")
	}
	if verdict != turndetection.VerdictIncomplete {
		t.Fatalf("expected incomplete verdict on error, got %q", verdict)
	}
}

func TestNewClassifierRejectsUnsupportedLLM(t *testing.T) {
	if _, err := NewClassifier(struct{}{}); err == nil {
		t.Fatalf("expected an error for an llm with no prompting capability")
	}
}
