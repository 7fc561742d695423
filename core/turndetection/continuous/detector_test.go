package continuous

import (
	"context"
	"fmt"
	"testing"

	"github.com/koscakluka/turngate-core/core/turndetection"
)

type scriptedModel struct {
	probability float64
	threshold   float64
	err         error
}

func (m *scriptedModel) PredictEndOfTurn(context.Context, string) (float64, error) {
	return m.probability, m.err
}

func (m *scriptedModel) UnlikelyThreshold(string) (float64, error) {
	if m.threshold == 0 {
		return 0, fmt.Errorf("unsupported language")
	}
	return m.threshold, nil
}

func TestEvaluateUsesModelThreshold(t *testing.T) {
	detector := NewDetector(&scriptedModel{probability: 0.8, threshold: 0.7})

	verdict, err := detector.Evaluate(context.Background(), "see you tomorrow.")
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	if verdict != turndetection.VerdictComplete {
		t.Fatalf("expected complete verdict above threshold, got %q", verdict)
	}

	detector = NewDetector(&scriptedModel{probability: 0.6, threshold: 0.7})
	verdict, err = detector.Evaluate(context.Background(), "and then I")
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	if verdict != turndetection.VerdictIncomplete {
		t.Fatalf("expected incomplete verdict below threshold, got %q", verdict)
	}
}

func TestEvaluateThresholdOverrideWins(t *testing.T) {
	detector := NewDetector(&scriptedModel{probability: 0.6, threshold: 0.7}, WithThreshold(0.5))

	verdict, err := detector.Evaluate(context.Background(), "that is all.")
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	if verdict != turndetection.VerdictComplete {
		t.Fatalf("expected override threshold to produce complete verdict, got %q", verdict)
	}
}

func TestEvaluateSurfacesModelError(t *testing.T) {
	detector := NewDetector(&scriptedModel{err: fmt.Errorf("model not loaded")})

	verdict, err := detector.Evaluate(context.Background(), "hello")
	if err == nil {
		t.Fatalf("expected model error to be surfaced")
	}
	if verdict != turndetection.VerdictIncomplete {
		t.Fatalf("expected incomplete verdict on model error, got %q", verdict)
	}
}

func TestPrewarmLoadsOnceAndInjectsByReference(t *testing.T) {
	loads := 0
	prewarmed, err := Prewarm(func() (Model, error) {
		loads++
		return &scriptedModel{probability: 0.9, threshold: 0.7}, nil
	})
	if err != nil {
		t.Fatalf("failed to prewarm: %v", err)
	}
	defer prewarmed.Close()

	first := prewarmed.Detector()
	second := prewarmed.Detector()
	if loads != 1 {
		t.Fatalf("expected a single model load, got %d", loads)
	}
	if first.model != second.model {
		t.Fatalf("expected both detectors to share the prewarmed model")
	}
}

func TestLexicalModelScoresFragmentsLow(t *testing.T) {
	model := NewLexicalModel()
	detector := NewDetector(model)

	verdict, err := detector.Evaluate(context.Background(), "I want to")
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	if verdict != turndetection.VerdictIncomplete {
		t.Fatalf("expected dangling fragment to be incomplete, got %q", verdict)
	}

	verdict, err = detector.Evaluate(context.Background(), "I want to book a flight to Paris.")
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	if verdict != turndetection.VerdictComplete {
		t.Fatalf("expected terminated sentence to be complete, got %q", verdict)
	}
}
