// Package turntaking arbitrates speaking rights between an automated agent
// and a human speaker in a live full-duplex voice session. The controller
// is a library component driven entirely by events: speech-activity
// boundaries, finalized transcript fragments, and playback status go in;
// state transitions, backoff windows, and committed turns come out.
package turntaking

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/koscakluka/turngate-core/core/turndetection"
	"github.com/koscakluka/turngate-core/core/turndetection/continuous"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TurnController is the single authority over the session's agent state.
// All inbound notifications are posted to one ordered queue and drained by
// one goroutine; no state is ever mutated from two threads.
type TurnController struct {
	stateMu sync.RWMutex
	state   AgentState

	pending *pendingTranscript
	window  *backoffWindow
	// queuedSpeak holds a response whose playback is gated by an active
	// backoff window.
	queuedSpeak func()
	// inFlightRevision is the pending-transcript revision currently being
	// evaluated by the deferred classifier; zero means none.
	inFlightRevision uint64

	backoffSeconds        float64
	restartPolicy         RestartPolicy
	detectionMode         DetectionMode
	perFragmentEvaluation bool
	evaluator             turndetection.Evaluator
	scheduler             BackoffScheduler

	speechToText speechToText

	runtime      *controllerRuntime
	emitEvent    eventEmitter
	startOptions StartOptions
	baseContext  context.Context
	closeOnce    sync.Once
}

// NewTurnController validates the configuration and creates a controller.
// Configuration errors are rejected here, before the session starts, never
// silently clamped.
func NewTurnController(opts ...ControllerOption) (*TurnController, error) {
	c := &TurnController{
		state:                 StateIdle,
		pending:               newPendingTranscript(),
		restartPolicy:         RestartPolicyRestart,
		detectionMode:         DetectionModeContinuous,
		perFragmentEvaluation: true,
		scheduler:             timerScheduler{},
		runtime:               newControllerRuntime(),
		emitEvent:             noopEventEmitter,
		baseContext:           context.Background(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.backoffSeconds < 0 {
		return nil, fmt.Errorf("backoff seconds must not be negative, got %f", c.backoffSeconds)
	}
	switch c.restartPolicy {
	case RestartPolicyRestart, RestartPolicyIgnore:
	default:
		return nil, fmt.Errorf("unknown backoff restart policy: %q", c.restartPolicy)
	}
	switch c.detectionMode {
	case DetectionModeContinuous:
		if c.evaluator == nil {
			c.evaluator = continuous.NewDetector(continuous.NewLexicalModel())
		}
	case DetectionModeDeferred:
		if c.evaluator == nil {
			return nil, fmt.Errorf("deferred turn detection requires an evaluator")
		}
	default:
		return nil, fmt.Errorf("unknown turn detection mode: %q", c.detectionMode)
	}

	return c, nil
}

// Start begins draining the inbound queue and, when a speech-to-text client
// is bound, starts its transcription session.
//
// Contract: call Start at most once per controller instance. Repeated or
// concurrent calls are unsupported and may race while callbacks are being
// reconfigured.
func (c *TurnController) Start(ctx context.Context, opts ...StartOption) error {
	if c.runtime.isClosed() {
		log.Println("Warning: turn controller already closed, skipping Start")
		return nil
	}

	c.startOptions = StartOptions{}
	for _, opt := range opts {
		opt(&c.startOptions)
	}

	c.baseContext = ctx
	c.emitEvent = newCallbackEventEmitter(c.startOptions)

	if started := c.runtime.start(func(item queueItem) { c.processInboundEvent(item.event) }); started {
		go func() {
			<-ctx.Done()
			c.Close()
		}()
	}

	if err := c.speechToText.start(ctx, speechToTextCallbacks{
		onSpeechStarted: func() { c.OnUserSpeechStarted() },
		onSpeechEnded:   func() { c.OnUserSpeechEnded() },
		onInterimTranscription: func(transcript string) {
			c.OnTranscriptFragment(transcript, false)
		},
		onTranscription: func(transcript string) {
			c.OnTranscriptFragment(transcript, true)
		},
	}); err != nil {
		recordedErr := fmt.Errorf("failed to initialize speech-to-text: %w", err)
		span := trace.SpanFromContext(ctx)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return recordedErr
	}

	return nil
}

func (c *TurnController) Close() {
	c.closeOnce.Do(func() {
		c.runtime.end()

		if err := c.speechToText.Close(c.baseContext); err != nil {
			recordedErr := fmt.Errorf("failed to close speech-to-text client: %w", err)
			span := trace.SpanFromContext(c.baseContext)
			span.RecordError(recordedErr)
			span.SetStatus(codes.Error, recordedErr.Error())
		}

		c.runtime.waitUntilEnded()

		// Safe to touch only once the drain goroutine is gone.
		if c.window != nil {
			c.window.cancelTimer()
		}
	})
}

// State returns the current agent state.
func (c *TurnController) State() AgentState {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.state
}

// PendingTranscript returns a point-in-time snapshot of the buffered,
// not-yet-committed user transcript.
func (c *TurnController) PendingTranscript() string {
	snapshot, _ := c.pending.Snapshot()
	return snapshot
}

// OnUserSpeechStarted reports a voice-activity boundary: the user began
// speaking. Safe to call with duplicates; anomalous deliveries are ignored
// and logged.
func (c *TurnController) OnUserSpeechStarted() { c.runtime.enqueue(userSpeechStarted{}) }

// OnUserSpeechEnded reports that user speech activity stopped.
func (c *TurnController) OnUserSpeechEnded() { c.runtime.enqueue(userSpeechEnded{}) }

// OnTranscriptFragment feeds an upstream speech-to-text fragment. Only
// fragments with isFinal set are appended to the pending transcript;
// interim fragments are forwarded to observers unchanged.
func (c *TurnController) OnTranscriptFragment(text string, isFinal bool) {
	c.runtime.enqueue(transcriptFragment{text: text, isFinal: isFinal})
}

// OnAgentSpeechStarted reports that the host began playback of a response.
func (c *TurnController) OnAgentSpeechStarted() { c.runtime.enqueue(agentSpeechStarted{}) }

// OnAgentSpeechEnded reports that playback finished.
func (c *TurnController) OnAgentSpeechEnded() { c.runtime.enqueue(agentSpeechEnded{}) }

// EnqueueAgentResponse hands the controller a generated response, as the
// callback that starts its playback. The callback runs on the drain
// goroutine and must not block. It runs immediately when the agent may
// speak, or once an active backoff window expires.
func (c *TurnController) EnqueueAgentResponse(speak func()) {
	if speak == nil {
		return
	}
	c.runtime.enqueue(agentResponseQueued{speak: speak})
}

// CommitUserTurn forces the pending transcript to be committed regardless
// of any evaluator verdict. Only meaningful in deferred detection mode.
func (c *TurnController) CommitUserTurn() { c.runtime.enqueue(commitRequested{}) }

// DiscardPendingTurn clears the pending transcript without committing.
func (c *TurnController) DiscardPendingTurn() { c.runtime.enqueue(discardRequested{}) }

// SendAudio forwards raw audio to the bound speech-to-text client.
func (c *TurnController) SendAudio(audio []byte) error { return c.speechToText.SendAudio(audio) }
