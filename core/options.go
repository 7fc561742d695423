package turntaking

import (
	"context"
	"time"

	"github.com/koscakluka/turngate-core/core/events"
	"github.com/koscakluka/turngate-core/core/speechtotext"
	"github.com/koscakluka/turngate-core/core/turndetection"
)

type ControllerOption func(*TurnController)

// WithBackoffSeconds sets the post-interruption silence window duration.
// Zero disables backoff entirely: interruptions take effect immediately and
// no backoff state is ever entered. Negative values are rejected by
// [NewTurnController].
func WithBackoffSeconds(seconds float64) ControllerOption {
	return func(c *TurnController) { c.backoffSeconds = seconds }
}

// WithBackoffRestartPolicy sets what an interruption arriving during an
// active window does to it. Unknown policies are rejected by
// [NewTurnController].
func WithBackoffRestartPolicy(policy RestartPolicy) ControllerOption {
	return func(c *TurnController) { c.restartPolicy = policy }
}

// WithTurnDetectionMode selects the turn-completion strategy. Deferred mode
// requires an evaluator.
func WithTurnDetectionMode(mode DetectionMode) ControllerOption {
	return func(c *TurnController) { c.detectionMode = mode }
}

// WithEvaluator sets the turn-completion evaluator consulted on finalized
// fragments. Continuous mode defaults to a lexical end-of-turn detector
// when unset.
func WithEvaluator(evaluator turndetection.Evaluator) ControllerOption {
	return func(c *TurnController) { c.evaluator = evaluator }
}

// WithPerFragmentEvaluation controls whether deferred mode evaluates after
// every finalized fragment (the default) or only when the host calls
// [TurnController.CommitUserTurn].
func WithPerFragmentEvaluation(enabled bool) ControllerOption {
	return func(c *TurnController) { c.perFragmentEvaluation = enabled }
}

type SpeechToText interface {
	Transcribe(ctx context.Context, opts ...speechtotext.TranscriptionOption) error
	SendAudio(audio []byte) error
}

// WithSpeechToTextClient binds a live transcription client. Its speech
// boundaries and transcript fragments are posted onto the controller's
// inbound queue when [TurnController.Start] runs.
func WithSpeechToTextClient(client SpeechToText) ControllerOption {
	return func(c *TurnController) { c.speechToText.set(client) }
}

// WithBackoffScheduler replaces the timer backing backoff expiry. Intended
// for tests; the default is [time.AfterFunc] based.
func WithBackoffScheduler(scheduler BackoffScheduler) ControllerOption {
	return func(c *TurnController) { c.scheduler = scheduler }
}

// CommittedTurn is a finalized user turn handed to response generation.
type CommittedTurn struct {
	ID          string
	Transcript  string
	CommittedAt time.Time
}

type StartOptions struct {
	onAgentStateChanged    func(events.AgentStateChanged)
	onBackoffStarted       func(events.BackoffStarted)
	onBackoffEnded         func(events.BackoffEnded)
	onUserSpeechStarted    func()
	onUserSpeechEnded      func()
	onAgentSpeechStarted   func()
	onAgentSpeechEnded     func()
	onUserInputTranscribed func(transcript string, isFinal bool)
	onTurnCommitted        func(turn CommittedTurn)
	onTurnIncomplete       func(pendingTranscript string)
	onPendingTurnDiscarded func(transcript string)
	onInterruption         func()
	onEvaluationError      func(err error)
}

type StartOption func(*StartOptions)

// WithAgentStateChangedCallback registers a callback for every state
// transition, delivered in transition order on the controller's drain
// goroutine before any other side effect of the transition.
func WithAgentStateChangedCallback(callback func(events.AgentStateChanged)) StartOption {
	return func(o *StartOptions) {
		o.onAgentStateChanged = callback
	}
}

func WithBackoffStartedCallback(callback func(events.BackoffStarted)) StartOption {
	return func(o *StartOptions) {
		o.onBackoffStarted = callback
	}
}

func WithBackoffEndedCallback(callback func(events.BackoffEnded)) StartOption {
	return func(o *StartOptions) {
		o.onBackoffEnded = callback
	}
}

// WithUserSpeechStartedCallback registers a callback for accepted
// user-speech boundaries. Duplicate deliveries the controller skips do not
// reach it.
func WithUserSpeechStartedCallback(callback func()) StartOption {
	return func(o *StartOptions) {
		o.onUserSpeechStarted = callback
	}
}

func WithUserSpeechEndedCallback(callback func()) StartOption {
	return func(o *StartOptions) {
		o.onUserSpeechEnded = callback
	}
}

// WithAgentSpeechStartedCallback registers a callback for accepted playback
// boundaries. Playback attempts the controller refuses, such as speech
// starting during a backoff window, do not reach it.
func WithAgentSpeechStartedCallback(callback func()) StartOption {
	return func(o *StartOptions) {
		o.onAgentSpeechStarted = callback
	}
}

func WithAgentSpeechEndedCallback(callback func()) StartOption {
	return func(o *StartOptions) {
		o.onAgentSpeechEnded = callback
	}
}

// WithTranscribedCallback registers a pass-through callback for upstream
// transcript fragments, final and interim alike.
func WithTranscribedCallback(callback func(transcript string, isFinal bool)) StartOption {
	return func(o *StartOptions) {
		o.onUserInputTranscribed = callback
	}
}

// WithTurnCommittedCallback registers the commit signal: the host is
// expected to generate a response for the committed turn and hand its
// playback back through [TurnController.EnqueueAgentResponse].
func WithTurnCommittedCallback(callback func(turn CommittedTurn)) StartOption {
	return func(o *StartOptions) {
		o.onTurnCommitted = callback
	}
}

// WithTurnIncompleteCallback registers a callback fired when a deferred
// evaluation decides the user is not done yet. Hosts may use it to emit an
// interim acknowledgment without committing.
func WithTurnIncompleteCallback(callback func(pendingTranscript string)) StartOption {
	return func(o *StartOptions) {
		o.onTurnIncomplete = callback
	}
}

func WithPendingTurnDiscardedCallback(callback func(transcript string)) StartOption {
	return func(o *StartOptions) {
		o.onPendingTurnDiscarded = callback
	}
}

// WithInterruptionCallback registers the callback that stops the in-flight
// agent utterance when the user interrupts. It fires after the transition
// out of the speaking state and must not block.
func WithInterruptionCallback(callback func()) StartOption {
	return func(o *StartOptions) {
		o.onInterruption = callback
	}
}

// WithEvaluationErrorCallback surfaces evaluator failures as warnings. The
// failed evaluation counts as incomplete and the transcript is retained, so
// the host can choose to force a commit.
func WithEvaluationErrorCallback(callback func(err error)) StartOption {
	return func(o *StartOptions) {
		o.onEvaluationError = callback
	}
}
