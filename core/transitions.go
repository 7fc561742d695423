package turntaking

import (
	"log"

	"github.com/google/uuid"
	"github.com/koscakluka/turngate-core/core/events"
	"github.com/koscakluka/turngate-core/core/turndetection"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// processInboundEvent is the single place agent state changes. It runs on
// the drain goroutine only, so every branch below sees a consistent view of
// the state, the pending transcript and the backoff window.
func (c *TurnController) processInboundEvent(event inboundEvent) {
	switch typedEvent := event.(type) {
	case userSpeechStarted:
		c.handleUserSpeechStarted()
	case userSpeechEnded:
		c.handleUserSpeechEnded()
	case transcriptFragment:
		c.handleTranscriptFragment(typedEvent)
	case agentSpeechStarted:
		c.handleAgentSpeechStarted()
	case agentSpeechEnded:
		c.handleAgentSpeechEnded()
	case agentResponseQueued:
		c.handleAgentResponseQueued(typedEvent)
	case commitRequested:
		c.handleCommitRequested()
	case discardRequested:
		c.handleDiscardRequested()
	case backoffExpired:
		c.handleBackoffExpired(typedEvent)
	case verdictDelivered:
		c.handleVerdict(typedEvent)
	default:
		log.Printf("Warning: unknown inbound event (%s), skipping it", event)
	}
}

// transitionTo records a state change and emits it before any other side
// effect of the triggering event, so observers always see transitions in
// cause order. Same-state calls are no-ops.
func (c *TurnController) transitionTo(newState AgentState) {
	c.stateMu.Lock()
	oldState := c.state
	c.state = newState
	c.stateMu.Unlock()

	if oldState == newState {
		return
	}

	logger.Debug("agent state changed",
		"old_state", string(oldState), "new_state", string(newState))
	c.emitEvent(events.NewAgentStateChanged(oldState, newState))
}

func (c *TurnController) handleUserSpeechStarted() {
	switch c.state {
	case StateIdle, StateGeneratingResponse:
		c.emitEvent(events.NewUserSpeechStarted())
		c.transitionTo(StateUserSpeaking)

	case StateAgentSpeaking:
		// A barge-in. The user wins the floor unconditionally; the host is
		// told to cut playback after the transition is visible.
		c.emitEvent(events.NewUserSpeechStarted())
		c.transitionTo(StateUserSpeaking)
		if c.startOptions.onInterruption != nil {
			c.startOptions.onInterruption()
		}
		if c.backoffSeconds > 0 {
			c.beginBackoff()
		}

	case StateBackoff:
		c.emitEvent(events.NewUserSpeechStarted())
		c.applyRestartPolicy()

	case StateUserSpeaking:
		log.Println("Warning: user speech started while already tracking user speech, skipping it")
	}
}

func (c *TurnController) handleUserSpeechEnded() {
	switch c.state {
	case StateUserSpeaking:
		c.emitEvent(events.NewUserSpeechEnded())
		c.transitionTo(StateIdle)
	case StateBackoff:
		// The window outlives the speech that opened it; expiry alone ends
		// it.
		c.emitEvent(events.NewUserSpeechEnded())
	case StateIdle:
		log.Println("Warning: user speech ended while idle, skipping it")
	default:
		log.Printf("Warning: user speech ended in state %q, skipping it", c.state)
	}
}

// beginBackoff opens a silence window after an interruption. The scheduler
// callback does not touch controller state: it posts a queue event tagged
// with the window's id and generation, and stale fires are dropped in
// handleBackoffExpired.
func (c *TurnController) beginBackoff() {
	window := newBackoffWindow(c.backoffSeconds)
	cancel, err := c.armWindow(window)
	if err != nil {
		log.Printf("Warning: failed to schedule backoff window, continuing without backoff: %v", err)
		return
	}

	window.cancel = cancel
	c.window = window

	c.transitionTo(StateBackoff)
	c.emitEvent(events.NewBackoffStarted(window.durationSeconds))
}

func (c *TurnController) armWindow(window *backoffWindow) (func() bool, error) {
	windowID, generation := window.id, window.generation
	return c.scheduler.Schedule(window.duration(), func() {
		c.runtime.enqueue(backoffExpired{windowID: windowID, generation: generation})
	})
}

// applyRestartPolicy handles an interruption arriving while a window is
// already active.
func (c *TurnController) applyRestartPolicy() {
	if c.window == nil {
		log.Println("Warning: in backoff state without a window, skipping interruption")
		return
	}

	switch c.restartPolicy {
	case RestartPolicyIgnore:
		logger.Debug("interruption absorbed by active backoff window",
			"window_id", c.window.id)

	case RestartPolicyRestart:
		// Same window, pushed-out expiry. Bumping the generation orphans
		// the old timer if cancellation loses the race; no duplicate start
		// event is emitted.
		c.window.cancelTimer()
		c.window.generation++

		cancel, err := c.armWindow(c.window)
		if err != nil {
			log.Printf("Warning: failed to restart backoff window, expiring it now: %v", err)
			c.endBackoff()
			return
		}
		c.window.cancel = cancel
	}
}

func (c *TurnController) handleBackoffExpired(expiry backoffExpired) {
	if c.window == nil || c.window.id != expiry.windowID || c.window.generation != expiry.generation {
		// A fire from a cancelled or restarted timer.
		return
	}

	c.endBackoff()
}

// endBackoff closes the active window, returns to idle and releases any
// response that was held back while it was open.
func (c *TurnController) endBackoff() {
	window := c.window
	c.window = nil
	window.cancelTimer()

	c.transitionTo(StateIdle)
	c.emitEvent(events.NewBackoffEnded(window.durationSeconds))

	if speak := c.queuedSpeak; speak != nil {
		c.queuedSpeak = nil
		speak()
	}
}

func (c *TurnController) handleTranscriptFragment(fragment transcriptFragment) {
	c.emitEvent(events.NewUserInputTranscribed(fragment.text, fragment.isFinal))

	if !fragment.isFinal {
		return
	}

	c.pending.Append(fragment.text)

	switch c.detectionMode {
	case DetectionModeContinuous:
		c.evaluateNow()
	case DetectionModeDeferred:
		if c.perFragmentEvaluation {
			c.evaluateAsync()
		}
	}
}

// evaluateNow runs the evaluator inline on the drain goroutine. Continuous
// evaluators are expected to answer in model-inference time, not network
// time.
func (c *TurnController) evaluateNow() {
	transcript, revision := c.pending.Snapshot()
	if transcript == "" {
		return
	}

	verdict, err := c.evaluator.Evaluate(c.baseContext, transcript)
	c.handleVerdict(verdictDelivered{
		revision:   revision,
		transcript: transcript,
		verdict:    verdict,
		err:        err,
	})
}

// evaluateAsync starts a classifier call off the drain goroutine and posts
// its verdict back as a queue event. At most one evaluation per transcript
// revision is ever in flight.
func (c *TurnController) evaluateAsync() {
	transcript, revision := c.pending.Snapshot()
	if transcript == "" {
		return
	}
	if c.inFlightRevision == revision {
		return
	}
	c.inFlightRevision = revision

	go func() {
		ctx, span := tracer.Start(c.baseContext, "turntaking.evaluate",
			trace.WithAttributes(attribute.Int64("transcript.revision", int64(revision))))
		defer span.End()

		verdict, err := c.evaluator.Evaluate(ctx, transcript)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		c.runtime.enqueue(verdictDelivered{
			revision:   revision,
			transcript: transcript,
			verdict:    verdict,
			err:        err,
		})
	}()
}

func (c *TurnController) handleVerdict(delivered verdictDelivered) {
	if c.inFlightRevision == delivered.revision {
		c.inFlightRevision = 0
	}

	if delivered.err != nil {
		// A failed evaluation counts as incomplete; the transcript stays
		// buffered so the host can force a commit.
		log.Printf("Warning: turn completion evaluation failed, treating turn as incomplete: %v", delivered.err)
		if c.startOptions.onEvaluationError != nil {
			c.startOptions.onEvaluationError(delivered.err)
		}
		return
	}

	_, currentRevision := c.pending.Snapshot()
	if delivered.revision != currentRevision {
		// The buffer changed while the classifier was thinking. A stale
		// completion only proves the old prefix stood on its own, so ask
		// again about what is there now.
		if delivered.verdict == turndetection.VerdictComplete && c.detectionMode == DetectionModeDeferred {
			c.evaluateAsync()
		}
		return
	}

	switch delivered.verdict {
	case turndetection.VerdictComplete:
		c.commitPending()
	case turndetection.VerdictIncomplete:
		if c.startOptions.onTurnIncomplete != nil {
			c.startOptions.onTurnIncomplete(delivered.transcript)
		}
	}
}

func (c *TurnController) handleCommitRequested() {
	if c.detectionMode != DetectionModeDeferred {
		log.Println("Warning: explicit turn commit is only supported with deferred turn detection, skipping it")
		return
	}
	if c.pending.IsEmpty() {
		log.Println("Warning: turn commit requested with no pending transcript, skipping it")
		return
	}

	c.commitPending()
}

// commitPending seals the pending transcript into a turn. Committing closes
// an active backoff window: the user's turn is decided, waiting out the
// silence would only add latency.
func (c *TurnController) commitPending() {
	transcript := c.pending.Clear()
	if transcript == "" {
		return
	}
	c.inFlightRevision = 0

	var closedWindow *backoffWindow
	if c.state == StateBackoff && c.window != nil {
		closedWindow = c.window
		c.window = nil
		closedWindow.cancelTimer()
		if c.queuedSpeak != nil {
			// That response answered a turn that no longer exists.
			log.Println("Warning: discarding agent response queued before turn commit")
			c.queuedSpeak = nil
		}
	}

	c.transitionTo(StateGeneratingResponse)
	if closedWindow != nil {
		c.emitEvent(events.NewBackoffEnded(closedWindow.durationSeconds))
	}

	turnID := uuid.NewString()
	logger.Debug("user turn committed", "turn_id", turnID)
	c.emitEvent(events.NewUserTurnCommitted(turnID, transcript))
}

func (c *TurnController) handleDiscardRequested() {
	if c.pending.IsEmpty() {
		return
	}

	// Clearing bumps the revision, which strands any in-flight verdict.
	discarded := c.pending.Clear()
	c.inFlightRevision = 0
	c.emitEvent(events.NewPendingTurnDiscarded(discarded))
}

func (c *TurnController) handleAgentResponseQueued(queued agentResponseQueued) {
	if c.state == StateBackoff {
		// Hold playback until the window expires; only the latest response
		// survives.
		if c.queuedSpeak != nil {
			log.Println("Warning: replacing a previously queued agent response")
		}
		c.queuedSpeak = queued.speak
		return
	}

	queued.speak()
}

func (c *TurnController) handleAgentSpeechStarted() {
	switch c.state {
	case StateIdle, StateGeneratingResponse, StateUserSpeaking:
		c.emitEvent(events.NewAgentSpeechStarted())
		c.transitionTo(StateAgentSpeaking)
	case StateBackoff:
		log.Println("Warning: agent speech started during a backoff window, skipping it")
	case StateAgentSpeaking:
		log.Println("Warning: agent speech started while already speaking, skipping it")
	}
}

func (c *TurnController) handleAgentSpeechEnded() {
	if c.state != StateAgentSpeaking {
		log.Printf("Warning: agent speech ended in state %q, skipping it", c.state)
		return
	}

	c.emitEvent(events.NewAgentSpeechEnded())
	c.transitionTo(StateIdle)
}
