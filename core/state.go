package turntaking

import "github.com/koscakluka/turngate-core/core/events"

// AgentState re-exports the event contract's state type; the controller is
// its single authority.
type AgentState = events.AgentState

const (
	StateIdle               = events.AgentStateIdle
	StateAgentSpeaking      = events.AgentStateAgentSpeaking
	StateUserSpeaking       = events.AgentStateUserSpeaking
	StateBackoff            = events.AgentStateBackoff
	StateGeneratingResponse = events.AgentStateGeneratingResponse
)

// RestartPolicy governs what a new interruption does to an already active
// backoff window.
type RestartPolicy string

const (
	// RestartPolicyRestart moves the window's expiry to now + backoff
	// duration. The original start event stands; no duplicate is emitted.
	RestartPolicyRestart RestartPolicy = "restart"
	// RestartPolicyIgnore absorbs the interruption without touching the
	// window's expiry.
	RestartPolicyIgnore RestartPolicy = "ignore"
)

// DetectionMode selects the turn-completion strategy.
type DetectionMode string

const (
	// DetectionModeContinuous evaluates synchronously on every finalized
	// fragment through a standing end-of-turn model.
	DetectionModeContinuous DetectionMode = "continuous"
	// DetectionModeDeferred evaluates through an asynchronous classifier
	// call, per fragment or only on explicit host commit.
	DetectionModeDeferred DetectionMode = "deferred"
)
