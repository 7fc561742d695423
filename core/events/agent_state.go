package events

// AgentState is the controller's externally observable speaking state.
// Exactly one value holds at any instant.
type AgentState string

const (
	AgentStateIdle               AgentState = "idle"
	AgentStateAgentSpeaking      AgentState = "agent_speaking"
	AgentStateUserSpeaking       AgentState = "user_speaking"
	AgentStateBackoff            AgentState = "backoff"
	AgentStateGeneratingResponse AgentState = "generating_response"
)

// KindAgentStateChanged identifies controller state transitions.
const KindAgentStateChanged Kind = "agent_state.changed"

// AgentStateChanged carries a single state transition.
type AgentStateChanged struct {
	Base
	OldState AgentState
	NewState AgentState
}

// NewAgentStateChanged creates an agent state transition event.
func NewAgentStateChanged(oldState, newState AgentState) AgentStateChanged {
	return AgentStateChanged{Base: NewBase(KindAgentStateChanged), OldState: oldState, NewState: newState}
}
