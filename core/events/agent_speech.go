package events

const (
	// KindAgentSpeechStarted identifies start of agent speech playback.
	KindAgentSpeechStarted Kind = "agent_speech.started"
	// KindAgentSpeechEnded identifies end of agent speech playback.
	KindAgentSpeechEnded Kind = "agent_speech.ended"
)

// AgentSpeechStarted marks when the host begins playback of a response.
type AgentSpeechStarted struct{ Base }

// NewAgentSpeechStarted creates an agent speech started event.
func NewAgentSpeechStarted() AgentSpeechStarted {
	return AgentSpeechStarted{Base: NewBase(KindAgentSpeechStarted)}
}

// AgentSpeechEnded marks when playback of a response finishes.
type AgentSpeechEnded struct{ Base }

// NewAgentSpeechEnded creates an agent speech ended event.
func NewAgentSpeechEnded() AgentSpeechEnded {
	return AgentSpeechEnded{Base: NewBase(KindAgentSpeechEnded)}
}
