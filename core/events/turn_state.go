package events

const (
	// KindUserTurnCommitted identifies commitment of the pending transcript.
	KindUserTurnCommitted Kind = "turn_state.committed"
	// KindPendingTurnDiscarded identifies a discarded pending transcript.
	KindPendingTurnDiscarded Kind = "turn_state.discarded"
)

// UserTurnCommitted marks the pending transcript being finalized as a
// complete turn and handed to response generation.
type UserTurnCommitted struct {
	Base
	ID         string
	Transcript string
}

// NewUserTurnCommitted creates a turn committed event.
func NewUserTurnCommitted(id, transcript string) UserTurnCommitted {
	return UserTurnCommitted{Base: NewBase(KindUserTurnCommitted), ID: id, Transcript: transcript}
}

// PendingTurnDiscarded marks the pending transcript being dropped without
// committing.
type PendingTurnDiscarded struct {
	Base
	Transcript string
}

// NewPendingTurnDiscarded creates a pending turn discarded event.
func NewPendingTurnDiscarded(transcript string) PendingTurnDiscarded {
	return PendingTurnDiscarded{Base: NewBase(KindPendingTurnDiscarded), Transcript: transcript}
}
