package events

const (
	// KindUserSpeechStarted identifies start of user speech activity.
	KindUserSpeechStarted Kind = "user_input.speech_started"
	// KindUserSpeechEnded identifies end of user speech activity.
	KindUserSpeechEnded Kind = "user_input.speech_ended"
	// KindUserInputTranscribed identifies a pass-through transcript fragment.
	KindUserInputTranscribed Kind = "user_input.transcribed"
)

// UserSpeechStarted marks when user speech activity starts.
type UserSpeechStarted struct{ Base }

// NewUserSpeechStarted creates a user speech started event.
func NewUserSpeechStarted() UserSpeechStarted {
	return UserSpeechStarted{Base: NewBase(KindUserSpeechStarted)}
}

// UserSpeechEnded marks when user speech activity ends.
type UserSpeechEnded struct{ Base }

// NewUserSpeechEnded creates a user speech ended event.
func NewUserSpeechEnded() UserSpeechEnded {
	return UserSpeechEnded{Base: NewBase(KindUserSpeechEnded)}
}

// UserInputTranscribed carries an upstream speech-to-text fragment. Only
// fragments with IsFinal set feed the pending transcript; interim fragments
// are forwarded for display purposes and may still be revised upstream.
type UserInputTranscribed struct {
	Base
	Transcript string
	IsFinal    bool
}

// NewUserInputTranscribed creates a transcript pass-through event.
func NewUserInputTranscribed(transcript string, isFinal bool) UserInputTranscribed {
	return UserInputTranscribed{Base: NewBase(KindUserInputTranscribed), Transcript: transcript, IsFinal: isFinal}
}
