package turntaking

import events "github.com/koscakluka/turngate-core/core/events"

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

// newCallbackEventEmitter dispatches typed events to the callbacks the host
// registered at Start. Dispatch is synchronous on the drain goroutine, so
// per-kind delivery order matches emission order exactly.
func newCallbackEventEmitter(opts StartOptions) eventEmitter {
	return func(event events.Event) {
		switch typedEvent := event.(type) {
		case events.AgentStateChanged:
			if opts.onAgentStateChanged != nil {
				opts.onAgentStateChanged(typedEvent)
			}
		case events.BackoffStarted:
			if opts.onBackoffStarted != nil {
				opts.onBackoffStarted(typedEvent)
			}
		case events.BackoffEnded:
			if opts.onBackoffEnded != nil {
				opts.onBackoffEnded(typedEvent)
			}
		case events.UserSpeechStarted:
			if opts.onUserSpeechStarted != nil {
				opts.onUserSpeechStarted()
			}
		case events.UserSpeechEnded:
			if opts.onUserSpeechEnded != nil {
				opts.onUserSpeechEnded()
			}
		case events.AgentSpeechStarted:
			if opts.onAgentSpeechStarted != nil {
				opts.onAgentSpeechStarted()
			}
		case events.AgentSpeechEnded:
			if opts.onAgentSpeechEnded != nil {
				opts.onAgentSpeechEnded()
			}
		case events.UserInputTranscribed:
			if opts.onUserInputTranscribed != nil {
				opts.onUserInputTranscribed(typedEvent.Transcript, typedEvent.IsFinal)
			}
		case events.UserTurnCommitted:
			if opts.onTurnCommitted != nil {
				opts.onTurnCommitted(CommittedTurn{
					ID:          typedEvent.ID,
					Transcript:  typedEvent.Transcript,
					CommittedAt: typedEvent.Timestamp(),
				})
			}
		case events.PendingTurnDiscarded:
			if opts.onPendingTurnDiscarded != nil {
				opts.onPendingTurnDiscarded(typedEvent.Transcript)
			}
		}
	}
}
