package events

import "testing"

func TestConstructorsEmitExpectedKinds(t *testing.T) {
	testCases := []struct {
		name     string
		event    Event
		expected Kind
	}{
		{name: "agent state changed", event: NewAgentStateChanged(AgentStateIdle, AgentStateAgentSpeaking), expected: KindAgentStateChanged},
		{name: "backoff started", event: NewBackoffStarted(1.5), expected: KindBackoffStarted},
		{name: "backoff ended", event: NewBackoffEnded(1.5), expected: KindBackoffEnded},
		{name: "user speech started", event: NewUserSpeechStarted(), expected: KindUserSpeechStarted},
		{name: "user speech ended", event: NewUserSpeechEnded(), expected: KindUserSpeechEnded},
		{name: "user input transcribed", event: NewUserInputTranscribed("text", true), expected: KindUserInputTranscribed},
		{name: "agent speech started", event: NewAgentSpeechStarted(), expected: KindAgentSpeechStarted},
		{name: "agent speech ended", event: NewAgentSpeechEnded(), expected: KindAgentSpeechEnded},
		{name: "user turn committed", event: NewUserTurnCommitted("id", "text"), expected: KindUserTurnCommitted},
		{name: "pending turn discarded", event: NewPendingTurnDiscarded("text"), expected: KindPendingTurnDiscarded},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.event.Kind(); got != testCase.expected {
				t.Fatalf("expected kind %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestBackoffPairCarriesMatchingSeconds(t *testing.T) {
	started := NewBackoffStarted(2.5)
	ended := NewBackoffEnded(started.BackoffSeconds)

	if started.BackoffSeconds != ended.BackoffSeconds {
		t.Fatalf("expected matching backoff seconds, got start %f and end %f", started.BackoffSeconds, ended.BackoffSeconds)
	}
	if started.Kind() == ended.Kind() {
		t.Fatalf("expected backoff started and ended kinds to differ, both were %q", started.Kind())
	}
}

func TestAgentStateChangedCarriesTransition(t *testing.T) {
	event := NewAgentStateChanged(AgentStateAgentSpeaking, AgentStateUserSpeaking)

	if event.OldState != AgentStateAgentSpeaking || event.NewState != AgentStateUserSpeaking {
		t.Fatalf("expected transition agent_speaking -> user_speaking, got %q -> %q", event.OldState, event.NewState)
	}
	if event.Timestamp().IsZero() {
		t.Fatalf("expected a non-zero event timestamp")
	}
}
