package turntaking

import "github.com/koscakluka/turngate-core/core/turndetection"

type userSpeechStarted struct{}

func (userSpeechStarted) String() string { return "user speech started" }

type userSpeechEnded struct{}

func (userSpeechEnded) String() string { return "user speech ended" }

type transcriptFragment struct {
	text    string
	isFinal bool
}

func (transcriptFragment) String() string { return "transcript fragment" }

type agentSpeechStarted struct{}

func (agentSpeechStarted) String() string { return "agent speech started" }

type agentSpeechEnded struct{}

func (agentSpeechEnded) String() string { return "agent speech ended" }

// agentResponseQueued carries the host's generated response, represented by
// the callback that starts its playback.
type agentResponseQueued struct {
	speak func()
}

func (agentResponseQueued) String() string { return "agent response queued" }

type commitRequested struct{}

func (commitRequested) String() string { return "commit requested" }

type discardRequested struct{}

func (discardRequested) String() string { return "discard requested" }

// backoffExpired is posted by the backoff scheduler. The id/generation pair
// lets the drain loop drop fires from cancelled or restarted windows, which
// makes cancellation and firing mutually exclusive.
type backoffExpired struct {
	windowID   string
	generation uint64
}

func (backoffExpired) String() string { return "backoff expired" }

// verdictDelivered is posted by an asynchronous deferred evaluation. The
// revision records which pending-transcript content the verdict applies to.
type verdictDelivered struct {
	revision   uint64
	transcript string
	verdict    turndetection.Verdict
	err        error
}

func (verdictDelivered) String() string { return "verdict delivered" }
