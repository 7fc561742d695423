package events

const (
	// KindBackoffStarted identifies the opening of a post-interruption
	// silence window.
	KindBackoffStarted Kind = "backoff.started"
	// KindBackoffEnded identifies the closing of a silence window.
	KindBackoffEnded Kind = "backoff.ended"
)

// BackoffStarted marks the start of a silence window. CreatedAt is the
// event timestamp ([Base.Timestamp]).
type BackoffStarted struct {
	Base
	BackoffSeconds float64
}

// NewBackoffStarted creates a backoff started event.
func NewBackoffStarted(backoffSeconds float64) BackoffStarted {
	return BackoffStarted{Base: NewBase(KindBackoffStarted), BackoffSeconds: backoffSeconds}
}

// BackoffEnded marks the end of a silence window. It carries the same
// BackoffSeconds as the matching [BackoffStarted].
type BackoffEnded struct {
	Base
	BackoffSeconds float64
}

// NewBackoffEnded creates a backoff ended event.
func NewBackoffEnded(backoffSeconds float64) BackoffEnded {
	return BackoffEnded{Base: NewBase(KindBackoffEnded), BackoffSeconds: backoffSeconds}
}
