package turntaking

import (
	"strings"
	"sync"
)

// pendingTranscript buffers finalized transcript fragments until the turn
// is committed or discarded. It sits on the transcript ingestion hot path:
// no operation blocks beyond a short critical section.
//
// The revision counter increments on every content change and is what the
// deferred evaluation path uses to detect stale classifier verdicts.
type pendingTranscript struct {
	mu        sync.Mutex
	fragments []string
	revision  uint64
}

func newPendingTranscript() *pendingTranscript {
	return &pendingTranscript{}
}

// Append adds a finalized fragment in arrival order. Fragments are joined
// with a single space and leading/trailing whitespace is trimmed; fragments
// that trim to nothing are dropped without bumping the revision.
func (b *pendingTranscript) Append(fragment string) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return
	}

	b.mu.Lock()
	b.fragments = append(b.fragments, fragment)
	b.revision++
	b.mu.Unlock()
}

// Snapshot returns the joined pending text and the revision it corresponds
// to.
func (b *pendingTranscript) Snapshot() (string, uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return strings.Join(b.fragments, " "), b.revision
}

// Clear empties the buffer and returns the text it held. The next fragment
// starts a fresh buffer.
func (b *pendingTranscript) Clear() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	cleared := strings.Join(b.fragments, " ")
	b.fragments = nil
	b.revision++
	return cleared
}

func (b *pendingTranscript) IsEmpty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.fragments) == 0
}
