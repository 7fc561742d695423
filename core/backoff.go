package turntaking

import (
	"time"

	"github.com/google/uuid"
)

// BackoffScheduler schedules the single deactivation callback of a backoff
// window. Schedule must fire no earlier than the given duration and within
// tens of milliseconds of it; the returned cancel reports whether the
// callback was stopped before firing.
//
// The default scheduler is backed by [time.AfterFunc]. Cancellation races
// are resolved by the controller, not the scheduler: fired callbacks only
// post a queue event carrying the window's id and generation, and stale
// fires are dropped while draining.
type BackoffScheduler interface {
	Schedule(d time.Duration, fire func()) (cancel func() bool, err error)
}

type timerScheduler struct{}

func (timerScheduler) Schedule(d time.Duration, fire func()) (func() bool, error) {
	timer := time.AfterFunc(d, fire)
	return timer.Stop, nil
}

// backoffWindow is the silence window opened by a qualifying interruption.
// Owned exclusively by the controller's drain goroutine; the scheduler only
// ever observes the id/generation pair it was armed with.
type backoffWindow struct {
	id              string
	durationSeconds float64
	generation      uint64
	cancel          func() bool
}

func newBackoffWindow(durationSeconds float64) *backoffWindow {
	return &backoffWindow{
		id:              uuid.NewString(),
		durationSeconds: durationSeconds,
	}
}

func (w *backoffWindow) duration() time.Duration {
	return time.Duration(w.durationSeconds * float64(time.Second))
}

func (w *backoffWindow) cancelTimer() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}
