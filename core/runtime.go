package turntaking

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const inboundQueueCapacity = 32

// inboundEvent is anything that can be posted to the controller's single
// ordered queue: upstream notifications, host commands, and the synthetic
// events produced by the backoff timer and the deferred evaluator.
type inboundEvent interface {
	fmt.Stringer
}

type queueItem struct {
	event    inboundEvent
	queuedAt time.Time
}

// controllerRuntime owns the ordered inbound queue. A single drain
// goroutine processes items strictly in arrival order, which is what makes
// the controller's state mutations single-threaded.
type controllerRuntime struct {
	queue   chan queueItem
	closeCh chan struct{}
	done    chan struct{}

	startOnce sync.Once
	endOnce   sync.Once

	started atomic.Bool
}

func newControllerRuntime() *controllerRuntime {
	return &controllerRuntime{
		queue:   make(chan queueItem, inboundQueueCapacity),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (runtime *controllerRuntime) start(process func(queueItem)) (started bool) {
	if runtime.isClosed() {
		return false
	}

	runtime.startOnce.Do(func() {
		if runtime.isClosed() {
			return
		}

		started = true
		runtime.started.Store(true)
		go func() {
			defer close(runtime.done)

			for {
				select {
				case <-runtime.closeCh:
					return
				case queuedEvent := <-runtime.queue:
					if runtime.isClosed() {
						return
					}
					process(queuedEvent)
				}
			}
		}()
	})

	return started
}

func (runtime *controllerRuntime) end() {
	runtime.endOnce.Do(func() {
		close(runtime.closeCh)
	})
}

func (runtime *controllerRuntime) waitUntilEnded() {
	if runtime.started.Load() {
		<-runtime.done
	}
}

func (runtime *controllerRuntime) enqueue(event inboundEvent) bool {
	if runtime.isClosed() {
		return false
	}

	queueItem := queueItem{event: event, queuedAt: time.Now()}
	select {
	case <-runtime.closeCh:
		return false
	case runtime.queue <- queueItem:
		return true
	}
}

func (runtime *controllerRuntime) isClosed() bool {
	select {
	case <-runtime.closeCh:
		return true
	default:
		return false
	}
}
