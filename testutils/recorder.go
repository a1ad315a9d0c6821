package testutils

import (
	"sync"
	"time"

	"github.com/ducka/go-coracle/observe"
)

// Recorder is an observer that records every event it receives, so tests can
// assert on a stream's exact output. It relies on the subscriber delivering
// at most one terminal event.
type Recorder[T any] struct {
	mu            sync.Mutex
	notifications []observe.Notification[T]
	done          chan struct{}
}

var _ observe.Observer[any] = (*Recorder[any])(nil)

func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{
		done: make(chan struct{}),
	}
}

func (r *Recorder[T]) Next(value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, observe.Next(value))
}

func (r *Recorder[T]) Error(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, observe.Error[T](err))
	close(r.done)
}

func (r *Recorder[T]) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, observe.Complete[T]())
	close(r.done)
}

// Notifications returns a snapshot of everything recorded so far.
func (r *Recorder[T]) Notifications() []observe.Notification[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]observe.Notification[T], len(r.notifications))
	copy(snapshot, r.notifications)
	return snapshot
}

// Values returns the recorded values, in order.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	values := make([]T, 0, len(r.notifications))
	for _, n := range r.notifications {
		if n.Kind() == observe.NextKind {
			values = append(values, n.Value())
		}
	}
	return values
}

// Err returns the recorded terminal error, if any.
func (r *Recorder[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.Kind() == observe.ErrorKind {
			return n.Err()
		}
	}
	return nil
}

// Completed indicates whether the stream completed normally.
func (r *Recorder[T]) Completed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.Kind() == observe.CompleteKind {
			return true
		}
	}
	return false
}

// WaitUntilDone blocks until a terminal event is recorded or the timeout
// elapses, reporting whether the terminal event arrived.
func (r *Recorder[T]) WaitUntilDone(timeout time.Duration) bool {
	select {
	case <-r.done:
		return true
	case <-time.After(timeout):
		return false
	}
}
