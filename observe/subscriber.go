package observe

import (
	"context"
	"sync"
	"time"

	"github.com/ducka/go-coracle/instrumentation"
	"github.com/ducka/go-coracle/utils"
)

// SubscriberState tracks where a subscription is in its lifecycle.
type SubscriberState string

const (
	// Active indicates the subscriber is accepting events
	Active SubscriberState = "Active"
	// Completed indicates the sequence ended normally
	Completed SubscriberState = "Completed"
	// Failed indicates the sequence ended with an error
	Failed SubscriberState = "Failed"
	// Cancelled indicates the consumer withdrew before the sequence ended
	Cancelled SubscriberState = "Cancelled"
)

// Observer is the consumer side of a subscription: a handler for each value
// plus a handler for each of the two terminal events.
type Observer[T any] interface {
	Next(value T)
	Error(err error)
	Complete()
}

// Subscription is the handle returned by subscribing to an Observable.
type Subscription interface {
	// Add registers a teardown to run once the subscription ends. A teardown
	// registered after the subscription has ended runs immediately.
	Add(teardown TeardownFunc)
	// Unsubscribe withdraws the consumer. It is safe to call at any time, from
	// any goroutine, and repeatedly.
	Unsubscribe()
	// Closed indicates whether the subscription has ended, by any means.
	Closed() bool
}

// Subscriber connects a producer to a consumer for the lifetime of one
// subscription. It guarantees the consumer sees at most one terminal event,
// drops everything delivered after that event, and runs the registered
// teardowns exactly once, however the subscription ends.
type Subscriber[T any] struct {
	mu         sync.Mutex
	state      SubscriberState
	onNext     OnNextFunc[T]
	onError    OnErrorFunc
	onComplete OnCompleteFunc
	teardowns  []TeardownFunc
	torndown   bool
	ctx        context.Context
	cancel     context.CancelFunc
	activity   string
	startedAt  time.Time
}

var (
	_ Observer[any] = (*Subscriber[any])(nil)
	_ Subscription  = (*Subscriber[any])(nil)
)

func newSubscriber[T any](ctx context.Context, activity string, onNext OnNextFunc[T], onError OnErrorFunc, onComplete OnCompleteFunc) *Subscriber[T] {
	if onNext == nil {
		onNext = func(value T) {}
	}
	if onError == nil {
		onError = func(err error) {
			instrumentation.Logging().Warn(activity, "unhandled stream error: "+err.Error())
		}
	}
	if onComplete == nil {
		onComplete = func() {}
	}

	subCtx, cancel := context.WithCancel(ctx)

	return &Subscriber[T]{
		state:      Active,
		onNext:     onNext,
		onError:    onError,
		onComplete: onComplete,
		ctx:        subCtx,
		cancel:     cancel,
		activity:   activity,
		startedAt:  time.Now(),
	}
}

// Next delivers the next value in the sequence to the consumer. Values
// delivered after the subscription has ended are dropped.
func (s *Subscriber[T]) Next(value T) {
	s.mu.Lock()
	if s.state != Active {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	instrumentation.Metrics().Incr(s.activity, "value_emitted", 1)
	s.onNext(value)
}

// Error ends the sequence with a failure. The subscriber turns terminal before
// the consumer's handler runs, so the handler observes an already ended
// subscription; the teardowns run after the handler returns. At most one
// terminal event reaches the consumer, so later calls are dropped.
func (s *Subscriber[T]) Error(err error) {
	s.mu.Lock()
	if s.state != Active {
		s.mu.Unlock()
		return
	}
	s.state = Failed
	s.mu.Unlock()

	instrumentation.Metrics().Incr(s.activity, "error_emitted", 1)
	instrumentation.Metrics().Timing(s.activity, "sequence_duration", time.Since(s.startedAt))

	defer s.cancel()
	defer s.runTeardowns()
	s.onError(err)
}

// Complete ends the sequence normally. It follows the same terminal protocol
// as Error: the state flips first, the handler runs second, the teardowns run
// last, and later terminal calls are dropped.
func (s *Subscriber[T]) Complete() {
	s.mu.Lock()
	if s.state != Active {
		s.mu.Unlock()
		return
	}
	s.state = Completed
	s.mu.Unlock()

	instrumentation.Metrics().Incr(s.activity, "sequence_completed", 1)
	instrumentation.Metrics().Timing(s.activity, "sequence_duration", time.Since(s.startedAt))

	defer s.cancel()
	defer s.runTeardowns()
	s.onComplete()
}

// Unsubscribe withdraws the consumer from the sequence. No handler runs in
// response, the subscription context is cancelled so producers stop promptly,
// and the teardowns run. Repeated calls have no further effect. A delivery
// already in flight on another goroutine when the cancellation wins the state
// change may still reach the consumer; every delivery starting afterwards is
// dropped.
func (s *Subscriber[T]) Unsubscribe() {
	s.mu.Lock()
	if s.state == Active {
		s.state = Cancelled
		s.mu.Unlock()
		instrumentation.Metrics().Incr(s.activity, "subscription_cancelled", 1)
	} else {
		s.mu.Unlock()
	}

	s.cancel()
	s.runTeardowns()
}

// Add registers a teardown to run once the subscription ends. A teardown
// registered after the subscription has ended runs immediately, so producers
// of short sequences may register their cleanup late without leaking it.
func (s *Subscriber[T]) Add(teardown TeardownFunc) {
	if teardown == nil {
		return
	}

	s.mu.Lock()
	if s.torndown {
		s.mu.Unlock()
		teardown()
		return
	}
	s.teardowns = append(s.teardowns, teardown)
	s.mu.Unlock()
}

// Closed indicates whether the subscription has ended, by any means.
func (s *Subscriber[T]) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != Active
}

// State reports where the subscription is in its lifecycle.
func (s *Subscriber[T]) State() SubscriberState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Context is done once the subscription has ended, by any means. Producers
// driven by external asynchronous sources watch it to stop producing. Honoring
// it is the producer's side of the subscription contract.
func (s *Subscriber[T]) Context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

// mergeContext additionally bounds the subscription by the given context, so
// the producer observes both lifetimes through a single Context call.
func (s *Subscriber[T]) mergeContext(ctx context.Context) {
	s.mu.Lock()
	if s.torndown {
		s.mu.Unlock()
		return
	}
	merged, stop := utils.CombinedContexts(s.ctx, ctx)
	s.ctx = merged
	s.teardowns = append(s.teardowns, TeardownFunc(stop))
	s.mu.Unlock()
}

func (s *Subscriber[T]) runTeardowns() {
	s.mu.Lock()
	if s.torndown {
		s.mu.Unlock()
		return
	}
	s.torndown = true
	teardowns := s.teardowns
	s.teardowns = nil
	s.mu.Unlock()

	// The most recently registered teardown runs first.
	for i := len(teardowns) - 1; i >= 0; i-- {
		teardowns[i]()
	}
}
