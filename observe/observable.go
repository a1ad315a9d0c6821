package observe

import (
	"fmt"
	"sync"
	"time"

	"github.com/ducka/go-coracle/instrumentation"
	"github.com/robfig/cron/v3"
	"golang.org/x/exp/constraints"
)

type (
	// OnNextFunc handles the next value in the sequence
	OnNextFunc[T any] func(v T)
	// OnErrorFunc handles the terminal error of a sequence
	OnErrorFunc func(err error)
	// OnCompleteFunc handles the normal end of a sequence
	OnCompleteFunc func()
	// TeardownFunc releases whatever a producer acquired for one subscription.
	// The subscriber runs it at most once, when the subscription ends.
	TeardownFunc func()
	// ProducerFunc drives a single subscription. It pushes events into the
	// subscriber, optionally returns a teardown for the resources it acquired,
	// and returns a non-nil error to end the sequence through the error path.
	// Long running producers must stop once the subscriber's context is done.
	ProducerFunc[T any] func(sub *Subscriber[T]) (TeardownFunc, error)
	// OperatorFunc derives a new observable from a source observable by
	// intercepting the events the source delivers.
	OperatorFunc[TIn any, TOut any] func(source *Observable[TIn]) *Observable[TOut]
)

// Observable is a lazy recipe for producing a sequence of values. Constructing
// one produces nothing; each subscription runs the producer again from
// scratch, so an observable can be observed any number of times.
type Observable[T any] struct {
	opts     observableOptions
	producer ProducerFunc[T]
}

// Producer observes items pushed by a producer callback. The callback runs
// once per subscription.
func Producer[T any](producer ProducerFunc[T], opts ...ObservableOption) *Observable[T] {
	if producer == nil {
		panic(`"Producer" expected a producer func`)
	}
	return &Observable[T]{
		opts:     newObservableOptions(opts...),
		producer: producer,
	}
}

// Empty is an observable that emits nothing. It completes immediately.
func Empty[T any](opts ...ObservableOption) *Observable[T] {
	return Producer[T](func(sub *Subscriber[T]) (TeardownFunc, error) {
		sub.Complete()
		return nil, nil
	}, opts...)
}

// Never is an observable that emits nothing and never terminates. Its
// subscriptions end only when the consumer unsubscribes.
func Never[T any](opts ...ObservableOption) *Observable[T] {
	return Producer[T](func(sub *Subscriber[T]) (TeardownFunc, error) {
		return nil, nil
	}, opts...)
}

// Value is an observable that emits a single item and completes.
func Value[T any](value T, opts ...ObservableOption) *Observable[T] {
	return Producer[T](func(sub *Subscriber[T]) (TeardownFunc, error) {
		sub.Next(value)
		sub.Complete()
		return nil, nil
	}, opts...)
}

// Sequence observes a slice of values in order.
func Sequence[T any](sequence []T, opts ...ObservableOption) *Observable[T] {
	return Producer[T](func(sub *Subscriber[T]) (TeardownFunc, error) {
		for _, item := range sequence {
			if err := sub.Context().Err(); err != nil {
				return nil, err
			}
			sub.Next(item)
		}
		sub.Complete()
		return nil, nil
	}, opts...)
}

// Range observes a range of generated integers.
func Range[T constraints.Integer](start, count T, opts ...ObservableOption) *Observable[T] {
	return Producer[T](func(sub *Subscriber[T]) (TeardownFunc, error) {
		for i := start; i < start+count; i++ {
			if err := sub.Context().Err(); err != nil {
				return nil, err
			}
			sub.Next(i)
		}
		sub.Complete()
		return nil, nil
	}, opts...)
}

// Thrown is an observable that emits nothing and terminates with the given
// error as soon as it is observed.
func Thrown[T any](err error, opts ...ObservableOption) *Observable[T] {
	return Producer[T](func(sub *Subscriber[T]) (TeardownFunc, error) {
		return nil, err
	}, opts...)
}

// Timer is an observable that emits the current time on a fixed interval. Each
// subscription runs its own ticker, which stops when the subscription ends.
func Timer(interval time.Duration, opts ...ObservableOption) *Observable[time.Time] {
	return Producer[time.Time](func(sub *Subscriber[time.Time]) (TeardownFunc, error) {
		ticker := time.NewTicker(interval)
		ctx := sub.Context()

		go func() {
			for {
				select {
				case <-ctx.Done():
					sub.Error(ctx.Err())
					return
				case t := <-ticker.C:
					sub.Next(t)
				}
			}
		}()

		return ticker.Stop, nil
	}, opts...)
}

// Cron is an observable that emits scheduled times on the specified cron
// schedule. An unparseable pattern ends the sequence through the error path.
func Cron(cronPattern string, opts ...ObservableOption) *Observable[time.Time] {
	return Producer[time.Time](func(sub *Subscriber[time.Time]) (TeardownFunc, error) {
		parser := cron.NewParser(
			cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
		)

		schedule, err := parser.Parse(cronPattern)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cron pattern: %v", err)
		}

		ctx := sub.Context()

		go func() {
			for {
				next := schedule.Next(time.Now())
				timer := time.NewTimer(time.Until(next))

				select {
				case <-ctx.Done():
					timer.Stop()
					sub.Error(ctx.Err())
					return
				case <-timer.C:
					sub.Next(next)
				}
			}
		}()

		return nil, nil
	}, opts...)
}

// Subscribe observes the observable with a handler per value and, optionally,
// handlers for the terminal events. Synchronous producers finish before the
// call returns; producers driven by asynchronous sources outlive it unless
// WithWaitTillComplete is supplied. The returned subscription cancels the
// underlying producer when unsubscribed.
func (o *Observable[T]) Subscribe(onNext OnNextFunc[T], options ...SubscribeOption) Subscription {
	var subOpts subscribeOptions
	for _, opt := range options {
		opt(&subOpts)
	}

	sub := newSubscriber[T](o.opts.ctx, o.opts.activity, onNext, subOpts.onError, subOpts.onComplete)
	o.drive(sub)

	if subOpts.waitTillComplete {
		<-sub.Context().Done()
	}

	return sub
}

// SubscribeWith observes the observable with a full observer. An observer that
// is not already a canonical subscriber is wrapped into one, so foreign
// implementations receive the same lifecycle guarantees.
func (o *Observable[T]) SubscribeWith(observer Observer[T], options ...SubscribeOption) Subscription {
	if observer == nil {
		panic(`"SubscribeWith" expected an observer`)
	}

	var subOpts subscribeOptions
	for _, opt := range options {
		opt(&subOpts)
	}

	sub, ok := observer.(*Subscriber[T])
	if !ok {
		sub = newSubscriber[T](o.opts.ctx, o.opts.activity, observer.Next, observer.Error, observer.Complete)
	} else if o.opts.hasContext() {
		sub.mergeContext(o.opts.ctx)
	}

	o.drive(sub)

	if subOpts.waitTillComplete {
		<-sub.Context().Done()
	}

	return sub
}

// ToResult synchronously observes the observable and returns the emitted
// sequence reified as notifications, including the terminal event. It blocks
// until the sequence terminates.
func (o *Observable[T]) ToResult() []Notification[T] {
	var (
		mu      sync.Mutex
		results []Notification[T]
	)

	o.Subscribe(
		func(v T) {
			mu.Lock()
			results = append(results, Next(v))
			mu.Unlock()
		},
		WithOnError(func(err error) {
			mu.Lock()
			results = append(results, Error[T](err))
			mu.Unlock()
		}),
		WithOnComplete(func() {
			mu.Lock()
			results = append(results, Complete[T]())
			mu.Unlock()
		}),
		WithWaitTillComplete(),
	)

	mu.Lock()
	defer mu.Unlock()
	return results
}

func (o *Observable[T]) drive(sub *Subscriber[T]) {
	instrumentation.Metrics().Incr(o.opts.activity, "subscription_started", 1)

	teardown, err := o.producer(sub)
	if teardown != nil {
		sub.Add(teardown)
	}
	// A producer that fails synchronously surfaces through the error path
	// rather than out of the subscribe call. The teardown is registered first
	// so the failure still releases whatever the producer acquired.
	if err != nil {
		sub.Error(err)
	}
}
