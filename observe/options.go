package observe

import (
	"context"
)

type observableOptions struct {
	ctx      context.Context
	activity string
}

func newObservableOptions(options ...ObservableOption) observableOptions {
	opts := observableOptions{
		ctx: context.Background(),
	}
	for _, opt := range options {
		opt(&opts)
	}
	return opts
}

func (o observableOptions) hasContext() bool {
	return o.ctx != context.Background()
}

// ObservableOption configures an observable at construction time.
type ObservableOption func(options *observableOptions)

// WithContext bounds every subscription to the observable by the given
// context. Cancelling it surfaces on the stream's error path once the
// producer observes the cancellation.
func WithContext(ctx context.Context) ObservableOption {
	return func(options *observableOptions) {
		if ctx != nil {
			options.ctx = ctx
		}
	}
}

// WithActivityName names the observable for instrumentation purposes.
func WithActivityName(activity string) ObservableOption {
	return func(options *observableOptions) {
		options.activity = activity
	}
}

type subscribeOptions struct {
	onError          OnErrorFunc
	onComplete       OnCompleteFunc
	waitTillComplete bool
}

// SubscribeOption configures a single subscription.
type SubscribeOption func(options *subscribeOptions)

// WithOnError registers a handler for the terminal error of the sequence.
func WithOnError(onError OnErrorFunc) SubscribeOption {
	return func(options *subscribeOptions) {
		options.onError = onError
	}
}

// WithOnComplete registers a handler for the normal end of the sequence.
func WithOnComplete(onComplete OnCompleteFunc) SubscribeOption {
	return func(options *subscribeOptions) {
		options.onComplete = onComplete
	}
}

// WithWaitTillComplete blocks the Subscribe call until the subscription ends.
// Intended for producers driven by asynchronous sources, which otherwise
// outlive the call.
func WithWaitTillComplete() SubscribeOption {
	return func(options *subscribeOptions) {
		options.waitTillComplete = true
	}
}
