package observe

type (
	// HandleNextFunc intercepts a value on its way to the downstream subscriber.
	HandleNextFunc[TIn any, TOut any] func(downstream *Subscriber[TOut], value TIn)
	// HandleErrorFunc intercepts the terminal error on its way to the
	// downstream subscriber.
	HandleErrorFunc[TOut any] func(downstream *Subscriber[TOut], err error)
	// HandleCompleteFunc intercepts the normal end of the sequence on its way
	// to the downstream subscriber.
	HandleCompleteFunc[TOut any] func(downstream *Subscriber[TOut])
)

// Handlers intercept the events an operator receives from its source. An
// omitted handler forwards its event to the downstream subscriber unchanged.
type Handlers[TIn any, TOut any] struct {
	OnNext     HandleNextFunc[TIn, TOut]
	OnError    HandleErrorFunc[TOut]
	OnComplete HandleCompleteFunc[TOut]
}

// Operate builds the subscriber an operator turns towards its source. Events
// the source delivers pass through the handlers, which emit whatever they
// decide onto the downstream subscriber. The downstream subscriber keeps
// enforcing the terminal protocol, so no handler can double-terminate it, and
// a handler ending the downstream sequence early unsubscribes the operator
// from its source as a teardown of the downstream subscription.
func Operate[TIn any, TOut any](downstream *Subscriber[TOut], handlers Handlers[TIn, TOut]) *Subscriber[TIn] {
	onNext := handlers.OnNext
	if onNext == nil {
		onNext = forwardNext[TIn, TOut]
	}
	onError := handlers.OnError
	if onError == nil {
		onError = func(d *Subscriber[TOut], err error) {
			d.Error(err)
		}
	}
	onComplete := handlers.OnComplete
	if onComplete == nil {
		onComplete = func(d *Subscriber[TOut]) {
			d.Complete()
		}
	}

	upstream := newSubscriber[TIn](
		downstream.Context(),
		downstream.activity,
		func(value TIn) { onNext(downstream, value) },
		func(err error) { onError(downstream, err) },
		func() { onComplete(downstream) },
	)

	downstream.Add(upstream.Unsubscribe)

	return upstream
}

// forwardNext forwards a value unchanged when the operator did not intercept
// it. Operators that change the element type must intercept OnNext.
func forwardNext[TIn any, TOut any](downstream *Subscriber[TOut], value TIn) {
	forwarded, ok := any(value).(TOut)
	if !ok {
		panic(`"Operate" expected an OnNext handler when the operator changes the element type`)
	}
	downstream.Next(forwarded)
}
