package operator

import (
	"github.com/ducka/go-coracle/observe"
)

// Tap invokes the given callbacks as a side effect of each event and forwards
// the event unchanged. Nil callbacks are skipped.
func Tap[T any](onNext observe.OnNextFunc[T], onError observe.OnErrorFunc, onComplete observe.OnCompleteFunc, opts ...observe.ObservableOption) observe.OperatorFunc[T, T] {
	opts = defaultActivityName("Tap", opts)
	return func(source *observe.Observable[T]) *observe.Observable[T] {
		return observe.Producer[T](
			func(downstream *observe.Subscriber[T]) (observe.TeardownFunc, error) {
				upstream := observe.Operate(downstream, observe.Handlers[T, T]{
					OnNext: func(d *observe.Subscriber[T], item T) {
						if onNext != nil {
							onNext(item)
						}
						d.Next(item)
					},
					OnError: func(d *observe.Subscriber[T], err error) {
						if onError != nil {
							onError(err)
						}
						d.Error(err)
					},
					OnComplete: func(d *observe.Subscriber[T]) {
						if onComplete != nil {
							onComplete()
						}
						d.Complete()
					},
				})
				source.SubscribeWith(upstream)
				return nil, nil
			},
			opts...,
		)
	}
}
