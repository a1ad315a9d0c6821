package operator

import (
	"github.com/ducka/go-coracle/observe"
)

// Take emits the first count items of the source sequence and then completes,
// unsubscribing from the source. A count of zero or less completes without
// observing anything.
func Take[T any](count int, opts ...observe.ObservableOption) observe.OperatorFunc[T, T] {
	opts = defaultActivityName("Take", opts)
	return func(source *observe.Observable[T]) *observe.Observable[T] {
		return observe.Producer[T](
			func(downstream *observe.Subscriber[T]) (observe.TeardownFunc, error) {
				if count <= 0 {
					downstream.Complete()
					return nil, nil
				}

				taken := 0

				upstream := observe.Operate(downstream, observe.Handlers[T, T]{
					OnNext: func(d *observe.Subscriber[T], item T) {
						taken++
						d.Next(item)

						// Completing the downstream tears this operator's
						// source subscription down with it.
						if taken >= count {
							d.Complete()
						}
					},
				})
				source.SubscribeWith(upstream)
				return nil, nil
			},
			opts...,
		)
	}
}
