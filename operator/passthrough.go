package operator

import (
	"github.com/ducka/go-coracle/observe"
)

// Passthrough is an operator that passes all items through without
// modification.
func Passthrough[T any](opts ...observe.ObservableOption) observe.OperatorFunc[T, T] {
	opts = defaultActivityName("Passthrough", opts)
	return func(source *observe.Observable[T]) *observe.Observable[T] {
		return observe.Producer[T](
			func(downstream *observe.Subscriber[T]) (observe.TeardownFunc, error) {
				upstream := observe.Operate(downstream, observe.Handlers[T, T]{})
				source.SubscribeWith(upstream)
				return nil, nil
			},
			opts...,
		)
	}
}
