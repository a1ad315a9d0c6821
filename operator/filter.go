package operator

import (
	"github.com/ducka/go-coracle/observe"
)

type (
	PredicateFunc[T any] func(item T, index int) bool
)

// Filter emits only the items of the source sequence that satisfy the
// predicate. The index counts every item the predicate inspects.
func Filter[T any](predicate PredicateFunc[T], opts ...observe.ObservableOption) observe.OperatorFunc[T, T] {
	if predicate == nil {
		panic(`"Filter" expected predicate func`)
	}
	opts = defaultActivityName("Filter", opts)
	return func(source *observe.Observable[T]) *observe.Observable[T] {
		return observe.Producer[T](
			func(downstream *observe.Subscriber[T]) (observe.TeardownFunc, error) {
				index := 0

				upstream := observe.Operate(downstream, observe.Handlers[T, T]{
					OnNext: func(d *observe.Subscriber[T], item T) {
						keep := predicate(item, index)
						index++

						if keep {
							d.Next(item)
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
