package operator

import (
	"github.com/ducka/go-coracle/observe"
)

type (
	MapFunc[TIn, TOut any] func(item TIn, index int) (TOut, error)
)

// Map transforms the items emitted by an Observable by applying a function to
// each item. A mapper error ends the derived sequence through the error path.
func Map[TIn, TOut any](mapper MapFunc[TIn, TOut], opts ...observe.ObservableOption) observe.OperatorFunc[TIn, TOut] {
	if mapper == nil {
		panic(`"Map" expected mapper func`)
	}
	opts = defaultActivityName("Map", opts)
	return func(source *observe.Observable[TIn]) *observe.Observable[TOut] {
		return observe.Producer[TOut](
			func(downstream *observe.Subscriber[TOut]) (observe.TeardownFunc, error) {
				// The index lives inside the producer so every subscription
				// counts its own sequence from zero.
				index := 0

				upstream := observe.Operate(downstream, observe.Handlers[TIn, TOut]{
					OnNext: func(d *observe.Subscriber[TOut], item TIn) {
						output, err := mapper(item, index)
						index++

						if err != nil {
							d.Error(err)
							return
						}

						d.Next(output)
					},
				})
				source.SubscribeWith(upstream)
				return nil, nil
			},
			opts...,
		)
	}
}
