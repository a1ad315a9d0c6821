package operator

import (
	"github.com/ducka/go-coracle/observe"
)

// Materialize reifies the lifecycle of the source sequence: every event
// arrives downstream as a Notification value. An upstream error becomes an
// error notification followed by normal completion, and an upstream
// completion becomes a completion notification followed by normal completion,
// so the derived sequence itself always ends normally.
func Materialize[T any](opts ...observe.ObservableOption) observe.OperatorFunc[T, observe.Notification[T]] {
	opts = defaultActivityName("Materialize", opts)
	return func(source *observe.Observable[T]) *observe.Observable[observe.Notification[T]] {
		return observe.Producer[observe.Notification[T]](
			func(downstream *observe.Subscriber[observe.Notification[T]]) (observe.TeardownFunc, error) {
				upstream := observe.Operate(downstream, observe.Handlers[T, observe.Notification[T]]{
					OnNext: func(d *observe.Subscriber[observe.Notification[T]], value T) {
						d.Next(observe.Next(value))
					},
					OnError: func(d *observe.Subscriber[observe.Notification[T]], err error) {
						d.Next(observe.Error[T](err))
						d.Complete()
					},
					OnComplete: func(d *observe.Subscriber[observe.Notification[T]]) {
						d.Next(observe.Complete[T]())
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
