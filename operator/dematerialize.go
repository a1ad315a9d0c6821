package operator

import (
	"github.com/ducka/go-coracle/observe"
)

// Dematerialize is the inverse of Materialize: it consumes a sequence of
// Notification values and replays the events they reify. An error
// notification fails the derived sequence and a completion notification
// completes it; whatever follows a terminal notification is dropped by the
// downstream subscriber.
func Dematerialize[T any](opts ...observe.ObservableOption) observe.OperatorFunc[observe.Notification[T], T] {
	opts = defaultActivityName("Dematerialize", opts)
	return func(source *observe.Observable[observe.Notification[T]]) *observe.Observable[T] {
		return observe.Producer[T](
			func(downstream *observe.Subscriber[T]) (observe.TeardownFunc, error) {
				upstream := observe.Operate(downstream, observe.Handlers[observe.Notification[T], T]{
					OnNext: func(d *observe.Subscriber[T], n observe.Notification[T]) {
						switch n.Kind() {
						case observe.NextKind:
							d.Next(n.Value())
						case observe.ErrorKind:
							d.Error(n.Err())
						case observe.CompleteKind:
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
