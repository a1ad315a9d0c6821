package journal

import (
	"github.com/ducka/go-coracle/instrumentation"
	"github.com/ducka/go-coracle/observe"
	"github.com/ducka/go-coracle/utils"
)

// RecordStream is an operator that appends the materialized form of every
// event passing through it to a journal before forwarding the event
// unchanged. A failed append ends the sequence through the error path. On the
// error path itself the original failure wins, so there the append is best
// effort.
func RecordStream[T any](j Journal, streamID string, options ...AppendOption) observe.OperatorFunc[T, T] {
	if j == nil {
		panic(`"RecordStream" expected a journal`)
	}

	marshaller := utils.NewJsonMarshaller()

	return func(source *observe.Observable[T]) *observe.Observable[T] {
		return observe.Producer[T](
			func(downstream *observe.Subscriber[T]) (observe.TeardownFunc, error) {
				var seq int64

				record := func(n observe.Notification[T]) error {
					encoded, err := EncodeNotification(seq, n, marshaller)
					if err != nil {
						return err
					}
					seq++
					return j.Append(downstream.Context(), streamID, []Record{encoded}, options...)
				}

				upstream := observe.Operate(downstream, observe.Handlers[T, T]{
					OnNext: func(d *observe.Subscriber[T], item T) {
						if err := record(observe.Next(item)); err != nil {
							d.Error(err)
							return
						}
						d.Next(item)
					},
					OnError: func(d *observe.Subscriber[T], err error) {
						if recordErr := record(observe.Error[T](err)); recordErr != nil {
							instrumentation.Logging().Warn("RecordStream", "failed to journal stream error: "+recordErr.Error())
						}
						d.Error(err)
					},
					OnComplete: func(d *observe.Subscriber[T]) {
						if err := record(observe.Complete[T]()); err != nil {
							d.Error(err)
							return
						}
						d.Complete()
					},
				})
				source.SubscribeWith(upstream)
				return nil, nil
			},
			observe.WithActivityName("RecordStream"),
		)
	}
}

// Replay is an observable that replays a journaled stream: the recorded
// values are emitted in sequence order and the recorded terminal event ends
// the replayed sequence the way the original ended. A journal without a
// recorded terminal event replays as a normally completed stream.
func Replay[T any](j Journal, streamID string, opts ...observe.ObservableOption) *observe.Observable[T] {
	if j == nil {
		panic(`"Replay" expected a journal`)
	}

	marshaller := utils.NewJsonMarshaller()
	opts = append([]observe.ObservableOption{observe.WithActivityName("Replay")}, opts...)

	return observe.Producer[T](func(sub *observe.Subscriber[T]) (observe.TeardownFunc, error) {
		records, err := j.Load(sub.Context(), streamID)
		if err != nil {
			return nil, err
		}

		for _, r := range records {
			if err := sub.Context().Err(); err != nil {
				return nil, err
			}

			n, err := DecodeNotification[T](r, marshaller)
			if err != nil {
				return nil, err
			}

			switch n.Kind() {
			case observe.NextKind:
				sub.Next(n.Value())
			case observe.ErrorKind:
				sub.Error(n.Err())
				return nil, nil
			case observe.CompleteKind:
				sub.Complete()
				return nil, nil
			}
		}

		sub.Complete()
		return nil, nil
	}, opts...)
}
