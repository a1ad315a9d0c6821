package connect

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ducka/go-coracle/instrumentation"
	"github.com/ducka/go-coracle/observe"
	"github.com/ducka/go-coracle/utils"
	"github.com/segmentio/kafka-go"
)

// Message is a single record read from a kafka topic.
type Message struct {
	Key       []byte
	Value     []byte
	Topic     string
	Partition int
	Offset    int64
	Time      time.Time
}

// KafkaSource observes a kafka topic. Each subscription runs its own consumer
// reader, so the observable can be observed repeatedly. Reads retry up to the
// configured attempts before the sequence fails; reaching the end of the
// consumer's input completes it. Unsubscribing closes the reader.
func KafkaSource(cfg KafkaConfig, opts ...observe.ObservableOption) *observe.Observable[Message] {
	opts = append([]observe.ObservableOption{observe.WithActivityName("KafkaSource")}, opts...)

	return observe.Producer[Message](func(sub *observe.Subscriber[Message]) (observe.TeardownFunc, error) {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:  cfg.Brokers,
			GroupID:  cfg.Group,
			Topic:    cfg.Topic,
			MinBytes: cfg.MinBytes,
			MaxBytes: cfg.MaxBytes,
		})

		ctx := sub.Context()

		go func() {
			for {
				msg, err := readMessage(ctx, reader, cfg.ReadAttempts)

				if err != nil {
					if errors.Is(err, io.EOF) {
						sub.Complete()
					} else {
						sub.Error(err)
					}
					return
				}

				sub.Next(Message{
					Key:       msg.Key,
					Value:     msg.Value,
					Topic:     msg.Topic,
					Partition: msg.Partition,
					Offset:    msg.Offset,
					Time:      msg.Time,
				})
			}
		}()

		return func() {
			if err := reader.Close(); err != nil {
				instrumentation.Logging().Error("KafkaSource", "failed to close reader: "+err.Error())
			}
		}, nil
	}, opts...)
}

func readMessage(ctx context.Context, reader *kafka.Reader, attempts uint) (kafka.Message, error) {
	var msg kafka.Message

	err := retry.Do(
		func() error {
			var err error
			msg, err = reader.ReadMessage(ctx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled)
		}),
	)

	return msg, err
}

// KafkaSink observes the source and writes each item, serialized as JSON, to
// the configured kafka topic. A write that still fails after the configured
// attempts ends the subscription through the error path. The returned
// subscription stops the sink and closes the writer.
func KafkaSink[T any](source *observe.Observable[T], cfg KafkaConfig, options ...observe.SubscribeOption) observe.Subscription {
	marshaller := utils.NewJsonMarshaller()

	sink := observe.Producer[T](func(downstream *observe.Subscriber[T]) (observe.TeardownFunc, error) {
		writer := &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: time.Duration(cfg.WriteTimeoutMS) * time.Millisecond,
		}

		upstream := observe.Operate(downstream, observe.Handlers[T, T]{
			OnNext: func(d *observe.Subscriber[T], item T) {
				value, err := marshaller.Serialize(item)
				if err != nil {
					d.Error(err)
					return
				}

				err = retry.Do(
					func() error {
						return writer.WriteMessages(d.Context(), kafka.Message{Value: []byte(value)})
					},
					retry.Context(d.Context()),
					retry.Attempts(cfg.WriteAttempts),
					retry.LastErrorOnly(true),
				)
				if err != nil {
					d.Error(err)
					return
				}

				d.Next(item)
			},
		})
		source.SubscribeWith(upstream)

		return func() {
			if err := writer.Close(); err != nil {
				instrumentation.Logging().Error("KafkaSink", "failed to close writer: "+err.Error())
			}
		}, nil
	}, observe.WithActivityName("KafkaSink"))

	return sink.Subscribe(nil, options...)
}
