package journal

import (
	"errors"
	"fmt"

	"github.com/ducka/go-coracle/observe"
	"github.com/ducka/go-coracle/utils"
)

// Record is the serialized form of a single stream notification. Values are
// carried as JSON so records survive any backing store that can hold strings.
type Record struct {
	Seq   int64                    `json:"seq"`
	Kind  observe.NotificationKind `json:"kind"`
	Value string                   `json:"value,omitempty"`
	Error string                   `json:"error,omitempty"`
}

// EncodeNotification flattens a notification into a Record at the given
// position of the stream.
func EncodeNotification[T any](seq int64, n observe.Notification[T], marshaller utils.Marshaller) (Record, error) {
	record := Record{Seq: seq, Kind: n.Kind()}

	switch n.Kind() {
	case observe.NextKind:
		value, err := marshaller.Serialize(n.Value())
		if err != nil {
			return Record{}, err
		}
		record.Value = value
	case observe.ErrorKind:
		record.Error = n.Err().Error()
	case observe.CompleteKind:
	default:
		return Record{}, fmt.Errorf("unknown notification kind %q", n.Kind())
	}

	return record, nil
}

// DecodeNotification reconstitutes the notification a Record was encoded
// from. A recorded error comes back as an opaque error carrying the recorded
// message, since the original error type does not survive serialization.
func DecodeNotification[T any](record Record, marshaller utils.Marshaller) (observe.Notification[T], error) {
	switch record.Kind {
	case observe.NextKind:
		var value T
		if err := marshaller.Deserialize(record.Value, &value); err != nil {
			return nil, err
		}
		return observe.Next(value), nil
	case observe.ErrorKind:
		return observe.Error[T](errors.New(record.Error)), nil
	case observe.CompleteKind:
		return observe.Complete[T](), nil
	default:
		return nil, fmt.Errorf("unknown record kind %q", record.Kind)
	}
}
