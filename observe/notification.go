package observe

// NotificationKind identifies which stream event a Notification reifies.
type NotificationKind string

const (
	// NextKind identifies a notification carrying the next value in the sequence
	NextKind NotificationKind = "NextKind"
	// ErrorKind identifies a notification carrying the terminal error of the sequence
	ErrorKind NotificationKind = "ErrorKind"
	// CompleteKind identifies a notification marking the normal end of the sequence
	CompleteKind NotificationKind = "CompleteKind"
)

// Notification is an immutable record of a single stream event. A materialized
// stream emits its lifecycle as Notification values, which lets downstream code
// inspect, persist and later replay errors and completion like ordinary data.
type Notification[T any] interface {
	Kind() NotificationKind
	// Value returns the value carried by a NextKind notification, and the zero
	// value otherwise.
	Value() T
	// Err returns the error carried by an ErrorKind notification, and nil
	// otherwise.
	Err() error
	// Done indicates the notification marks the normal end of the sequence.
	Done() bool
}

type notification[T any] struct {
	kind NotificationKind
	v    T
	err  error
	done bool
}

var _ Notification[any] = (*notification[any])(nil)

func (n *notification[T]) Kind() NotificationKind {
	return n.kind
}

func (n *notification[T]) Value() T {
	return n.v
}

func (n *notification[T]) Err() error {
	return n.err
}

func (n *notification[T]) Done() bool {
	return n.done
}

// Next creates a notification carrying the next value in the sequence.
func Next[T any](v T) Notification[T] {
	return &notification[T]{kind: NextKind, v: v}
}

// Error creates a notification carrying a terminal error.
func Error[T any](err error) Notification[T] {
	return &notification[T]{kind: ErrorKind, err: err}
}

// Complete creates a notification marking the normal end of the sequence.
// Completion carries no state, so any two completion notifications are
// interchangeable.
func Complete[T any]() Notification[T] {
	return &notification[T]{kind: CompleteKind, done: true}
}
