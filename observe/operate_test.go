package observe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperate(t *testing.T) {

	makeDownstream := func(values *[]string, failure *error, completions *int) *Subscriber[string] {
		return newSubscriber[string](
			context.Background(),
			"test",
			func(value string) { *values = append(*values, value) },
			func(err error) { *failure = err },
			func() { *completions++ },
		)
	}

	t.Run("When the operator intercepts no events", func(t *testing.T) {
		var (
			values      []string
			failure     error
			completions int
		)
		downstream := makeDownstream(&values, &failure, &completions)

		sut := Operate(downstream, Handlers[string, string]{})

		sut.Next("a")
		sut.Next("b")
		sut.Complete()

		t.Run("Then every event forwards to the downstream subscriber unchanged", func(t *testing.T) {
			assert.Equal(t, []string{"a", "b"}, values)
			assert.NoError(t, failure)
			assert.Equal(t, 1, completions)
		})
	})

	t.Run("When the operator intercepts values", func(t *testing.T) {
		var (
			values      []string
			failure     error
			completions int
		)
		downstream := makeDownstream(&values, &failure, &completions)

		sut := Operate(downstream, Handlers[string, string]{
			OnNext: func(d *Subscriber[string], value string) {
				d.Next(value + "!")
			},
		})

		sut.Next("a")
		sut.Complete()

		t.Run("Then the downstream subscriber observes the intercepted values", func(t *testing.T) {
			assert.Equal(t, []string{"a!"}, values)
			assert.Equal(t, 1, completions)
		})
	})

	t.Run("When the source fails", func(t *testing.T) {
		err := errors.New("source error")

		var (
			values      []string
			failure     error
			completions int
		)
		downstream := makeDownstream(&values, &failure, &completions)

		sut := Operate(downstream, Handlers[string, string]{})

		sut.Next("a")
		sut.Error(err)
		sut.Next("b")
		sut.Complete()

		t.Run("Then the error forwards downstream and ends both subscriptions", func(t *testing.T) {
			assert.Equal(t, []string{"a"}, values)
			assert.ErrorIs(t, failure, err)
			assert.Zero(t, completions)
			assert.True(t, sut.Closed())
			assert.True(t, downstream.Closed())
		})
	})

	t.Run("When an operator changes the element type without intercepting values", func(t *testing.T) {
		downstream := newSubscriber[string](context.Background(), "test", nil, nil, nil)

		sut := Operate(downstream, Handlers[int, string]{})

		t.Run("Then forwarding a value panics", func(t *testing.T) {
			assert.PanicsWithValue(t, `"Operate" expected an OnNext handler when the operator changes the element type`, func() {
				sut.Next(42)
			})
		})
	})

	t.Run("When the downstream subscription ends before the source does", func(t *testing.T) {
		var values []string
		downstream := newSubscriber[string](context.Background(), "test",
			func(value string) { values = append(values, value) }, nil, nil)

		sut := Operate(downstream, Handlers[string, string]{})

		sut.Next("a")
		downstream.Unsubscribe()
		sut.Next("b")

		t.Run("Then the operator unsubscribes from its source", func(t *testing.T) {
			assert.True(t, sut.Closed())
			assert.Equal(t, Cancelled, sut.State())
			assert.Equal(t, []string{"a"}, values)
		})
	})

	t.Run("When the operator completes the downstream sequence early", func(t *testing.T) {
		var (
			values      []string
			failure     error
			completions int
		)
		downstream := makeDownstream(&values, &failure, &completions)

		sut := Operate(downstream, Handlers[string, string]{
			OnNext: func(d *Subscriber[string], value string) {
				d.Next(value)
				d.Complete()
			},
		})

		sut.Next("a")

		t.Run("Then the early completion tears the operator's source subscription down", func(t *testing.T) {
			assert.Equal(t, []string{"a"}, values)
			assert.Equal(t, 1, completions)
			assert.True(t, sut.Closed())
		})
	})

	t.Run("When the operator's subscription context derives from the downstream one", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		downstream := newSubscriber[string](ctx, "test", nil, nil, nil)

		sut := Operate(downstream, Handlers[string, string]{})

		cancel()
		<-sut.Context().Done()

		t.Run("Then cancelling the downstream context reaches the operator", func(t *testing.T) {
			assert.ErrorIs(t, sut.Context().Err(), context.Canceled)
		})
	})
}
