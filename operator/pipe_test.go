package operator

import (
	"context"
	"strconv"
	"testing"

	"github.com/ducka/go-coracle/observe"
	"github.com/stretchr/testify/assert"
)

func TestPipe(t *testing.T) {
	isEven := func(item int, index int) bool { return item%2 == 0 }
	itoa := func(item int, index int) (string, error) { return strconv.Itoa(item), nil }

	t.Run("When piping a sequence through Filter and Map", func(t *testing.T) {
		results := Pipe2(
			observe.Range(1, 5),
			Filter(isEven),
			Map(itoa),
		).ToResult()

		t.Run("Then the operators apply in order", func(t *testing.T) {
			assert.EqualValues(t,
				[]observe.Notification[string]{
					observe.Next("2"),
					observe.Next("4"),
					observe.Complete[string](),
				},
				results,
			)
		})
	})

	t.Run("When piping a sequence through Filter, Map and Take", func(t *testing.T) {
		results := Pipe3(
			observe.Range(1, 5),
			Filter(isEven),
			Map(itoa),
			Take[string](1),
		).ToResult()

		t.Run("Then the tail operator ends the sequence early", func(t *testing.T) {
			assert.EqualValues(t,
				[]observe.Notification[string]{
					observe.Next("2"),
					observe.Complete[string](),
				},
				results,
			)
		})
	})

	t.Run("When piping from a source with a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results := Pipe1(
			observe.Sequence([]int{1, 2, 3}, observe.WithContext(ctx)),
			Map(itoa),
		).ToResult()

		t.Run("Then the cancellation reaches the subscriber through the pipe", func(t *testing.T) {
			assert.Len(t, results, 1)
			assert.Equal(t, observe.ErrorKind, results[0].Kind())
			assert.ErrorIs(t, results[0].Err(), context.Canceled)
		})
	})
}
