package testutils

import (
	"errors"
	"testing"
	"time"

	"github.com/ducka/go-coracle/observe"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	t.Run("When recording a completing stream", func(t *testing.T) {
		sut := NewRecorder[int]()

		observe.Sequence([]int{1, 2}).SubscribeWith(sut)

		t.Run("Then the recorder holds the full event sequence", func(t *testing.T) {
			assert.Equal(t, []int{1, 2}, sut.Values())
			assert.True(t, sut.Completed())
			assert.NoError(t, sut.Err())
			assert.EqualValues(t,
				[]observe.Notification[int]{
					observe.Next(1),
					observe.Next(2),
					observe.Complete[int](),
				},
				sut.Notifications(),
			)
		})
	})

	t.Run("When recording a failing stream", func(t *testing.T) {
		err := errors.New("error")
		sut := NewRecorder[int]()

		observe.Thrown[int](err).SubscribeWith(sut)

		t.Run("Then the recorder holds the failure", func(t *testing.T) {
			assert.Empty(t, sut.Values())
			assert.False(t, sut.Completed())
			assert.ErrorIs(t, sut.Err(), err)
		})
	})

	t.Run("When recording an asynchronous stream", func(t *testing.T) {
		sut := NewRecorder[int]()

		async := observe.Producer[int](func(sub *observe.Subscriber[int]) (observe.TeardownFunc, error) {
			go func() {
				sub.Next(1)
				sub.Complete()
			}()
			return nil, nil
		})
		async.SubscribeWith(sut)

		t.Run("Then waiting blocks until the terminal event is recorded", func(t *testing.T) {
			assert.True(t, sut.WaitUntilDone(time.Second))
			assert.Equal(t, []int{1}, sut.Values())
			assert.True(t, sut.Completed())
		})
	})

	t.Run("When waiting on a stream that never terminates", func(t *testing.T) {
		sut := NewRecorder[int]()

		observe.Never[int]().SubscribeWith(sut)

		t.Run("Then the wait times out", func(t *testing.T) {
			assert.False(t, sut.WaitUntilDone(10*time.Millisecond))
		})
	})
}
