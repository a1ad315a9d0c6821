package operator

import (
	"testing"

	"github.com/ducka/go-coracle/observe"
	"github.com/stretchr/testify/assert"
)

func TestTake(t *testing.T) {
	t.Run("When taking 2 elements from a sequence of 10", func(t *testing.T) {
		var (
			emitted   int
			teardowns int
		)

		source := observe.Producer[int](func(sub *observe.Subscriber[int]) (observe.TeardownFunc, error) {
			for i := 1; i <= 10; i++ {
				if sub.Closed() {
					break
				}
				emitted++
				sub.Next(i)
			}
			sub.Complete()
			return func() { teardowns++ }, nil
		})

		results := Take[int](2)(source).ToResult()

		t.Run("Then the derived sequence completes after 2 elements", func(t *testing.T) {
			assert.EqualValues(t,
				[]observe.Notification[int]{
					observe.Next(1),
					observe.Next(2),
					observe.Complete[int](),
				},
				results,
			)
		})

		t.Run("Then the source stops producing once the count is reached", func(t *testing.T) {
			assert.Equal(t, 2, emitted)
			assert.Equal(t, 1, teardowns)
		})
	})

	t.Run("When taking more elements than the source emits", func(t *testing.T) {
		results := Take[int](5)(observe.Sequence([]int{1, 2})).ToResult()

		t.Run("Then the derived sequence mirrors the source", func(t *testing.T) {
			assert.EqualValues(t,
				[]observe.Notification[int]{
					observe.Next(1),
					observe.Next(2),
					observe.Complete[int](),
				},
				results,
			)
		})
	})

	t.Run("When taking 0 elements", func(t *testing.T) {
		subscriptions := 0

		source := observe.Producer[int](func(sub *observe.Subscriber[int]) (observe.TeardownFunc, error) {
			subscriptions++
			sub.Complete()
			return nil, nil
		})

		results := Take[int](0)(source).ToResult()

		t.Run("Then the derived sequence completes without observing the source", func(t *testing.T) {
			assert.EqualValues(t, []observe.Notification[int]{observe.Complete[int]()}, results)
			assert.Zero(t, subscriptions)
		})
	})
}
