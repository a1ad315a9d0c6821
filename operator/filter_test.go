package operator

import (
	"testing"

	"github.com/ducka/go-coracle/observe"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Run("When emitting a sequence of 10 elements", func(t *testing.T) {
		ob := observe.Range(0, 10)

		t.Run("And filtering the sequence to emit only even numbers", func(t *testing.T) {
			of := Filter(func(item int, index int) bool {
				return item%2 == 0
			})(ob)

			t.Run("Then the sequence should contain only the even numbers", func(t *testing.T) {
				assert.EqualValues(t,
					[]observe.Notification[int]{
						observe.Next(0),
						observe.Next(2),
						observe.Next(4),
						observe.Next(6),
						observe.Next(8),
						observe.Complete[int](),
					},
					of.ToResult(),
				)
			})
		})
	})

	t.Run("When the predicate inspects the element index", func(t *testing.T) {
		var indexes []int

		of := Filter(func(item string, index int) bool {
			indexes = append(indexes, index)
			return index > 0
		})(observe.Sequence([]string{"a", "b", "c"}))

		results := of.ToResult()

		t.Run("Then the index counts every inspected element", func(t *testing.T) {
			assert.Equal(t, []int{0, 1, 2}, indexes)
			assert.EqualValues(t,
				[]observe.Notification[string]{
					observe.Next("b"),
					observe.Next("c"),
					observe.Complete[string](),
				},
				results,
			)
		})
	})

	t.Run("When constructing a Filter operator without a predicate", func(t *testing.T) {
		t.Run("Then the construction panics", func(t *testing.T) {
			assert.PanicsWithValue(t, `"Filter" expected predicate func`, func() {
				Filter[int](nil)
			})
		})
	})
}
