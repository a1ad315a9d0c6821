package journal

import (
	"context"
	"testing"
	"time"

	"github.com/ducka/go-coracle/observe"
	"github.com/ducka/go-coracle/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestMemoryJournalTestSuite(t *testing.T) {
	testSuite := NewJournalTestSuite(func() Journal {
		return NewMemoryJournal()
	})
	suite.Run(t, testSuite)
}

func TestMemoryJournalExpiry(t *testing.T) {
	t.Run("When a journaled stream outlives its expiry", func(t *testing.T) {
		sut := NewMemoryJournal()
		defer sut.Close()

		streamID := uuid.NewString()

		err := sut.Append(context.Background(), streamID, []Record{
			{Seq: 0, Kind: observe.NextKind, Value: "1"},
		}, WithExpiry(time.Minute))
		assert.NoError(t, err)

		// Age the stream past its expiry
		entry := sut.streams[streamID]
		entry.ExpireOn = utils.ToPtr(time.Now().Add(-time.Second))
		sut.streams[streamID] = entry

		t.Run("Then loading the stream returns nothing", func(t *testing.T) {
			loaded, err := sut.Load(context.Background(), streamID)
			assert.NoError(t, err)
			assert.Empty(t, loaded)
		})
	})
}
