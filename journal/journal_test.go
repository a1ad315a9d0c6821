package journal

import (
	"context"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/ducka/go-coracle/observe"
	"github.com/ducka/go-coracle/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type purchaseEvent struct {
	Id       string  `json:"id"`
	Customer string  `json:"customer"`
	Amount   float64 `json:"amount"`
}

func fakePurchase() purchaseEvent {
	return purchaseEvent{
		Id:       gofakeit.UUID(),
		Customer: gofakeit.Name(),
		Amount:   gofakeit.Price(1, 1000),
	}
}

// JournalTestSuite exercises the Journal contract against any backend. Each
// backend's own test file runs the suite with its factory.
type JournalTestSuite struct {
	suite.Suite
	ctx        context.Context
	marshaller utils.Marshaller
	createSUT  func() Journal
}

func NewJournalTestSuite(journalFactory func() Journal) *JournalTestSuite {
	return &JournalTestSuite{
		createSUT:  journalFactory,
		ctx:        context.Background(),
		marshaller: utils.NewJsonMarshaller(),
	}
}

func (t *JournalTestSuite) makeRecords(seqStart int64, count int) []Record {
	records := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		record, err := EncodeNotification(seqStart+int64(i), observe.Next(fakePurchase()), t.marshaller)
		assert.NoError(t.T(), err)
		records = append(records, record)
	}
	return records
}

func (t *JournalTestSuite) TestAppendingAndLoading() {
	sut := t.createSUT()
	streamID := uuid.NewString()

	// Loading a stream that was never recorded
	loaded, err := sut.Load(t.ctx, streamID)
	assert.Empty(t.T(), loaded)
	assert.NoError(t.T(), err)

	// Appending value records followed by the terminal record
	records := t.makeRecords(0, 3)
	terminal, err := EncodeNotification(3, observe.Complete[purchaseEvent](), t.marshaller)
	assert.NoError(t.T(), err)
	records = append(records, terminal)

	err = sut.Append(t.ctx, streamID, records)
	assert.NoError(t.T(), err)

	// Loading the stream returns the records in sequence order
	loaded, err = sut.Load(t.ctx, streamID)
	assert.NoError(t.T(), err)
	assert.EqualValues(t.T(), records, loaded)
}

func (t *JournalTestSuite) TestAppendingInBatches() {
	sut := t.createSUT()
	streamID := uuid.NewString()

	first := t.makeRecords(0, 2)
	second := t.makeRecords(2, 2)

	assert.NoError(t.T(), sut.Append(t.ctx, streamID, first))
	assert.NoError(t.T(), sut.Append(t.ctx, streamID, second))

	loaded, err := sut.Load(t.ctx, streamID)
	assert.NoError(t.T(), err)
	assert.EqualValues(t.T(), append(first, second...), loaded)
}

func (t *JournalTestSuite) TestStreamsAreIsolated() {
	sut := t.createSUT()

	firstStream := uuid.NewString()
	secondStream := uuid.NewString()

	firstRecords := t.makeRecords(0, 2)
	secondRecords := t.makeRecords(0, 1)

	assert.NoError(t.T(), sut.Append(t.ctx, firstStream, firstRecords))
	assert.NoError(t.T(), sut.Append(t.ctx, secondStream, secondRecords))

	loaded, err := sut.Load(t.ctx, firstStream)
	assert.NoError(t.T(), err)
	assert.EqualValues(t.T(), firstRecords, loaded)

	loaded, err = sut.Load(t.ctx, secondStream)
	assert.NoError(t.T(), err)
	assert.EqualValues(t.T(), secondRecords, loaded)
}

func (t *JournalTestSuite) TestDeleting() {
	sut := t.createSUT()
	streamID := uuid.NewString()

	assert.NoError(t.T(), sut.Append(t.ctx, streamID, t.makeRecords(0, 2)))
	assert.NoError(t.T(), sut.Delete(t.ctx, streamID))

	loaded, err := sut.Load(t.ctx, streamID)
	assert.NoError(t.T(), err)
	assert.Empty(t.T(), loaded)

	// Deleting a stream that was never recorded
	assert.NoError(t.T(), sut.Delete(t.ctx, uuid.NewString()))
}
