package journal

import (
	"context"

	"github.com/ducka/go-coracle/utils"
	"github.com/redis/go-redis/v9"
)

// RedisJournal keeps each stream's records in a redis list, appended in
// sequence order.
type RedisJournal struct {
	client     redis.UniversalClient
	marshaller utils.Marshaller
}

var _ Journal = (*RedisJournal)(nil)

func NewRedisJournal(client redis.UniversalClient) *RedisJournal {
	if client == nil {
		panic("client should not be nil")
	}

	return &RedisJournal{
		client:     client,
		marshaller: utils.NewJsonMarshaller(),
	}
}

func (r *RedisJournal) Append(ctx context.Context, streamID string, records []Record, options ...AppendOption) error {
	if len(records) == 0 {
		return nil
	}

	opts := applyOptions(appendOptions{}, options)

	values := make([]interface{}, 0, len(records))
	for _, record := range records {
		value, err := r.marshaller.Serialize(record)
		if err != nil {
			return err
		}
		values = append(values, value)
	}

	pipe := r.client.Pipeline()
	pipe.RPush(ctx, journalKey(streamID), values...)
	if opts.Expiry != nil {
		pipe.Expire(ctx, journalKey(streamID), *opts.Expiry)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisJournal) Load(ctx context.Context, streamID string) ([]Record, error) {
	values, err := r.client.LRange(ctx, journalKey(streamID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(values))
	for _, value := range values {
		var record Record
		if err := r.marshaller.Deserialize(value, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *RedisJournal) Delete(ctx context.Context, streamID string) error {
	return r.client.Del(ctx, journalKey(streamID)).Err()
}

func journalKey(streamID string) string {
	return "journal:" + streamID
}
