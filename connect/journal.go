package connect

import (
	"context"

	"github.com/ducka/go-coracle/journal"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// OpenRedisJournal builds a journal backed by the configured redis instance.
func OpenRedisJournal(cfg RedisConfig) *journal.RedisJournal {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})
	return journal.NewRedisJournal(client)
}

// OpenPostgresJournal builds a journal backed by the configured postgres
// database, creating the journal table if required.
func OpenPostgresJournal(ctx context.Context, cfg PostgresConfig) (*journal.PostgresJournal, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}

	j := journal.NewPostgresJournal(pool)
	if err := j.CreateTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return j, nil
}
