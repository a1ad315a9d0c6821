package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/ducka/go-coracle/observe"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTableName = "stream_journal"

// PostgresJournal keeps each stream's records in a postgres table keyed by
// stream id and sequence number.
type PostgresJournal struct {
	pool  *pgxpool.Pool
	table string
}

var _ Journal = (*PostgresJournal)(nil)

type PostgresOption func(*PostgresJournal)

// WithTableName overrides the table records are journaled to.
func WithTableName(name string) PostgresOption {
	return func(p *PostgresJournal) {
		p.table = name
	}
}

func NewPostgresJournal(pool *pgxpool.Pool, options ...PostgresOption) *PostgresJournal {
	if pool == nil {
		panic("pool should not be nil")
	}

	p := &PostgresJournal{
		pool:  pool,
		table: defaultTableName,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// CreateTable creates the journal table if it does not already exist.
func (p *PostgresJournal) CreateTable(ctx context.Context) error {
	table := pgx.Identifier{p.table}.Sanitize()

	stmt := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			stream_id TEXT NOT NULL,
			seq BIGINT NOT NULL,
			kind TEXT NOT NULL,
			value TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			expires_at TIMESTAMPTZ,
			PRIMARY KEY (stream_id, seq)
		)`, table)

	if _, err := p.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("creating table %s: %w", p.table, err)
	}
	return nil
}

func (p *PostgresJournal) Append(ctx context.Context, streamID string, records []Record, options ...AppendOption) error {
	if len(records) == 0 {
		return nil
	}

	opts := applyOptions(appendOptions{}, options)
	table := pgx.Identifier{p.table}.Sanitize()

	var expiresAt interface{}
	if opts.Expiry != nil {
		expiresAt = time.Now().Add(*opts.Expiry)
	}

	stmt := fmt.Sprintf(`
		INSERT INTO %s (stream_id, seq, kind, value, error, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`, table)

	batch := &pgx.Batch{}
	for _, record := range records {
		batch.Queue(stmt, streamID, record.Seq, string(record.Kind), record.Value, record.Error, expiresAt)
	}

	results := p.pool.SendBatch(ctx, batch)
	for range records {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("appending to %s: %w", p.table, err)
		}
	}

	return results.Close()
}

func (p *PostgresJournal) Load(ctx context.Context, streamID string) ([]Record, error) {
	table := pgx.Identifier{p.table}.Sanitize()

	stmt := fmt.Sprintf(`
		SELECT seq, kind, value, error
		FROM %s
		WHERE stream_id = $1 AND (expires_at IS NULL OR expires_at > now())
		ORDER BY seq`, table)

	rows, err := p.pool.Query(ctx, stmt, streamID)
	if err != nil {
		return nil, fmt.Errorf("loading from %s: %w", p.table, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			record Record
			kind   string
		)
		if err := rows.Scan(&record.Seq, &kind, &record.Value, &record.Error); err != nil {
			return nil, err
		}
		record.Kind = observe.NotificationKind(kind)
		records = append(records, record)
	}

	return records, rows.Err()
}

func (p *PostgresJournal) Delete(ctx context.Context, streamID string) error {
	table := pgx.Identifier{p.table}.Sanitize()

	stmt := fmt.Sprintf(`DELETE FROM %s WHERE stream_id = $1`, table)

	if _, err := p.pool.Exec(ctx, stmt, streamID); err != nil {
		return fmt.Errorf("deleting from %s: %w", p.table, err)
	}
	return nil
}
