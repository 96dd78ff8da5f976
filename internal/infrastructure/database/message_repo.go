package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"msgmerge/internal/domain/entities"
	"msgmerge/internal/ports/output"
)

var _ output.StoreMirror = (*MessageRepository)(nil)

// MessageRepository mirrors the locale store into the messages table so
// coverage dashboards can query it. The JSON file remains the source of
// truth; every push replaces the table wholesale.
type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// ReplaceAll swaps the mirror content for the given store in one
// transaction: either the full new state lands or nothing changes.
func (r *MessageRepository) ReplaceAll(ctx context.Context, store entities.Store) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM messages`); err != nil {
		return fmt.Errorf("clear messages: %w", err)
	}

	batch := &pgx.Batch{}
	for _, locale := range store.Locales() {
		table := store[locale]
		for _, key := range table.Keys() {
			batch.Queue(
				`INSERT INTO messages (locale, key, text) VALUES ($1, $2, $3)`,
				locale, key, table[key],
			)
		}
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert messages: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// LoadAll reads the full mirror back into a store.
func (r *MessageRepository) LoadAll(ctx context.Context) (entities.Store, error) {
	rows, err := r.pool.Query(ctx, `SELECT locale, key, text FROM messages`)
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	defer rows.Close()

	store := entities.Store{}
	for rows.Next() {
		var locale, key, text string
		if err := rows.Scan(&locale, &key, &text); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		table, ok := store[locale]
		if !ok {
			table = entities.StringTable{}
			store[locale] = table
		}
		table[key] = text
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return store, nil
}
