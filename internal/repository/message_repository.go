package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepository exposes the chat message table. Only the aggregate
// count is read today; no chat protocol is implemented.
type MessageRepository interface {
	Count(ctx context.Context) (int64, error)
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository returns a Postgres-backed implementation.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM messages`

	var total int64
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
