package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hinjavav/lan-chat-app/internal/domain"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	ListAll(ctx context.Context) ([]domain.TicketView, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.TicketView, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus, supportID int64) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (user_id, subject, message, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		ticket.UserID,
		ticket.Subject,
		ticket.Message,
		ticket.Status,
	).Scan(&ticket.ID, &ticket.CreatedAt)
}

const ticketViewQuery = `
        SELECT t.id, t.subject, t.message, t.status, t.created_at,
               u.full_name AS user_name,
               s.full_name AS support_name
        FROM tickets t
        LEFT JOIN users u ON t.user_id = u.id
        LEFT JOIN users s ON t.support_id = s.id`

func (r *ticketRepository) ListAll(ctx context.Context) ([]domain.TicketView, error) {
	query := ticketViewQuery + ` ORDER BY t.created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTicketViews(rows)
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID int64) ([]domain.TicketView, error) {
	query := ticketViewQuery + ` WHERE t.user_id = $1 ORDER BY t.created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTicketViews(rows)
}

// UpdateStatus sets the status and records the acting agent as the
// assigned support contact. pgx.ErrNoRows signals an unknown ticket id.
func (r *ticketRepository) UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus, supportID int64) error {
	const query = `UPDATE tickets SET status=$1, support_id=$2 WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, status, supportID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanTicketViews(rows pgx.Rows) ([]domain.TicketView, error) {
	var result []domain.TicketView
	for rows.Next() {
		var view domain.TicketView
		if err := rows.Scan(
			&view.ID,
			&view.Subject,
			&view.Message,
			&view.Status,
			&view.CreatedAt,
			&view.UserName,
			&view.SupportName,
		); err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, rows.Err()
}
