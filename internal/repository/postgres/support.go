package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type supportRepository struct {
	db *sql.DB
}

func NewSupportRepository(db *sql.DB) repository.SupportRepository {
	return &supportRepository{db: db}
}

const ticketColumns = `id, user_id, subject, status, created_at, updated_at`

func scanTicket(row interface{ Scan(...any) error }) (*domain.SupportTicket, error) {
	t := &domain.SupportTicket{}
	err := row.Scan(&t.ID, &t.UserID, &t.Subject, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *supportRepository) CreateTicket(ctx context.Context, t *domain.SupportTicket) error {
	now := time.Now().UTC()
	return r.db.QueryRowContext(ctx,
		`INSERT INTO support_tickets (user_id, subject, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4) RETURNING id`,
		t.UserID, t.Subject, t.Status, now).Scan(&t.ID)
}

func (r *supportRepository) GetTicket(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	return scanTicket(r.db.QueryRowContext(ctx,
		`SELECT `+ticketColumns+` FROM support_tickets WHERE id = $1`, id))
}

func (r *supportRepository) ListTicketsByUser(ctx context.Context, userID int64, page, pageSize int32) ([]domain.SupportTicket, int64, error) {
	return r.listTickets(ctx, `user_id = $1`, []any{userID}, page, pageSize)
}

func (r *supportRepository) ListTickets(ctx context.Context, page, pageSize int32) ([]domain.SupportTicket, int64, error) {
	return r.listTickets(ctx, `TRUE`, nil, page, pageSize)
}

func (r *supportRepository) listTickets(ctx context.Context, where string, args []any, page, pageSize int32) ([]domain.SupportTicket, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM support_tickets WHERE `+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM support_tickets WHERE %s ORDER BY updated_at DESC LIMIT $%d OFFSET $%d`,
		ticketColumns, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tickets []domain.SupportTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, *t)
	}
	return tickets, count, rows.Err()
}

func (r *supportRepository) UpdateTicketStatus(ctx context.Context, id int64, status domain.TicketStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE support_tickets SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), id)
	return err
}

func (r *supportRepository) AddMessage(ctx context.Context, m *domain.SupportMessage) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO support_messages (ticket_id, author_id, from_staff, content, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		m.TicketID, m.AuthorID, m.FromStaff, m.Content, time.Now().UTC()).Scan(&m.ID, &m.CreatedAt)
}

func (r *supportRepository) ListMessages(ctx context.Context, ticketID int64) ([]domain.SupportMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, ticket_id, author_id, from_staff, content, created_at
		 FROM support_messages WHERE ticket_id = $1 ORDER BY created_at`, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.SupportMessage
	for rows.Next() {
		var m domain.SupportMessage
		if err := rows.Scan(&m.ID, &m.TicketID, &m.AuthorID, &m.FromStaff, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
