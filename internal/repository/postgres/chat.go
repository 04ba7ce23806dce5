package postgres

import (
	"context"
	"database/sql"
	"time"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type chatRepository struct {
	db *sql.DB
}

func NewChatRepository(db *sql.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(ctx context.Context, m *domain.ChatMessage) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO chat_messages (sender_id, recipient_id, content, read, created_at)
		 VALUES ($1, $2, $3, FALSE, $4) RETURNING id, created_at`,
		m.SenderID, m.RecipientID, m.Content, time.Now().UTC()).Scan(&m.ID, &m.CreatedAt)
}

func (r *chatRepository) ListBetween(ctx context.Context, userID, peerID int64, limit int32) ([]domain.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sender_id, recipient_id, content, read, created_at
		 FROM chat_messages
		 WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
		 ORDER BY created_at DESC LIMIT $3`,
		userID, peerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *chatRepository) ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	// One row per peer: latest message plus unread count for the inbox.
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT ON (peer) peer, content, created_at,
			(SELECT count(*) FROM chat_messages u
			 WHERE u.recipient_id = $1 AND u.sender_id = peer AND NOT u.read) AS unread
		 FROM (
			SELECT CASE WHEN sender_id = $1 THEN recipient_id ELSE sender_id END AS peer,
			       content, created_at
			FROM chat_messages
			WHERE sender_id = $1 OR recipient_id = $1
		 ) t
		 ORDER BY peer, created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []domain.Conversation
	for rows.Next() {
		var c domain.Conversation
		if err := rows.Scan(&c.PeerID, &c.LastMessage, &c.LastAt, &c.Unread); err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (r *chatRepository) MarkRead(ctx context.Context, recipientID, peerID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE chat_messages SET read = TRUE
		 WHERE recipient_id = $1 AND sender_id = $2 AND NOT read`,
		recipientID, peerID)
	return err
}
