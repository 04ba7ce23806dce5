package domain

import "time"

type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "OPEN"
	TicketStatusAnswered TicketStatus = "ANSWERED"
	TicketStatusClosed   TicketStatus = "CLOSED"
)

type SupportTicket struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"user_id"`
	Subject   string       `json:"subject"`
	Status    TicketStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type SupportMessage struct {
	ID        int64     `json:"id"`
	TicketID  int64     `json:"ticket_id"`
	AuthorID  int64     `json:"author_id"`
	FromStaff bool      `json:"from_staff"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
