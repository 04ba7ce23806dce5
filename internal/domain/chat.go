package domain

import "time"

type ChatMessage struct {
	ID          int64     `json:"id"`
	SenderID    int64     `json:"sender_id"`
	RecipientID int64     `json:"recipient_id"`
	Content     string    `json:"content"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

// Conversation summarizes a peer thread for the inbox view.
type Conversation struct {
	PeerID      int64     `json:"peer_id"`
	LastMessage string    `json:"last_message"`
	LastAt      time.Time `json:"last_at"`
	Unread      int64     `json:"unread"`
}
