package service

import (
	"context"
	"database/sql"
	"errors"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type chatService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

func NewChatService(chatRepo repository.ChatRepository, userRepo repository.UserRepository) ChatService {
	return &chatService{chatRepo: chatRepo, userRepo: userRepo}
}

func (s *chatService) SendMessage(ctx context.Context, actor *domain.User, recipientID int64, content string) (*domain.ChatMessage, error) {
	if content == "" {
		return nil, domain.NewValidation("message content is required")
	}
	if recipientID == actor.ID {
		return nil, domain.NewValidation("cannot message yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("recipient %d not found", recipientID)
		}
		return nil, err
	}

	msg := &domain.ChatMessage{
		SenderID:    actor.ID,
		RecipientID: recipientID,
		Content:     content,
	}
	if err := s.chatRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *chatService) ListConversations(ctx context.Context, actor *domain.User) ([]domain.Conversation, error) {
	return s.chatRepo.ListConversations(ctx, actor.ID)
}

func (s *chatService) ListMessages(ctx context.Context, actor *domain.User, peerID int64, limit int32) ([]domain.ChatMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	msgs, err := s.chatRepo.ListBetween(ctx, actor.ID, peerID, limit)
	if err != nil {
		return nil, err
	}
	// Opening a thread marks the peer's messages as read.
	if err := s.chatRepo.MarkRead(ctx, actor.ID, peerID); err != nil {
		return nil, err
	}
	return msgs, nil
}
