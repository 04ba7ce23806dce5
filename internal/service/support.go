package service

import (
	"context"
	"database/sql"
	"errors"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type supportService struct {
	repo repository.SupportRepository
}

func NewSupportService(repo repository.SupportRepository) SupportService {
	return &supportService{repo: repo}
}

func (s *supportService) OpenTicket(ctx context.Context, actor *domain.User, subject, content string) (*domain.SupportTicket, error) {
	if subject == "" || content == "" {
		return nil, domain.NewValidation("subject and content are required")
	}
	ticket := &domain.SupportTicket{
		UserID:  actor.ID,
		Subject: subject,
		Status:  domain.TicketStatusOpen,
	}
	if err := s.repo.CreateTicket(ctx, ticket); err != nil {
		return nil, err
	}
	msg := &domain.SupportMessage{
		TicketID: ticket.ID,
		AuthorID: actor.ID,
		Content:  content,
	}
	if err := s.repo.AddMessage(ctx, msg); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *supportService) GetTicket(ctx context.Context, actor *domain.User, ticketID int64) (*domain.SupportTicket, []domain.SupportMessage, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	if ticket.UserID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, nil, domain.NewAuthorization("no access to this ticket")
	}
	msgs, err := s.repo.ListMessages(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	return ticket, msgs, nil
}

func (s *supportService) ListMyTickets(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.SupportTicket, int64, error) {
	return s.repo.ListTicketsByUser(ctx, actor.ID, page, pageSize)
}

func (s *supportService) ListAllTickets(ctx context.Context, page, pageSize int32) ([]domain.SupportTicket, int64, error) {
	return s.repo.ListTickets(ctx, page, pageSize)
}

func (s *supportService) Reply(ctx context.Context, actor *domain.User, ticketID int64, content string) (*domain.SupportMessage, error) {
	if content == "" {
		return nil, domain.NewValidation("message content is required")
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	fromStaff := actor.Role == domain.RoleAdmin
	if ticket.UserID != actor.ID && !fromStaff {
		return nil, domain.NewAuthorization("no access to this ticket")
	}
	if ticket.Status == domain.TicketStatusClosed {
		return nil, domain.NewConflict("ticket is closed")
	}

	msg := &domain.SupportMessage{
		TicketID:  ticketID,
		AuthorID:  actor.ID,
		FromStaff: fromStaff,
		Content:   content,
	}
	if err := s.repo.AddMessage(ctx, msg); err != nil {
		return nil, err
	}

	status := domain.TicketStatusOpen
	if fromStaff {
		status = domain.TicketStatusAnswered
	}
	if err := s.repo.UpdateTicketStatus(ctx, ticketID, status); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *supportService) CloseTicket(ctx context.Context, actor *domain.User, ticketID int64) error {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return err
	}
	if ticket.UserID != actor.ID && actor.Role != domain.RoleAdmin {
		return domain.NewAuthorization("no access to this ticket")
	}
	return s.repo.UpdateTicketStatus(ctx, ticketID, domain.TicketStatusClosed)
}

func (s *supportService) getTicket(ctx context.Context, ticketID int64) (*domain.SupportTicket, error) {
	ticket, err := s.repo.GetTicket(ctx, ticketID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("ticket %d not found", ticketID)
		}
		return nil, err
	}
	return ticket, nil
}
