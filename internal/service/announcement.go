package service

import (
	"context"
	"time"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type announcementService struct {
	repo repository.AnnouncementRepository
}

func NewAnnouncementService(repo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{repo: repo}
}

func (s *announcementService) Publish(ctx context.Context, actor *domain.User, title, content, expiresAt string) (*domain.Announcement, error) {
	if title == "" || content == "" {
		return nil, domain.NewValidation("title and content are required")
	}
	a := &domain.Announcement{
		Title:     title,
		Content:   content,
		Active:    true,
		CreatedBy: actor.ID,
	}
	if expiresAt != "" {
		t, err := time.Parse(time.RFC3339, expiresAt)
		if err != nil {
			return nil, domain.NewValidation("invalid expires_at %q", expiresAt)
		}
		a.ExpiresAt = &t
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *announcementService) ListActive(ctx context.Context) ([]domain.Announcement, error) {
	return s.repo.ListActive(ctx)
}

func (s *announcementService) ListAll(ctx context.Context, page, pageSize int32) ([]domain.Announcement, int64, error) {
	return s.repo.List(ctx, page, pageSize)
}

func (s *announcementService) Deactivate(ctx context.Context, actor *domain.User, id int64) error {
	return s.repo.Deactivate(ctx, id)
}
