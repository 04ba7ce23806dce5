package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type certificationService struct {
	certRepo repository.CertificationRepository
	userRepo repository.UserRepository
}

func NewCertificationService(certRepo repository.CertificationRepository, userRepo repository.UserRepository) CertificationService {
	return &certificationService{certRepo: certRepo, userRepo: userRepo}
}

func (s *certificationService) Submit(ctx context.Context, actor *domain.User, documentURLs []string, reason string) (*domain.LandlordCertification, error) {
	var docs []string
	for _, url := range documentURLs {
		if trimmed := strings.TrimSpace(url); trimmed != "" {
			docs = append(docs, trimmed)
		}
	}
	if len(docs) == 0 {
		return nil, domain.NewValidation("at least one certification document is required")
	}

	latest, err := s.certRepo.LatestByUser(ctx, actor.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if latest != nil && latest.Status == domain.CertificationPending {
		return nil, domain.NewConflict("a certification application is already pending review")
	}

	cert := &domain.LandlordCertification{
		UserID:       actor.ID,
		DocumentURLs: docs,
		Reason:       reason,
		Status:       domain.CertificationPending,
	}
	if err := s.certRepo.Create(ctx, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *certificationService) MyLatest(ctx context.Context, actor *domain.User) (*domain.LandlordCertification, error) {
	cert, err := s.certRepo.LatestByUser(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("no certification application on file")
		}
		return nil, err
	}
	return cert, nil
}

func (s *certificationService) ListByStatus(ctx context.Context, status domain.CertificationStatus, page, pageSize int32) ([]domain.LandlordCertification, int64, error) {
	if status == "" {
		status = domain.CertificationPending
	}
	if !status.Valid() {
		return nil, 0, domain.NewValidation("unknown certification status %q", status)
	}
	return s.certRepo.ListByStatus(ctx, status, page, pageSize)
}

func (s *certificationService) Review(ctx context.Context, actor *domain.User, certificationID int64, status domain.CertificationStatus, reason string) (*domain.LandlordCertification, error) {
	if status != domain.CertificationApproved && status != domain.CertificationRejected {
		return nil, domain.NewValidation("review outcome must be APPROVED or REJECTED")
	}

	cert, err := s.certRepo.GetByID(ctx, certificationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("certification %d not found", certificationID)
		}
		return nil, err
	}

	applied, err := s.certRepo.Review(ctx, certificationID, actor.ID, status, reason)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, domain.NewConflict("certification has already been reviewed")
	}

	if status == domain.CertificationApproved {
		applicant, err := s.userRepo.GetByID(ctx, cert.UserID)
		if err != nil {
			return nil, err
		}
		applicant.Role = domain.RoleLandlord
		if err := s.userRepo.Update(ctx, applicant); err != nil {
			return nil, err
		}
	}

	return s.certRepo.GetByID(ctx, certificationID)
}
