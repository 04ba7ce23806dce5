package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type contactService struct {
	contactRepo repository.ContactRepository
	houseRepo   repository.HouseRepository
}

func NewContactService(contactRepo repository.ContactRepository, houseRepo repository.HouseRepository) ContactService {
	return &contactService{contactRepo: contactRepo, houseRepo: houseRepo}
}

func (s *contactService) CreateContact(ctx context.Context, actor *domain.User, houseID int64, message, preferredVisitTime string) (*domain.ContactRecord, error) {
	house, err := s.houseRepo.GetByID(ctx, houseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("house %d not found", houseID)
		}
		return nil, err
	}

	var visitTime *time.Time
	if preferredVisitTime != "" {
		parsed, err := time.Parse(time.RFC3339, preferredVisitTime)
		if err != nil {
			return nil, domain.NewValidation("invalid preferred visit time %q", preferredVisitTime)
		}
		visitTime = &parsed
	}

	record := &domain.ContactRecord{
		HouseID:            houseID,
		TenantID:           actor.ID,
		LandlordID:         house.OwnerID,
		Message:            message,
		PreferredVisitTime: visitTime,
		Status:             domain.ContactPending,
	}
	if err := s.contactRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *contactService) EnsureContact(ctx context.Context, actor *domain.User, houseID int64, message, preferredVisitTime string) (*domain.ContactRecord, error) {
	existing, err := s.contactRepo.LatestByTenantAndHouse(ctx, actor.ID, houseID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return s.CreateContact(ctx, actor, houseID, message, preferredVisitTime)
}

func (s *contactService) UpdateContactStatus(ctx context.Context, actor *domain.User, recordID int64, status domain.ContactStatus, remarks string) (*domain.ContactRecord, error) {
	if !status.Valid() {
		return nil, domain.NewValidation("unknown contact status %q", status)
	}

	record, err := s.contactRepo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("contact record %d not found", recordID)
		}
		return nil, err
	}
	if record.LandlordID != actor.ID {
		return nil, domain.NewAuthorization("only the landlord may handle this contact record")
	}

	if err := s.contactRepo.UpdateStatus(ctx, recordID, status, remarks); err != nil {
		return nil, err
	}
	return s.contactRepo.GetByID(ctx, recordID)
}

func (s *contactService) ListForTenant(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.ContactRecord, int64, error) {
	return s.contactRepo.ListByTenant(ctx, actor.ID, page, pageSize)
}

func (s *contactService) ListForLandlord(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.ContactRecord, int64, error) {
	return s.contactRepo.ListByLandlord(ctx, actor.ID, page, pageSize)
}

func (s *contactService) ListAll(ctx context.Context, page, pageSize int32) ([]domain.ContactRecord, int64, error) {
	return s.contactRepo.ListAll(ctx, page, pageSize)
}
