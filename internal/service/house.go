package service

import (
	"context"
	"database/sql"
	"errors"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type houseService struct {
	houseRepo    repository.HouseRepository
	favoriteRepo repository.FavoriteRepository
}

func NewHouseService(houseRepo repository.HouseRepository, favoriteRepo repository.FavoriteRepository) HouseService {
	return &houseService{houseRepo: houseRepo, favoriteRepo: favoriteRepo}
}

func (s *houseService) CreateHouse(ctx context.Context, actor *domain.User, house *domain.House) (*domain.House, error) {
	if house.Title == "" {
		return nil, domain.NewValidation("title is required")
	}
	if house.RentPriceCents <= 0 {
		return nil, domain.NewValidation("rent price must be positive")
	}
	house.OwnerID = actor.ID
	if house.Status == "" {
		house.Status = domain.HouseStatusDraft
	}
	if err := s.houseRepo.Create(ctx, house); err != nil {
		return nil, err
	}
	return house, nil
}

func (s *houseService) GetHouse(ctx context.Context, id int64) (*domain.House, error) {
	return s.getHouse(ctx, id)
}

func (s *houseService) UpdateHouse(ctx context.Context, actor *domain.User, house *domain.House) (*domain.House, error) {
	existing, err := s.getHouse(ctx, house.ID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, domain.NewAuthorization("no access to this house")
	}
	if house.Title == "" {
		return nil, domain.NewValidation("title is required")
	}
	if house.RentPriceCents <= 0 {
		return nil, domain.NewValidation("rent price must be positive")
	}
	// Ownership never changes through an update; existing orders keep the
	// landlord snapshotted at their creation either way.
	house.OwnerID = existing.OwnerID
	house.Status = existing.Status
	if err := s.houseRepo.Update(ctx, house); err != nil {
		return nil, err
	}
	return s.getHouse(ctx, house.ID)
}

func (s *houseService) SetHouseStatus(ctx context.Context, actor *domain.User, houseID int64, status domain.HouseStatus) (*domain.House, error) {
	if !status.Valid() {
		return nil, domain.NewValidation("unknown house status %q", status)
	}
	house, err := s.getHouse(ctx, houseID)
	if err != nil {
		return nil, err
	}
	if house.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, domain.NewAuthorization("no access to this house")
	}
	house.Status = status
	if err := s.houseRepo.Update(ctx, house); err != nil {
		return nil, err
	}
	return house, nil
}

func (s *houseService) ListHouses(ctx context.Context, filter domain.HouseFilter, page, pageSize int32) ([]domain.House, int64, error) {
	return s.houseRepo.List(ctx, filter, page, pageSize)
}

func (s *houseService) ListMyHouses(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.House, int64, error) {
	return s.houseRepo.ListByOwner(ctx, actor.ID, page, pageSize)
}

func (s *houseService) ToggleFavorite(ctx context.Context, actor *domain.User, houseID int64) (bool, error) {
	if _, err := s.getHouse(ctx, houseID); err != nil {
		return false, err
	}
	favorited, err := s.favoriteRepo.Exists(ctx, actor.ID, houseID)
	if err != nil {
		return false, err
	}
	if favorited {
		if err := s.favoriteRepo.Remove(ctx, actor.ID, houseID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.favoriteRepo.Add(ctx, actor.ID, houseID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *houseService) ListFavorites(ctx context.Context, actor *domain.User) ([]domain.House, error) {
	return s.favoriteRepo.ListHousesByUser(ctx, actor.ID)
}

func (s *houseService) getHouse(ctx context.Context, id int64) (*domain.House, error) {
	house, err := s.houseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("house %d not found", id)
		}
		return nil, err
	}
	return house, nil
}
