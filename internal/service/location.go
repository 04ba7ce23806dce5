package service

import (
	"context"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type locationService struct {
	regionRepo repository.RegionRepository
}

func NewLocationService(regionRepo repository.RegionRepository) LocationService {
	return &locationService{regionRepo: regionRepo}
}

func (s *locationService) ListRegions(ctx context.Context) ([]domain.Region, error) {
	return s.regionRepo.ListRegions(ctx)
}

func (s *locationService) ListSubwayLines(ctx context.Context) ([]domain.SubwayLine, error) {
	return s.regionRepo.ListSubwayLines(ctx)
}
