package service

import (
	"context"
	"sort"
	"time"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type StatsOverview struct {
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type OrderTrend struct {
	Total int64        `json:"total"`
	Daily []DailyCount `json:"daily"`
}

type DistributionItem struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type HouseDistribution struct {
	ByRegion []DistributionItem `json:"by_region"`
	Subway   []DistributionItem `json:"subway"`
}

type statisticsService struct {
	orderRepo repository.OrderRepository
	houseRepo repository.HouseRepository
}

func NewStatisticsService(orderRepo repository.OrderRepository, houseRepo repository.HouseRepository) StatisticsService {
	return &statisticsService{orderRepo: orderRepo, houseRepo: houseRepo}
}

func (s *statisticsService) Overview(ctx context.Context) (*StatsOverview, error) {
	statuses := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusConfirmed,
		domain.OrderStatusActive,
		domain.OrderStatusCancelled,
		domain.OrderStatusTerminated,
	}
	counts := make(map[string]int64, len(statuses))
	for _, st := range statuses {
		n, err := s.orderRepo.CountByStatus(ctx, st)
		if err != nil {
			return nil, err
		}
		counts[string(st)] = n
	}
	return &StatsOverview{OrdersByStatus: counts}, nil
}

func (s *statisticsService) OrderTrend(ctx context.Context, days int) (*OrderTrend, error) {
	if days <= 0 || days > 90 {
		days = 30
	}
	trend := &OrderTrend{}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := days - 1; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)
		count, err := s.orderRepo.CountCreatedBetween(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		trend.Total += count
		trend.Daily = append(trend.Daily, DailyCount{
			Date:  dayStart.Format("2006-01-02"),
			Count: count,
		})
	}
	return trend, nil
}

func (s *statisticsService) HouseDistribution(ctx context.Context) (*HouseDistribution, error) {
	byRegion, err := s.houseRepo.CountByRegion(ctx)
	if err != nil {
		return nil, err
	}
	dist := &HouseDistribution{}
	for name, count := range byRegion {
		if name == "" {
			name = "unassigned"
		}
		dist.ByRegion = append(dist.ByRegion, DistributionItem{Label: name, Count: count})
	}
	sort.Slice(dist.ByRegion, func(i, j int) bool {
		if dist.ByRegion[i].Count != dist.ByRegion[j].Count {
			return dist.ByRegion[i].Count > dist.ByRegion[j].Count
		}
		return dist.ByRegion[i].Label < dist.ByRegion[j].Label
	})

	withSubway, withoutSubway, err := s.houseRepo.CountBySubwayProximity(ctx)
	if err != nil {
		return nil, err
	}
	dist.Subway = []DistributionItem{
		{Label: "near_subway", Count: withSubway},
		{Label: "no_subway", Count: withoutSubway},
	}
	return dist, nil
}
