package service

import (
	"context"
	"fmt"

	"inventory/internal/dto"
	"inventory/internal/repository"
)

const (
	cacheKeyCapacity  = "capacity"
	cacheKeyUnitsSold = "units_sold"
)

// AnalyticsCache is a best-effort read-through cache. Get reports a miss on
// any fault; Set failures are swallowed by the implementation.
type AnalyticsCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
}

type AnalyticsService interface {
	Capacity(ctx context.Context) ([]dto.CapacityRow, error)
	UnitsSold(ctx context.Context) ([]dto.UnitsSoldRow, error)
}

type analyticsService struct {
	repo  repository.AnalyticsRepository
	cache AnalyticsCache // nil: always query the store
}

func NewAnalyticsService(repo repository.AnalyticsRepository, cache AnalyticsCache) AnalyticsService {
	return &analyticsService{repo: repo, cache: cache}
}

func (s *analyticsService) Capacity(ctx context.Context) ([]dto.CapacityRow, error) {
	var rows []dto.CapacityRow
	if s.cache != nil && s.cache.Get(ctx, cacheKeyCapacity, &rows) {
		return rows, nil
	}
	rows, err := s.repo.Capacity(ctx)
	if err != nil {
		return nil, fmt.Errorf("capacity analytics: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, cacheKeyCapacity, rows)
	}
	return rows, nil
}

func (s *analyticsService) UnitsSold(ctx context.Context) ([]dto.UnitsSoldRow, error) {
	var rows []dto.UnitsSoldRow
	if s.cache != nil && s.cache.Get(ctx, cacheKeyUnitsSold, &rows) {
		return rows, nil
	}
	rows, err := s.repo.UnitsSold(ctx)
	if err != nil {
		return nil, fmt.Errorf("sales analytics: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, cacheKeyUnitsSold, rows)
	}
	return rows, nil
}
