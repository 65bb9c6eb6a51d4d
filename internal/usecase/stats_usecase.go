package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
)

// StatsUseCase serves the catalog-wide snapshot, cache-aside. Detail-page
// aggregates never come from here; they are recomputed per request.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewStatsUseCase creates a new StatsUseCase.
func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// GetStatistics returns the catalog snapshot, using the cache when possible.
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.CatalogStats, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Statistics fetched from cache")
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	return uc.RefreshStatistics(ctx)
}

// RefreshStatistics recomputes the snapshot from the database and rewrites
// the cache.
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.CatalogStats, error) {
	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("get statistics from db: %w", err)
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	} else {
		uc.logger.Debug("Statistics cached")
	}

	return stats, nil
}
