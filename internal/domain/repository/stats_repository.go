package repository

import (
	"context"

	"github.com/senda-infinita/internal/domain"
)

// StatsRepository computes the aggregated catalog snapshot from live rows.
type StatsRepository interface {
	// GetStatistics returns current catalog counts and the global mean rating.
	GetStatistics(ctx context.Context) (*domain.CatalogStats, error)
}
