package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
	"go.uber.org/zap"
)

type statsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.CatalogStats, error) {
	stats := &domain.CatalogStats{
		ByDifficulty: make(map[string]int),
		LastUpdated:  time.Now().UTC(),
	}

	query := `
		SELECT
			(SELECT COUNT(*) FROM routes),
			(SELECT COUNT(*) FROM reviews),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM favorites),
			(SELECT COUNT(*) FROM photos),
			(SELECT AVG(rating) FROM reviews)
	`

	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.Routes, &stats.Reviews, &stats.Users,
		&stats.Favorites, &stats.Photos, &stats.AvgRating,
	)
	if err != nil {
		r.logger.Error("Failed to get catalog statistics", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT difficulty, COUNT(*) FROM routes GROUP BY difficulty",
	)
	if err != nil {
		r.logger.Error("Failed to get difficulty breakdown", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var difficulty string
		var count int
		if err := rows.Scan(&difficulty, &count); err != nil {
			r.logger.Error("Failed to scan difficulty breakdown", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		stats.ByDifficulty[difficulty] = count
	}

	return stats, nil
}
