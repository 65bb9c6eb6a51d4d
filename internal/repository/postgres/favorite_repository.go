package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
	"go.uber.org/zap"
)

type favoriteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFavoriteRepository(db *DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Insert relies on the unique (user_id, route_id) constraint: a concurrent
// duplicate insert simply reports created=false instead of racing.
func (r *favoriteRepository) Insert(ctx context.Context, userID, routeID int64) (bool, error) {
	query := `
		INSERT INTO favorites (user_id, route_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, route_id) DO NOTHING
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, userID, routeID).Scan(&id)
	if err == sql.ErrNoRows {
		// Conflict: already favorited.
		return false, nil
	}
	if err != nil {
		r.logger.Error("Failed to insert favorite",
			zap.Int64("user_id", userID),
			zap.Int64("route_id", routeID),
			zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return true, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, routeID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND route_id = $2",
		userID, routeID,
	)
	if err != nil {
		r.logger.Error("Failed to delete favorite",
			zap.Int64("user_id", userID),
			zap.Int64("route_id", routeID),
			zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read delete result", zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return affected > 0, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.FavoriteWithRoute, error) {
	query := `
		SELECT f.id, f.created_at,
		       rt.id, rt.title, rt.slug, rt.description, rt.distance_km,
		       rt.ascent_m, rt.difficulty, rt.source, rt.created_at
		FROM favorites f
		JOIN routes rt ON rt.id = f.route_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list favorites", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	favorites := make([]*domain.FavoriteWithRoute, 0)
	for rows.Next() {
		var f domain.FavoriteWithRoute
		err := rows.Scan(
			&f.ID, &f.CreatedAt,
			&f.Route.ID, &f.Route.Title, &f.Route.Slug, &f.Route.Description,
			&f.Route.DistanceKm, &f.Route.AscentM, &f.Route.Difficulty,
			&f.Route.Source, &f.Route.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan favorite", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		favorites = append(favorites, &f)
	}

	return favorites, nil
}
