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

type photoRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPhotoRepository(db *DB) repository.PhotoRepository {
	return &photoRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *photoRepository) Create(ctx context.Context, photo *domain.Photo) (*domain.Photo, error) {
	query := `
		INSERT INTO photos (route_id, user_id, url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	created := *photo
	err := r.db.QueryRowContext(ctx, query,
		photo.RouteID, photo.UserID, photo.URL,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create photo",
			zap.Int64("route_id", photo.RouteID),
			zap.Int64("user_id", photo.UserID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

func (r *photoRepository) GetByID(ctx context.Context, id int64) (*domain.Photo, error) {
	query := `
		SELECT id, route_id, user_id, url, created_at
		FROM photos
		WHERE id = $1
	`

	var photo domain.Photo
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&photo.ID, &photo.RouteID, &photo.UserID, &photo.URL, &photo.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrPhotoNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get photo by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &photo, nil
}

func (r *photoRepository) ListByRoute(ctx context.Context, routeID int64) ([]*domain.PhotoWithAuthor, error) {
	query := `
		SELECT p.id, p.url, p.created_at, u.id, u.name
		FROM photos p
		JOIN users u ON u.id = p.user_id
		WHERE p.route_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, routeID)
	if err != nil {
		r.logger.Error("Failed to list photos", zap.Int64("route_id", routeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	photos := make([]*domain.PhotoWithAuthor, 0)
	for rows.Next() {
		var p domain.PhotoWithAuthor
		if err := rows.Scan(&p.ID, &p.URL, &p.CreatedAt, &p.User.ID, &p.User.Name); err != nil {
			r.logger.Error("Failed to scan photo", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		photos = append(photos, &p)
	}

	return photos, nil
}

func (r *photoRepository) ListAll(ctx context.Context) ([]*domain.PhotoAdminItem, error) {
	query := `
		SELECT p.id, p.url, p.created_at, u.id, u.name, rt.id, rt.title, rt.slug
		FROM photos p
		JOIN users u ON u.id = p.user_id
		JOIN routes rt ON rt.id = p.route_id
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list all photos", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	photos := make([]*domain.PhotoAdminItem, 0)
	for rows.Next() {
		var p domain.PhotoAdminItem
		err := rows.Scan(
			&p.ID, &p.URL, &p.CreatedAt,
			&p.User.ID, &p.User.Name,
			&p.Route.ID, &p.Route.Title, &p.Route.Slug,
		)
		if err != nil {
			r.logger.Error("Failed to scan photo", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		photos = append(photos, &p)
	}

	return photos, nil
}

func (r *photoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM photos WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete photo", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read delete result", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrPhotoNotFound
	}

	return nil
}
