package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
	"go.uber.org/zap"
)

type reviewRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReviewRepository(db *DB) repository.ReviewRepository {
	return &reviewRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
		INSERT INTO reviews (route_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	created := *review
	err := r.db.QueryRowContext(ctx, query,
		review.RouteID, review.UserID, review.Rating, review.Comment,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create review",
			zap.Int64("route_id", review.RouteID),
			zap.Int64("user_id", review.UserID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	query := `
		SELECT id, route_id, user_id, rating, comment, created_at
		FROM reviews
		WHERE id = $1
	`

	var review domain.Review
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&review.ID, &review.RouteID, &review.UserID,
		&review.Rating, &review.Comment, &review.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrReviewNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get review by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &review, nil
}

func (r *reviewRepository) ListByRoute(
	ctx context.Context,
	routeID int64,
	limit, offset int,
) ([]*domain.ReviewWithAuthor, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reviews WHERE route_id = $1", routeID,
	).Scan(&total)
	if err != nil {
		r.logger.Error("Failed to count reviews", zap.Int64("route_id", routeID), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `
		SELECT r.id, r.rating, r.comment, r.created_at, u.id, u.name
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.route_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, routeID, limit, offset)
	if err != nil {
		r.logger.Error("Failed to list reviews", zap.Int64("route_id", routeID), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	defer rows.Close()

	reviews := make([]*domain.ReviewWithAuthor, 0, limit)
	for rows.Next() {
		var rv domain.ReviewWithAuthor
		err := rows.Scan(&rv.ID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.User.ID, &rv.User.Name)
		if err != nil {
			r.logger.Error("Failed to scan review", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}
		reviews = append(reviews, &rv)
	}

	return reviews, total, nil
}

func (r *reviewRepository) ListRatings(ctx context.Context, routeID int64) ([]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT rating FROM reviews WHERE route_id = $1", routeID,
	)
	if err != nil {
		r.logger.Error("Failed to list ratings", zap.Int64("route_id", routeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	ratings := make([]int, 0)
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			r.logger.Error("Failed to scan rating", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		ratings = append(ratings, rating)
	}

	return ratings, nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.ReviewWithRoute, error) {
	query := `
		SELECT rv.id, rv.rating, rv.comment, rv.created_at, rt.id, rt.title, rt.slug
		FROM reviews rv
		JOIN routes rt ON rt.id = rv.route_id
		WHERE rv.user_id = $1
		ORDER BY rv.created_at DESC
	`

	return r.queryWithRoute(ctx, query, userID)
}

func (r *reviewRepository) ListAll(ctx context.Context) ([]*domain.ReviewWithRoute, error) {
	query := `
		SELECT rv.id, rv.rating, rv.comment, rv.created_at, rt.id, rt.title, rt.slug
		FROM reviews rv
		JOIN routes rt ON rt.id = rv.route_id
		ORDER BY rv.created_at DESC
	`

	return r.queryWithRoute(ctx, query)
}

func (r *reviewRepository) queryWithRoute(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]*domain.ReviewWithRoute, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query reviews with route", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	reviews := make([]*domain.ReviewWithRoute, 0)
	for rows.Next() {
		var rv domain.ReviewWithRoute
		err := rows.Scan(
			&rv.ID, &rv.Rating, &rv.Comment, &rv.CreatedAt,
			&rv.Route.ID, &rv.Route.Title, &rv.Route.Slug,
		)
		if err != nil {
			r.logger.Error("Failed to scan review with route", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		reviews = append(reviews, &rv)
	}

	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, id int64, patch domain.ReviewPatch) (*domain.Review, error) {
	set := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	argIdx := 1

	if patch.Rating != nil {
		set = append(set, fmt.Sprintf("rating = $%d", argIdx))
		args = append(args, *patch.Rating)
		argIdx++
	}
	if patch.Comment != nil {
		set = append(set, fmt.Sprintf("comment = $%d", argIdx))
		args = append(args, *patch.Comment)
		argIdx++
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`
		UPDATE reviews SET %s
		WHERE id = $%d
		RETURNING id, route_id, user_id, rating, comment, created_at
	`, strings.Join(set, ", "), argIdx)
	args = append(args, id)

	var review domain.Review
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&review.ID, &review.RouteID, &review.UserID,
		&review.Rating, &review.Comment, &review.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrReviewNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update review", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &review, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete review", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read delete result", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrReviewNotFound
	}

	return nil
}
