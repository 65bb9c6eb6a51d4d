package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	apperrors "github.com/senda-infinita/internal/pkg/errors"
	"go.uber.org/zap"
)

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	created := *user
	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.Password, user.Role,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrEmailInUse
		}
		r.logger.Error("Failed to create user", zap.String("email", user.Email), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &created, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "SELECT id, name, email, password, role, created_at FROM users WHERE id = $1", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "SELECT id, name, email, password, role, created_at FROM users WHERE email = $1", email)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get user", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &user, nil
}

func (r *userRepository) ListWithCounts(ctx context.Context) ([]*domain.UserWithCounts, error) {
	query := `
		SELECT u.id, u.name, u.email, u.role, u.created_at,
		       (SELECT COUNT(*) FROM reviews rv WHERE rv.user_id = u.id),
		       (SELECT COUNT(*) FROM favorites f WHERE f.user_id = u.id),
		       (SELECT COUNT(*) FROM photos p WHERE p.user_id = u.id)
		FROM users u
		ORDER BY u.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list users", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	defer rows.Close()

	users := make([]*domain.UserWithCounts, 0)
	for rows.Next() {
		var u domain.UserWithCounts
		err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt,
			&u.ReviewsCount, &u.FavoritesCount, &u.PhotosCount,
		)
		if err != nil {
			r.logger.Error("Failed to scan user", zap.Error(err))
			return nil, apperrors.ErrDatabaseError
		}
		users = append(users, &u)
	}

	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id int64, role string) (*domain.User, error) {
	query := `
		UPDATE users SET role = $2
		WHERE id = $1
		RETURNING id, name, email, password, role, created_at
	`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, id, role).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update user role", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &user, nil
}

// Delete removes the user's reviews, favorites and photos before the user
// row itself, all inside one transaction.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin delete transaction", zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM reviews WHERE user_id = $1",
		"DELETE FROM favorites WHERE user_id = $1",
		"DELETE FROM photos WHERE user_id = $1",
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			r.logger.Error("Failed to delete user children", zap.Int64("id", id), zap.Error(err))
			return apperrors.ErrDatabaseError
		}
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete user", zap.Int64("id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read delete result", zap.Int64("id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit delete transaction", zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	return nil
}
