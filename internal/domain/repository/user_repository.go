package repository

import (
	"context"

	"github.com/senda-infinita/internal/domain"
)

// UserRepository defines the persistence operations over users.
type UserRepository interface {
	// Create inserts a user and returns it with id and timestamp set.
	// Returns ErrEmailInUse when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetByID returns the user or ErrUserNotFound.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail returns the user or ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListWithCounts returns every user with review/favorite/photo counts,
	// newest first (admin listing).
	ListWithCounts(ctx context.Context) ([]*domain.UserWithCounts, error)

	// UpdateRole sets the user's role and returns the updated user.
	UpdateRole(ctx context.Context, id int64, role string) (*domain.User, error)

	// Delete removes the user and all dependent rows (reviews, favorites,
	// photos) in one transaction, children first.
	Delete(ctx context.Context, id int64) error
}
