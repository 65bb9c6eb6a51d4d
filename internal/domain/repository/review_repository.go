package repository

import (
	"context"

	"github.com/senda-infinita/internal/domain"
)

// ReviewRepository defines the persistence operations over reviews.
type ReviewRepository interface {
	// Create inserts a review and returns it with id and timestamp set.
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)

	// GetByID returns the review or ErrReviewNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Review, error)

	// ListByRoute returns one page of a route's reviews with author identity,
	// newest first, together with the total count.
	ListByRoute(ctx context.Context, routeID int64, limit, offset int) ([]*domain.ReviewWithAuthor, int, error)

	// ListRatings returns all rating values for a route.
	ListRatings(ctx context.Context, routeID int64) ([]int, error)

	// ListByUser returns a user's reviews with their route, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*domain.ReviewWithRoute, error)

	// ListAll returns every review with author and route, newest first
	// (admin listing).
	ListAll(ctx context.Context) ([]*domain.ReviewWithRoute, error)

	// Update applies a partial patch and returns the updated review.
	Update(ctx context.Context, id int64, patch domain.ReviewPatch) (*domain.Review, error)

	// Delete removes the review.
	Delete(ctx context.Context, id int64) error
}
