package repository

import (
	"context"

	"github.com/senda-infinita/internal/domain"
)

// FavoriteRepository defines the persistence operations over favorites.
type FavoriteRepository interface {
	// Insert adds a favorite for (userID, routeID) unless one already
	// exists. It reports whether a row was created, relying on the unique
	// constraint so concurrent toggles cannot double-insert.
	Insert(ctx context.Context, userID, routeID int64) (created bool, err error)

	// Delete removes the favorite for (userID, routeID) and reports whether
	// a row existed.
	Delete(ctx context.Context, userID, routeID int64) (deleted bool, err error)

	// ListByUser returns the user's favorites with the embedded route
	// projection, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*domain.FavoriteWithRoute, error)
}
