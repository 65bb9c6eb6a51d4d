package repository

import (
	"context"

	"github.com/senda-infinita/internal/domain"
)

// RouteRepository defines the persistence operations over routes and their
// waypoint batches.
type RouteRepository interface {
	// List returns one page of route summaries matching the filter, newest
	// first, together with the total match count.
	List(ctx context.Context, filter domain.RouteFilter, limit, offset int) ([]*domain.RouteSummary, int, error)

	// ListAll returns every route, newest first (admin listing).
	ListAll(ctx context.Context) ([]*domain.Route, error)

	// GetByID returns the route or ErrRouteNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Route, error)

	// GetBySlug returns the route or ErrRouteNotFound.
	GetBySlug(ctx context.Context, slug string) (*domain.Route, error)

	// ListWaypoints returns the route's waypoints ordered by position.
	ListWaypoints(ctx context.Context, routeID int64) ([]domain.Waypoint, error)

	// CreateWithWaypoints inserts the route and its waypoint batch in a
	// single transaction. Either everything persists or nothing does.
	CreateWithWaypoints(ctx context.Context, route *domain.Route, waypoints []domain.Waypoint) (*domain.Route, error)

	// Update applies a partial patch and returns the updated route.
	Update(ctx context.Context, id int64, patch domain.RoutePatch) (*domain.Route, error)

	// Delete removes the route and all dependent rows (favorites, reviews,
	// photos, waypoints) in one transaction, children first.
	Delete(ctx context.Context, id int64) error
}
