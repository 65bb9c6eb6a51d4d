package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
	"github.com/senda-infinita/internal/usecase/dto"
)

// RouteUseCase handles catalog reads: paginated listing and the detail view
// with derived aggregates.
type RouteUseCase struct {
	routeRepo  repository.RouteRepository
	reviewRepo repository.ReviewRepository
	logger     *zap.Logger
}

// NewRouteUseCase creates a new RouteUseCase.
func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	reviewRepo repository.ReviewRepository,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		routeRepo:  routeRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// ListRoutes returns one page of route summaries. The text filter matches
// title or description case-insensitively; an unknown difficulty is rejected
// before touching the database.
func (uc *RouteUseCase) ListRoutes(ctx context.Context, req dto.ListRoutesRequest) (*dto.ListRoutesResponse, error) {
	if req.Difficulty != "" && !domain.IsValidDifficulty(req.Difficulty) {
		return nil, errors.ErrInvalidDifficulty
	}

	page := domain.ClampPage(req.Page)
	offset := (page - 1) * domain.DefaultPageSize

	routes, total, err := uc.routeRepo.List(ctx, domain.RouteFilter{
		Q:          req.Q,
		Difficulty: req.Difficulty,
	}, domain.DefaultPageSize, offset)
	if err != nil {
		return nil, err
	}

	return &dto.ListRoutesResponse{
		Routes:     routes,
		Pagination: domain.NewPagination(page, total),
	}, nil
}

// GetRouteBySlug returns the full detail view: route scalars, ordered
// waypoints and review aggregates recomputed from the current rows.
func (uc *RouteUseCase) GetRouteBySlug(ctx context.Context, slug string) (*domain.RouteDetail, error) {
	route, err := uc.routeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	waypoints, err := uc.routeRepo.ListWaypoints(ctx, route.ID)
	if err != nil {
		return nil, err
	}

	ratings, err := uc.reviewRepo.ListRatings(ctx, route.ID)
	if err != nil {
		return nil, err
	}

	detail := &domain.RouteDetail{
		Route:        *route,
		Waypoints:    waypoints,
		ReviewsCount: len(ratings),
	}
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		avg := float64(sum) / float64(len(ratings))
		detail.AvgRating = &avg
	}

	return detail, nil
}
