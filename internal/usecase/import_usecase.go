package usecase

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
	"github.com/senda-infinita/internal/pkg/slug"
	"github.com/senda-infinita/internal/usecase/dto"
)

// ImportUseCase drives the directions-provider import pipeline: validate,
// short-circuit on an existing slug, fetch the routed path, persist route and
// waypoints atomically.
type ImportUseCase struct {
	routeRepo      repository.RouteRepository
	directionsRepo repository.DirectionsRepository
	events         eventPublisher
	logger         *zap.Logger
}

// NewImportUseCase creates a new ImportUseCase. streamRepo may be nil when
// event publishing is disabled.
func NewImportUseCase(
	routeRepo repository.RouteRepository,
	directionsRepo repository.DirectionsRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		routeRepo:      routeRepo,
		directionsRepo: directionsRepo,
		events:         eventPublisher{streamRepo: streamRepo, logger: logger},
		logger:         logger,
	}
}

func validCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ImportRouteFromORS imports a hiking route between two points. A title whose
// slug already exists returns the stored route untouched, without calling the
// provider.
func (uc *ImportUseCase) ImportRouteFromORS(ctx context.Context, req dto.ImportRouteRequest) (*dto.ImportRouteResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.ErrValidation.WithMessage("title is required")
	}
	if !domain.IsValidDifficulty(req.Difficulty) {
		return nil, errors.ErrInvalidDifficulty
	}
	if !validCoordinate(req.StartLat, req.StartLng) || !validCoordinate(req.EndLat, req.EndLng) {
		return nil, errors.ErrInvalidCoordinates
	}

	routeSlug := slug.Make(req.Title)
	if routeSlug == "" {
		return nil, errors.ErrValidation.WithMessage("title yields an empty slug")
	}

	existing, err := uc.routeRepo.GetBySlug(ctx, routeSlug)
	if err == nil {
		uc.logger.Info("Import skipped, slug already exists",
			zap.String("slug", routeSlug),
			zap.Int64("route_id", existing.ID))
		return &dto.ImportRouteResponse{
			Created:          false,
			Route:            existing,
			WaypointsCreated: 0,
		}, nil
	}
	if !errors.ErrRouteNotFound.Is(err) {
		return nil, err
	}

	directions, err := uc.directionsRepo.GetHikingRoute(ctx, req.StartLat, req.StartLng, req.EndLat, req.EndLng)
	if err != nil {
		return nil, err
	}

	coords := directions.Features[0].Geometry.Coordinates

	route := &domain.Route{
		Title:       req.Title,
		Slug:        routeSlug,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Source:      domain.SourceORS,
		// The provider snaps endpoints to its path network; the stored
		// endpoints are the snapped ones, not the requested ones.
		StartLat: coords[0][1],
		StartLng: coords[0][0],
		EndLat:   coords[len(coords)-1][1],
		EndLng:   coords[len(coords)-1][0],
	}

	if summary := directions.Features[0].Properties.Summary; summary != nil {
		if summary.Distance != nil {
			km := *summary.Distance / 1000
			route.DistanceKm = &km
		}
		if summary.Ascent != nil {
			ascent := int(math.Round(*summary.Ascent))
			route.AscentM = &ascent
		}
	}

	waypoints := make([]domain.Waypoint, 0, len(coords))
	for i, c := range coords {
		wp := domain.Waypoint{
			Position: i,
			Lng:      c[0],
			Lat:      c[1],
		}
		if len(c) >= 3 {
			elev := int(math.Round(c[2]))
			wp.Elevation = &elev
		}
		waypoints = append(waypoints, wp)
	}

	created, err := uc.routeRepo.CreateWithWaypoints(ctx, route, waypoints)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Route imported",
		zap.Int64("route_id", created.ID),
		zap.String("slug", created.Slug),
		zap.Int("waypoints", len(waypoints)))

	uc.events.publish(ctx, domain.EventRouteImported, created.ID)

	return &dto.ImportRouteResponse{
		Created:          true,
		Route:            created,
		WaypointsCreated: len(waypoints),
	}, nil
}
