package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/pkg/errors"
	"github.com/senda-infinita/internal/usecase"
	"github.com/senda-infinita/internal/usecase/dto"
)

func validImportRequest() dto.ImportRouteRequest {
	return dto.ImportRouteRequest{
		Title:      "Pico Tres Mares",
		Difficulty: domain.DifficultyHard,
		StartLat:   43.0410,
		StartLng:   -4.7520,
		EndLat:     43.0500,
		EndLng:     -4.7600,
	}
}

func TestImportUseCase_ImportRouteFromORS(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("existing slug short-circuits without provider call", func(t *testing.T) {
		mockRoutes := &MockRouteRepository{}
		mockDirections := &MockDirectionsRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewImportUseCase(mockRoutes, mockDirections, mockStream, logger)

		existing := &domain.Route{ID: 9, Slug: "pico-tres-mares"}
		mockRoutes.On("GetBySlug", ctx, "pico-tres-mares").Return(existing, nil)

		resp, err := uc.ImportRouteFromORS(ctx, validImportRequest())
		require.NoError(t, err)

		assert.False(t, resp.Created)
		assert.Equal(t, existing, resp.Route)
		assert.Equal(t, 0, resp.WaypointsCreated)
		mockDirections.AssertNotCalled(t, "GetHikingRoute")
		mockRoutes.AssertNotCalled(t, "CreateWithWaypoints")
		mockStream.AssertNotCalled(t, "PublishToStream")
	})

	t.Run("validation failures stop before any collaborator", func(t *testing.T) {
		mockRoutes := &MockRouteRepository{}
		mockDirections := &MockDirectionsRepository{}
		uc := usecase.NewImportUseCase(mockRoutes, mockDirections, nil, logger)

		cases := []struct {
			name     string
			mutate   func(*dto.ImportRouteRequest)
			expected *errors.AppError
		}{
			{"empty title", func(r *dto.ImportRouteRequest) { r.Title = "   " }, errors.ErrValidation},
			{"bad difficulty", func(r *dto.ImportRouteRequest) { r.Difficulty = "BRUTAL" }, errors.ErrInvalidDifficulty},
			{"latitude out of range", func(r *dto.ImportRouteRequest) { r.StartLat = 91 }, errors.ErrInvalidCoordinates},
			{"longitude out of range", func(r *dto.ImportRouteRequest) { r.EndLng = -181 }, errors.ErrInvalidCoordinates},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validImportRequest()
				tc.mutate(&req)

				_, err := uc.ImportRouteFromORS(ctx, req)
				require.Error(t, err)
				assert.True(t, tc.expected.Is(err))
			})
		}

		mockRoutes.AssertNotCalled(t, "GetBySlug")
		mockDirections.AssertNotCalled(t, "GetHikingRoute")
	})

	t.Run("provider errors propagate untouched", func(t *testing.T) {
		mockRoutes := &MockRouteRepository{}
		mockDirections := &MockDirectionsRepository{}
		uc := usecase.NewImportUseCase(mockRoutes, mockDirections, nil, logger)

		mockRoutes.On("GetBySlug", ctx, "pico-tres-mares").Return(nil, errors.ErrRouteNotFound)
		mockDirections.On("GetHikingRoute", ctx, 43.0410, -4.7520, 43.0500, -4.7600).
			Return(nil, errors.Upstream(503, "unavailable"))

		_, err := uc.ImportRouteFromORS(ctx, validImportRequest())
		require.Error(t, err)
		assert.True(t, errors.ErrUpstream.Is(err))
		mockRoutes.AssertNotCalled(t, "CreateWithWaypoints")
	})

	t.Run("successful import persists snapped geometry", func(t *testing.T) {
		mockRoutes := &MockRouteRepository{}
		mockDirections := &MockDirectionsRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewImportUseCase(mockRoutes, mockDirections, mockStream, logger)

		distance := 8400.0
		ascent := 612.4
		directions := &domain.DirectionsResponse{
			Features: []domain.DirectionsFeature{{
				Properties: domain.DirectionsProperties{
					Summary: &domain.DirectionsSummary{Distance: &distance, Ascent: &ascent},
				},
				Geometry: domain.DirectionsGeometry{
					Coordinates: [][]float64{
						{-4.7521, 43.0411, 950.2},
						{-4.7560, 43.0450},
						{-4.7601, 43.0501, 1240.6},
					},
				},
			}},
		}

		mockRoutes.On("GetBySlug", ctx, "pico-tres-mares").Return(nil, errors.ErrRouteNotFound)
		mockDirections.On("GetHikingRoute", ctx, 43.0410, -4.7520, 43.0500, -4.7600).
			Return(directions, nil)

		var gotRoute *domain.Route
		var gotWaypoints []domain.Waypoint
		mockRoutes.On("CreateWithWaypoints", ctx, mock.AnythingOfType("*domain.Route"), mock.AnythingOfType("[]domain.Waypoint")).
			Run(func(args mock.Arguments) {
				gotRoute = args.Get(1).(*domain.Route)
				gotWaypoints = args.Get(2).([]domain.Waypoint)
			}).
			Return(&domain.Route{ID: 12, Slug: "pico-tres-mares"}, nil)
		mockStream.On("PublishToStream", ctx, domain.StreamCatalogEvents, mock.Anything).Return(nil)

		resp, err := uc.ImportRouteFromORS(ctx, validImportRequest())
		require.NoError(t, err)

		assert.True(t, resp.Created)
		assert.Equal(t, 3, resp.WaypointsCreated)

		// Endpoints are the provider-snapped ones, not the requested ones.
		assert.Equal(t, 43.0411, gotRoute.StartLat)
		assert.Equal(t, -4.7521, gotRoute.StartLng)
		assert.Equal(t, 43.0501, gotRoute.EndLat)
		assert.Equal(t, -4.7601, gotRoute.EndLng)
		assert.Equal(t, domain.SourceORS, gotRoute.Source)

		require.NotNil(t, gotRoute.DistanceKm)
		assert.InDelta(t, 8.4, *gotRoute.DistanceKm, 1e-12)
		require.NotNil(t, gotRoute.AscentM)
		assert.Equal(t, 612, *gotRoute.AscentM)

		require.Len(t, gotWaypoints, 3)
		assert.Equal(t, 0, gotWaypoints[0].Position)
		assert.Equal(t, 2, gotWaypoints[2].Position)
		require.NotNil(t, gotWaypoints[0].Elevation)
		assert.Equal(t, 950, *gotWaypoints[0].Elevation)
		assert.Nil(t, gotWaypoints[1].Elevation)
		require.NotNil(t, gotWaypoints[2].Elevation)
		assert.Equal(t, 1241, *gotWaypoints[2].Elevation)

		mockStream.AssertCalled(t, "PublishToStream", ctx, domain.StreamCatalogEvents, mock.Anything)
	})

	t.Run("missing summary leaves metrics nil", func(t *testing.T) {
		mockRoutes := &MockRouteRepository{}
		mockDirections := &MockDirectionsRepository{}
		uc := usecase.NewImportUseCase(mockRoutes, mockDirections, nil, logger)

		directions := &domain.DirectionsResponse{
			Features: []domain.DirectionsFeature{{
				Geometry: domain.DirectionsGeometry{
					Coordinates: [][]float64{{-4.75, 43.04}, {-4.76, 43.05}},
				},
			}},
		}

		mockRoutes.On("GetBySlug", ctx, "pico-tres-mares").Return(nil, errors.ErrRouteNotFound)
		mockDirections.On("GetHikingRoute", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(directions, nil)

		var gotRoute *domain.Route
		mockRoutes.On("CreateWithWaypoints", ctx, mock.AnythingOfType("*domain.Route"), mock.AnythingOfType("[]domain.Waypoint")).
			Run(func(args mock.Arguments) {
				gotRoute = args.Get(1).(*domain.Route)
			}).
			Return(&domain.Route{ID: 13}, nil)

		_, err := uc.ImportRouteFromORS(ctx, validImportRequest())
		require.NoError(t, err)

		assert.Nil(t, gotRoute.DistanceKm)
		assert.Nil(t, gotRoute.AscentM)
	})

	t.Run("publish failure does not fail the import", func(t *testing.T) {
		mockRoutes := &MockRouteRepository{}
		mockDirections := &MockDirectionsRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewImportUseCase(mockRoutes, mockDirections, mockStream, logger)

		directions := &domain.DirectionsResponse{
			Features: []domain.DirectionsFeature{{
				Geometry: domain.DirectionsGeometry{
					Coordinates: [][]float64{{-4.75, 43.04}, {-4.76, 43.05}},
				},
			}},
		}

		mockRoutes.On("GetBySlug", ctx, "pico-tres-mares").Return(nil, errors.ErrRouteNotFound)
		mockDirections.On("GetHikingRoute", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(directions, nil)
		mockRoutes.On("CreateWithWaypoints", ctx, mock.Anything, mock.Anything).
			Return(&domain.Route{ID: 14}, nil)
		mockStream.On("PublishToStream", ctx, domain.StreamCatalogEvents, mock.Anything).
			Return(assert.AnError)

		resp, err := uc.ImportRouteFromORS(ctx, validImportRequest())
		require.NoError(t, err)
		assert.True(t, resp.Created)
	})
}
