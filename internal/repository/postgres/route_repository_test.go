package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
)

type RouteRepositorySuite struct {
	suite.Suite
	db   *DB
	repo repository.RouteRepository
	ctx  context.Context
}

func (s *RouteRepositorySuite) SetupSuite() {
	s.db = setupTestDB(s.T())
	s.repo = NewRouteRepository(s.db)
	s.ctx = context.Background()
}

func (s *RouteRepositorySuite) TearDownSuite() {
	if s.db != nil {
		teardownTestDB(s.T(), s.db)
	}
}

func (s *RouteRepositorySuite) uniqueSlug(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func (s *RouteRepositorySuite) TestCreateWithWaypoints() {
	slug := s.uniqueSlug("create-test")
	route := createTestRoute(s.T(), s.db, "Create Test", slug)

	s.NotZero(route.ID)
	s.Equal(slug, route.Slug)
	s.False(route.CreatedAt.IsZero())

	waypoints, err := s.repo.ListWaypoints(s.ctx, route.ID)
	s.Require().NoError(err)
	s.Require().Len(waypoints, 2)
	s.Equal(0, waypoints[0].Position)
	s.Equal(1, waypoints[1].Position)
	s.Require().NotNil(waypoints[0].Elevation)
	s.Equal(950, *waypoints[0].Elevation)
	s.Nil(waypoints[1].Elevation)
}

func (s *RouteRepositorySuite) TestCreateWithoutMetricsKeepsNulls() {
	slug := s.uniqueSlug("no-metrics")

	route, err := s.repo.CreateWithWaypoints(s.ctx, &domain.Route{
		Title:      "No Metrics",
		Slug:       slug,
		Difficulty: domain.DifficultyEasy,
		Source:     domain.SourceORS,
		StartLat:   43.04,
		StartLng:   -4.75,
		EndLat:     43.05,
		EndLng:     -4.74,
	}, []domain.Waypoint{
		{Position: 0, Lat: 43.04, Lng: -4.75},
	})
	s.Require().NoError(err)
	s.T().Cleanup(func() {
		s.db.ExecContext(context.Background(), "DELETE FROM routes WHERE id = $1", route.ID)
	})

	s.Nil(route.DistanceKm)
	s.Nil(route.AscentM)

	got, err := s.repo.GetBySlug(s.ctx, slug)
	s.Require().NoError(err)
	s.Nil(got.DistanceKm)
	s.Nil(got.AscentM)
}

func (s *RouteRepositorySuite) TestCreateWithWaypointsSlugConflict() {
	slug := s.uniqueSlug("conflict-test")
	createTestRoute(s.T(), s.db, "First", slug)

	_, err := s.repo.CreateWithWaypoints(s.ctx, &domain.Route{
		Title:      "Second",
		Slug:       slug,
		Difficulty: domain.DifficultyEasy,
		Source:     domain.SourceORS,
	}, nil)
	s.Require().Error(err)
	s.True(errors.ErrSlugConflict.Is(err))
}

func (s *RouteRepositorySuite) TestGetBySlug() {
	slug := s.uniqueSlug("get-test")
	created := createTestRoute(s.T(), s.db, "Get Test", slug)

	route, err := s.repo.GetBySlug(s.ctx, slug)
	s.Require().NoError(err)
	s.Equal(created.ID, route.ID)
	s.Equal("Get Test", route.Title)
	s.Require().NotNil(route.DistanceKm)
	s.InDelta(12.5, *route.DistanceKm, 0.001)
}

func (s *RouteRepositorySuite) TestGetBySlugNotFound() {
	_, err := s.repo.GetBySlug(s.ctx, "does-not-exist")
	s.Require().Error(err)
	s.True(errors.ErrRouteNotFound.Is(err))
}

func (s *RouteRepositorySuite) TestListFilters() {
	slug := s.uniqueSlug("list-test")
	createTestRoute(s.T(), s.db, "Unmistakable Listing Title", slug)

	routes, total, err := s.repo.List(s.ctx, domain.RouteFilter{Q: "Unmistakable Listing"}, 10, 0)
	s.Require().NoError(err)
	s.GreaterOrEqual(total, 1)
	s.Require().NotEmpty(routes)
	s.Equal("Unmistakable Listing Title", routes[0].Title)

	_, total, err = s.repo.List(s.ctx, domain.RouteFilter{
		Q:          "Unmistakable Listing",
		Difficulty: domain.DifficultyHard,
	}, 10, 0)
	s.Require().NoError(err)
	s.Zero(total)
}

func (s *RouteRepositorySuite) TestUpdate() {
	slug := s.uniqueSlug("update-test")
	route := createTestRoute(s.T(), s.db, "Before", slug)

	title := "After"
	difficulty := domain.DifficultyHard
	updated, err := s.repo.Update(s.ctx, route.ID, domain.RoutePatch{
		Title:      &title,
		Difficulty: &difficulty,
	})
	s.Require().NoError(err)
	s.Equal("After", updated.Title)
	s.Equal(domain.DifficultyHard, updated.Difficulty)
	s.Equal(slug, updated.Slug)
}

func (s *RouteRepositorySuite) TestUpdateNotFound() {
	title := "Ghost"
	_, err := s.repo.Update(s.ctx, -1, domain.RoutePatch{Title: &title})
	s.Require().Error(err)
	s.True(errors.ErrRouteNotFound.Is(err))
}

func (s *RouteRepositorySuite) TestDeleteRemovesWaypoints() {
	slug := s.uniqueSlug("delete-test")
	route := createTestRoute(s.T(), s.db, "Delete Test", slug)

	err := s.repo.Delete(s.ctx, route.ID)
	s.Require().NoError(err)

	_, err = s.repo.GetByID(s.ctx, route.ID)
	s.True(errors.ErrRouteNotFound.Is(err))

	waypoints, err := s.repo.ListWaypoints(s.ctx, route.ID)
	s.Require().NoError(err)
	s.Empty(waypoints)
}

func TestRouteRepositorySuite(t *testing.T) {
	suite.Run(t, new(RouteRepositorySuite))
}
