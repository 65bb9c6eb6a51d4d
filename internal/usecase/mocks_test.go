package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/senda-infinita/internal/domain"
)

// MockRouteRepository is a mock of RouteRepository
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) List(ctx context.Context, filter domain.RouteFilter, limit, offset int) ([]*domain.RouteSummary, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.RouteSummary), args.Int(1), args.Error(2)
}

func (m *MockRouteRepository) ListAll(ctx context.Context) ([]*domain.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) GetBySlug(ctx context.Context, slug string) (*domain.Route, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) ListWaypoints(ctx context.Context, routeID int64) ([]domain.Waypoint, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Waypoint), args.Error(1)
}

func (m *MockRouteRepository) CreateWithWaypoints(ctx context.Context, route *domain.Route, waypoints []domain.Waypoint) (*domain.Route, error) {
	args := m.Called(ctx, route, waypoints)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) Update(ctx context.Context, id int64, patch domain.RoutePatch) (*domain.Route, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReviewRepository is a mock of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByRoute(ctx context.Context, routeID int64, limit, offset int) ([]*domain.ReviewWithAuthor, int, error) {
	args := m.Called(ctx, routeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.ReviewWithAuthor), args.Int(1), args.Error(2)
}

func (m *MockReviewRepository) ListRatings(ctx context.Context, routeID int64) ([]int, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockReviewRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.ReviewWithRoute, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReviewWithRoute), args.Error(1)
}

func (m *MockReviewRepository) ListAll(ctx context.Context) ([]*domain.ReviewWithRoute, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReviewWithRoute), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, id int64, patch domain.ReviewPatch) (*domain.Review, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFavoriteRepository is a mock of FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Insert(ctx context.Context, userID, routeID int64) (bool, error) {
	args := m.Called(ctx, userID, routeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, routeID int64) (bool, error) {
	args := m.Called(ctx, userID, routeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.FavoriteWithRoute, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FavoriteWithRoute), args.Error(1)
}

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListWithCounts(ctx context.Context) ([]*domain.UserWithCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserWithCounts), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id int64, role string) (*domain.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPhotoRepository is a mock of PhotoRepository
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) Create(ctx context.Context, photo *domain.Photo) (*domain.Photo, error) {
	args := m.Called(ctx, photo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *MockPhotoRepository) GetByID(ctx context.Context, id int64) (*domain.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ListByRoute(ctx context.Context, routeID int64) ([]*domain.PhotoWithAuthor, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PhotoWithAuthor), args.Error(1)
}

func (m *MockPhotoRepository) ListAll(ctx context.Context) ([]*domain.PhotoAdminItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PhotoAdminItem), args.Error(1)
}

func (m *MockPhotoRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPhotoStorage is a mock of PhotoStorage
type MockPhotoStorage struct {
	mock.Mock
}

func (m *MockPhotoStorage) Save(ctx context.Context, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockPhotoStorage) Remove(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// MockDirectionsRepository is a mock of DirectionsRepository
type MockDirectionsRepository struct {
	mock.Mock
}

func (m *MockDirectionsRepository) GetHikingRoute(ctx context.Context, startLat, startLng, endLat, endLng float64) (*domain.DirectionsResponse, error) {
	args := m.Called(ctx, startLat, startLng, endLat, endLng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectionsResponse), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.CatalogStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogStats), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.CatalogStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetStatistics(ctx context.Context) (*domain.CatalogStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogStats), args.Error(1)
}

func ptrString(s string) *string    { return &s }
func ptrInt(i int) *int             { return &i }
func ptrFloat64(f float64) *float64 { return &f }
