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

func newAdminUseCase(
	users *MockUserRepository,
	routes *MockRouteRepository,
	reviews *MockReviewRepository,
	photos *MockPhotoRepository,
	storage *MockPhotoStorage,
	stream *MockStreamRepository,
) *usecase.AdminUseCase {
	// A typed nil would defeat the publisher's nil check.
	if stream == nil {
		return usecase.NewAdminUseCase(users, routes, reviews, photos, storage, nil, zap.NewNop())
	}
	return usecase.NewAdminUseCase(users, routes, reviews, photos, storage, stream, zap.NewNop())
}

func TestAdminUseCase_UpdateUserRole(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown role", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAdminUseCase(mockUsers, &MockRouteRepository{}, &MockReviewRepository{}, &MockPhotoRepository{}, &MockPhotoStorage{}, nil)

		_, err := uc.UpdateUserRole(ctx, 1, "SUPERUSER")
		require.Error(t, err)
		assert.True(t, errors.ErrValidation.Is(err))
		mockUsers.AssertNotCalled(t, "UpdateRole")
	})

	t.Run("assigns role", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAdminUseCase(mockUsers, &MockRouteRepository{}, &MockReviewRepository{}, &MockPhotoRepository{}, &MockPhotoStorage{}, nil)

		mockUsers.On("UpdateRole", ctx, int64(1), domain.RoleAdmin).
			Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)

		user, err := uc.UpdateUserRole(ctx, 1, domain.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})
}

func TestAdminUseCase_DeleteUser(t *testing.T) {
	ctx := context.Background()
	admin := domain.AuthUser{ID: 3, Role: domain.RoleAdmin}

	t.Run("self-delete is rejected", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAdminUseCase(mockUsers, &MockRouteRepository{}, &MockReviewRepository{}, &MockPhotoRepository{}, &MockPhotoStorage{}, nil)

		err := uc.DeleteUser(ctx, admin, 3)
		require.Error(t, err)
		assert.True(t, errors.ErrValidation.Is(err))
		mockUsers.AssertNotCalled(t, "Delete")
	})

	t.Run("deletes another user", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAdminUseCase(mockUsers, &MockRouteRepository{}, &MockReviewRepository{}, &MockPhotoRepository{}, &MockPhotoStorage{}, nil)

		mockUsers.On("GetByID", ctx, int64(7)).Return(&domain.User{ID: 7}, nil)
		mockUsers.On("Delete", ctx, int64(7)).Return(nil)

		require.NoError(t, uc.DeleteUser(ctx, admin, 7))
		mockUsers.AssertExpectations(t)
	})
}

func TestAdminUseCase_UpdateRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("empty patch is rejected", func(t *testing.T) {
		mockRoutes := &MockRouteRepository{}
		uc := newAdminUseCase(&MockUserRepository{}, mockRoutes, &MockReviewRepository{}, &MockPhotoRepository{}, &MockPhotoStorage{}, nil)

		_, err := uc.UpdateRoute(ctx, 5, dto.UpdateRouteRequest{})
		require.Error(t, err)
		assert.True(t, errors.ErrValidation.Is(err))
		mockRoutes.AssertNotCalled(t, "Update")
	})

	t.Run("title change re-slugs and conflicts with another owner", func(t *testing.T) {
		mockRoutes := &MockRouteRepository{}
		uc := newAdminUseCase(&MockUserRepository{}, mockRoutes, &MockReviewRepository{}, &MockPhotoRepository{}, &MockPhotoStorage{}, nil)

		mockRoutes.On("GetByID", ctx, int64(5)).Return(&domain.Route{ID: 5}, nil)
		mockRoutes.On("GetBySlug", ctx, "ruta-del-cares").Return(&domain.Route{ID: 8, Slug: "ruta-del-cares"}, nil)

		_, err := uc.UpdateRoute(ctx, 5, dto.UpdateRouteRequest{Title: ptrString("Ruta del Cares")})
		require.Error(t, err)
		assert.True(t, errors.ErrSlugConflict.Is(err))
		mockRoutes.AssertNotCalled(t, "Update")
	})

	t.Run("re-slug to own slug is fine", func(t *testing.T) {
		mockRoutes := &MockRouteRepository{}
		uc := newAdminUseCase(&MockUserRepository{}, mockRoutes, &MockReviewRepository{}, &MockPhotoRepository{}, &MockPhotoStorage{}, nil)

		mockRoutes.On("GetByID", ctx, int64(5)).Return(&domain.Route{ID: 5, Slug: "ruta-del-cares"}, nil)
		mockRoutes.On("GetBySlug", ctx, "ruta-del-cares").Return(&domain.Route{ID: 5, Slug: "ruta-del-cares"}, nil)

		var gotPatch domain.RoutePatch
		mockRoutes.On("Update", ctx, int64(5), mock.AnythingOfType("domain.RoutePatch")).
			Run(func(args mock.Arguments) {
				gotPatch = args.Get(2).(domain.RoutePatch)
			}).
			Return(&domain.Route{ID: 5, Title: "Ruta del Cares", Slug: "ruta-del-cares"}, nil)

		_, err := uc.UpdateRoute(ctx, 5, dto.UpdateRouteRequest{Title: ptrString("Ruta del Cares")})
		require.NoError(t, err)
		require.NotNil(t, gotPatch.Slug)
		assert.Equal(t, "ruta-del-cares", *gotPatch.Slug)
	})

	t.Run("difficulty whitelist enforced", func(t *testing.T) {
		mockRoutes := &MockRouteRepository{}
		uc := newAdminUseCase(&MockUserRepository{}, mockRoutes, &MockReviewRepository{}, &MockPhotoRepository{}, &MockPhotoStorage{}, nil)

		_, err := uc.UpdateRoute(ctx, 5, dto.UpdateRouteRequest{Difficulty: ptrString("BRUTAL")})
		require.Error(t, err)
		assert.True(t, errors.ErrInvalidDifficulty.Is(err))
	})
}

func TestAdminUseCase_DeleteRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("removes rows then stored files and publishes event", func(t *testing.T) {
		mockRoutes := &MockRouteRepository{}
		mockPhotos := &MockPhotoRepository{}
		mockStorage := &MockPhotoStorage{}
		mockStream := &MockStreamRepository{}
		uc := newAdminUseCase(&MockUserRepository{}, mockRoutes, &MockReviewRepository{}, mockPhotos, mockStorage, mockStream)

		mockRoutes.On("GetByID", ctx, int64(5)).Return(&domain.Route{ID: 5}, nil)
		mockPhotos.On("ListByRoute", ctx, int64(5)).Return([]*domain.PhotoWithAuthor{
			{ID: 1, URL: "/uploads/a.jpg"},
			{ID: 2, URL: "/uploads/b.jpg"},
		}, nil)
		mockRoutes.On("Delete", ctx, int64(5)).Return(nil)
		mockStorage.On("Remove", ctx, "/uploads/a.jpg").Return(nil)
		mockStorage.On("Remove", ctx, "/uploads/b.jpg").Return(nil)
		mockStream.On("PublishToStream", ctx, domain.StreamCatalogEvents, mock.Anything).Return(nil)

		require.NoError(t, uc.DeleteRoute(ctx, 5))
		mockStorage.AssertExpectations(t)
		mockStream.AssertExpectations(t)
	})

	t.Run("unknown route", func(t *testing.T) {
		mockRoutes := &MockRouteRepository{}
		uc := newAdminUseCase(&MockUserRepository{}, mockRoutes, &MockReviewRepository{}, &MockPhotoRepository{}, &MockPhotoStorage{}, nil)

		mockRoutes.On("GetByID", ctx, int64(99)).Return(nil, errors.ErrRouteNotFound)

		err := uc.DeleteRoute(ctx, 99)
		require.Error(t, err)
		assert.True(t, errors.ErrRouteNotFound.Is(err))
	})
}
