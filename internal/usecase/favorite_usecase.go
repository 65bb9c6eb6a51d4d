package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/usecase/dto"
)

// FavoriteUseCase manages the per-user favorite set. Toggling is race-free:
// the insert relies on the (user, route) unique constraint, so two concurrent
// toggles resolve to exactly one membership flip each.
type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	routeRepo    repository.RouteRepository
	logger       *zap.Logger
}

// NewFavoriteUseCase creates a new FavoriteUseCase.
func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	routeRepo repository.RouteRepository,
	logger *zap.Logger,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		routeRepo:    routeRepo,
		logger:       logger,
	}
}

// ToggleFavorite flips the favorite state for (user, route) and returns the
// resulting state.
func (uc *FavoriteUseCase) ToggleFavorite(ctx context.Context, userID, routeID int64) (*dto.ToggleFavoriteResponse, error) {
	if _, err := uc.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, err
	}

	created, err := uc.favoriteRepo.Insert(ctx, userID, routeID)
	if err != nil {
		return nil, err
	}
	if created {
		return &dto.ToggleFavoriteResponse{IsFavorite: true}, nil
	}

	// Already favorited: the toggle means removal.
	if _, err := uc.favoriteRepo.Delete(ctx, userID, routeID); err != nil {
		return nil, err
	}
	return &dto.ToggleFavoriteResponse{IsFavorite: false}, nil
}

// RemoveFavorite unconditionally removes the favorite and reports whether a
// row existed.
func (uc *FavoriteUseCase) RemoveFavorite(ctx context.Context, userID, routeID int64) (*dto.DeleteFavoriteResponse, error) {
	deleted, err := uc.favoriteRepo.Delete(ctx, userID, routeID)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteFavoriteResponse{Deleted: deleted}, nil
}

// ListMyFavorites returns the user's favorites, newest first.
func (uc *FavoriteUseCase) ListMyFavorites(ctx context.Context, userID int64) ([]*domain.FavoriteWithRoute, error) {
	return uc.favoriteRepo.ListByUser(ctx, userID)
}
