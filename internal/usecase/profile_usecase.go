package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
)

// ProfileUseCase serves the signed-in user's own activity.
type ProfileUseCase struct {
	reviewRepo   repository.ReviewRepository
	favoriteRepo repository.FavoriteRepository
	logger       *zap.Logger
}

// NewProfileUseCase creates a new ProfileUseCase.
func NewProfileUseCase(
	reviewRepo repository.ReviewRepository,
	favoriteRepo repository.FavoriteRepository,
	logger *zap.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		reviewRepo:   reviewRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

// GetMyReviews returns the user's reviews with their route, newest first.
func (uc *ProfileUseCase) GetMyReviews(ctx context.Context, userID int64) ([]*domain.ReviewWithRoute, error) {
	return uc.reviewRepo.ListByUser(ctx, userID)
}

// GetMyFavorites returns the user's favorites, newest first.
func (uc *ProfileUseCase) GetMyFavorites(ctx context.Context, userID int64) ([]*domain.FavoriteWithRoute, error) {
	return uc.favoriteRepo.ListByUser(ctx, userID)
}
