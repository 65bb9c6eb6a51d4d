package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
)

// PhotoUseCase manages route photos: storage upload plus the metadata row.
type PhotoUseCase struct {
	photoRepo repository.PhotoRepository
	routeRepo repository.RouteRepository
	storage   repository.PhotoStorage
	logger    *zap.Logger
}

// NewPhotoUseCase creates a new PhotoUseCase.
func NewPhotoUseCase(
	photoRepo repository.PhotoRepository,
	routeRepo repository.RouteRepository,
	storage repository.PhotoStorage,
	logger *zap.Logger,
) *PhotoUseCase {
	return &PhotoUseCase{
		photoRepo: photoRepo,
		routeRepo: routeRepo,
		storage:   storage,
		logger:    logger,
	}
}

// UploadPhoto stores the binary and records it against an existing route.
// The stored file is removed again if the row insert fails.
func (uc *PhotoUseCase) UploadPhoto(ctx context.Context, userID, routeID int64, data []byte, contentType string) (*domain.Photo, error) {
	if len(data) == 0 {
		return nil, errors.ErrValidation.WithMessage("photo file is required")
	}

	if _, err := uc.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, err
	}

	url, err := uc.storage.Save(ctx, data, contentType)
	if err != nil {
		return nil, err
	}

	photo, err := uc.photoRepo.Create(ctx, &domain.Photo{
		RouteID: routeID,
		UserID:  userID,
		URL:     url,
	})
	if err != nil {
		if rmErr := uc.storage.Remove(ctx, url); rmErr != nil {
			uc.logger.Warn("Failed to remove orphaned upload",
				zap.String("url", url),
				zap.Error(rmErr))
		}
		return nil, err
	}

	uc.logger.Info("Photo uploaded",
		zap.Int64("photo_id", photo.ID),
		zap.Int64("route_id", routeID),
		zap.Int64("user_id", userID))

	return photo, nil
}

// GetRoutePhotos returns an existing route's photos, newest first.
func (uc *PhotoUseCase) GetRoutePhotos(ctx context.Context, routeID int64) ([]*domain.PhotoWithAuthor, error) {
	if _, err := uc.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, err
	}
	return uc.photoRepo.ListByRoute(ctx, routeID)
}

// DeletePhoto removes a photo. Only the uploader or an admin may delete; the
// stored file is removed best effort after the row.
func (uc *PhotoUseCase) DeletePhoto(ctx context.Context, actor domain.AuthUser, photoID int64) error {
	photo, err := uc.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}
	if photo.UserID != actor.ID && !actor.IsAdmin() {
		return errors.ErrForbidden
	}

	if err := uc.photoRepo.Delete(ctx, photoID); err != nil {
		return err
	}

	if err := uc.storage.Remove(ctx, photo.URL); err != nil {
		uc.logger.Warn("Failed to remove stored photo",
			zap.String("url", photo.URL),
			zap.Error(err))
	}

	uc.logger.Info("Photo deleted",
		zap.Int64("photo_id", photoID),
		zap.Int64("actor_id", actor.ID))

	return nil
}
