package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
	"github.com/senda-infinita/internal/pkg/slug"
	"github.com/senda-infinita/internal/usecase/dto"
)

// AdminUseCase is the moderation surface: user management, route edits and
// removal of any review or photo. All operations assume the caller already
// passed the admin gate.
type AdminUseCase struct {
	userRepo   repository.UserRepository
	routeRepo  repository.RouteRepository
	reviewRepo repository.ReviewRepository
	photoRepo  repository.PhotoRepository
	storage    repository.PhotoStorage
	events     eventPublisher
	logger     *zap.Logger
}

// NewAdminUseCase creates a new AdminUseCase. streamRepo may be nil when
// event publishing is disabled.
func NewAdminUseCase(
	userRepo repository.UserRepository,
	routeRepo repository.RouteRepository,
	reviewRepo repository.ReviewRepository,
	photoRepo repository.PhotoRepository,
	storage repository.PhotoStorage,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:   userRepo,
		routeRepo:  routeRepo,
		reviewRepo: reviewRepo,
		photoRepo:  photoRepo,
		storage:    storage,
		events:     eventPublisher{streamRepo: streamRepo, logger: logger},
		logger:     logger,
	}
}

// ListUsers returns every user with activity counts.
func (uc *AdminUseCase) ListUsers(ctx context.Context) ([]*domain.UserWithCounts, error) {
	return uc.userRepo.ListWithCounts(ctx)
}

// UpdateUserRole assigns a role.
func (uc *AdminUseCase) UpdateUserRole(ctx context.Context, userID int64, role string) (*domain.User, error) {
	if !domain.IsValidRole(role) {
		return nil, errors.ErrValidation.WithMessage("role must be USER or ADMIN")
	}
	user, err := uc.userRepo.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User role updated",
		zap.Int64("user_id", userID),
		zap.String("role", role))
	return user, nil
}

// DeleteUser removes a user and all their contributions. Admins cannot
// delete their own account.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, actor domain.AuthUser, userID int64) error {
	if actor.ID == userID {
		return errors.ErrValidation.WithMessage("you cannot delete your own account")
	}
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	uc.logger.Info("User deleted",
		zap.Int64("user_id", userID),
		zap.Int64("actor_id", actor.ID))
	return nil
}

// ListReviews returns every review with author and route.
func (uc *AdminUseCase) ListReviews(ctx context.Context) ([]*domain.ReviewWithRoute, error) {
	return uc.reviewRepo.ListAll(ctx)
}

// DeleteReview removes any review.
func (uc *AdminUseCase) DeleteReview(ctx context.Context, reviewID int64) error {
	if _, err := uc.reviewRepo.GetByID(ctx, reviewID); err != nil {
		return err
	}
	if err := uc.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}

	uc.logger.Info("Review deleted by admin", zap.Int64("review_id", reviewID))
	uc.events.publish(ctx, domain.EventReviewDeleted, reviewID)
	return nil
}

// ListRoutes returns every route.
func (uc *AdminUseCase) ListRoutes(ctx context.Context) ([]*domain.Route, error) {
	return uc.routeRepo.ListAll(ctx)
}

// UpdateRoute applies a partial edit. A title change re-derives the slug and
// conflicts when another route already owns it.
func (uc *AdminUseCase) UpdateRoute(ctx context.Context, routeID int64, req dto.UpdateRouteRequest) (*domain.Route, error) {
	patch := req.ToPatch()
	if patch.IsEmpty() {
		return nil, errors.ErrValidation.WithMessage("no fields to update")
	}
	if patch.Difficulty != nil && !domain.IsValidDifficulty(*patch.Difficulty) {
		return nil, errors.ErrInvalidDifficulty
	}

	if _, err := uc.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		newSlug := slug.Make(*patch.Title)
		if newSlug == "" {
			return nil, errors.ErrValidation.WithMessage("title yields an empty slug")
		}
		owner, err := uc.routeRepo.GetBySlug(ctx, newSlug)
		if err == nil && owner.ID != routeID {
			return nil, errors.ErrSlugConflict
		}
		if err != nil && !errors.ErrRouteNotFound.Is(err) {
			return nil, err
		}
		patch.Slug = &newSlug
	}

	route, err := uc.routeRepo.Update(ctx, routeID, patch)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Route updated", zap.Int64("route_id", routeID))
	return route, nil
}

// DeleteRoute removes a route with its waypoints, reviews, favorites and
// photos. Stored photo files are removed best effort after the rows.
func (uc *AdminUseCase) DeleteRoute(ctx context.Context, routeID int64) error {
	if _, err := uc.routeRepo.GetByID(ctx, routeID); err != nil {
		return err
	}

	photos, err := uc.photoRepo.ListByRoute(ctx, routeID)
	if err != nil {
		return err
	}

	if err := uc.routeRepo.Delete(ctx, routeID); err != nil {
		return err
	}

	for _, p := range photos {
		if err := uc.storage.Remove(ctx, p.URL); err != nil {
			uc.logger.Warn("Failed to remove stored photo",
				zap.String("url", p.URL),
				zap.Error(err))
		}
	}

	uc.logger.Info("Route deleted", zap.Int64("route_id", routeID))
	uc.events.publish(ctx, domain.EventRouteDeleted, routeID)
	return nil
}

// ListPhotos returns every photo with author and route.
func (uc *AdminUseCase) ListPhotos(ctx context.Context) ([]*domain.PhotoAdminItem, error) {
	return uc.photoRepo.ListAll(ctx)
}

// DeletePhoto removes any photo and its stored file.
func (uc *AdminUseCase) DeletePhoto(ctx context.Context, photoID int64) error {
	photo, err := uc.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}
	if err := uc.photoRepo.Delete(ctx, photoID); err != nil {
		return err
	}
	if err := uc.storage.Remove(ctx, photo.URL); err != nil {
		uc.logger.Warn("Failed to remove stored photo",
			zap.String("url", photo.URL),
			zap.Error(err))
	}

	uc.logger.Info("Photo deleted by admin", zap.Int64("photo_id", photoID))
	return nil
}
