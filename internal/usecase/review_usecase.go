package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
	"github.com/senda-infinita/internal/usecase/dto"
)

// ReviewUseCase manages reviews: creation, paginated listing with author
// identity and owner-or-admin edits. A user may review the same route more
// than once.
type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	routeRepo  repository.RouteRepository
	events     eventPublisher
	logger     *zap.Logger
}

// NewReviewUseCase creates a new ReviewUseCase. streamRepo may be nil when
// event publishing is disabled.
func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	routeRepo repository.RouteRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		routeRepo:  routeRepo,
		events:     eventPublisher{streamRepo: streamRepo, logger: logger},
		logger:     logger,
	}
}

// CreateReview posts a review on an existing route.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, userID, routeID int64, req dto.CreateReviewRequest) (*domain.Review, error) {
	if !domain.IsValidRating(req.Rating) {
		return nil, errors.ErrInvalidRating
	}

	if _, err := uc.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, err
	}

	review, err := uc.reviewRepo.Create(ctx, &domain.Review{
		RouteID: routeID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("route_id", routeID),
		zap.Int64("user_id", userID))

	uc.events.publish(ctx, domain.EventReviewCreated, review.ID)

	return review, nil
}

// GetRouteReviews returns one page of a route's reviews, newest first.
func (uc *ReviewUseCase) GetRouteReviews(ctx context.Context, routeID int64, page int) (*dto.ListReviewsResponse, error) {
	if _, err := uc.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, err
	}

	page = domain.ClampPage(page)
	offset := (page - 1) * domain.DefaultPageSize

	reviews, total, err := uc.reviewRepo.ListByRoute(ctx, routeID, domain.DefaultPageSize, offset)
	if err != nil {
		return nil, err
	}

	return &dto.ListReviewsResponse{
		Reviews:    reviews,
		Pagination: domain.NewPagination(page, total),
	}, nil
}

// UpdateReview applies a partial edit. Only the author or an admin may edit;
// the not-found check runs before the ownership check.
func (uc *ReviewUseCase) UpdateReview(ctx context.Context, actor domain.AuthUser, reviewID int64, req dto.UpdateReviewRequest) (*domain.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != actor.ID && !actor.IsAdmin() {
		return nil, errors.ErrForbidden
	}
	if req.Rating != nil && !domain.IsValidRating(*req.Rating) {
		return nil, errors.ErrInvalidRating
	}

	return uc.reviewRepo.Update(ctx, reviewID, req.ToPatch())
}

// DeleteReview removes a review. Only the author or an admin may delete.
func (uc *ReviewUseCase) DeleteReview(ctx context.Context, actor domain.AuthUser, reviewID int64) error {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != actor.ID && !actor.IsAdmin() {
		return errors.ErrForbidden
	}

	if err := uc.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}

	uc.logger.Info("Review deleted",
		zap.Int64("review_id", reviewID),
		zap.Int64("actor_id", actor.ID))

	uc.events.publish(ctx, domain.EventReviewDeleted, reviewID)

	return nil
}
