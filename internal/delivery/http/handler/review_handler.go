package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/delivery/http/middleware"
	"github.com/senda-infinita/internal/pkg/errors"
	"github.com/senda-infinita/internal/pkg/utils"
	"github.com/senda-infinita/internal/pkg/validator"
	"github.com/senda-infinita/internal/usecase"
	"github.com/senda-infinita/internal/usecase/dto"
)

// ReviewHandler serves review creation, listing and owner edits.
type ReviewHandler struct {
	reviewUC *usecase.ReviewUseCase
	logger   *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewUC *usecase.ReviewUseCase, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: reviewUC,
		logger:   logger,
	}
}

// CreateReview godoc
// @Summary Post a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Route ID"
// @Param request body dto.CreateReviewRequest true "Rating and optional comment"
// @Success 201 {object} utils.SuccessResponse{data=domain.Review}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/routes/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	routeID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("route id must be numeric"))
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Context(), user.ID, int64(routeID), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, review)
}

// GetRouteReviews godoc
// @Summary List a route's reviews
// @Tags Reviews
// @Produce json
// @Param id path int true "Route ID"
// @Param page query int false "Page number, defaults to 1" default(1)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ReviewWithAuthor}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/routes/{id}/reviews [get]
func (h *ReviewHandler) GetRouteReviews(c *fiber.Ctx) error {
	routeID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("route id must be numeric"))
	}

	result, err := h.reviewUC.GetRouteReviews(c.Context(), int64(routeID), c.QueryInt("page", 1))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result.Reviews, &result.Pagination)
}

// UpdateReview godoc
// @Summary Edit a review
// @Description Partial edit, restricted to the author or an admin
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body dto.UpdateReviewRequest true "Fields to change"
// @Success 200 {object} utils.SuccessResponse{data=domain.Review}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/reviews/{id} [patch]
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	reviewID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("review id must be numeric"))
	}

	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	review, err := h.reviewUC.UpdateReview(c.Context(), user, int64(reviewID), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, review, nil)
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Restricted to the author or an admin
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	reviewID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("review id must be numeric"))
	}

	if err := h.reviewUC.DeleteReview(c.Context(), user, int64(reviewID)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
