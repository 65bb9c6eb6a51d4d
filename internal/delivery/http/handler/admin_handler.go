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

// AdminHandler serves the moderation surface. Every route behind it runs the
// admin gate.
type AdminHandler struct {
	adminUC *usecase.AdminUseCase
	logger  *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminUC *usecase.AdminUseCase, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		logger:  logger,
	}
}

// ListUsers godoc
// @Summary List users with activity counts
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.UserWithCounts}
// @Security BearerAuth
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminUC.ListUsers(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, users, nil)
}

// UpdateUserRole godoc
// @Summary Change a user's role
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRoleRequest true "New role"
// @Success 200 {object} utils.SuccessResponse{data=domain.User}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/admin/users/{id}/role [patch]
func (h *AdminHandler) UpdateUserRole(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("user id must be numeric"))
	}

	var req dto.UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.adminUC.UpdateUserRole(c.Context(), int64(userID), req.Role)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, user, nil)
}

// DeleteUser godoc
// @Summary Delete a user and their contributions
// @Tags Admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	userID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("user id must be numeric"))
	}

	if err := h.adminUC.DeleteUser(c.Context(), actor, int64(userID)); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// ListReviews godoc
// @Summary List every review
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ReviewWithRoute}
// @Security BearerAuth
// @Router /api/admin/reviews [get]
func (h *AdminHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.adminUC.ListReviews(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, reviews, nil)
}

// DeleteReview godoc
// @Summary Delete any review
// @Tags Admin
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/admin/reviews/{id} [delete]
func (h *AdminHandler) DeleteReview(c *fiber.Ctx) error {
	reviewID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("review id must be numeric"))
	}

	if err := h.adminUC.DeleteReview(c.Context(), int64(reviewID)); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// ListRoutes godoc
// @Summary List every route
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Route}
// @Security BearerAuth
// @Router /api/admin/routes [get]
func (h *AdminHandler) ListRoutes(c *fiber.Ctx) error {
	routes, err := h.adminUC.ListRoutes(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, routes, nil)
}

// UpdateRoute godoc
// @Summary Edit a route
// @Description Partial edit; a title change re-derives the slug
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Route ID"
// @Param request body dto.UpdateRouteRequest true "Fields to change"
// @Success 200 {object} utils.SuccessResponse{data=domain.Route}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/admin/routes/{id} [patch]
func (h *AdminHandler) UpdateRoute(c *fiber.Ctx) error {
	routeID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("route id must be numeric"))
	}

	var req dto.UpdateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.adminUC.UpdateRoute(c.Context(), int64(routeID), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, route, nil)
}

// DeleteRoute godoc
// @Summary Delete a route and everything attached to it
// @Tags Admin
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/admin/routes/{id} [delete]
func (h *AdminHandler) DeleteRoute(c *fiber.Ctx) error {
	routeID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("route id must be numeric"))
	}

	if err := h.adminUC.DeleteRoute(c.Context(), int64(routeID)); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// ListPhotos godoc
// @Summary List every photo
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.PhotoAdminItem}
// @Security BearerAuth
// @Router /api/admin/photos [get]
func (h *AdminHandler) ListPhotos(c *fiber.Ctx) error {
	photos, err := h.adminUC.ListPhotos(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, photos, nil)
}

// DeletePhoto godoc
// @Summary Delete any photo
// @Tags Admin
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/admin/photos/{id} [delete]
func (h *AdminHandler) DeletePhoto(c *fiber.Ctx) error {
	photoID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("photo id must be numeric"))
	}

	if err := h.adminUC.DeletePhoto(c.Context(), int64(photoID)); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
