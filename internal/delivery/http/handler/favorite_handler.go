package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/delivery/http/middleware"
	"github.com/senda-infinita/internal/pkg/errors"
	"github.com/senda-infinita/internal/pkg/utils"
	"github.com/senda-infinita/internal/usecase"
)

// FavoriteHandler serves the favorite toggle and removal.
type FavoriteHandler struct {
	favoriteUC *usecase.FavoriteUseCase
	logger     *zap.Logger
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favoriteUC *usecase.FavoriteUseCase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: favoriteUC,
		logger:     logger,
	}
}

// ToggleFavorite godoc
// @Summary Toggle a favorite
// @Description Flips the favorite state for the signed-in user and reports the result
// @Tags Favorites
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.ToggleFavoriteResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/routes/{id}/favorite [post]
func (h *FavoriteHandler) ToggleFavorite(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	routeID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("route id must be numeric"))
	}

	result, err := h.favoriteUC.ToggleFavorite(c.Context(), user.ID, int64(routeID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// RemoveFavorite godoc
// @Summary Remove a favorite
// @Tags Favorites
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.DeleteFavoriteResponse}
// @Security BearerAuth
// @Router /api/routes/{id}/favorite [delete]
func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	routeID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("route id must be numeric"))
	}

	result, err := h.favoriteUC.RemoveFavorite(c.Context(), user.ID, int64(routeID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
