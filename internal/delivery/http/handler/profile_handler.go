package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/delivery/http/middleware"
	"github.com/senda-infinita/internal/pkg/errors"
	"github.com/senda-infinita/internal/pkg/utils"
	"github.com/senda-infinita/internal/usecase"
)

// ProfileHandler serves the signed-in user's own data.
type ProfileHandler struct {
	profileUC *usecase.ProfileUseCase
	logger    *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileUC *usecase.ProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

// Me godoc
// @Summary Current identity
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.AuthUser}
// @Security BearerAuth
// @Router /api/me [get]
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}
	return utils.SendSuccess(c, user, nil)
}

// MyReviews godoc
// @Summary Own reviews
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ReviewWithRoute}
// @Security BearerAuth
// @Router /api/me/reviews [get]
func (h *ProfileHandler) MyReviews(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	reviews, err := h.profileUC.GetMyReviews(c.Context(), user.ID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, reviews, nil)
}

// MyFavorites godoc
// @Summary Own favorites
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.FavoriteWithRoute}
// @Security BearerAuth
// @Router /api/me/favorites [get]
func (h *ProfileHandler) MyFavorites(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	favorites, err := h.profileUC.GetMyFavorites(c.Context(), user.ID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, favorites, nil)
}
