package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/pkg/errors"
	"github.com/senda-infinita/internal/pkg/utils"
	"github.com/senda-infinita/internal/pkg/validator"
	"github.com/senda-infinita/internal/usecase"
	"github.com/senda-infinita/internal/usecase/dto"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Register godoc
// @Summary Register a user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Signup payload"
// @Success 201 {object} utils.SuccessResponse{data=dto.AuthResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.authUC.Register(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, resp)
}

// Login godoc
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.SuccessResponse{data=dto.AuthResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}
