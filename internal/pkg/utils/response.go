package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/senda-infinita/internal/domain"
	apperrors "github.com/senda-infinita/internal/pkg/errors"
)

type SuccessResponse struct {
	Data       interface{}        `json:"data"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

type ErrorResponse struct {
	Error *apperrors.AppError `json:"error"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, pagination *domain.Pagination) error {
	return c.JSON(SuccessResponse{
		Data:       data,
		Pagination: pagination,
	})
}

func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{Data: data})
}

func SendError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: apperrors.ErrInternalServer,
	})
}
