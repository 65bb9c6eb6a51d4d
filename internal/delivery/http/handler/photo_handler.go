package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/delivery/http/middleware"
	"github.com/senda-infinita/internal/pkg/errors"
	"github.com/senda-infinita/internal/pkg/utils"
	"github.com/senda-infinita/internal/usecase"
)

// PhotoHandler serves route photo upload, listing and deletion.
type PhotoHandler struct {
	photoUC *usecase.PhotoUseCase
	logger  *zap.Logger
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(photoUC *usecase.PhotoUseCase, logger *zap.Logger) *PhotoHandler {
	return &PhotoHandler{
		photoUC: photoUC,
		logger:  logger,
	}
}

// UploadPhoto godoc
// @Summary Upload a route photo
// @Description Multipart upload, field name "photo", images only
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Route ID"
// @Param photo formData file true "Image file"
// @Success 201 {object} utils.SuccessResponse{data=domain.Photo}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/routes/{id}/photos [post]
func (h *PhotoHandler) UploadPhoto(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	routeID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("route id must be numeric"))
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("photo file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("could not read photo file"))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("could not read photo file"))
	}

	photo, err := h.photoUC.UploadPhoto(c.Context(), user.ID, int64(routeID), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, photo)
}

// GetRoutePhotos godoc
// @Summary List a route's photos
// @Tags Photos
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.PhotoWithAuthor}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/routes/{id}/photos [get]
func (h *PhotoHandler) GetRoutePhotos(c *fiber.Ctx) error {
	routeID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("route id must be numeric"))
	}

	photos, err := h.photoUC.GetRoutePhotos(c.Context(), int64(routeID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, photos, nil)
}

// DeletePhoto godoc
// @Summary Delete a photo
// @Description Restricted to the uploader or an admin
// @Tags Photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/photos/{id} [delete]
func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	photoID, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("photo id must be numeric"))
	}

	if err := h.photoUC.DeletePhoto(c.Context(), user, int64(photoID)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
