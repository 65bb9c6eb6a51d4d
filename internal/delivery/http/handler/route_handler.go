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

// RouteHandler serves the public catalog endpoints and the admin import.
type RouteHandler struct {
	routeUC  *usecase.RouteUseCase
	importUC *usecase.ImportUseCase
	logger   *zap.Logger
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(routeUC *usecase.RouteUseCase, importUC *usecase.ImportUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC:  routeUC,
		importUC: importUC,
		logger:   logger,
	}
}

// ListRoutes godoc
// @Summary List routes
// @Description Paginated catalog listing with optional text and difficulty filters
// @Tags Routes
// @Produce json
// @Param q query string false "Substring matched against title or description"
// @Param difficulty query string false "EASY, MODERATE or HARD"
// @Param page query int false "Page number, defaults to 1" default(1)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.RouteSummary}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/routes [get]
func (h *RouteHandler) ListRoutes(c *fiber.Ctx) error {
	req := dto.ListRoutesRequest{
		Q:          c.Query("q"),
		Difficulty: c.Query("difficulty"),
		// Non-numeric page values come back as the default and are
		// clamped to the first page downstream.
		Page: c.QueryInt("page", 1),
	}

	result, err := h.routeUC.ListRoutes(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result.Routes, &result.Pagination)
}

// GetRouteBySlug godoc
// @Summary Route detail
// @Description Route with ordered waypoints and review aggregates
// @Tags Routes
// @Produce json
// @Param slug path string true "Route slug"
// @Success 200 {object} utils.SuccessResponse{data=domain.RouteDetail}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/routes/{slug} [get]
func (h *RouteHandler) GetRouteBySlug(c *fiber.Ctx) error {
	detail, err := h.routeUC.GetRouteBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, detail, nil)
}

// ImportRoute godoc
// @Summary Import a route from the directions provider
// @Description Fetches a routed path between two points and persists it with its waypoints. Idempotent per title slug.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.ImportRouteRequest true "Import parameters"
// @Success 200 {object} utils.SuccessResponse{data=dto.ImportRouteResponse}
// @Success 201 {object} utils.SuccessResponse{data=dto.ImportRouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/routes/import/ors [post]
func (h *RouteHandler) ImportRoute(c *fiber.Ctx) error {
	var req dto.ImportRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.importUC.ImportRouteFromORS(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	if result.Created {
		return utils.SendCreated(c, result)
	}
	return utils.SendSuccess(c, result, nil)
}
