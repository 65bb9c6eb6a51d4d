package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/pkg/utils"
	"github.com/senda-infinita/internal/usecase"
)

// StatsHandler serves the catalog-wide snapshot.
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Catalog statistics
// @Description Aggregated counts over routes, reviews, users, favorites and photos
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.CatalogStats}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
