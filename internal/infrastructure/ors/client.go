package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/senda-infinita/internal/config"
	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	profile    string
	logger     *zap.Logger
}

// NewClient creates an OpenRouteService directions client.
func NewClient(cfg *config.ORSConfig, logger *zap.Logger) repository.DirectionsRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		profile: cfg.Profile,
		logger:  logger,
	}
}

// GetHikingRoute requests a routed path between two points, with per-point
// elevation, from the ORS directions endpoint.
func (c *client) GetHikingRoute(ctx context.Context, startLat, startLng, endLat, endLng float64) (*domain.DirectionsResponse, error) {
	reqBody := domain.DirectionsRequest{
		// ORS expects [lng, lat] pairs.
		Coordinates: [][]float64{
			{startLng, startLat},
			{endLng, endLat},
		},
		Elevation: true,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal directions request: %w", err)
	}

	url := fmt.Sprintf("%s/v2/directions/%s/geojson", c.baseURL, c.profile)

	c.logger.Debug("Calling ORS directions API",
		zap.String("url", url),
		zap.Float64("start_lat", startLat),
		zap.Float64("start_lng", startLng),
		zap.Float64("end_lat", endLat),
		zap.Float64("end_lng", endLng))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create directions request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("ORS request failed", zap.Error(err))
		return nil, errors.ErrUpstream.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("ORS API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.Upstream(resp.StatusCode, string(body))
	}

	var directions domain.DirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		c.logger.Error("Failed to decode ORS response", zap.Error(err))
		return nil, errors.ErrInvalidUpstreamResponse.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}

	if len(directions.Features) == 0 || len(directions.Features[0].Geometry.Coordinates) == 0 {
		c.logger.Error("ORS response has no route geometry")
		return nil, errors.ErrInvalidUpstreamResponse
	}
	for i, coord := range directions.Features[0].Geometry.Coordinates {
		// Each point must carry at least [lng, lat]; elevation is optional.
		if len(coord) < 2 {
			c.logger.Error("ORS response has a malformed coordinate",
				zap.Int("index", i),
				zap.Int("arity", len(coord)))
			return nil, errors.ErrInvalidUpstreamResponse
		}
	}

	c.logger.Debug("ORS directions call successful",
		zap.Int("points", len(directions.Features[0].Geometry.Coordinates)))

	return &directions, nil
}
