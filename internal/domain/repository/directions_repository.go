package repository

import (
	"context"

	"github.com/senda-infinita/internal/domain"
)

// DirectionsRepository is the external directions provider. One call per
// import attempt, no retries; the caller decides whether to resubmit.
type DirectionsRepository interface {
	// GetHikingRoute requests a foot-hiking route with elevation data
	// between two points. Transport failures and non-2xx provider replies
	// surface as ErrUpstream with the provider status and body attached.
	GetHikingRoute(ctx context.Context, startLat, startLng, endLat, endLng float64) (*domain.DirectionsResponse, error)
}
