package ors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/config"
	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/pkg/errors"
)

func newTestClient(serverURL string) *client {
	logger := zap.NewNop()
	cfg := &config.ORSConfig{
		BaseURL:        serverURL,
		APIKey:         "test_key",
		Profile:        "foot-hiking",
		RequestTimeout: 5 * time.Second,
	}
	return NewClient(cfg, logger).(*client)
}

func TestClient_GetHikingRoute(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		distance := 8400.0
		ascent := 612.4

		mockResp := domain.DirectionsResponse{
			Features: []domain.DirectionsFeature{
				{
					Properties: domain.DirectionsProperties{
						Summary: &domain.DirectionsSummary{
							Distance: &distance,
							Ascent:   &ascent,
						},
					},
					Geometry: domain.DirectionsGeometry{
						Coordinates: [][]float64{
							{-4.7520, 43.0410, 950.0},
							{-4.7600, 43.0500, 1240.0},
						},
					},
				},
			},
		}

		var gotBody domain.DirectionsRequest
		var gotAuth, gotAccept, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotAccept = r.Header.Get("Accept")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/geo+json")
			json.NewEncoder(w).Encode(mockResp)
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		resp, err := c.GetHikingRoute(context.Background(), 43.0410, -4.7520, 43.0500, -4.7600)
		require.NoError(t, err)
		require.Len(t, resp.Features, 1)

		assert.Equal(t, "/v2/directions/foot-hiking/geojson", gotPath)
		assert.Equal(t, "test_key", gotAuth)
		assert.Equal(t, "application/geo+json", gotAccept)
		// Coordinates go over the wire as [lng, lat], start first.
		assert.Equal(t, [][]float64{{-4.7520, 43.0410}, {-4.7600, 43.0500}}, gotBody.Coordinates)
		assert.True(t, gotBody.Elevation)

		assert.Equal(t, 8400.0, *resp.Features[0].Properties.Summary.Distance)
		assert.Len(t, resp.Features[0].Geometry.Coordinates, 2)
	})

	t.Run("upstream error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"quota exceeded"}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		resp, err := c.GetHikingRoute(context.Background(), 43.0, -4.7, 43.1, -4.8)
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, errors.ErrUpstream.Is(err))

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
	})

	t.Run("missing features", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(domain.DirectionsResponse{})
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		_, err := c.GetHikingRoute(context.Background(), 43.0, -4.7, 43.1, -4.8)
		require.Error(t, err)
		assert.True(t, errors.ErrInvalidUpstreamResponse.Is(err))
	})

	t.Run("missing geometry coordinates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(domain.DirectionsResponse{
				Features: []domain.DirectionsFeature{{}},
			})
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		_, err := c.GetHikingRoute(context.Background(), 43.0, -4.7, 43.1, -4.8)
		require.Error(t, err)
		assert.True(t, errors.ErrInvalidUpstreamResponse.Is(err))
	})

	t.Run("short coordinate entry", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(domain.DirectionsResponse{
				Features: []domain.DirectionsFeature{{
					Geometry: domain.DirectionsGeometry{
						Coordinates: [][]float64{{-4.75, 43.04}, {}},
					},
				}},
			})
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		_, err := c.GetHikingRoute(context.Background(), 43.0, -4.7, 43.1, -4.8)
		require.Error(t, err)
		assert.True(t, errors.ErrInvalidUpstreamResponse.Is(err))
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		_, err := c.GetHikingRoute(context.Background(), 43.0, -4.7, 43.1, -4.8)
		require.Error(t, err)
		assert.True(t, errors.ErrInvalidUpstreamResponse.Is(err))
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		c := newTestClient(server.URL)

		_, err := c.GetHikingRoute(context.Background(), 43.0, -4.7, 43.1, -4.8)
		require.Error(t, err)
		assert.True(t, errors.ErrUpstream.Is(err))
	})
}
