package dto

import "github.com/senda-infinita/internal/domain"

// ListRoutesRequest carries the catalog listing filters. Page below 1 is
// clamped, not rejected.
type ListRoutesRequest struct {
	Q          string `json:"q"`
	Difficulty string `json:"difficulty" validate:"omitempty,difficulty"`
	Page       int    `json:"page"`
}

// ListRoutesResponse is one page of route summaries.
type ListRoutesResponse struct {
	Routes     []*domain.RouteSummary `json:"routes"`
	Pagination domain.Pagination      `json:"pagination"`
}

// ImportRouteRequest is the payload for the directions-provider import.
// Coordinates are the requested endpoints; the stored ones come back snapped
// by the provider.
type ImportRouteRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Difficulty  string  `json:"difficulty" validate:"required,difficulty"`
	StartLat    float64 `json:"startLat" validate:"min=-90,max=90"`
	StartLng    float64 `json:"startLng" validate:"min=-180,max=180"`
	EndLat      float64 `json:"endLat" validate:"min=-90,max=90"`
	EndLng      float64 `json:"endLng" validate:"min=-180,max=180"`
}

// ImportRouteResponse reports the import outcome. Created is false when the
// title's slug already existed and the stored route was returned untouched.
type ImportRouteResponse struct {
	Created          bool          `json:"created"`
	Route            *domain.Route `json:"route"`
	WaypointsCreated int           `json:"waypointsCreated"`
}

// UpdateRouteRequest is the admin partial route edit. Absent fields are left
// untouched; an explicitly empty description clears the stored value.
type UpdateRouteRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=3,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Difficulty  *string  `json:"difficulty" validate:"omitempty,difficulty"`
	DistanceKm  *float64 `json:"distanceKm" validate:"omitempty,min=0"`
	AscentM     *int     `json:"ascentM" validate:"omitempty,min=0"`
	StartLat    *float64 `json:"startLat" validate:"omitempty,min=-90,max=90"`
	StartLng    *float64 `json:"startLng" validate:"omitempty,min=-180,max=180"`
	EndLat      *float64 `json:"endLat" validate:"omitempty,min=-90,max=90"`
	EndLng      *float64 `json:"endLng" validate:"omitempty,min=-180,max=180"`
}

// ToPatch converts the request into the domain patch.
func (r UpdateRouteRequest) ToPatch() domain.RoutePatch {
	return domain.RoutePatch{
		Title:       r.Title,
		Description: r.Description,
		Difficulty:  r.Difficulty,
		DistanceKm:  r.DistanceKm,
		AscentM:     r.AscentM,
		StartLat:    r.StartLat,
		StartLng:    r.StartLng,
		EndLat:      r.EndLat,
		EndLng:      r.EndLng,
	}
}
