package domain

import "time"

// Difficulty levels a route can be labelled with.
const (
	DifficultyEasy     = "EASY"
	DifficultyModerate = "MODERATE"
	DifficultyHard     = "HARD"
)

// Route sources.
const (
	SourceManual = "MANUAL"
	SourceORS    = "ORS"
)

// IsValidDifficulty reports whether d is one of the allowed difficulty values.
func IsValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyHard:
		return true
	}
	return false
}

type Route struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Difficulty  string    `json:"difficulty"`
	DistanceKm  *float64  `json:"distanceKm"`
	AscentM     *int      `json:"ascentM"`
	Source      string    `json:"source"`
	StartLat    float64   `json:"startLat"`
	StartLng    float64   `json:"startLng"`
	EndLat      float64   `json:"endLat"`
	EndLng      float64   `json:"endLng"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RouteSummary is the listing projection: no waypoints, no aggregates.
type RouteSummary struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	DistanceKm  *float64  `json:"distanceKm"`
	AscentM     *int      `json:"ascentM"`
	Difficulty  string    `json:"difficulty"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Waypoint is one point of a route's geometry. Waypoints are created as a
// batch at import time and never edited individually; Position is the
// zero-based index within the route.
type Waypoint struct {
	ID        int64   `json:"id"`
	RouteID   int64   `json:"routeId"`
	Position  int     `json:"order"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Elevation *int    `json:"elevation"`
}

// RouteDetail is the flattened detail object: route scalars, ordered
// waypoints and the two derived aggregates. AvgRating is nil when the route
// has no reviews; it carries the exact arithmetic mean otherwise, rounding
// is left to presentation.
type RouteDetail struct {
	Route
	Waypoints    []Waypoint `json:"waypoints"`
	AvgRating    *float64   `json:"avgRating"`
	ReviewsCount int        `json:"reviewsCount"`
}

// RouteFilter holds the listing filters. Q matches title or description as a
// case-insensitive substring; Difficulty, when set, must be a valid level.
type RouteFilter struct {
	Q          string
	Difficulty string
}

// RoutePatch is a partial update for admin route edits. Nil fields are left
// untouched. Description set to an empty string clears the stored value.
type RoutePatch struct {
	Title       *string
	Slug        *string
	Description *string
	Difficulty  *string
	DistanceKm  *float64
	AscentM     *int
	StartLat    *float64
	StartLng    *float64
	EndLat      *float64
	EndLng      *float64
}

// IsEmpty reports whether the patch would change nothing.
func (p RoutePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Difficulty == nil &&
		p.DistanceKm == nil && p.AscentM == nil &&
		p.StartLat == nil && p.StartLng == nil && p.EndLat == nil && p.EndLng == nil
}
