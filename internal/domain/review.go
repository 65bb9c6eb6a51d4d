package domain

import "time"

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// IsValidRating reports whether r is an allowed rating value.
func IsValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// Review is a user's rating of a route. A user may post several reviews for
// the same route; the profile calendar treats them as diary entries.
type Review struct {
	ID        int64     `json:"id"`
	RouteID   int64     `json:"routeId"`
	UserID    int64     `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewWithAuthor is the public listing projection.
type ReviewWithAuthor struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	User      UserRef   `json:"user"`
}

// RouteRef is the minimal route identity embedded in profile and admin
// projections.
type RouteRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// ReviewWithRoute is the profile projection (own reviews with their route).
type ReviewWithRoute struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	Route     RouteRef  `json:"route"`
}

// ReviewPatch is a partial update. Nil fields are left untouched.
type ReviewPatch struct {
	Rating  *int
	Comment *string
}
