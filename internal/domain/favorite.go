package domain

import "time"

// Favorite marks a route as favorited by a user. Uniqueness per
// (user, route) is enforced by a database constraint so concurrent toggles
// cannot double-insert.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	RouteID   int64     `json:"routeId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FavoriteWithRoute embeds the minimal route projection for profile listings.
type FavoriteWithRoute struct {
	ID        int64        `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	Route     RouteSummary `json:"route"`
}
