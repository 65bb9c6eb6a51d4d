package domain

import "time"

type Photo struct {
	ID        int64     `json:"id"`
	RouteID   int64     `json:"routeId"`
	UserID    int64     `json:"userId"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// PhotoWithAuthor is the public listing projection.
type PhotoWithAuthor struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	User      UserRef   `json:"user"`
}

// PhotoAdminItem is the admin listing projection with both related entities.
type PhotoAdminItem struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	User      UserRef   `json:"user"`
	Route     RouteRef  `json:"route"`
}
