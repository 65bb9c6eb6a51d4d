package domain

import "time"

// CatalogStats is the aggregated catalog snapshot served by /api/stats and
// refreshed by the stats worker. Detail-page aggregates are never sourced
// from here; they are recomputed from review rows on every read.
type CatalogStats struct {
	Routes       int            `json:"routes"`
	ByDifficulty map[string]int `json:"by_difficulty"`
	Reviews      int            `json:"reviews"`
	Users        int            `json:"users"`
	Favorites    int            `json:"favorites"`
	Photos       int            `json:"photos"`
	AvgRating    *float64       `json:"avg_rating"`
	LastUpdated  time.Time      `json:"last_updated"`
}

// Catalog event stream.
const (
	StreamCatalogEvents = "stream:catalog:events"

	EventRouteImported = "route.imported"
	EventRouteDeleted  = "route.deleted"
	EventReviewCreated = "review.created"
	EventReviewDeleted = "review.deleted"
)

// CatalogEvent is a best-effort notification published after a catalog
// mutation. Consumers must tolerate loss; nothing in the request path
// depends on delivery.
type CatalogEvent struct {
	Type       string    `json:"type"`
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StreamMessage is a raw message read from a Redis Stream.
type StreamMessage struct {
	ID   string
	Data string
}
