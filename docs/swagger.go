// Package docs Senda Infinita API.
//
// Backend for a hiking route catalog. Routes are imported from
// OpenRouteService with full geometry and elevation data, then served
// together with community reviews, favorites and photos.
//
// Main features:
// - Paginated route catalog with text and difficulty filters
// - Route detail with waypoints, review count and average rating
// - One-call route import from OpenRouteService (admin only)
// - Reviews, favorites and photo uploads for registered users
// - Catalog statistics with Redis caching
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//
//	Security:
//	- BearerAuth:
//
//	SecurityDefinitions:
//	BearerAuth:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
