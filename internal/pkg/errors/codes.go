package errors

import "net/http"

var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidDifficulty = New(
		"INVALID_DIFFICULTY",
		"difficulty must be one of: EASY, MODERATE, HARD",
		http.StatusBadRequest,
	)

	ErrInvalidRating = New(
		"INVALID_RATING",
		"rating must be an integer between 1 and 5",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusNotFound,
	)

	ErrReviewNotFound = New(
		"REVIEW_NOT_FOUND",
		"Review not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrPhotoNotFound = New(
		"PHOTO_NOT_FOUND",
		"Photo not found",
		http.StatusNotFound,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"You are not allowed to perform this action",
		http.StatusForbidden,
	)

	ErrSlugConflict = New(
		"SLUG_CONFLICT",
		"The title maps to a slug already used by another route",
		http.StatusConflict,
	)

	ErrEmailInUse = New(
		"EMAIL_IN_USE",
		"Email is already registered",
		http.StatusConflict,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	// ErrUpstream covers transport failures and non-2xx replies from the
	// directions provider. Wrap with Upstream() to attach status and body.
	ErrUpstream = New(
		"UPSTREAM_ERROR",
		"Directions provider request failed",
		http.StatusBadGateway,
	)

	// ErrInvalidUpstreamResponse means the provider answered success but the
	// payload lacked the expected feature or geometry. A contract mismatch,
	// not transient unavailability, so it gets its own code.
	ErrInvalidUpstreamResponse = New(
		"INVALID_UPSTREAM_RESPONSE",
		"Directions provider returned an unusable response",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// Upstream builds an UPSTREAM_ERROR carrying the provider status code and
// response body for diagnostics.
func Upstream(status int, body string) *AppError {
	return ErrUpstream.WithDetails(map[string]interface{}{
		"provider_status": status,
		"provider_body":   body,
	})
}
