package domain

import "time"

// User roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// IsValidRole reports whether r is an assignable role.
func IsValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthUser is the verified identity resolved from a bearer credential.
type AuthUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user carries the admin role.
func (u AuthUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRef is the minimal author identity embedded in reviews and photos.
type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserWithCounts is the admin listing projection.
type UserWithCounts struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	ReviewsCount   int       `json:"reviewsCount"`
	FavoritesCount int       `json:"favoritesCount"`
	PhotosCount    int       `json:"photosCount"`
}
