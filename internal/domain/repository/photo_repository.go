package repository

import (
	"context"

	"github.com/senda-infinita/internal/domain"
)

// PhotoRepository defines the persistence operations over photos.
type PhotoRepository interface {
	// Create inserts a photo row and returns it with id and timestamp set.
	Create(ctx context.Context, photo *domain.Photo) (*domain.Photo, error)

	// GetByID returns the photo or ErrPhotoNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Photo, error)

	// ListByRoute returns a route's photos with author identity, newest first.
	ListByRoute(ctx context.Context, routeID int64) ([]*domain.PhotoWithAuthor, error)

	// ListAll returns every photo with author and route, newest first
	// (admin listing).
	ListAll(ctx context.Context) ([]*domain.PhotoAdminItem, error)

	// Delete removes the photo row.
	Delete(ctx context.Context, id int64) error
}

// PhotoStorage is the upload capability: it accepts a binary and returns a
// public URL. The catalog never looks inside the stored file.
type PhotoStorage interface {
	// Save stores the binary and returns its public URL.
	Save(ctx context.Context, data []byte, contentType string) (string, error)

	// Remove deletes the stored binary behind a previously returned URL.
	// Unknown URLs are not an error.
	Remove(ctx context.Context, url string) error
}
