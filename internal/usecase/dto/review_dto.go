package dto

import "github.com/senda-infinita/internal/domain"

// CreateReviewRequest is the payload for posting a review. Rating bounds are
// re-checked in the usecase so the error carries the rating-specific code.
type CreateReviewRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

// UpdateReviewRequest is a partial review edit.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

// ToPatch converts the request into the domain patch.
func (r UpdateReviewRequest) ToPatch() domain.ReviewPatch {
	return domain.ReviewPatch{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

// ListReviewsResponse is one page of a route's reviews.
type ListReviewsResponse struct {
	Reviews    []*domain.ReviewWithAuthor `json:"reviews"`
	Pagination domain.Pagination          `json:"pagination"`
}

// ToggleFavoriteResponse reports the state after a toggle.
type ToggleFavoriteResponse struct {
	IsFavorite bool `json:"isFavorite"`
}

// DeleteFavoriteResponse reports whether a favorite was actually removed.
type DeleteFavoriteResponse struct {
	Deleted bool `json:"deleted"`
}
