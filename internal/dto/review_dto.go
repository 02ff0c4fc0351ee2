package dto

import (
	"github.com/Man-HUAJI/Second-hand-Trading/internal/models"
	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ReviewedUserID uuid.UUID  `json:"reviewed_user_id" validate:"required"`
	ItemID         *uuid.UUID `json:"item_id" validate:"omitempty"`
	Content        string     `json:"content" validate:"required,min=1"`
	Rating         int        `json:"rating" validate:"required,min=1,max=5"`
}

type ReviewResponse struct {
	models.Review
	RatingDisplay string `json:"rating_display"`
}

// RatingSummary reports the on-demand aggregate of received ratings.
// Count zero means no rating exists; Average is 0 in that case.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
