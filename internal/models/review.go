package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ratingStars maps each rating value to its star-glyph label.
var ratingStars = map[int]string{
	1: "★☆☆☆☆",
	2: "★★☆☆☆",
	3: "★★★☆☆",
	4: "★★★★☆",
	5: "★★★★★",
}

// Review is feedback from one user about another, optionally tied to an
// item. Reviews are immutable once created and only disappear via cascade.
type Review struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	Rating         int        `gorm:"not null;default:5" json:"rating"`
	ReviewerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"reviewer_id"`
	Reviewer       *User      `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE" json:"reviewer,omitempty"`
	ReviewedUserID uuid.UUID  `gorm:"type:uuid;not null;index" json:"reviewed_user_id"`
	ReviewedUser   *User      `gorm:"foreignKey:ReviewedUserID;constraint:OnDelete:CASCADE" json:"-"`
	ItemID         *uuid.UUID `gorm:"type:uuid;index" json:"item_id,omitempty"`
	Item           *Item      `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"item,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RatingDisplay returns the star-glyph label for the review's rating.
func (r *Review) RatingDisplay() string {
	if s, ok := ratingStars[r.Rating]; ok {
		return s
	}
	return "未知"
}
