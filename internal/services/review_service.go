package services

import (
	"errors"
	"fmt"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/apperr"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/models"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Create persists a review after all checks pass: the reviewed user must
// exist, the optional item must exist, and reviewing yourself is rejected
// as a validation failure, never a storage one.
func (s *ReviewService) Create(reviewerID uuid.UUID, req *dto.CreateReviewRequest) (*models.Review, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if reviewerID == req.ReviewedUserID {
		return nil, apperr.NewValidation("reviewed_user_id", "不能评价自己")
	}

	var count int64
	s.db.Model(&models.User{}).Where("id = ?", req.ReviewedUserID).Count(&count)
	if count == 0 {
		return nil, apperr.ErrNotFound
	}

	if req.ItemID != nil {
		s.db.Model(&models.Item{}).Where("id = ?", *req.ItemID).Count(&count)
		if count == 0 {
			return nil, apperr.ErrNotFound
		}
	}

	review := models.Review{
		Content:        req.Content,
		Rating:         req.Rating,
		ReviewerID:     reviewerID,
		ReviewedUserID: req.ReviewedUserID,
		ItemID:         req.ItemID,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// ListReceived returns reviews about the user, newest first.
func (s *ReviewService) ListReceived(userID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.
		Preload("Reviewer").
		Where("reviewed_user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// ListGiven returns reviews written by the user, newest first.
func (s *ReviewService) ListGiven(userID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.
		Where("reviewer_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// AverageRating computes the arithmetic mean of received ratings on
// demand. With zero reviews the summary reports count 0 and average 0;
// nothing divides by zero.
func (s *ReviewService) AverageRating(userID uuid.UUID) (dto.RatingSummary, error) {
	var summary dto.RatingSummary

	err := s.db.Model(&models.Review{}).
		Where("reviewed_user_id = ?", userID).
		Count(&summary.Count).Error
	if err != nil {
		return summary, err
	}
	if summary.Count == 0 {
		return summary, nil
	}

	err = s.db.Model(&models.Review{}).
		Where("reviewed_user_id = ?", userID).
		Select("AVG(rating)").
		Scan(&summary.Average).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.RatingSummary{}, err
	}
	return summary, nil
}
