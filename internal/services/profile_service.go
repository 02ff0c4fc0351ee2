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

type ProfileService struct {
	db      *gorm.DB
	items   *ItemService
	reviews *ReviewService
}

func NewProfileService(db *gorm.DB, items *ItemService, reviews *ReviewService) *ProfileService {
	return &ProfileService{db: db, items: items, reviews: reviews}
}

// GetPublic assembles another user's public page: display metadata, their
// active listings only, and the reviews they have received.
func (s *ProfileService) GetPublic(username string) (*dto.PublicProfileResponse, error) {
	var user models.User
	err := s.db.Preload("Profile").First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	profile := user.Profile
	if profile == nil {
		return nil, fmt.Errorf("user %s has no profile", username)
	}

	var items []models.Item
	err = s.db.
		Preload("Category").
		Where("seller_id = ? AND status = ?", user.ID, models.StatusActive).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListReceived(user.ID)
	if err != nil {
		return nil, err
	}

	rating, err := s.reviews.AverageRating(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.PublicProfileResponse{
		Username:      user.Username,
		DisplayName:   profile.DisplayName(user.Username),
		AvatarURL:     profile.AvatarURL(),
		Bio:           profile.Bio,
		HeaderBGType:  profile.HeaderBGType,
		HeaderBGColor: profile.HeaderBGColor,
		HeaderBGImage: profile.HeaderBGImage,
		Items:         items,
		Reviews:       reviews,
		Rating:        rating,
	}, nil
}

// Dashboard is the owner's private view: all listings regardless of
// status, plus reviews in both directions.
func (s *ProfileService) Dashboard(userID uuid.UUID) (*dto.DashboardResponse, error) {
	var user models.User
	err := s.db.Preload("Profile").First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	if user.Profile == nil {
		return nil, fmt.Errorf("user %s has no profile", user.Username)
	}

	items, err := s.items.ListMine(userID)
	if err != nil {
		return nil, err
	}
	given, err := s.reviews.ListGiven(userID)
	if err != nil {
		return nil, err
	}
	received, err := s.reviews.ListReceived(userID)
	if err != nil {
		return nil, err
	}
	rating, err := s.reviews.AverageRating(userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
		Profile:         *user.Profile,
		Items:           items,
		GivenReviews:    given,
		ReceivedReviews: received,
		Rating:          rating,
	}
	if user.Email != nil {
		resp.User.Email = *user.Email
	}
	return resp, nil
}

// Update edits the profile. The profile row and the owning user row are
// written in one transaction so the pair never drifts apart.
func (s *ProfileService) Update(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.HeaderBGType == models.HeaderBGImage && req.HeaderBGImage == "" {
		return nil, apperr.NewValidation("header_bg_image", "选择图片背景时必须上传背景图片")
	}

	var profile models.Profile
	if err := s.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	profile.Nickname = req.Nickname
	profile.Avatar = req.Avatar
	profile.QQ = req.QQ
	profile.Wechat = req.Wechat
	profile.Bio = req.Bio
	if req.HeaderBGType != "" {
		profile.HeaderBGType = req.HeaderBGType
	}
	if req.HeaderBGColor != "" {
		profile.HeaderBGColor = req.HeaderBGColor
	}
	profile.HeaderBGImage = req.HeaderBGImage

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}
		// Keep the owning user row's timestamp in step with its profile.
		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("updated_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &profile, nil
}
