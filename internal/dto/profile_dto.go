package dto

import "github.com/Man-HUAJI/Second-hand-Trading/internal/models"

type UpdateProfileRequest struct {
	Nickname      string `json:"nickname" validate:"omitempty,max=50"`
	Avatar        string `json:"avatar" validate:"omitempty,max=255"`
	QQ            string `json:"qq" validate:"omitempty,max=20"`
	Wechat        string `json:"wechat" validate:"omitempty,max=50"`
	Bio           string `json:"bio" validate:"omitempty,max=2000"`
	HeaderBGType  string `json:"header_bg_type" validate:"omitempty,oneof=color image"`
	HeaderBGColor string `json:"header_bg_color" validate:"omitempty,hexcolor"`
	HeaderBGImage string `json:"header_bg_image" validate:"omitempty,max=255"`
}

// PublicProfileResponse is another user's public page: display metadata,
// their active listings, and the reviews they have received.
type PublicProfileResponse struct {
	Username      string          `json:"username"`
	DisplayName   string          `json:"display_name"`
	AvatarURL     string          `json:"avatar_url"`
	Bio           string          `json:"bio"`
	HeaderBGType  string          `json:"header_bg_type"`
	HeaderBGColor string          `json:"header_bg_color"`
	HeaderBGImage string          `json:"header_bg_image"`
	Items         []models.Item   `json:"items"`
	Reviews       []models.Review `json:"reviews"`
	Rating        RatingSummary   `json:"rating"`
}

// DashboardResponse is the owner's private view: every listing regardless
// of status plus both review directions.
type DashboardResponse struct {
	User            UserResponse    `json:"user"`
	Profile         models.Profile  `json:"profile"`
	Items           []models.Item   `json:"items"`
	GivenReviews    []models.Review `json:"given_reviews"`
	ReceivedReviews []models.Review `json:"received_reviews"`
	Rating          RatingSummary   `json:"rating"`
}

type UploadResponse struct {
	Path string `json:"path"`
}
