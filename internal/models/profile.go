package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultAvatarPath is served for users who never uploaded an avatar.
const DefaultAvatarPath = "/static/images/DefaultProfile_256.png"

// Header background kinds.
const (
	HeaderBGColor = "color"
	HeaderBGImage = "image"
)

// Profile extends a User with display metadata. Exactly one Profile exists
// per User; it is created inside the same transaction as the User itself.
type Profile struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User          *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Nickname      string    `gorm:"size:50" json:"nickname"`
	Avatar        string    `gorm:"size:255" json:"avatar"`
	QQ            string    `gorm:"size:20" json:"qq"`
	Wechat        string    `gorm:"size:50" json:"wechat"`
	Bio           string    `gorm:"type:text" json:"bio"`
	HeaderBGType  string    `gorm:"size:10;default:'color'" json:"header_bg_type"`
	HeaderBGColor string    `gorm:"size:7;default:'#808080'" json:"header_bg_color"`
	HeaderBGImage string    `gorm:"size:255" json:"header_bg_image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DisplayName prefers the nickname and falls back to the username.
func (p *Profile) DisplayName(username string) string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return username
}

// AvatarURL returns the stored avatar path or the default asset.
func (p *Profile) AvatarURL() string {
	if p.Avatar != "" {
		return p.Avatar
	}
	return DefaultAvatarPath
}
