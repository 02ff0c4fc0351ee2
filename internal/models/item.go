package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultItemImagePath is served for items listed without a photo.
const DefaultItemImagePath = "/static/images/DefaultItem_256.png"

// Item status. Public listing queries only ever see StatusActive; sold is
// reached through a dedicated mark-sold operation, never the toggle.
const (
	StatusActive   = "active"
	StatusSold     = "sold"
	StatusInactive = "inactive"
)

// Trade methods.
const (
	TradeFaceToFace = "face_to_face"
	TradeShipping   = "shipping"
	TradeBoth       = "both"
)

// Item condition.
const (
	ConditionNew  = "new"
	ConditionUsed = "used"
	ConditionIdle = "idle"
)

// Item is a listing owned by exactly one seller. The seller is immutable
// after creation; deleting the seller or the category deletes the item.
type Item struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string           `gorm:"size:200;not null" json:"title"`
	Description string           `gorm:"type:text;not null" json:"description"`
	CategoryID  *uuid.UUID       `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category    *Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	Price       *decimal.Decimal `gorm:"type:decimal(10,2)" json:"price,omitempty"`
	TradeMethod string           `gorm:"size:20;default:'face_to_face';not null" json:"trade_method"`
	Contact     string           `gorm:"size:100;not null" json:"contact"`
	Condition   string           `gorm:"size:20;default:'used';not null" json:"condition"`
	Image       string           `gorm:"size:255" json:"image"`
	Status      string           `gorm:"size:20;default:'active';not null;index" json:"status"`
	SellerID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"seller_id"`
	Seller      *User            `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"seller,omitempty"`
	CreatedAt   time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// ImageURL returns the stored image path or the default asset.
func (i *Item) ImageURL() string {
	if i.Image != "" {
		return i.Image
	}
	return DefaultItemImagePath
}

// ValidStatus reports whether s is one of the three defined item states.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusSold || s == StatusInactive
}
