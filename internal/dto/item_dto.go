package dto

import (
	"github.com/Man-HUAJI/Second-hand-Trading/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateItemRequest struct {
	Title       string           `json:"title" validate:"required,min=2,max=200"`
	Description string           `json:"description" validate:"required,min=10"`
	CategoryID  *uuid.UUID       `json:"category_id" validate:"omitempty"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty"`
	TradeMethod string           `json:"trade_method" validate:"omitempty,oneof=face_to_face shipping both"`
	Contact     string           `json:"contact" validate:"required,min=2,max=100"`
	Condition   string           `json:"condition" validate:"omitempty,oneof=new used idle"`
	Image       string           `json:"image" validate:"omitempty,max=255"`
}

// UpdateItemRequest carries the same editable fields; the seller and the
// status are never touched through an edit.
type UpdateItemRequest struct {
	Title       string           `json:"title" validate:"required,min=2,max=200"`
	Description string           `json:"description" validate:"required,min=10"`
	CategoryID  *uuid.UUID       `json:"category_id" validate:"omitempty"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty"`
	TradeMethod string           `json:"trade_method" validate:"omitempty,oneof=face_to_face shipping both"`
	Contact     string           `json:"contact" validate:"required,min=2,max=100"`
	Condition   string           `json:"condition" validate:"omitempty,oneof=new used idle"`
	Image       string           `json:"image" validate:"omitempty,max=255"`
}

type ItemListResponse struct {
	Items []models.Item `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
