package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/apperr"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/models"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// ItemFilter narrows public listing queries. Public queries always filter
// to active items; the owner's own view goes through ListMine instead.
type ItemFilter struct {
	CategorySlug string
	Search       string
	Page         int
	Limit        int
}

func (s *ItemService) Create(sellerID uuid.UUID, req *dto.CreateItemRequest) (*models.Item, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, apperr.NewValidation("price", "价格不能为负数")
	}
	if err := s.checkCategory(req.CategoryID); err != nil {
		return nil, err
	}

	item := models.Item{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		TradeMethod: defaultString(req.TradeMethod, models.TradeFaceToFace),
		Contact:     strings.TrimSpace(req.Contact),
		Condition:   defaultString(req.Condition, models.ConditionUsed),
		Image:       req.Image,
		Status:      models.StatusActive,
		SellerID:    sellerID,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &item, nil
}

// Update edits the listing fields. Only the owner may edit; the seller
// reference and the status never change here.
func (s *ItemService) Update(itemID, actorID uuid.UUID, req *dto.UpdateItemRequest) (*models.Item, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, apperr.NewValidation("price", "价格不能为负数")
	}

	item, err := s.Get(itemID)
	if err != nil {
		return nil, err
	}
	if item.SellerID != actorID {
		return nil, apperr.ErrPermission
	}
	if err := s.checkCategory(req.CategoryID); err != nil {
		return nil, err
	}

	item.Title = strings.TrimSpace(req.Title)
	item.Description = strings.TrimSpace(req.Description)
	item.CategoryID = req.CategoryID
	item.Price = req.Price
	item.TradeMethod = defaultString(req.TradeMethod, item.TradeMethod)
	item.Contact = strings.TrimSpace(req.Contact)
	item.Condition = defaultString(req.Condition, item.Condition)
	item.Image = req.Image

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

// ToggleStatus flips a listing between active and inactive. A sold item is
// not reachable from the toggle; asking for it is an invalid transition.
func (s *ItemService) ToggleStatus(itemID, actorID uuid.UUID) (*models.Item, error) {
	item, err := s.Get(itemID)
	if err != nil {
		return nil, err
	}
	if item.SellerID != actorID {
		return nil, apperr.ErrPermission
	}

	switch item.Status {
	case models.StatusActive:
		item.Status = models.StatusInactive
	case models.StatusInactive:
		item.Status = models.StatusActive
	default:
		return nil, apperr.ErrInvalidTransition
	}

	if err := s.db.Model(item).Update("status", item.Status).Error; err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	return item, nil
}

// MarkSold is the only way into the sold state, and only from active.
func (s *ItemService) MarkSold(itemID, actorID uuid.UUID) (*models.Item, error) {
	item, err := s.Get(itemID)
	if err != nil {
		return nil, err
	}
	if item.SellerID != actorID {
		return nil, apperr.ErrPermission
	}
	if item.Status != models.StatusActive {
		return nil, apperr.ErrInvalidTransition
	}

	item.Status = models.StatusSold
	if err := s.db.Model(item).Update("status", models.StatusSold).Error; err != nil {
		return nil, fmt.Errorf("failed to mark sold: %w", err)
	}
	return item, nil
}

func (s *ItemService) Get(itemID uuid.UUID) (*models.Item, error) {
	var item models.Item
	err := s.db.Preload("Category").Preload("Seller").First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// List serves public browsing and search: active items only, newest first.
func (s *ItemService) List(filter ItemFilter) ([]models.Item, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	query := s.db.Model(&models.Item{}).Where("status = ?", models.StatusActive)

	if filter.CategorySlug != "" {
		var category models.Category
		if err := s.db.First(&category, "slug = ?", filter.CategorySlug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, apperr.ErrNotFound
			}
			return nil, 0, err
		}
		query = query.Where("category_id = ?", category.ID)
	}

	if filter.Search != "" {
		keyword := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Item
	err := query.
		Preload("Category").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&items).Error

	return items, total, err
}

// ListMine is the owner's private view and includes every status.
func (s *ItemService) ListMine(sellerID uuid.UUID) ([]models.Item, error) {
	var items []models.Item
	err := s.db.
		Preload("Category").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// Latest returns the newest active items for the homepage.
func (s *ItemService) Latest(n int) ([]models.Item, error) {
	if n < 1 || n > 50 {
		n = 6
	}
	var items []models.Item
	err := s.db.
		Preload("Category").
		Where("status = ?", models.StatusActive).
		Order("created_at DESC").
		Limit(n).
		Find(&items).Error
	return items, err
}

func (s *ItemService) checkCategory(id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", *id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperr.NewValidation("category_id", "所选分类不存在")
	}
	return nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
