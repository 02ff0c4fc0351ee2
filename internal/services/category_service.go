package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/apperr"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/models"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/validation"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// slugMaxAttempts bounds the disambiguation loop. 4 hex chars give 65536
// variants per base token, so hitting the bound means something is wrong.
const slugMaxAttempts = 10

// slugMaxBaseLen keeps the base token plus a "-xxxx" suffix inside the
// slug column. Transliteration can blow a short display name up to many
// times its rune count, so the cap applies to the slug, not the name.
const slugMaxBaseLen = 100

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// Create derives a unique slug from the name and persists the category.
// The uniqueness constraint in storage is the authoritative guard: the
// insert is retried with a fresh suffix whenever it hits a duplicate key,
// so two concurrent creates with the same name both come out distinct.
func (s *CategoryService) Create(req *dto.CreateCategoryRequest) (*models.Category, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	base := slug.Make(name)
	if len(base) > slugMaxBaseLen {
		base = strings.TrimRight(base[:slugMaxBaseLen], "-")
	}
	if base == "" {
		// Entirely non-ASCII names slug to nothing; fall back to a
		// generated token so the slug is never empty.
		base = "category-" + randomHex(4)
	}

	candidate := base
	for attempt := 0; attempt < slugMaxAttempts; attempt++ {
		category := models.Category{Name: name, Slug: candidate}
		err := s.db.Create(&category).Error
		if err == nil {
			return &category, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create category: %w", err)
		}
		candidate = base + "-" + randomHex(4)
	}

	return nil, apperr.ErrSlugExhausted
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) GetBySlug(slugToken string) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "slug = ?", slugToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Delete removes the category and, with it, every item that references it.
func (s *CategoryService) Delete(id uuid.UUID) error {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var itemIDs []uuid.UUID
		if err := tx.Model(&models.Item{}).Where("category_id = ?", id).Pluck("id", &itemIDs).Error; err != nil {
			return err
		}
		if len(itemIDs) > 0 {
			if err := tx.Where("item_id IN ?", itemIDs).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", id).Delete(&models.Item{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&category).Error
	})
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()[:n*2]
	}
	return hex.EncodeToString(b)[:n]
}
