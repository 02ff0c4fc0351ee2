// Package seed loads initial data: the default category set and, on
// request, a demo user with sample listings and reviews.
package seed

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/models"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/services"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var defaultCategories = []string{
	"电子产品",
	"书籍教材",
	"生活用品",
	"衣物鞋帽",
	"其他物品",
}

// Categories creates the default category set, skipping names that
// already exist.
func Categories(db *gorm.DB) error {
	svc := services.NewCategoryService(db)
	created := 0

	for _, name := range defaultCategories {
		var count int64
		if err := db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			slog.Info("category already exists", "name", name)
			continue
		}
		if _, err := svc.Create(&dto.CreateCategoryRequest{Name: name}); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", name, err)
		}
		created++
		slog.Info("category created", "name", name)
	}

	slog.Info("category seeding complete", "created", created)
	return nil
}

type demoItem struct {
	title       string
	description string
	category    string
	price       string
	condition   string
}

var demoItems = []demoItem{
	{"Python编程从入门到实践", "九成新，无笔记，适合初学者入门使用。", "书籍教材", "35.00", models.ConditionUsed},
	{"iPhone 12 Pro", "国行256G，电池健康88%，无维修史，配原装充电器。", "电子产品", "3200.00", models.ConditionUsed},
	{"保温杯", "全新未拆封，品牌保温杯，保温效果好。", "生活用品", "45.00", models.ConditionNew},
	{"冬季羽绒服", "L码，穿过一季，干洗过，无破损。", "衣物鞋帽", "120.00", models.ConditionUsed},
	{"数据结构与算法", "考研用书，有少量划线笔记。", "书籍教材", "20.00", models.ConditionUsed},
	{"无线耳机", "闲置出售，音质正常，续航良好。", "电子产品", "80.00", models.ConditionIdle},
}

// Demo creates a demo user (username testuser) with sample listings and a
// couple of received reviews. Categories must be seeded first.
func Demo(db *gorm.DB) error {
	if err := Categories(db); err != nil {
		return err
	}

	seller, err := ensureUser(db, "testuser", "test@example.com", "testpass123")
	if err != nil {
		return err
	}
	reviewer, err := ensureUser(db, "demobuyer", "buyer@example.com", "testpass123")
	if err != nil {
		return err
	}

	itemSvc := services.NewItemService(db)
	var firstItem *models.Item
	for _, d := range demoItems {
		var count int64
		if err := db.Model(&models.Item{}).Where("title = ? AND seller_id = ?", d.title, seller.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		var category models.Category
		if err := db.First(&category, "name = ?", d.category).Error; err != nil {
			return fmt.Errorf("seed category %s missing: %w", d.category, err)
		}

		price, err := decimal.NewFromString(d.price)
		if err != nil {
			return err
		}

		item, err := itemSvc.Create(seller.ID, &dto.CreateItemRequest{
			Title:       d.title,
			Description: d.description,
			CategoryID:  &category.ID,
			Price:       &price,
			Contact:     "wechat: test_user",
			Condition:   d.condition,
		})
		if err != nil {
			return fmt.Errorf("failed to seed item %s: %w", d.title, err)
		}
		if firstItem == nil {
			firstItem = item
		}
		slog.Info("item created", "title", d.title)
	}

	var reviewCount int64
	if err := db.Model(&models.Review{}).Where("reviewer_id = ?", reviewer.ID).Count(&reviewCount).Error; err != nil {
		return err
	}
	if reviewCount == 0 && firstItem != nil {
		reviewSvc := services.NewReviewService(db)
		_, err := reviewSvc.Create(reviewer.ID, &dto.CreateReviewRequest{
			ReviewedUserID: seller.ID,
			ItemID:         &firstItem.ID,
			Content:        "卖家发货快，东西和描述一致。",
			Rating:         5,
		})
		if err != nil {
			return fmt.Errorf("failed to seed review: %w", err)
		}
		slog.Info("review created", "reviewer", reviewer.Username)
	}

	slog.Info("demo seeding complete")
	return nil
}

func ensureUser(db *gorm.DB, username, email, password string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "username = ?", username).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = models.User{
		Username: username,
		Email:    &email,
		Password: string(hash),
		Role:     models.RoleUser,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	slog.Info("user created", "username", username)
	return &user, nil
}
