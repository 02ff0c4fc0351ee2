package services

import (
	"errors"
	"testing"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/apperr"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemCreate_DefaultsToActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	seller := createUser(t, db, "alice")

	price := decimal.RequireFromString("35.00")
	item, err := svc.Create(seller.ID, &dto.CreateItemRequest{
		Title:       "Algorithms Textbook",
		Description: "Third edition, some pencil notes inside.",
		Price:       &price,
		Contact:     "wechat: alice",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusActive, item.Status)
	assert.Equal(t, models.TradeFaceToFace, item.TradeMethod)
	assert.Equal(t, models.ConditionUsed, item.Condition)
	assert.Equal(t, seller.ID, item.SellerID)
}

func TestItemCreate_ValidationFailuresWriteNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	seller := createUser(t, db, "alice")

	cases := []dto.CreateItemRequest{
		{Title: "x", Description: "long enough description", Contact: "qq: 1"},
		{Title: "Valid title", Description: "too short", Contact: "qq: 12345"},
		{Title: "Valid title", Description: "long enough description", Contact: "q"},
	}
	for _, req := range cases {
		_, err := svc.Create(seller.ID, &req)
		_, ok := apperr.AsValidation(err)
		assert.True(t, ok, "expected validation error for %+v, got %v", req, err)
	}

	var count int64
	db.Model(&models.Item{}).Count(&count)
	assert.Zero(t, count)
}

func TestItemCreate_NegativePriceRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	seller := createUser(t, db, "alice")

	price := decimal.RequireFromString("-1.00")
	_, err := svc.Create(seller.ID, &dto.CreateItemRequest{
		Title:       "Valid title",
		Description: "long enough description",
		Price:       &price,
		Contact:     "qq: 12345",
	})
	_, ok := apperr.AsValidation(err)
	assert.True(t, ok)
}

func TestItemUpdate_NonOwnerGetsPermissionError(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	item, err := svc.Create(alice.ID, &dto.CreateItemRequest{
		Title:       "Desk Lamp",
		Description: "Works fine, warm light, pickup only.",
		Contact:     "qq: 12345",
	})
	require.NoError(t, err)

	_, err = svc.Update(item.ID, bob.ID, &dto.UpdateItemRequest{
		Title:       "Hijacked",
		Description: "this should never be written",
		Contact:     "qq: 99999",
	})
	assert.True(t, errors.Is(err, apperr.ErrPermission))

	fresh, err := svc.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", fresh.Title)
}

func TestItemToggle_FlipsBetweenActiveAndInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	alice := createUser(t, db, "alice")

	item, err := svc.Create(alice.ID, &dto.CreateItemRequest{
		Title:       "Desk Lamp",
		Description: "Works fine, warm light, pickup only.",
		Contact:     "qq: 12345",
	})
	require.NoError(t, err)

	toggled, err := svc.ToggleStatus(item.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, toggled.Status)

	toggled, err = svc.ToggleStatus(item.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, toggled.Status)
}

func TestItemToggle_NonOwnerLeavesStatusUnchanged(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	item, err := svc.Create(alice.ID, &dto.CreateItemRequest{
		Title:       "Desk Lamp",
		Description: "Works fine, warm light, pickup only.",
		Contact:     "qq: 12345",
	})
	require.NoError(t, err)

	_, err = svc.ToggleStatus(item.ID, bob.ID)
	assert.True(t, errors.Is(err, apperr.ErrPermission))

	fresh, err := svc.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, fresh.Status)
}

func TestItemToggle_SoldIsNotReachable(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	alice := createUser(t, db, "alice")

	item, err := svc.Create(alice.ID, &dto.CreateItemRequest{
		Title:       "Desk Lamp",
		Description: "Works fine, warm light, pickup only.",
		Contact:     "qq: 12345",
	})
	require.NoError(t, err)

	_, err = svc.MarkSold(item.ID, alice.ID)
	require.NoError(t, err)

	_, err = svc.ToggleStatus(item.ID, alice.ID)
	assert.True(t, errors.Is(err, apperr.ErrInvalidTransition))

	fresh, err := svc.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSold, fresh.Status)
}

func TestItemMarkSold_OnlyFromActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)
	alice := createUser(t, db, "alice")

	item, err := svc.Create(alice.ID, &dto.CreateItemRequest{
		Title:       "Desk Lamp",
		Description: "Works fine, warm light, pickup only.",
		Contact:     "qq: 12345",
	})
	require.NoError(t, err)

	_, err = svc.ToggleStatus(item.ID, alice.ID) // now inactive
	require.NoError(t, err)

	_, err = svc.MarkSold(item.ID, alice.ID)
	assert.True(t, errors.Is(err, apperr.ErrInvalidTransition))
}

func TestItemList_VisibilityFollowsStatus(t *testing.T) {
	db := newTestDB(t)
	categorySvc := NewCategoryService(db)
	svc := NewItemService(db)
	alice := createUser(t, db, "alice")

	books, err := categorySvc.Create(&dto.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)

	item, err := svc.Create(alice.ID, &dto.CreateItemRequest{
		Title:       "Algorithms Textbook",
		Description: "Third edition, some pencil notes inside.",
		CategoryID:  &books.ID,
		Contact:     "wechat: alice",
	})
	require.NoError(t, err)

	listed, total, err := svc.List(ItemFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, listed, 1)
	assert.Equal(t, item.ID, listed[0].ID)

	// Owner hides the item: gone from public listings, still in their own view.
	_, err = svc.ToggleStatus(item.ID, alice.ID)
	require.NoError(t, err)

	listed, total, err = svc.List(ItemFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, listed)

	mine, err := svc.ListMine(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, models.StatusInactive, mine[0].Status)
}

func TestItemList_SearchAndCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	categorySvc := NewCategoryService(db)
	svc := NewItemService(db)
	alice := createUser(t, db, "alice")

	books, err := categorySvc.Create(&dto.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)
	electronics, err := categorySvc.Create(&dto.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	_, err = svc.Create(alice.ID, &dto.CreateItemRequest{
		Title:       "Algorithms Textbook",
		Description: "Third edition, some pencil notes inside.",
		CategoryID:  &books.ID,
		Contact:     "wechat: alice",
	})
	require.NoError(t, err)
	_, err = svc.Create(alice.ID, &dto.CreateItemRequest{
		Title:       "Wireless Earbuds",
		Description: "Battery still holds a full day of use.",
		CategoryID:  &electronics.ID,
		Contact:     "wechat: alice",
	})
	require.NoError(t, err)

	byCategory, total, err := svc.List(ItemFilter{CategorySlug: books.Slug})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Algorithms Textbook", byCategory[0].Title)

	bySearch, total, err := svc.List(ItemFilter{Search: "earbuds"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Wireless Earbuds", bySearch[0].Title)

	_, _, err = svc.List(ItemFilter{CategorySlug: "missing"})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestItemGet_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db)

	_, err := svc.Get(uuid.New())
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
