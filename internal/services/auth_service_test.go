package services

import (
	"errors"
	"testing"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/apperr"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesUserWithExactlyOneProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "strongpass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "alice", resp.User.Username)

	var profileCount int64
	db.Model(&models.Profile{}).Where("user_id = ?", resp.User.ID).Count(&profileCount)
	assert.EqualValues(t, 1, profileCount)
}

func TestRegister_UsernameTaken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "strongpass"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Username: "alice", Password: "otherpass1"})
	conflict, ok := apperr.AsConflict(err)
	require.True(t, ok, "expected a conflict error, got %v", err)
	assert.Equal(t, "username", conflict.Field)
}

func TestRegister_EmailTaken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "alice", Email: "shared@example.com", Password: "strongpass",
	})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{
		Username: "bob", Email: "shared@example.com", Password: "strongpass",
	})
	conflict, ok := apperr.AsConflict(err)
	require.True(t, ok, "expected a conflict error, got %v", err)
	assert.Equal(t, "email", conflict.Field)
}

func TestRegisterConflict_NamesTheViolatedField(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "strongpass",
	})
	require.NoError(t, err)

	conflict := svc.registerConflict("alice", nil)
	assert.Equal(t, "username", conflict.Field)

	// Username free, so the email index must have fired.
	email := "alice@example.com"
	conflict = svc.registerConflict("freshname", &email)
	assert.Equal(t, "email", conflict.Field)
}

func TestRegister_ShortPasswordRejectedBeforePersistence(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "short"})
	_, ok := apperr.AsValidation(err)
	require.True(t, ok, "expected a validation error, got %v", err)

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	assert.Zero(t, userCount)
}

func TestLogin_ByUsernameAndByEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "strongpass",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Login: "alice", Password: "strongpass"})
	assert.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Login: "alice@example.com", Password: "strongpass"})
	assert.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Login: "alice", Password: "wrongpass"})
	assert.True(t, errors.Is(err, apperr.ErrInvalidCredentials))
}

func TestRefresh_RotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "strongpass"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The old refresh token is revoked on use.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.True(t, errors.Is(err, apperr.ErrInvalidToken))
}

func TestDeleteAccount_RemovesEverythingOwned(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	itemSvc := NewItemService(db)
	reviewSvc := NewReviewService(db)

	resp, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "strongpass"})
	require.NoError(t, err)
	bob := createUser(t, db, "bob")

	item, err := itemSvc.Create(resp.User.ID, &dto.CreateItemRequest{
		Title:       "Desk Lamp",
		Description: "Works fine, warm light, pickup only.",
		Contact:     "qq: 12345",
	})
	require.NoError(t, err)

	_, err = reviewSvc.Create(bob.ID, &dto.CreateReviewRequest{
		ReviewedUserID: resp.User.ID,
		ItemID:         &item.ID,
		Content:        "Great seller",
		Rating:         5,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(resp.User.ID, "strongpass"))

	var count int64
	db.Model(&models.Profile{}).Where("user_id = ?", resp.User.ID).Count(&count)
	assert.Zero(t, count, "profile should cascade")
	db.Model(&models.Item{}).Where("seller_id = ?", resp.User.ID).Count(&count)
	assert.Zero(t, count, "items should cascade")
	db.Model(&models.Review{}).Count(&count)
	assert.Zero(t, count, "reviews about the user should cascade")
}

func TestDeleteAccount_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "strongpass"})
	require.NoError(t, err)

	err = svc.DeleteAccount(resp.User.ID, "wrongpass")
	assert.True(t, errors.Is(err, apperr.ErrInvalidCredentials))

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
