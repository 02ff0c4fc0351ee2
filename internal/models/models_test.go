package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSON_NeverCarriesEmailOrPassword(t *testing.T) {
	email := "alice@example.com"
	u := User{Username: "alice", Email: &email, Password: "bcrypt-hash"}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "alice@example.com")
	assert.NotContains(t, string(data), "bcrypt-hash")
	assert.Contains(t, string(data), `"username":"alice"`)
}

func TestRatingDisplay(t *testing.T) {
	cases := []struct {
		rating int
		want   string
	}{
		{1, "★☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{0, "未知"},
		{6, "未知"},
	}
	for _, tc := range cases {
		r := Review{Rating: tc.rating}
		assert.Equal(t, tc.want, r.RatingDisplay())
	}
}

func TestProfileDisplayName(t *testing.T) {
	p := Profile{Nickname: "小明"}
	assert.Equal(t, "小明", p.DisplayName("xiaoming"))

	p.Nickname = ""
	assert.Equal(t, "xiaoming", p.DisplayName("xiaoming"))
}

func TestProfileAvatarURL(t *testing.T) {
	p := Profile{}
	assert.Equal(t, DefaultAvatarPath, p.AvatarURL())

	p.Avatar = "/uploads/avatars/abc.png"
	assert.Equal(t, "/uploads/avatars/abc.png", p.AvatarURL())
}

func TestItemImageURL(t *testing.T) {
	i := Item{}
	assert.Equal(t, DefaultItemImagePath, i.ImageURL())

	i.Image = "/uploads/items/xyz.jpg"
	assert.Equal(t, "/uploads/items/xyz.jpg", i.ImageURL())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusActive))
	assert.True(t, ValidStatus(StatusSold))
	assert.True(t, ValidStatus(StatusInactive))
	assert.False(t, ValidStatus("deleted"))
	assert.False(t, ValidStatus(""))
}
