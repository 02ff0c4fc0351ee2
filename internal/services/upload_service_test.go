package services

import (
	"mime/multipart"
	"strings"
	"testing"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadValidate_AcceptsImageExtensions(t *testing.T) {
	svc := NewUploadService(testConfig())

	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.gif", "e.webp"} {
		err := svc.Validate(&multipart.FileHeader{Filename: name, Size: 1024})
		assert.NoError(t, err, name)
	}
}

func TestUploadValidate_RejectsWrongTypeAndSize(t *testing.T) {
	svc := NewUploadService(testConfig())

	err := svc.Validate(&multipart.FileHeader{Filename: "script.exe", Size: 1024})
	_, ok := apperr.AsValidation(err)
	assert.True(t, ok)

	err = svc.Validate(&multipart.FileHeader{Filename: "big.png", Size: 6 * 1024 * 1024})
	_, ok = apperr.AsValidation(err)
	assert.True(t, ok)
}

func TestUploadDestination_UsesKindSubdirAndFreshName(t *testing.T) {
	svc := NewUploadService(testConfig())
	file := &multipart.FileHeader{Filename: "photo.png", Size: 1024}

	disk, public, err := svc.Destination(file, "avatar")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(public, "/uploads/avatars/"))
	assert.True(t, strings.HasSuffix(public, ".png"))
	assert.NotContains(t, disk, "photo")

	_, _, err = svc.Destination(file, "bogus")
	_, ok := apperr.AsValidation(err)
	assert.True(t, ok)
}
