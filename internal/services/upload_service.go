package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/apperr"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/config"
	"github.com/google/uuid"
)

// Upload kinds map to subdirectories under the upload root, matching the
// original media layout.
var uploadKinds = map[string]string{
	"item":      "items",
	"avatar":    "avatars",
	"header_bg": "header_bg",
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadService validates image uploads and decides where they land.
// Files store a reference path, never binary content in the database.
type UploadService struct {
	cfg *config.Config
}

func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

// Validate rejects oversized or non-image files before anything is saved.
func (s *UploadService) Validate(file *multipart.FileHeader) error {
	if file.Size > s.cfg.MaxUploadSize {
		return apperr.NewValidation("image", "图片文件太大，请上传小于5MB的图片")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return apperr.NewValidation("image", "不支持的文件格式，请上传图片文件（JPG、PNG、GIF、WebP）")
	}
	return nil
}

// Destination returns the on-disk path and the public reference path for
// the upload. The stored filename is a fresh uuid so names never collide.
func (s *UploadService) Destination(file *multipart.FileHeader, kind string) (string, string, error) {
	subdir, ok := uploadKinds[kind]
	if !ok {
		return "", "", apperr.NewValidation("kind", "无效的上传类型")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext
	diskPath := filepath.Join(s.cfg.UploadDir, subdir, name)
	publicPath := fmt.Sprintf("/uploads/%s/%s", subdir, name)
	return diskPath, publicPath, nil
}
