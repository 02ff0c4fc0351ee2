package handlers

import (
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploadService *services.UploadService
}

func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage accepts a multipart image for the given kind (item, avatar,
// header_bg) and returns the reference path to store on the entity.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "Image file is required")
	}

	if err := h.uploadService.Validate(file); err != nil {
		return respondError(c, err)
	}

	kind := c.Query("kind", "item")
	diskPath, publicPath, err := h.uploadService.Destination(file, kind)
	if err != nil {
		return respondError(c, err)
	}

	if err := c.SaveFile(file, diskPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not save file",
		})
	}

	return c.JSON(dto.UploadResponse{Path: publicPath})
}
