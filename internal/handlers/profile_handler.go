package handlers

import (
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/middleware"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetPublic serves another user's public page by username.
func (h *ProfileHandler) GetPublic(c *fiber.Ctx) error {
	resp, err := h.profileService.GetPublic(c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *ProfileHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.profileService.Dashboard(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.profileService.Update(userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
