package handlers

import (
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	category, err := h.categoryService.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// Create is admin-only; the route group enforces that.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	if err := h.categoryService.Delete(id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Category deleted"})
}
