package handlers

import (
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/middleware"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List is the public browse/search endpoint; it only ever shows active items.
func (h *ItemHandler) List(c *fiber.Ctx) error {
	filter := services.ItemFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("q"),
		Page:         c.QueryInt("page", 1),
		Limit:        c.QueryInt("limit", 20),
	}

	items, total, err := h.itemService.List(filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.ItemListResponse{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	})
}

// Latest serves the homepage strip of newest active items.
func (h *ItemHandler) Latest(c *fiber.Ctx) error {
	items, err := h.itemService.Latest(c.QueryInt("n", 6))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}

func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid item id")
	}

	item, err := h.itemService.Get(id)
	if err != nil {
		return respondError(c, err)
	}

	isOwner := false
	if actorID, err := middleware.CurrentUserID(c); err == nil {
		isOwner = item.SellerID == actorID
	}

	return c.JSON(fiber.Map{
		"item":      item,
		"image_url": item.ImageURL(),
		"is_owner":  isOwner,
	})
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	sellerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	item, err := h.itemService.Create(sellerID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ItemHandler) Update(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid item id")
	}

	var req dto.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	item, err := h.itemService.Update(id, actorID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(item)
}

func (h *ItemHandler) ToggleStatus(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid item id")
	}

	item, err := h.itemService.ToggleStatus(id, actorID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(item)
}

func (h *ItemHandler) MarkSold(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid item id")
	}

	item, err := h.itemService.MarkSold(id, actorID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(item)
}

// Mine is the owner's private listing view, all statuses included.
func (h *ItemHandler) Mine(c *fiber.Ctx) error {
	sellerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	items, err := h.itemService.ListMine(sellerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"items": items})
}
