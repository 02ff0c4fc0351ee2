package handlers

import (
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/middleware"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	reviewerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	review, err := h.reviewService.Create(reviewerID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ReviewResponse{
		Review:        *review,
		RatingDisplay: review.RatingDisplay(),
	})
}

// ListForUser returns the reviews a user has received plus the aggregate.
func (h *ReviewHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	reviews, err := h.reviewService.ListReceived(userID)
	if err != nil {
		return respondError(c, err)
	}

	rating, err := h.reviewService.AverageRating(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"rating":  rating,
	})
}
