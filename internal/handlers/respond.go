package handlers

import (
	"errors"
	"log/slog"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/apperr"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the service error taxonomy onto HTTP statuses in one
// place so every handler fails the same way.
func respondError(c *fiber.Ctx, err error) error {
	if ve, ok := apperr.AsValidation(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   true,
			"message": "validation failed",
			"fields":  ve.Fields,
		})
	}
	if ce, ok := apperr.AsConflict(err); ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   true,
			"message": ce.Message,
			"field":   ce.Field,
		})
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Not found",
		})
	case errors.Is(err, apperr.ErrPermission):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "You do not own this resource",
		})
	case errors.Is(err, apperr.ErrInvalidTransition):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: true, Message: "Status transition not allowed",
		})
	case errors.Is(err, apperr.ErrInvalidCredentials), errors.Is(err, apperr.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, apperr.ErrSlugExhausted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Error("unhandled service error", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
