package middleware

import (
	"strings"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/config"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRequired gates category management. It accepts either a username
// from the config allow-list or a DB user whose role is admin.
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminUsernames := parseCSV(cfg.AdminUsernames)

	return func(c *fiber.Ctx) error {
		username := CurrentUsername(c)
		if username != "" && contains(adminUsernames, username) {
			return c.Next()
		}

		userID, err := CurrentUserID(c)
		if err == nil {
			var user models.User
			if err := db.First(&user, "id = ?", userID).Error; err == nil {
				if user.Role == models.RoleAdmin {
					return c.Next()
				}
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
