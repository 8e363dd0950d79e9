package middleware

import (
	"github.com/gofiber/fiber/v2"

	"ecoally/backend/config"
	"ecoally/backend/utils"
)

// UserIDKey is where AuthMiddleware stores the authenticated user ID.
const UserIDKey = "userID"

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID reads the authenticated user ID set by AuthMiddleware.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(UserIDKey).(uint)
	return id
}
