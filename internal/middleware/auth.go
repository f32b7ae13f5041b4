package middleware

import (
	"context"
	"strings"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
	"github.com/Esther-Sonia/Fitflex-tracker-app/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type userResolver interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthRequired validates the bearer token and resolves its subject to a
// stored user. Token problems and unknown subjects both end as 401.
func AuthRequired(secret string, users userResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Invalid authorization header format",
			})
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Could not validate credentials",
			})
		}

		user, err := users.GetByUsername(c.Context(), claims.Username)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Could not validate credentials",
			})
		}

		c.Locals("user_id", user.ID)
		c.Locals("username", user.Username)

		return c.Next()
	}
}
