package middleware

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	config "github.com/lockwoodcarter/agency-api/configs"
	"github.com/lockwoodcarter/agency-api/internal/service"
	"github.com/lockwoodcarter/agency-api/pkg/utils"
)

type AuthMiddleware struct {
	keys  service.ApiKeyService
	users service.UserService
	cfg   config.Config
}

func NewAuthMiddleware(cfg config.Config, keys service.ApiKeyService, users service.UserService) *AuthMiddleware {
	return &AuthMiddleware{keys: keys, users: users, cfg: cfg}
}

// AuthMiddleware authenticates via the session cookie or an api_key query
// parameter and stores the caller's id and role in request locals. Role gates
// downstream rely on these locals, so nothing reaches a handler without them.
func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		apiKey := c.Query("api_key")

		if tokenString == "" && apiKey == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing keys or cookies",
			})
		}

		if apiKey != "" {
			userID, err := m.keys.GetUserID(c.Context(), apiKey)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			user, err := m.users.GetUserInfo(c.Context(), userID)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			c.Locals("user_id", fmt.Sprintf("%d", userID))
			c.Locals("user_role", user.Role)
		} else {
			claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
			if err != nil {
				c.Cookie(&fiber.Cookie{
					Name:   m.cfg.CookieName,
					Value:  "",
					Path:   "/",
					MaxAge: -1, // Delete cookie
				})

				log.Printf("Token validation failed: %v", err)
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid or expired token",
				})
			}

			c.Locals("user_id", claims.UserID)
			c.Locals("user_role", claims.Role)
		}
		return c.Next()
	}
}
