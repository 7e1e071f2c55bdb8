package handler

import (
	"context"
	"strings"

	"word-game-service/domain"

	"github.com/gofiber/fiber/v2"
)

// SessionResolver, bearer token'ı oturum verisine çözer.
type SessionResolver interface {
	GetSession(ctx context.Context, token string) (*domain.SessionData, error)
}

// NewAuthMiddleware, Authorization başlığındaki token'ı çözüp kullanıcı adını
// fiber context'ine koyar. Token yoksa istek reddedilir; kimliğin kendisini
// auth servisi üretir, burada sadece doğrulanır.
func NewAuthMiddleware(sessions SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		if token == "" {
			token = c.Get("X-Session-Token")
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing session token"})
		}

		data, err := sessions.GetSession(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid session"})
		}

		c.Locals("username", data.Username)
		c.Locals("user_id", data.UserID.String())
		return c.Next()
	}
}
