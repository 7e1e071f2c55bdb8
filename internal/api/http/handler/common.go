package handler

import (
	"fmt"

	"word-game-service/domain"

	"github.com/gofiber/fiber/v2"
)

// currentUsername, auth ara katmanının context'e koyduğu kullanıcı adını okur.
func currentUsername(fbrCtx *fiber.Ctx) (string, error) {
	username, _ := fbrCtx.Locals("username").(string)
	if username == "" {
		return "", fmt.Errorf("%w: no authenticated user", domain.ErrUnauthorized)
	}
	return username, nil
}
