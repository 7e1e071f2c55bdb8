package handler

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"word-game-service/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	tokens map[string]string
}

func (f *fakeSessions) GetSession(ctx context.Context, token string) (*domain.SessionData, error) {
	username, ok := f.tokens[token]
	if !ok {
		return nil, fmt.Errorf("%w: session not found", domain.ErrUnauthorized)
	}
	return &domain.SessionData{Username: username}, nil
}

func newAuthTestApp() *fiber.App {
	sessions := &fakeSessions{tokens: map[string]string{"good-token": "alice"}}

	app := fiber.New()
	app.Get("/whoami", NewAuthMiddleware(sessions), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": c.Locals("username")})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	app := newAuthTestApp()

	tests := []struct {
		name       string
		header     string
		value      string
		wantStatus int
	}{
		{"bearer token", "Authorization", "Bearer good-token", fiber.StatusOK},
		{"plain session header", "X-Session-Token", "good-token", fiber.StatusOK},
		{"unknown token", "Authorization", "Bearer bad-token", fiber.StatusUnauthorized},
		{"missing token", "", "", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
