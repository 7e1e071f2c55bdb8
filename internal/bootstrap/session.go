package bootstrap

import (
	"context"

	"word-game-service/config"
	"word-game-service/domain"
	"word-game-service/internal/initializer"
)

type SessionManager interface {
	GetSession(ctx context.Context, token string) (*domain.SessionData, error)
}

func InitSessionRedis(config config.Config) SessionManager {
	return initializer.InitSessionRedis(config)
}
