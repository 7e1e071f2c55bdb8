package bootstrap

import (
	"word-game-service/config"
	httpUsecase "word-game-service/internal/api/http/usecase"
	"word-game-service/internal/initializer"
)

type PostgresRepository interface {
	httpUsecase.PostgresRepository
	Close() error
}

func InitDatabase(config config.Config) PostgresRepository {
	return initializer.InitDatabase(config)
}
