package bootstrap

import (
	"word-game-service/config"
	"word-game-service/internal/game"
	"word-game-service/internal/initializer"
)

func InitJudge(config config.Config) game.Judge {
	return initializer.InitJudge(config)
}
