package initializer

import (
	"time"

	"word-game-service/config"
	"word-game-service/infra/judge"
)

func InitJudge(appConfig config.Config) *judge.Client {
	cfg := appConfig.Judge
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return judge.NewClient(cfg.URL, cfg.Model, timeout)
}
