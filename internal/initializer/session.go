package initializer

import (
	"fmt"
	"log"

	"word-game-service/config"
	"word-game-service/infra/session"
)

func InitSessionRedis(appConfig config.Config) *session.SessionManager {
	cfg := appConfig.SessionRedis
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

	manager, err := session.NewSessionManager(addr, cfg.Password, cfg.DB)
	if err != nil {
		log.Fatalf("oturum redis bağlantısı kurulamadı: %v", err)
	}
	return manager
}
