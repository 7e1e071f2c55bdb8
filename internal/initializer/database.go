package initializer

import (
	"fmt"
	"log"

	"word-game-service/config"
	"word-game-service/infra/postgres"
)

func InitDatabase(appConfig config.Config) *postgres.Repository {
	cfg := appConfig.Postgres
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DB,
	)

	repo, err := postgres.NewRepository(connString)
	if err != nil {
		log.Fatalf("veritabanı bağlantısı kurulamadı: %v", err)
	}
	return repo
}
