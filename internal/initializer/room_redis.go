package initializer

import (
	"fmt"
	"log"

	"word-game-service/config"
	"word-game-service/infra/redis"
)

func InitRoomRedis(appConfig config.Config) *redis.RoomEventPublisher {
	cfg := appConfig.RoomRedis
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

	publisher, err := redis.NewRoomEventPublisher(addr, cfg.Password, cfg.DB)
	if err != nil {
		log.Fatalf("oda redis bağlantısı kurulamadı: %v", err)
	}
	return publisher
}
