package bootstrap

import (
	"context"

	"word-game-service/config"
	"word-game-service/internal/initializer"

	"github.com/redis/go-redis/v9"
)

// RoomEventManager, oda olaylarının hem yayınlandığı hem okunduğu kanal.
// Publish tarafı oturumların EventPublisher sözleşmesi, Subscribe tarafı
// websocket hub'ının olay kaynağıdır.
type RoomEventManager interface {
	Publish(roomName string, eventType string, content interface{})
	Subscribe(ctx context.Context, roomName string) *redis.PubSub
}

func InitRoomRedis(config config.Config) RoomEventManager {
	return initializer.InitRoomRedis(config)
}
