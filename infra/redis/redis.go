package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RoomEventPublisher, oda olaylarını odaya özel redis kanalına yayınlar.
// Websocket hub'ı ile aynı yayıncı sözleşmesini uygular; birden fazla
// servis örneği çalıştığında fanout bu kanallar üzerinden yapılır.
type RoomEventPublisher struct {
	client *redis.Client
}

// RoomEvent, kanal üzerinden giden mesaj yapısı.
type RoomEvent struct {
	RoomName  string      `json:"room_name"`
	Type      string      `json:"type"`
	Content   interface{} `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewRoomEventPublisher(redisAddr string, password string, db int) (*RoomEventPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RoomEventPublisher{client: client}, nil
}

func (p *RoomEventPublisher) Close() error {
	return p.client.Close()
}

// Channel, oda adından kanal adını türetir.
func Channel(roomName string) string {
	return fmt.Sprintf("room:%s", roomName)
}

func (p *RoomEventPublisher) Publish(roomName string, eventType string, content interface{}) {
	payload, err := json.Marshal(RoomEvent{
		RoomName:  roomName,
		Type:      eventType,
		Content:   content,
		Timestamp: time.Now(),
	})
	if err != nil {
		zap.L().Error("Failed to marshal room event", zap.Error(err))
		return
	}

	if err := p.client.Publish(context.Background(), Channel(roomName), payload).Err(); err != nil {
		zap.L().Error("Failed to publish room event",
			zap.String("channel", Channel(roomName)),
			zap.Error(err))
	}
}

// Subscribe, odanın kanalına abone olur. Websocket hub'ı diğer servis
// örneklerinden gelen olayları buradan alır.
func (p *RoomEventPublisher) Subscribe(ctx context.Context, roomName string) *redis.PubSub {
	return p.client.Subscribe(ctx, Channel(roomName))
}
