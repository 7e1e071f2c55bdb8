package wsUsecase

import (
	"context"

	"word-game-service/internal/api/ws/hub"
	"word-game-service/internal/game"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

type StateStreamUseCase interface {
	Execute(c *websocket.Conn, ctx context.Context, roomName, username string) error
}

type stateStreamUseCase struct {
	hub      *hub.Hub
	registry *game.Registry
}

func NewStateStreamUseCase(wsHub *hub.Hub, registry *game.Registry) StateStreamUseCase {
	return &stateStreamUseCase{
		hub:      wsHub,
		registry: registry,
	}
}

// Execute, bağlantıyı odaya kaydeder, mevcut durumu gönderir ve bağlantı
// kopana kadar olay akışını hub'a bırakır. İstemciden veri beklenmez;
// okuma döngüsü sadece kopuşu yakalamak içindir.
func (u *stateStreamUseCase) Execute(c *websocket.Conn, ctx context.Context, roomName, username string) error {
	session, err := u.registry.Get(roomName)
	if err != nil {
		return err
	}

	u.hub.Register(roomName, c)
	defer u.hub.Unregister(roomName, c)

	snapshot := session.Snapshot()
	initial := map[string]interface{}{
		"type":    "state",
		"content": snapshot,
	}
	if err := c.WriteJSON(initial); err != nil {
		zap.L().Warn("Failed to send initial state",
			zap.String("room", roomName),
			zap.String("username", username),
			zap.Error(err))
		return err
	}

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return nil
		}
	}
}
