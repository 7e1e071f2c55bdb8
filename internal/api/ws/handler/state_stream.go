package wsHandler

import (
	"context"
	"fmt"

	wsUsecase "word-game-service/internal/api/ws/usecase"
	internalHandler "word-game-service/internal/handler"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type wsErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// StateStreamHandler, oda durum akışı için websocket bağlantılarını yönetir.
type StateStreamHandler struct {
	usecase  wsUsecase.StateStreamUseCase
	sessions internalHandler.SessionResolver
}

type StateStreamRequest struct {
}

func NewStateStreamHandler(usecase wsUsecase.StateStreamUseCase, sessions internalHandler.SessionResolver) *StateStreamHandler {
	return &StateStreamHandler{
		usecase:  usecase,
		sessions: sessions,
	}
}

func (h *StateStreamHandler) sendErrorAndClose(conn *websocket.Conn, msg string, code int) {
	errorMessage := wsErrorMessage{
		Type:    "error",
		Message: msg,
		Code:    code,
	}
	if err := conn.WriteJSON(errorMessage); err != nil {
		fmt.Printf("Failed to send error message to client: %v\n", err)
	}
	conn.Close()
}

// HandleWS, token'ı çözer ve bağlantıyı duruma abone eder. Tarayıcılar
// websocket isteğine başlık koyamadığı için token query'den de okunur.
func (h *StateStreamHandler) HandleWS(c *websocket.Conn, ctx context.Context, req *StateStreamRequest) {
	token := c.Query("token")
	if token == "" {
		token = c.Headers("X-Session-Token")
	}
	if token == "" {
		h.sendErrorAndClose(c, "missing session token", fiber.StatusUnauthorized)
		return
	}

	data, err := h.sessions.GetSession(ctx, token)
	if err != nil {
		h.sendErrorAndClose(c, "invalid session", fiber.StatusUnauthorized)
		return
	}

	roomName := c.Params("room_name")
	if roomName == "" {
		h.sendErrorAndClose(c, "missing room name", fiber.StatusBadRequest)
		return
	}

	if err := h.usecase.Execute(c, ctx, roomName, data.Username); err != nil {
		h.sendErrorAndClose(c, err.Error(), fiber.StatusNotFound)
	}
}
