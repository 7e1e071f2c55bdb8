package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"
	"word-game-service/internal/game"

	"github.com/gofiber/fiber/v2"
)

type JoinRoomRequest struct {
	RoomName string `params:"room_name" validate:"required"`
}

type JoinRoomResponse struct {
	Message string              `json:"message"`
	State   *game.StateSnapshot `json:"state"`
}

type JoinRoomHandler struct {
	usecase httpUsecase.JoinRoomUseCase
}

func NewJoinRoomHandler(usecase httpUsecase.JoinRoomUseCase) *JoinRoomHandler {
	return &JoinRoomHandler{
		usecase: usecase,
	}
}

func (h *JoinRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *JoinRoomRequest) (*JoinRoomResponse, int, error) {
	username, err := currentUsername(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	snapshot, status, err := h.usecase.Execute(ctx, req.RoomName, username)
	if err != nil {
		return nil, status, err
	}

	return &JoinRoomResponse{Message: "joined room", State: snapshot}, status, nil
}
