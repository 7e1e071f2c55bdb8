package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"
	"word-game-service/internal/game"

	"github.com/gofiber/fiber/v2"
)

type GetStateRequest struct {
	RoomName string `params:"room_name" validate:"required"`
}

type GetStateResponse struct {
	State *game.StateSnapshot `json:"state"`
}

type GetStateHandler struct {
	usecase httpUsecase.GetStateUseCase
}

func NewGetStateHandler(usecase httpUsecase.GetStateUseCase) *GetStateHandler {
	return &GetStateHandler{
		usecase: usecase,
	}
}

func (h *GetStateHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetStateRequest) (*GetStateResponse, int, error) {
	snapshot, status, err := h.usecase.Execute(ctx, req.RoomName)
	if err != nil {
		return nil, status, err
	}
	return &GetStateResponse{State: snapshot}, status, nil
}
