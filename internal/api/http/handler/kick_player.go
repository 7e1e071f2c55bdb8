package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type KickPlayerRequest struct {
	RoomName string `params:"room_name" validate:"required"`
	Target   string `json:"target" validate:"required,min=1,max=50"`
}

type KickPlayerResponse struct {
	Message string `json:"message"`
}

type KickPlayerHandler struct {
	usecase httpUsecase.KickPlayerUseCase
}

func NewKickPlayerHandler(usecase httpUsecase.KickPlayerUseCase) *KickPlayerHandler {
	return &KickPlayerHandler{
		usecase: usecase,
	}
}

func (h *KickPlayerHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *KickPlayerRequest) (*KickPlayerResponse, int, error) {
	username, err := currentUsername(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	status, err := h.usecase.Execute(ctx, req.RoomName, username, req.Target)
	if err != nil {
		return nil, status, err
	}
	return &KickPlayerResponse{Message: "player kicked"}, status, nil
}
