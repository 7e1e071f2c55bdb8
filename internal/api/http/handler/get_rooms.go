package handler

import (
	"context"

	"word-game-service/domain"
	httpUsecase "word-game-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetRoomsRequest struct {
}

type GetRoomsResponse struct {
	Rooms []domain.RoomSummary `json:"rooms"`
}

type GetRoomsHandler struct {
	usecase httpUsecase.GetRoomsUseCase
}

func NewGetRoomsHandler(usecase httpUsecase.GetRoomsUseCase) *GetRoomsHandler {
	return &GetRoomsHandler{
		usecase: usecase,
	}
}

func (h *GetRoomsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetRoomsRequest) (*GetRoomsResponse, int, error) {
	rooms, status, err := h.usecase.Execute(ctx)
	if err != nil {
		return nil, status, err
	}
	return &GetRoomsResponse{Rooms: rooms}, status, nil
}
