package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type VetoWordRequest struct {
	RoomName string `params:"room_name" validate:"required"`
	Word     string `json:"word" validate:"required,min=1,max=100"`
}

type VetoWordResponse struct {
	Message string `json:"message"`
}

type VetoWordHandler struct {
	usecase httpUsecase.VetoWordUseCase
}

func NewVetoWordHandler(usecase httpUsecase.VetoWordUseCase) *VetoWordHandler {
	return &VetoWordHandler{
		usecase: usecase,
	}
}

func (h *VetoWordHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *VetoWordRequest) (*VetoWordResponse, int, error) {
	username, err := currentUsername(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	status, err := h.usecase.Execute(ctx, req.RoomName, username, req.Word)
	if err != nil {
		return nil, status, err
	}
	return &VetoWordResponse{Message: "word vetoed"}, status, nil
}
