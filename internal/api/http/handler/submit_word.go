package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type SubmitWordRequest struct {
	RoomName string `params:"room_name" validate:"required"`
	Word     string `json:"word" validate:"required,min=1,max=100"`
}

type SubmitWordResponse struct {
	Accepted bool   `json:"accepted"`
	Word     string `json:"word"`
	Reason   string `json:"reason,omitempty"`
}

type SubmitWordHandler struct {
	usecase httpUsecase.SubmitWordUseCase
}

func NewSubmitWordHandler(usecase httpUsecase.SubmitWordUseCase) *SubmitWordHandler {
	return &SubmitWordHandler{
		usecase: usecase,
	}
}

func (h *SubmitWordHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SubmitWordRequest) (*SubmitWordResponse, int, error) {
	username, err := currentUsername(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	result, status, err := h.usecase.Execute(ctx, req.RoomName, username, req.Word)
	if err != nil {
		return nil, status, err
	}
	return &SubmitWordResponse{
		Accepted: result.Accepted,
		Word:     result.Word,
		Reason:   result.Reason,
	}, status, nil
}
