package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OverrideAnswerRequest struct {
	RoomName string    `params:"room_name" validate:"required"`
	AnswerID uuid.UUID `json:"answer_id" validate:"required"`
	Value    *bool     `json:"value" validate:"required"`
}

type OverrideAnswerResponse struct {
	Message string `json:"message"`
}

type OverrideAnswerHandler struct {
	usecase httpUsecase.OverrideAnswerUseCase
}

func NewOverrideAnswerHandler(usecase httpUsecase.OverrideAnswerUseCase) *OverrideAnswerHandler {
	return &OverrideAnswerHandler{
		usecase: usecase,
	}
}

func (h *OverrideAnswerHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *OverrideAnswerRequest) (*OverrideAnswerResponse, int, error) {
	username, err := currentUsername(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	status, err := h.usecase.Execute(ctx, req.RoomName, req.AnswerID, username, *req.Value)
	if err != nil {
		return nil, status, err
	}
	return &OverrideAnswerResponse{Message: "verdict overridden"}, status, nil
}
