package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"
	"word-game-service/internal/game"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CheckAnswerRequest struct {
	RoomName string    `params:"room_name" validate:"required"`
	AnswerID uuid.UUID `json:"answer_id" validate:"required"`
}

type CheckAnswerResponse struct {
	Verdict *game.Verdict `json:"verdict"`
}

type CheckAnswerHandler struct {
	usecase httpUsecase.CheckAnswerUseCase
}

func NewCheckAnswerHandler(usecase httpUsecase.CheckAnswerUseCase) *CheckAnswerHandler {
	return &CheckAnswerHandler{
		usecase: usecase,
	}
}

func (h *CheckAnswerHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CheckAnswerRequest) (*CheckAnswerResponse, int, error) {
	verdict, status, err := h.usecase.Execute(ctx, req.RoomName, req.AnswerID)
	if err != nil {
		return nil, status, err
	}
	return &CheckAnswerResponse{Verdict: verdict}, status, nil
}
