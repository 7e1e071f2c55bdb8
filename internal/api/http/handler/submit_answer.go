package handler

import (
	"context"
	"fmt"

	"word-game-service/domain"
	httpUsecase "word-game-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SubmitAnswerRequest struct {
	RoomName   string `params:"room_name" validate:"required"`
	QuestionID string `json:"question_id" validate:"required"`
	Text       string `json:"text" validate:"required"`
}

type SubmitAnswerResponse struct {
	Completed bool `json:"completed"`
}

type SubmitAnswerHandler struct {
	usecase httpUsecase.SubmitAnswerUseCase
}

func NewSubmitAnswerHandler(usecase httpUsecase.SubmitAnswerUseCase) *SubmitAnswerHandler {
	return &SubmitAnswerHandler{
		usecase: usecase,
	}
}

func (h *SubmitAnswerHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SubmitAnswerRequest) (*SubmitAnswerResponse, int, error) {
	username, err := currentUsername(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return nil, fiber.StatusBadRequest, fmt.Errorf("%w: invalid question id '%s'", domain.ErrInvalidInput, req.QuestionID)
	}

	result, status, err := h.usecase.Execute(ctx, req.RoomName, username, questionID, req.Text)
	if err != nil {
		return nil, status, err
	}
	return &SubmitAnswerResponse{Completed: result.Completed}, status, nil
}
