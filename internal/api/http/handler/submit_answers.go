package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type SubmitAnswersRequest struct {
	RoomName string            `params:"room_name" validate:"required"`
	Answers  map[string]string `json:"answers" validate:"required"`
}

type SubmitAnswersResponse struct {
	Message string `json:"message"`
}

type SubmitAnswersHandler struct {
	usecase httpUsecase.SubmitAnswersUseCase
}

func NewSubmitAnswersHandler(usecase httpUsecase.SubmitAnswersUseCase) *SubmitAnswersHandler {
	return &SubmitAnswersHandler{
		usecase: usecase,
	}
}

func (h *SubmitAnswersHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SubmitAnswersRequest) (*SubmitAnswersResponse, int, error) {
	username, err := currentUsername(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	status, err := h.usecase.Execute(ctx, req.RoomName, username, req.Answers)
	if err != nil {
		return nil, status, err
	}
	return &SubmitAnswersResponse{Message: "answers submitted"}, status, nil
}
