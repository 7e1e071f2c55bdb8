package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RequestVoteRequest struct {
	RoomName string    `params:"room_name" validate:"required"`
	AnswerID uuid.UUID `json:"answer_id" validate:"required"`
}

type RequestVoteResponse struct {
	Message string `json:"message"`
}

type RequestVoteHandler struct {
	usecase httpUsecase.RequestVoteUseCase
}

func NewRequestVoteHandler(usecase httpUsecase.RequestVoteUseCase) *RequestVoteHandler {
	return &RequestVoteHandler{
		usecase: usecase,
	}
}

func (h *RequestVoteHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *RequestVoteRequest) (*RequestVoteResponse, int, error) {
	username, err := currentUsername(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	status, err := h.usecase.Execute(ctx, req.RoomName, req.AnswerID, username)
	if err != nil {
		return nil, status, err
	}
	return &RequestVoteResponse{Message: "vote opened"}, status, nil
}
