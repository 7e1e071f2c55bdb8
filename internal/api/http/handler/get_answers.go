package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetAnswersRequest struct {
	RoomName string `params:"room_name" validate:"required"`
}

type GetAnswersResponse struct {
	Answers *httpUsecase.AnswersView `json:"answers"`
}

type GetAnswersHandler struct {
	usecase httpUsecase.GetAnswersUseCase
}

func NewGetAnswersHandler(usecase httpUsecase.GetAnswersUseCase) *GetAnswersHandler {
	return &GetAnswersHandler{
		usecase: usecase,
	}
}

func (h *GetAnswersHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetAnswersRequest) (*GetAnswersResponse, int, error) {
	view, status, err := h.usecase.Execute(ctx, req.RoomName)
	if err != nil {
		return nil, status, err
	}
	return &GetAnswersResponse{Answers: view}, status, nil
}
