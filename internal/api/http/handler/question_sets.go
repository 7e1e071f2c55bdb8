package handler

import (
	"context"

	"word-game-service/domain"
	httpUsecase "word-game-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type ListQuestionSetsRequest struct {
}

type ListQuestionSetsResponse struct {
	Sets []domain.QuestionSet `json:"sets"`
}

type ListQuestionSetsHandler struct {
	usecase httpUsecase.ListQuestionSetsUseCase
}

func NewListQuestionSetsHandler(usecase httpUsecase.ListQuestionSetsUseCase) *ListQuestionSetsHandler {
	return &ListQuestionSetsHandler{
		usecase: usecase,
	}
}

func (h *ListQuestionSetsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *ListQuestionSetsRequest) (*ListQuestionSetsResponse, int, error) {
	sets, status, err := h.usecase.Execute(ctx)
	if err != nil {
		return nil, status, err
	}
	return &ListQuestionSetsResponse{Sets: sets}, status, nil
}

type CreateQuestionSetRequest struct {
	SetName   string   `json:"set_name" validate:"required,min=1,max=100"`
	Questions []string `json:"questions" validate:"required,len=10,dive,required"`
}

type CreateQuestionSetResponse struct {
	Set *domain.QuestionSet `json:"set"`
}

type CreateQuestionSetHandler struct {
	usecase httpUsecase.CreateQuestionSetUseCase
}

func NewCreateQuestionSetHandler(usecase httpUsecase.CreateQuestionSetUseCase) *CreateQuestionSetHandler {
	return &CreateQuestionSetHandler{
		usecase: usecase,
	}
}

func (h *CreateQuestionSetHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateQuestionSetRequest) (*CreateQuestionSetResponse, int, error) {
	set, status, err := h.usecase.Execute(ctx, req.SetName, req.Questions)
	if err != nil {
		return nil, status, err
	}
	return &CreateQuestionSetResponse{Set: set}, status, nil
}
