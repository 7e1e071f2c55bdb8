package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"
	"word-game-service/internal/game"

	"github.com/gofiber/fiber/v2"
)

type StartGameRequest struct {
	RoomName    string `params:"room_name" validate:"required"`
	Letter      string `json:"letter" validate:"omitempty,len=1"`
	Rounds      int    `json:"rounds" validate:"omitempty,min=1,max=10"`
	QuestionSet string `json:"question_set"`
}

type StartGameResponse struct {
	Message   string          `json:"message"`
	Questions []game.Question `json:"questions"`
}

type StartGameHandler struct {
	usecase httpUsecase.StartGameUseCase
}

func NewStartGameHandler(usecase httpUsecase.StartGameUseCase) *StartGameHandler {
	return &StartGameHandler{
		usecase: usecase,
	}
}

func (h *StartGameHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *StartGameRequest) (*StartGameResponse, int, error) {
	username, err := currentUsername(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	questions, status, err := h.usecase.Execute(ctx, username, httpUsecase.StartGameParams{
		RoomName:    req.RoomName,
		Letter:      req.Letter,
		Rounds:      req.Rounds,
		QuestionSet: req.QuestionSet,
	})
	if err != nil {
		return nil, status, err
	}

	return &StartGameResponse{Message: "game started", Questions: questions}, status, nil
}
