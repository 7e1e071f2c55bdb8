package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"
	"word-game-service/internal/game"

	"github.com/gofiber/fiber/v2"
)

type CreateRoomRequest struct {
	RoomName    string   `json:"room_name" validate:"required,min=1,max=100"`
	Kind        string   `json:"kind" validate:"required,oneof=LetterMatch WordBlitz WordChain"`
	Mode        string   `json:"mode" validate:"required,oneof=LocalTurn SingleTimed OnlineTurn"`
	TimeLimit   int      `json:"time_limit" validate:"omitempty,min=5,max=3600"`
	PlayerNames []string `json:"player_names" validate:"omitempty,dive,min=1,max=50"`
}

type CreateRoomResponse struct {
	Message string              `json:"message"`
	State   *game.StateSnapshot `json:"state"`
}

type CreateRoomHandler struct {
	usecase httpUsecase.CreateRoomUseCase
}

func NewCreateRoomHandler(usecase httpUsecase.CreateRoomUseCase) *CreateRoomHandler {
	return &CreateRoomHandler{
		usecase: usecase,
	}
}

func (h *CreateRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateRoomRequest) (*CreateRoomResponse, int, error) {
	username, err := currentUsername(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	snapshot, status, err := h.usecase.Execute(ctx, username, httpUsecase.CreateRoomParams{
		RoomName:    req.RoomName,
		Kind:        game.Kind(req.Kind),
		Mode:        game.Mode(req.Mode),
		TimeLimit:   req.TimeLimit,
		PlayerNames: req.PlayerNames,
	})
	if err != nil {
		return nil, status, err
	}

	return &CreateRoomResponse{Message: "room created", State: snapshot}, status, nil
}
