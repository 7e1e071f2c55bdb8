package handler

import (
	"context"
	"encoding/json"
	"fmt"

	httpUsecase "word-game-service/internal/api/http/usecase"
	"word-game-service/pkg/messaging"

	"github.com/google/uuid"
)

type CreatedUserHandler struct {
	usecase httpUsecase.CreateUserUseCase
}

func NewCreatedUserHandler(createdUserUsecase httpUsecase.CreateUserUseCase) *CreatedUserHandler {
	return &CreatedUserHandler{
		usecase: createdUserUsecase,
	}
}

func (h *CreatedUserHandler) Handle(ctx context.Context, msg *messaging.Message) error {
	var data messaging.UserCreatedData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		return fmt.Errorf("invalid user_created payload for message %s: %w", msg.ID, err)
	}

	userID, err := uuid.Parse(data.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id in message %s: %w", msg.ID, err)
	}

	return h.usecase.Execute(ctx, userID, data.Username, data.Email)
}
