package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/domain"
	"word-game-service/internal/game"
)

type GetRoomsUseCase interface {
	Execute(ctx context.Context) ([]domain.RoomSummary, int, error)
}

type getRoomsUseCase struct {
	registry *game.Registry
}

func NewGetRoomsUseCase(registry *game.Registry) GetRoomsUseCase {
	return &getRoomsUseCase{registry: registry}
}

func (u *getRoomsUseCase) Execute(ctx context.Context) ([]domain.RoomSummary, int, error) {
	return u.registry.ListOpen(), http.StatusOK, nil
}
