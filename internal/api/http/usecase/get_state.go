package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/internal/game"
)

type GetStateUseCase interface {
	Execute(ctx context.Context, roomName string) (*game.StateSnapshot, int, error)
}

type getStateUseCase struct {
	registry *game.Registry
}

func NewGetStateUseCase(registry *game.Registry) GetStateUseCase {
	return &getStateUseCase{registry: registry}
}

func (u *getStateUseCase) Execute(ctx context.Context, roomName string) (*game.StateSnapshot, int, error) {
	session, err := u.registry.Get(roomName)
	if err != nil {
		return nil, statusFromError(err), err
	}

	snapshot := session.Snapshot()
	return &snapshot, http.StatusOK, nil
}
