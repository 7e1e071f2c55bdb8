package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/internal/game"
)

type JoinRoomUseCase interface {
	Execute(ctx context.Context, roomName, username string) (*game.StateSnapshot, int, error)
}

type joinRoomUseCase struct {
	registry *game.Registry
}

func NewJoinRoomUseCase(registry *game.Registry) JoinRoomUseCase {
	return &joinRoomUseCase{registry: registry}
}

func (u *joinRoomUseCase) Execute(ctx context.Context, roomName, username string) (*game.StateSnapshot, int, error) {
	session, err := u.registry.Join(roomName, username)
	if err != nil {
		return nil, statusFromError(err), err
	}

	snapshot := session.Snapshot()
	return &snapshot, http.StatusOK, nil
}
