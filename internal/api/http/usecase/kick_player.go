package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/internal/game"
)

type KickPlayerUseCase interface {
	Execute(ctx context.Context, roomName, adminName, target string) (int, error)
}

type kickPlayerUseCase struct {
	registry *game.Registry
}

func NewKickPlayerUseCase(registry *game.Registry) KickPlayerUseCase {
	return &kickPlayerUseCase{registry: registry}
}

func (u *kickPlayerUseCase) Execute(ctx context.Context, roomName, adminName, target string) (int, error) {
	session, err := u.registry.Get(roomName)
	if err != nil {
		return statusFromError(err), err
	}

	if err := session.Kick(adminName, target); err != nil {
		return statusFromError(err), err
	}
	return http.StatusOK, nil
}
