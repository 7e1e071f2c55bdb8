package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/internal/game"
)

type VetoWordUseCase interface {
	Execute(ctx context.Context, roomName, adminName, word string) (int, error)
}

type vetoWordUseCase struct {
	registry *game.Registry
}

func NewVetoWordUseCase(registry *game.Registry) VetoWordUseCase {
	return &vetoWordUseCase{registry: registry}
}

func (u *vetoWordUseCase) Execute(ctx context.Context, roomName, adminName, word string) (int, error) {
	session, err := u.registry.Get(roomName)
	if err != nil {
		return statusFromError(err), err
	}

	if err := session.Veto(adminName, word); err != nil {
		return statusFromError(err), err
	}
	return http.StatusOK, nil
}
