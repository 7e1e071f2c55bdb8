package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/internal/game"

	"github.com/google/uuid"
)

type OverrideAnswerUseCase interface {
	Execute(ctx context.Context, roomName string, answerID uuid.UUID, adminName string, value bool) (int, error)
}

type overrideAnswerUseCase struct {
	registry    *game.Registry
	adjudicator *game.Adjudicator
}

func NewOverrideAnswerUseCase(registry *game.Registry, adjudicator *game.Adjudicator) OverrideAnswerUseCase {
	return &overrideAnswerUseCase{registry: registry, adjudicator: adjudicator}
}

func (u *overrideAnswerUseCase) Execute(ctx context.Context, roomName string, answerID uuid.UUID, adminName string, value bool) (int, error) {
	session, err := u.registry.Get(roomName)
	if err != nil {
		return statusFromError(err), err
	}

	if err := u.adjudicator.Override(session, answerID, adminName, value); err != nil {
		return statusFromError(err), err
	}
	return http.StatusOK, nil
}
