package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/internal/game"

	"github.com/google/uuid"
)

type CheckAnswerUseCase interface {
	Execute(ctx context.Context, roomName string, answerID uuid.UUID) (*game.Verdict, int, error)
}

type checkAnswerUseCase struct {
	registry    *game.Registry
	adjudicator *game.Adjudicator
}

func NewCheckAnswerUseCase(registry *game.Registry, adjudicator *game.Adjudicator) CheckAnswerUseCase {
	return &checkAnswerUseCase{registry: registry, adjudicator: adjudicator}
}

func (u *checkAnswerUseCase) Execute(ctx context.Context, roomName string, answerID uuid.UUID) (*game.Verdict, int, error) {
	session, err := u.registry.Get(roomName)
	if err != nil {
		return nil, statusFromError(err), err
	}

	verdict, err := u.adjudicator.RequestAutomatedCheck(ctx, session, answerID)
	if err != nil {
		return nil, statusFromError(err), err
	}
	return verdict, http.StatusOK, nil
}
