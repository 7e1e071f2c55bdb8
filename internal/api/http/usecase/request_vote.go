package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/internal/game"

	"github.com/google/uuid"
)

type RequestVoteUseCase interface {
	Execute(ctx context.Context, roomName string, answerID uuid.UUID, requester string) (int, error)
}

type requestVoteUseCase struct {
	registry    *game.Registry
	adjudicator *game.Adjudicator
}

func NewRequestVoteUseCase(registry *game.Registry, adjudicator *game.Adjudicator) RequestVoteUseCase {
	return &requestVoteUseCase{registry: registry, adjudicator: adjudicator}
}

func (u *requestVoteUseCase) Execute(ctx context.Context, roomName string, answerID uuid.UUID, requester string) (int, error) {
	session, err := u.registry.Get(roomName)
	if err != nil {
		return statusFromError(err), err
	}

	if err := u.adjudicator.RequestCommunityVote(session, answerID, requester); err != nil {
		return statusFromError(err), err
	}
	return http.StatusOK, nil
}
