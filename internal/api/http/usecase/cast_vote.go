package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/internal/game"

	"github.com/google/uuid"
)

type VoteTally struct {
	VoteYes int `json:"vote_yes"`
	VoteNo  int `json:"vote_no"`
}

type CastVoteUseCase interface {
	Execute(ctx context.Context, roomName string, answerID uuid.UUID, voter string, vote bool) (*VoteTally, int, error)
}

type castVoteUseCase struct {
	registry    *game.Registry
	adjudicator *game.Adjudicator
}

func NewCastVoteUseCase(registry *game.Registry, adjudicator *game.Adjudicator) CastVoteUseCase {
	return &castVoteUseCase{registry: registry, adjudicator: adjudicator}
}

func (u *castVoteUseCase) Execute(ctx context.Context, roomName string, answerID uuid.UUID, voter string, vote bool) (*VoteTally, int, error) {
	session, err := u.registry.Get(roomName)
	if err != nil {
		return nil, statusFromError(err), err
	}

	yes, no, err := u.adjudicator.CastVote(session, answerID, voter, vote)
	if err != nil {
		return nil, statusFromError(err), err
	}
	return &VoteTally{VoteYes: yes, VoteNo: no}, http.StatusOK, nil
}
