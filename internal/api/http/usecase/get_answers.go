package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/domain"
	"word-game-service/internal/game"
)

type AnswersView struct {
	Records []domain.AnswerRecord `json:"records"`
	Scores  map[string]int        `json:"scores"`
	Winners []string              `json:"winners"`
}

type GetAnswersUseCase interface {
	Execute(ctx context.Context, roomName string) (*AnswersView, int, error)
}

type getAnswersUseCase struct {
	registry *game.Registry
}

func NewGetAnswersUseCase(registry *game.Registry) GetAnswersUseCase {
	return &getAnswersUseCase{registry: registry}
}

func (u *getAnswersUseCase) Execute(ctx context.Context, roomName string) (*AnswersView, int, error) {
	session, err := u.registry.Get(roomName)
	if err != nil {
		return nil, statusFromError(err), err
	}

	snapshot := session.Snapshot()
	return &AnswersView{
		Records: session.Records(),
		Scores:  snapshot.Scores,
		Winners: snapshot.Winners,
	}, http.StatusOK, nil
}
