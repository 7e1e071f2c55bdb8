package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/internal/game"

	"github.com/google/uuid"
)

type SubmitAnswerResult struct {
	Completed bool `json:"completed"`
}

type SubmitAnswerUseCase interface {
	Execute(ctx context.Context, roomName, username string, questionID uuid.UUID, text string) (*SubmitAnswerResult, int, error)
}

type submitAnswerUseCase struct {
	registry *game.Registry
}

func NewSubmitAnswerUseCase(registry *game.Registry) SubmitAnswerUseCase {
	return &submitAnswerUseCase{registry: registry}
}

// Execute, tek soruluk artımlı gönderim. Toplu submit-all'un aksine çağrı
// başına bir cevap yazar; oyuncunun son sorusu da cevaplanınca gönderim
// kapanır.
func (u *submitAnswerUseCase) Execute(ctx context.Context, roomName, username string, questionID uuid.UUID, text string) (*SubmitAnswerResult, int, error) {
	session, err := u.registry.Get(roomName)
	if err != nil {
		return nil, statusFromError(err), err
	}

	completed, err := session.SubmitAnswer(username, questionID, text)
	if err != nil {
		return nil, statusFromError(err), err
	}
	return &SubmitAnswerResult{Completed: completed}, http.StatusOK, nil
}
