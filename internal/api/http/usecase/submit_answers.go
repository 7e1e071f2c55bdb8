package httpUsecase

import (
	"context"
	"fmt"
	"net/http"

	"word-game-service/domain"
	"word-game-service/internal/game"

	"github.com/google/uuid"
)

type SubmitAnswersUseCase interface {
	Execute(ctx context.Context, roomName, username string, answers map[string]string) (int, error)
}

type submitAnswersUseCase struct {
	registry *game.Registry
}

func NewSubmitAnswersUseCase(registry *game.Registry) SubmitAnswersUseCase {
	return &submitAnswersUseCase{registry: registry}
}

func (u *submitAnswersUseCase) Execute(ctx context.Context, roomName, username string, answers map[string]string) (int, error) {
	session, err := u.registry.Get(roomName)
	if err != nil {
		return statusFromError(err), err
	}

	submitted := make(map[uuid.UUID]string, len(answers))
	for rawID, text := range answers {
		questionID, err := uuid.Parse(rawID)
		if err != nil {
			return http.StatusBadRequest, fmt.Errorf("%w: invalid question id '%s'", domain.ErrInvalidInput, rawID)
		}
		submitted[questionID] = text
	}

	if err := session.SubmitAnswers(username, submitted, false); err != nil {
		return statusFromError(err), err
	}
	return http.StatusOK, nil
}
