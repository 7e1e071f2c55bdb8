package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"word-game-service/domain"
	"word-game-service/internal/game"
)

type SubmitWordResult struct {
	Accepted bool
	Word     string
	Reason   string
}

type SubmitWordUseCase interface {
	Execute(ctx context.Context, roomName, username, word string) (*SubmitWordResult, int, error)
}

type submitWordUseCase struct {
	registry *game.Registry
}

func NewSubmitWordUseCase(registry *game.Registry) SubmitWordUseCase {
	return &submitWordUseCase{registry: registry}
}

func (u *submitWordUseCase) Execute(ctx context.Context, roomName, username, word string) (*SubmitWordResult, int, error) {
	session, err := u.registry.Get(roomName)
	if err != nil {
		return nil, statusFromError(err), err
	}

	accepted, err := session.SubmitWord(username, word)
	if err != nil {
		// Kural ihlali bir istek hatası değil oyun sonucudur: gönderen
		// elenmiştir ve istemciye sebep döner.
		if errors.Is(err, domain.ErrValidation) {
			return &SubmitWordResult{Accepted: false, Word: word, Reason: err.Error()}, http.StatusOK, nil
		}
		return nil, statusFromError(err), err
	}

	return &SubmitWordResult{Accepted: true, Word: accepted}, http.StatusOK, nil
}
