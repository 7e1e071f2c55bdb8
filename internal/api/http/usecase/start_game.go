package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/internal/game"

	"go.uber.org/zap"
)

type StartGameParams struct {
	RoomName    string
	Letter      string
	Rounds      int // 0 ise varsayılan kullanılır
	QuestionSet string
}

type StartGameUseCase interface {
	Execute(ctx context.Context, starter string, params StartGameParams) ([]game.Question, int, error)
}

type startGameUseCase struct {
	registry      *game.Registry
	repository    PostgresRepository
	defaultRounds int
}

func NewStartGameUseCase(registry *game.Registry, repository PostgresRepository, defaultRounds int) StartGameUseCase {
	return &startGameUseCase{
		registry:      registry,
		repository:    repository,
		defaultRounds: defaultRounds,
	}
}

func (u *startGameUseCase) Execute(ctx context.Context, starter string, params StartGameParams) ([]game.Question, int, error) {
	session, err := u.registry.Get(params.RoomName)
	if err != nil {
		return nil, statusFromError(err), err
	}

	rounds := params.Rounds
	if rounds <= 0 {
		rounds = u.defaultRounds
	}

	// Soru seti seçilmişse kategoriler oradan gelir, yoksa varsayılanlar.
	var prompts []string
	if params.QuestionSet != "" {
		set, err := u.repository.GetQuestionSet(ctx, params.QuestionSet)
		if err != nil {
			return nil, statusFromError(err), err
		}
		prompts = set.Prompts
	}

	questions, err := session.Start(starter, params.Letter, rounds, prompts)
	if err != nil {
		return nil, statusFromError(err), err
	}

	go func() {
		if err := u.repository.UpdateRoomStatus(context.Background(), params.RoomName, "playing"); err != nil {
			zap.L().Error("Failed to mark room as playing",
				zap.String("room", params.RoomName),
				zap.Error(err))
		}
	}()

	return questions, http.StatusOK, nil
}
