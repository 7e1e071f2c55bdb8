package httpUsecase

import (
	"context"
	"net/http"
	"time"

	"word-game-service/domain"
	"word-game-service/internal/game"

	"go.uber.org/zap"
)

type CreateRoomParams struct {
	RoomName    string
	Kind        game.Kind
	Mode        game.Mode
	TimeLimit   int // saniye; 0 ise varsayılan kullanılır
	PlayerNames []string
}

type CreateRoomUseCase interface {
	Execute(ctx context.Context, creator string, params CreateRoomParams) (*game.StateSnapshot, int, error)
}

type createRoomUseCase struct {
	registry         *game.Registry
	repository       PostgresRepository
	defaultTimeLimit time.Duration
}

func NewCreateRoomUseCase(registry *game.Registry, repository PostgresRepository, defaultTimeLimit time.Duration) CreateRoomUseCase {
	return &createRoomUseCase{
		registry:         registry,
		repository:       repository,
		defaultTimeLimit: defaultTimeLimit,
	}
}

func (u *createRoomUseCase) Execute(ctx context.Context, creator string, params CreateRoomParams) (*game.StateSnapshot, int, error) {
	timeLimit := time.Duration(params.TimeLimit) * time.Second
	if timeLimit <= 0 {
		timeLimit = u.defaultTimeLimit
	}

	session, err := u.registry.CreateRoom(params.RoomName, params.Kind, params.Mode, timeLimit, creator, params.PlayerNames)
	if err != nil {
		return nil, statusFromError(err), err
	}

	// Kalıcı kayıt raporlama içindir; başarısızlığı oyunu engellemez.
	go func() {
		record := domain.Room{
			RoomName:  params.RoomName,
			Creator:   creator,
			Kind:      string(params.Kind),
			Mode:      string(params.Mode),
			TimeLimit: int(timeLimit.Seconds()),
		}
		if _, err := u.repository.CreateRoom(context.Background(), record); err != nil {
			zap.L().Error("Failed to persist room record",
				zap.String("room", params.RoomName),
				zap.Error(err))
		}
	}()

	snapshot := session.Snapshot()
	return &snapshot, http.StatusCreated, nil
}
