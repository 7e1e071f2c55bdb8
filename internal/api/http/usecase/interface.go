package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"word-game-service/domain"
	"word-game-service/pkg/messaging"

	"github.com/google/uuid"
)

type PostgresRepository interface {
	CreateRoom(ctx context.Context, room domain.Room) (uuid.UUID, error)
	UpdateRoomStatus(ctx context.Context, roomName, status string) error
	SaveAnswerRecords(ctx context.Context, records []domain.AnswerRecord) error
	RecordResults(ctx context.Context, scores map[string]int, winners []string) error
	CreateUser(ctx context.Context, user domain.User) error
	ListQuestionSets(ctx context.Context) ([]domain.QuestionSet, error)
	GetQuestionSet(ctx context.Context, name string) (*domain.QuestionSet, error)
	CreateQuestionSet(ctx context.Context, set domain.QuestionSet) (uuid.UUID, error)
}

type Messaging interface {
	PublishMessage(ctx context.Context, msgType messaging.MessageType, data interface{}) error
}

// statusFromError, alan hatalarını HTTP durum koduna çevirir. Bütün
// usecase'ler aynı eşlemeyi kullanır.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
