package recorder

import (
	"context"

	"word-game-service/domain"
	"word-game-service/internal/game"
	"word-game-service/pkg/messaging"

	"go.uber.org/zap"
)

type Repository interface {
	SaveAnswerRecords(ctx context.Context, records []domain.AnswerRecord) error
	UpdateRoomStatus(ctx context.Context, roomName, status string) error
	RecordResults(ctx context.Context, scores map[string]int, winners []string) error
}

type Messaging interface {
	PublishMessage(ctx context.Context, msgType messaging.MessageType, data interface{}) error
}

// Recorder, oturum olaylarını dinleyip kalıcı katmana ve kafka'ya işleyen
// yayıncı adaptörü. Oyunu bitiren her yol (gönderim, eleme, süre dolumu)
// aynı olayı ürettiği için kalıcılaştırma tek noktada toplanır.
type Recorder struct {
	registry   *game.Registry
	repository Repository
	kafka      Messaging
}

func New(registry *game.Registry, repository Repository, kafka Messaging) *Recorder {
	return &Recorder{
		registry:   registry,
		repository: repository,
		kafka:      kafka,
	}
}

// Publish, game.EventPublisher sözleşmesi. Oturum kilidi altında çağrılır;
// bu yüzden oturuma geri dönen bütün işler goroutine'e alınır.
func (r *Recorder) Publish(roomName string, eventType string, content interface{}) {
	switch eventType {
	case game.EventGameFinished:
		go r.recordFinished(roomName)
	case game.EventVerdictUpdated:
		go r.recordVerdict(roomName, content)
	}
}

func (r *Recorder) recordFinished(roomName string) {
	ctx := context.Background()

	session, err := r.registry.Get(roomName)
	if err != nil {
		zap.L().Error("Finished room is not in the registry",
			zap.String("room", roomName),
			zap.Error(err))
		return
	}

	snapshot := session.Snapshot()
	records := session.Records()

	if err := r.repository.SaveAnswerRecords(ctx, records); err != nil {
		zap.L().Error("Failed to persist answers", zap.String("room", roomName), zap.Error(err))
	}
	if err := r.repository.UpdateRoomStatus(ctx, roomName, "closed"); err != nil {
		zap.L().Error("Failed to close room record", zap.String("room", roomName), zap.Error(err))
	}
	if err := r.repository.RecordResults(ctx, snapshot.Scores, snapshot.Winners); err != nil {
		zap.L().Error("Failed to record player stats", zap.String("room", roomName), zap.Error(err))
	}

	if r.kafka != nil {
		err := r.kafka.PublishMessage(ctx, messaging.MessageTypeGameFinished, messaging.GameFinishedData{
			RoomName: roomName,
			Kind:     string(snapshot.Kind),
			Scores:   snapshot.Scores,
			Winners:  snapshot.Winners,
		})
		if err != nil {
			zap.L().Error("Failed to publish game_finished event", zap.String("room", roomName), zap.Error(err))
		}
	}
}

// recordVerdict, hakemlik alanları her değiştiğinde cevap kayıtlarını
// yeniden yazar. Upsert idempotent olduğu için tam küme yazmak güvenlidir.
func (r *Recorder) recordVerdict(roomName string, content interface{}) {
	ctx := context.Background()

	session, err := r.registry.Get(roomName)
	if err != nil {
		return
	}

	if err := r.repository.SaveAnswerRecords(ctx, session.Records()); err != nil {
		zap.L().Error("Failed to persist verdict update", zap.String("room", roomName), zap.Error(err))
	}

	if r.kafka != nil {
		if err := r.kafka.PublishMessage(ctx, messaging.MessageTypeVerdictUpdated, content); err != nil {
			zap.L().Error("Failed to publish verdict_updated event", zap.String("room", roomName), zap.Error(err))
		}
	}
}
