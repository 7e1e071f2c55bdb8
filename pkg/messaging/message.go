package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MessageType, zarf üzerindeki olay tipi.
type MessageType string

const (
	MessageTypeUserCreated    MessageType = "auth.user_created"
	MessageTypeGameFinished   MessageType = "game.finished"
	MessageTypeVerdictUpdated MessageType = "game.verdict_updated"
)

// Message, topic üzerinden taşınan JSON zarf. Data alanı olay tipine göre
// çözülür.
type Message struct {
	ID         string          `json:"id"`
	Type       MessageType     `json:"type"`
	Source     string          `json:"source"`
	Data       json.RawMessage `json:"data"`
	Timestamp  time.Time       `json:"timestamp"`
	RetryCount int             `json:"retry_count"`
}

func NewMessage(msgType MessageType, source string, data interface{}) (*Message, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Message{
		ID:        uuid.NewString(),
		Type:      msgType,
		Source:    source,
		Data:      raw,
		Timestamp: time.Now(),
	}, nil
}

// UserCreatedData, auth servisinin user_created olayının yükü.
type UserCreatedData struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GameFinishedData, oyun bittiğinde yayınlanan olayın yükü.
type GameFinishedData struct {
	RoomName string         `json:"room_name"`
	Kind     string         `json:"kind"`
	Scores   map[string]int `json:"scores"`
	Winners  []string       `json:"winners"`
}

// VerdictUpdatedData, hakemlik kararı değiştiğinde yayınlanan olayın yükü.
type VerdictUpdatedData struct {
	RoomName string `json:"room_name"`
	AnswerID string `json:"answer_id"`
	Username string `json:"username"`
	Correct  bool   `json:"correct"`
}
