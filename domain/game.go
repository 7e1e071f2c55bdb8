package domain

import (
	"time"

	"github.com/google/uuid"
)

// Room, kalıcı katmanda tutulan oda kaydını temsil eder.
type Room struct {
	ID         uuid.UUID `json:"id"`
	RoomName   string    `json:"room_name"`
	Creator    string    `json:"creator"`
	Kind       string    `json:"kind"`
	Mode       string    `json:"mode"`
	Status     string    `json:"status"`
	TimeLimit  int       `json:"time_limit"` // saniye
	CreatedAt  time.Time `json:"created_at"`
	StartedAt  time.Time `json:"started_at,omitempty"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
}

// RoomSummary, lobi listesinde gösterilen özet bilgi.
type RoomSummary struct {
	RoomName    string   `json:"room_name"`
	Kind        string   `json:"kind"`
	Mode        string   `json:"mode"`
	PlayerCount int      `json:"player_count"`
	Players     []string `json:"players"`
}

// AnswerRecord, bir cevabın hakemlik alanlarıyla birlikte kalıcı hali.
type AnswerRecord struct {
	ID              uuid.UUID `json:"id"`
	RoomName        string    `json:"room_name"`
	QuestionID      uuid.UUID `json:"question_id"`
	QuestionPrompt  string    `json:"question_prompt"`
	Letter          string    `json:"letter"`
	Username        string    `json:"username"`
	Word            string    `json:"word"`
	AutoChecked     bool      `json:"auto_checked"`
	AutoCorrect     bool      `json:"auto_correct"`
	AutoExplanation string    `json:"auto_explanation"`
	VoteRequested   bool      `json:"vote_requested"`
	VoteYes         int       `json:"vote_yes"`
	VoteNo          int       `json:"vote_no"`
	AdminOverride   bool      `json:"admin_override"`
	OverrideValue   bool      `json:"override_value"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

// User, oy kullanabilen kayıtlı kullanıcı. Kayıtlar auth servisinden
// kafka üzerinden gelir.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionData, redis oturumunda tutulan kimlik bilgisi.
type SessionData struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Device    string    `json:"device"`
	Ip        string    `json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}

// QuestionSet, özel soru setleri (tam 10 soru).
type QuestionSet struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Prompts []string  `json:"prompts"`
}
