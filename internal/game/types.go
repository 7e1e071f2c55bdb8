package game

import (
	"time"

	"github.com/google/uuid"
)

// Kind, oynanan oyunun türünü belirler.
type Kind string

const (
	KindLetterMatch Kind = "LetterMatch"
	KindWordBlitz   Kind = "WordBlitz"
	KindWordChain   Kind = "WordChain"
)

// Mode, tur ilerletme ve süre kapsamı politikasını belirler. Üç oyun da
// aynı durum makinesini kullanır; sadece bu etiket değişir.
type Mode string

const (
	// ModeLocalTurn: tek cihazda sırayla oynanır, süre tur başınadır.
	ModeLocalTurn Mode = "LocalTurn"
	// ModeSingleTimed: tek oyuncu saate karşı, süre oturum başınadır.
	ModeSingleTimed Mode = "SingleTimed"
	// ModeOnlineTurn: çevrimiçi oda, herkes ortak süreye karşı eşzamanlı
	// oynar. WordChain türünde ise sırayla ve elemeli oynanır.
	ModeOnlineTurn Mode = "OnlineTurn"
)

// RoomStatus, odanın yaşam döngüsü. Sadece ileri gider: Open -> Started -> Closed.
type RoomStatus string

const (
	StatusOpen    RoomStatus = "open"
	StatusStarted RoomStatus = "started"
	StatusClosed  RoomStatus = "closed"
)

// Role, oyuncunun odadaki yetkisi. İlk katılan RoleAdmin olur.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Player, oturumdaki bir oyuncuyu temsil eder.
type Player struct {
	Username   string    `json:"username"`
	Position   int       `json:"position"`
	Role       Role      `json:"role"`
	Score      int       `json:"score"`
	Eliminated bool      `json:"eliminated"`
	ElimOrder  int       `json:"elim_order,omitempty"` // bir kez atanır, sıfırlanmaz
	Submitted  bool      `json:"submitted"`
	JoinedAt   time.Time `json:"joined_at"`
}

// Question, bir tur sorusunu temsil eder: kategori + zorunlu baş harf.
type Question struct {
	ID     uuid.UUID `json:"id"`
	Prompt string    `json:"prompt"`
	Letter string    `json:"letter"` // tek büyük harf
	Round  int       `json:"round"`
}

// Verdict, bir cevabın otomatik kontrol sonucu.
type Verdict struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

// Answer, bir oyuncunun bir soruya verdiği cevabı ve hakemlik alanlarını tutar.
// Oturum bittikten sonra hakemlik akışı sadece bu alanlara ekleme yapar.
type Answer struct {
	ID          uuid.UUID `json:"id"`
	QuestionID  uuid.UUID `json:"question_id"`
	Username    string    `json:"username"`
	Text        string    `json:"text"`
	SubmittedAt time.Time `json:"submitted_at"`

	Auto          *Verdict        `json:"auto,omitempty"`
	VoteRequested bool            `json:"vote_requested"`
	Votes         map[string]bool `json:"-"` // oylayan -> evet/hayır, son oy geçerli
	Override      *bool           `json:"override,omitempty"`
}

// VoteYes, evet oylarının sayısını döndürür.
func (a *Answer) VoteYes() int {
	n := 0
	for _, yes := range a.Votes {
		if yes {
			n++
		}
	}
	return n
}

// VoteNo, hayır oylarının sayısını döndürür.
func (a *Answer) VoteNo() int {
	return len(a.Votes) - a.VoteYes()
}

// ChainWord, kelime zincirindeki kabul edilmiş bir kelime.
type ChainWord struct {
	Word     string    `json:"word"`
	Username string    `json:"username"`
	AnswerID uuid.UUID `json:"answer_id"`
	AddedAt  time.Time `json:"added_at"`
}

// StateSnapshot, istemciye dönen oda durumu. Hem polling (get_state) hem de
// websocket push adaptörü aynı yapıyı kullanır.
type StateSnapshot struct {
	RoomName  string         `json:"room_name"`
	Kind      Kind           `json:"kind"`
	Mode      Mode           `json:"mode"`
	Started   bool           `json:"started"`
	Terminal  bool           `json:"terminal"`
	Players   []Player       `json:"players"`
	Questions []Question     `json:"questions"`
	TimeLeft  int            `json:"time_left"` // saniye
	Turn      string         `json:"turn,omitempty"`
	Chain     []ChainWord    `json:"chain,omitempty"`
	Winners   []string       `json:"winners,omitempty"` // beraberlik çözülmez, hepsi listelenir
	Scores    map[string]int `json:"scores"`
}

// Event tipleri. Oturum her durum değişikliğinde yayıncılara bildirir.
const (
	EventRoomCreated    = "room_created"
	EventPlayerJoined   = "player_joined"
	EventGameStarted    = "game_started"
	EventAnswerSaved    = "answer_saved"
	EventAnswersIn      = "answers_submitted"
	EventWordAccepted   = "word_accepted"
	EventWordRejected   = "word_rejected"
	EventPlayerKicked   = "player_kicked"
	EventPlayerOut      = "player_eliminated"
	EventWordVetoed     = "word_vetoed"
	EventTurnAdvanced   = "turn_advanced"
	EventGameFinished   = "game_finished"
	EventVerdictUpdated = "verdict_updated"
)

// EventPublisher, oturum olaylarını dışarıya taşıyan arayüz. Websocket hub'ı
// ve redis pub/sub yayıncısı aynı sözleşmeyi uygular; polling adaptörünün
// böyle bir şeye ihtiyacı yoktur.
type EventPublisher interface {
	Publish(roomName string, eventType string, content interface{})
}
