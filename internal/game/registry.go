package game

import (
	"fmt"
	"sync"
	"time"

	"word-game-service/domain"
)

// Registry, aktif odaları isme göre yönetir. Oda adı alanı servisteki tek
// küresel paylaşılan yapıdır; create/remove yazımları atomik
// kontrol-et-ekle olarak yapılır ki aynı isimle iki eşzamanlı createRoom
// çağrısı birden başarılı olamasın.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Session

	timers    *TimerService
	publisher EventPublisher
	chainRule LetterRule
}

func NewRegistry(timers *TimerService, publisher EventPublisher, chainRule LetterRule) *Registry {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Registry{
		rooms:     make(map[string]*Session),
		timers:    timers,
		publisher: publisher,
		chainRule: chainRule,
	}
}

// CreateRoom, yeni bir oda oluşturur. Aynı isimde kapatılmamış bir oda
// varsa ErrConflict döner; kapanmış oda aynı isimle yeniden kullanılabilir
// ("play again"). Yerel modda oyuncu listesi sırayla eklenir ve ilk isim
// yönetici olur; diğer modlarda kurucu ilk oyuncu olarak katılır.
func (r *Registry) CreateRoom(name string, kind Kind, mode Mode, timeLimit time.Duration, creator string, playerNames []string) (*Session, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: room name is required", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.rooms[name]; ok && existing.Status() != StatusClosed {
		return nil, fmt.Errorf("%w: room '%s' already exists", domain.ErrConflict, name)
	}

	session := newSession(name, kind, mode, timeLimit, creator, r.chainRule, r.timers, r.publisher)
	switch mode {
	case ModeLocalTurn:
		if len(playerNames) == 0 {
			return nil, fmt.Errorf("%w: player names are required for local games", domain.ErrInvalidInput)
		}
		session.seedPlayers(playerNames...)
	default:
		session.seedPlayers(creator)
	}
	r.rooms[name] = session

	r.publisher.Publish(name, EventRoomCreated, map[string]interface{}{
		"room": name,
		"kind": kind,
		"mode": mode,
	})
	return session, nil
}

// Get, odayı ismine göre döndürür.
func (r *Registry) Get(name string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.rooms[name]
	if !ok {
		return nil, fmt.Errorf("%w: room '%s'", domain.ErrNotFound, name)
	}
	return session, nil
}

// Join, odaya oyuncu katar. Oda yoksa NotFound, başladıysa InvalidState,
// isim çakışırsa Conflict hatası oturumdan döner.
func (r *Registry) Join(name, username string) (*Session, error) {
	session, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if err := session.Join(username); err != nil {
		return nil, err
	}
	return session, nil
}

// ListOpen, lobi için açık odaların özetini döndürür; başlamış ve kapanmış
// odalar listelenmez.
func (r *Registry) ListOpen() []domain.RoomSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]domain.RoomSummary, 0)
	for name, session := range r.rooms {
		if session.Status() != StatusOpen {
			continue
		}
		players := session.Players()
		names := make([]string, 0, len(players))
		for _, p := range players {
			names = append(names, p.Username)
		}
		summaries = append(summaries, domain.RoomSummary{
			RoomName:    name,
			Kind:        string(session.Kind),
			Mode:        string(session.Mode),
			PlayerCount: len(players),
			Players:     names,
		})
	}
	return summaries
}

// Remove, odayı kayıttan düşürür. Terminal oturum hakemlik bitene kadar
// kayıtta tutulur; temizlik çağıranın kararıdır.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[name]; ok {
		if r.timers != nil {
			r.timers.Cancel(name)
		}
		delete(r.rooms, name)
	}
}
