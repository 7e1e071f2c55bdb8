package game

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"word-game-service/domain"

	"github.com/google/uuid"
)

type answerKey struct {
	questionID uuid.UUID
	username   string
}

// Session, tek bir odanın tur/zamanlayıcı/puan durum makinesidir. Odaya ait
// bütün mutasyonlar (start, submit, timeExpire, kick, veto, hakemlik
// yazımları) s.mu üzerinden serileştirilir; farklı odalar birbirinden
// bağımsız ilerler. Tur ilerletme ve eleme sıraya duyarlı olduğundan bu
// serileştirme zorunludur: gönderimle yarışan bir süre dolumu deterministik
// çözülür, önce gözlenen kazanır.
type Session struct {
	mu sync.Mutex

	Name      string
	Kind      Kind
	Mode      Mode
	Creator   string
	TimeLimit time.Duration
	CreatedAt time.Time

	status    RoomStatus
	players   []*Player
	questions []Question
	answers   map[uuid.UUID]*Answer // answer id -> answer
	byKey     map[answerKey]*Answer // (soru, oyuncu) -> answer

	turn      int // sadece tur tabanlı modlarda anlamlı
	deadline  time.Time
	terminal  bool
	seq       uint64 // tur veya terminal durumu her değiştiğinde artar
	elimCount int

	chainRule LetterRule
	chain     []ChainWord
	usedWords map[string]bool

	timers    *TimerService
	publisher EventPublisher
}

func newSession(name string, kind Kind, mode Mode, timeLimit time.Duration, creator string, chainRule LetterRule, timers *TimerService, publisher EventPublisher) *Session {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Session{
		Name:      name,
		Kind:      kind,
		Mode:      mode,
		Creator:   creator,
		TimeLimit: timeLimit,
		CreatedAt: time.Now(),
		status:    StatusOpen,
		answers:   make(map[uuid.UUID]*Answer),
		byKey:     make(map[answerKey]*Answer),
		chainRule: chainRule,
		usedWords: make(map[string]bool),
		timers:    timers,
		publisher: publisher,
	}
}

// turnBased, bu oturumun tur işaretçisi kullanıp kullanmadığını söyler.
// WordChain her zaman sırayla oynanır; diğer türlerde sadece LocalTurn.
func (s *Session) turnBased() bool {
	return s.Mode == ModeLocalTurn || s.Kind == KindWordChain
}

// Join, odaya yeni bir oyuncu ekler. İlk katılan yönetici olur.
func (s *Session) Join(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return fmt.Errorf("%w: game already started, cannot join", domain.ErrInvalidState)
	}
	for _, p := range s.players {
		if p.Username == username {
			return fmt.Errorf("%w: name '%s' is already taken in this room", domain.ErrConflict, username)
		}
	}

	s.addPlayerLocked(username)
	s.publisher.Publish(s.Name, EventPlayerJoined, map[string]interface{}{
		"username": username,
		"players":  s.playerNamesLocked(),
	})
	return nil
}

// seedPlayers, henüz yayınlanmamış oturuma kurucu oyuncu listesini ekler.
// Sadece oturum kayda girmeden önce, Registry.CreateRoom tarafından
// çağrılır.
func (s *Session) seedPlayers(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		s.addPlayerLocked(name)
	}
}

func (s *Session) addPlayerLocked(username string) {
	role := RoleMember
	if len(s.players) == 0 {
		role = RoleAdmin
	}
	s.players = append(s.players, &Player{
		Username: username,
		Position: len(s.players),
		Role:     role,
		JoinedAt: time.Now(),
	})
}

func (s *Session) playerNamesLocked() []string {
	names := make([]string, 0, len(s.players))
	for _, p := range s.players {
		names = append(names, p.Username)
	}
	return names
}

func (s *Session) adminLocked() *Player {
	for _, p := range s.players {
		if p.Role == RoleAdmin {
			return p
		}
	}
	return nil
}

func (s *Session) findPlayerLocked(username string) *Player {
	for _, p := range s.players {
		if p.Username == username {
			return p
		}
	}
	return nil
}

func (s *Session) activeCountLocked() int {
	n := 0
	for _, p := range s.players {
		if !p.Eliminated {
			n++
		}
	}
	return n
}

// Start, oturumu başlatır: soruları üretir, odayı Started durumuna geçirir
// ve ilk süreyi kurar. SingleTimed dışında sadece yönetici başlatabilir.
func (s *Session) Start(starter, letter string, rounds int, prompts []string) ([]Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return nil, fmt.Errorf("%w: game already started", domain.ErrInvalidState)
	}
	if len(s.players) == 0 {
		return nil, fmt.Errorf("%w: room has no players", domain.ErrInvalidState)
	}

	admin := s.adminLocked()
	if s.Mode == ModeSingleTimed {
		if len(s.players) != 1 && (admin == nil || admin.Username != starter) {
			return nil, fmt.Errorf("%w: only the creator can start the game", domain.ErrUnauthorized)
		}
	} else if admin == nil || admin.Username != starter {
		return nil, fmt.Errorf("%w: only the creator can start the game", domain.ErrUnauthorized)
	}
	if s.Kind == KindWordChain && len(s.players) < 2 {
		return nil, fmt.Errorf("%w: word chain needs at least 2 players", domain.ErrInvalidState)
	}

	if s.Kind == KindWordChain {
		// Zincir oyununda tur soruları yoktur; kabul edilen kelimeler tek
		// bir sentetik soruya bağlanır ki hakemlik akışı onları da görsün.
		s.questions = []Question{{ID: uuid.New(), Prompt: "Word Chain", Round: 1}}
	} else {
		s.questions = GenerateQuestions(prompts, rounds, letter)
	}

	s.status = StatusStarted
	s.turn = 0
	s.seq++
	s.deadline = time.Now().Add(s.TimeLimit)
	s.scheduleLocked()

	s.publisher.Publish(s.Name, EventGameStarted, map[string]interface{}{
		"questions": s.questions,
		"players":   s.playerNamesLocked(),
	})
	return append([]Question(nil), s.questions...), nil
}

// scheduleLocked, mevcut seq değerini yakalayarak süre dolumunu kurar. Eski
// bir zamanlayıcı geç ateşlenirse seq tutmaz ve çağrı etkisiz kalır.
func (s *Session) scheduleLocked() {
	if s.timers == nil {
		return
	}
	expected := s.seq
	s.timers.Schedule(s.Name, time.Until(s.deadline), func() {
		s.TimeExpire(expected)
	})
}

func (s *Session) inProgressLocked() bool {
	return s.status == StatusStarted && !s.terminal
}

// SubmitAnswers, bir oyuncunun bütün cevaplarını tek seferde kaydeder.
// Normal gönderimde her soru için boş olmayan metin zorunludur ve çağrı ya
// tamamen uygulanır ya hiç uygulanmaz. autoSubmit (süre dolumu) yolunda
// eksik cevaplar sıfır puanlık boş kayıt olarak yazılır.
func (s *Session) SubmitAnswers(username string, submitted map[uuid.UUID]string, autoSubmit bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitAnswersLocked(username, submitted, autoSubmit)
}

func (s *Session) submitAnswersLocked(username string, submitted map[uuid.UUID]string, autoSubmit bool) error {
	if !s.inProgressLocked() {
		return fmt.Errorf("%w: game is not in progress", domain.ErrInvalidState)
	}
	if s.Kind == KindWordChain {
		return fmt.Errorf("%w: word chain uses submit_word", domain.ErrInvalidState)
	}

	player := s.findPlayerLocked(username)
	if player == nil {
		return fmt.Errorf("%w: player '%s' is not in this game", domain.ErrNotFound, username)
	}
	if player.Eliminated {
		return fmt.Errorf("%w: player '%s' was eliminated", domain.ErrInvalidState, username)
	}
	if s.Mode == ModeLocalTurn && s.players[s.turn].Username != username {
		return fmt.Errorf("%w: it is not your turn", domain.ErrInvalidState)
	}

	if !autoSubmit {
		// Önce hepsini doğrula; kısmi uygulama yok.
		for _, q := range s.questions {
			text, ok := submitted[q.ID]
			if !ok || strings.TrimSpace(text) == "" {
				return fmt.Errorf("%w: incomplete submission, question '%s' has no answer", domain.ErrValidation, q.Prompt)
			}
		}
	}

	now := time.Now()
	for _, q := range s.questions {
		text := strings.TrimSpace(submitted[q.ID])
		s.recordAnswerLocked(q.ID, username, text, now)
	}
	player.Submitted = true

	s.publisher.Publish(s.Name, EventAnswersIn, map[string]interface{}{
		"username": username,
		"auto":     autoSubmit,
	})

	s.advanceAfterSubmitLocked()
	return nil
}

// recordAnswerLocked, (soru, oyuncu) başına tek kayıt tutar; eski değerin
// üzerine yazar ve hakemlik alanlarını sıfırlar.
func (s *Session) recordAnswerLocked(questionID uuid.UUID, username, text string, now time.Time) *Answer {
	key := answerKey{questionID: questionID, username: username}
	if old, ok := s.byKey[key]; ok {
		delete(s.answers, old.ID)
	}
	answer := &Answer{
		ID:          uuid.New(),
		QuestionID:  questionID,
		Username:    username,
		Text:        text,
		SubmittedAt: now,
		Votes:       make(map[string]bool),
	}
	s.byKey[key] = answer
	s.answers[answer.ID] = answer
	return answer
}

// advanceAfterSubmitLocked, gönderim sonrası modun tur politikasını uygular.
func (s *Session) advanceAfterSubmitLocked() {
	switch {
	case s.Mode == ModeLocalTurn:
		s.advancePendingTurnLocked()
	default:
		// SingleTimed ve eşzamanlı OnlineTurn: herkes gönderdiyse veya
		// ortak süre geçtiyse oturum biter.
		if s.allActiveSubmittedLocked() || !time.Now().Before(s.deadline) {
			s.finishLocked()
		}
	}
}

// advancePendingTurnLocked, sırayı henüz göndermemiş bir sonraki aktif
// oyuncuya taşır ve tur süresini tazeler; bekleyen kimse kalmadıysa oturumu
// bitirir. Sıra işaretçisi göndermiş bir oyuncuyu asla yeniden ziyaret etmez.
func (s *Session) advancePendingTurnLocked() {
	next := s.nextPendingLocked()
	if next == -1 {
		s.finishLocked()
		return
	}
	s.turn = next
	s.seq++
	s.deadline = time.Now().Add(s.TimeLimit)
	s.scheduleLocked()
	s.publisher.Publish(s.Name, EventTurnAdvanced, map[string]interface{}{
		"turn": s.players[s.turn].Username,
	})
}

// nextPendingLocked, tur işaretçisinden ileriye doğru (sona sarmalayarak)
// henüz göndermemiş ilk aktif oyuncunun indeksini döndürür; kalmadıysa -1.
func (s *Session) nextPendingLocked() int {
	n := len(s.players)
	for i := 1; i <= n; i++ {
		idx := (s.turn + i) % n
		p := s.players[idx]
		if !p.Eliminated && !p.Submitted {
			return idx
		}
	}
	return -1
}

func (s *Session) allActiveSubmittedLocked() bool {
	for _, p := range s.players {
		if !p.Eliminated && !p.Submitted {
			return false
		}
	}
	return true
}

// SubmitAnswer, tek bir sorunun cevabını kaydeder. Oyuncu kalan sorulara
// sonraki çağrılarla cevap verir; son soru da cevaplanınca gönderim
// tamamlanmış sayılır ve tur politikası uygulanır. Dönen değer gönderimin
// tamamlanıp tamamlanmadığını söyler.
func (s *Session) SubmitAnswer(username string, questionID uuid.UUID, text string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inProgressLocked() {
		return false, fmt.Errorf("%w: game is not in progress", domain.ErrInvalidState)
	}
	if s.Kind == KindWordChain {
		return false, fmt.Errorf("%w: word chain uses submit_word", domain.ErrInvalidState)
	}

	player := s.findPlayerLocked(username)
	if player == nil {
		return false, fmt.Errorf("%w: player '%s' is not in this game", domain.ErrNotFound, username)
	}
	if player.Eliminated {
		return false, fmt.Errorf("%w: player '%s' was eliminated", domain.ErrInvalidState, username)
	}
	if player.Submitted {
		return false, fmt.Errorf("%w: player '%s' already submitted", domain.ErrInvalidState, username)
	}
	if s.Mode == ModeLocalTurn && s.players[s.turn].Username != username {
		return false, fmt.Errorf("%w: it is not your turn", domain.ErrInvalidState)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return false, fmt.Errorf("%w: answer text is required", domain.ErrValidation)
	}
	if s.questionLocked(questionID) == nil {
		return false, fmt.Errorf("%w: question %s", domain.ErrNotFound, questionID)
	}

	s.recordAnswerLocked(questionID, username, text, time.Now())

	for _, q := range s.questions {
		if _, ok := s.byKey[answerKey{questionID: q.ID, username: username}]; !ok {
			s.publisher.Publish(s.Name, EventAnswerSaved, map[string]interface{}{
				"username":    username,
				"question_id": questionID,
			})
			return false, nil
		}
	}

	player.Submitted = true
	s.publisher.Publish(s.Name, EventAnswersIn, map[string]interface{}{
		"username": username,
		"auto":     false,
	})
	s.advanceAfterSubmitLocked()
	return true, nil
}

// SubmitWord, kelime zinciri gönderimi. Geçersiz kelime göndereni hemen
// eler; bu, genel submitAnswers akışından daha sert ve zincire özgü bir
// geçiştir.
func (s *Session) SubmitWord(username, word string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Kind != KindWordChain {
		return "", fmt.Errorf("%w: not a word chain game", domain.ErrInvalidState)
	}
	if !s.inProgressLocked() {
		return "", fmt.Errorf("%w: game is not in progress", domain.ErrInvalidState)
	}

	player := s.findPlayerLocked(username)
	if player == nil {
		return "", fmt.Errorf("%w: player '%s' is not in this game", domain.ErrNotFound, username)
	}
	if player.Eliminated {
		return "", fmt.Errorf("%w: player '%s' was eliminated", domain.ErrInvalidState, username)
	}
	if s.players[s.turn].Username != username {
		return "", fmt.Errorf("%w: it is not your turn", domain.ErrInvalidState)
	}

	required := ""
	if len(s.chain) > 0 {
		required = s.chainRule.RequiredLetter(s.chain[len(s.chain)-1].Word)
	}

	word = strings.TrimSpace(word)
	if err := ValidateChainWord(word, required, s.usedWords); err != nil {
		s.publisher.Publish(s.Name, EventWordRejected, map[string]interface{}{
			"username": username,
			"word":     word,
			"reason":   err.Error(),
		})
		s.eliminateLocked(player)
		s.afterEliminationLocked(player)
		return "", err
	}

	now := time.Now()
	// Zincirde her kabul edilen kelime kendi cevabıdır; (soru, oyuncu)
	// başına tek kayıt kuralı burada geçerli değildir.
	answer := &Answer{
		ID:          uuid.New(),
		QuestionID:  s.questions[0].ID,
		Username:    username,
		Text:        word,
		SubmittedAt: now,
		Votes:       make(map[string]bool),
	}
	s.answers[answer.ID] = answer
	// Yapısal kabul otomatik karar olarak kaydedilir; hakemlik akışı
	// isterse sonradan üzerine yazar.
	answer.Auto = &Verdict{Correct: true, Explanation: "follows the chain rule"}

	s.chain = append(s.chain, ChainWord{Word: word, Username: username, AnswerID: answer.ID, AddedAt: now})
	s.usedWords[strings.ToLower(word)] = true

	s.publisher.Publish(s.Name, EventWordAccepted, map[string]interface{}{
		"username": username,
		"word":     word,
	})

	s.advanceChainTurnLocked()
	return word, nil
}

// advanceChainTurnLocked, sırayı katılım sırasına göre bir sonraki aktif
// oyuncuya taşır ve tur süresini tazeler.
func (s *Session) advanceChainTurnLocked() {
	n := len(s.players)
	for i := 1; i <= n; i++ {
		idx := (s.turn + i) % n
		if !s.players[idx].Eliminated {
			s.turn = idx
			break
		}
	}
	s.seq++
	s.deadline = time.Now().Add(s.TimeLimit)
	s.scheduleLocked()
	s.publisher.Publish(s.Name, EventTurnAdvanced, map[string]interface{}{
		"turn": s.players[s.turn].Username,
	})
}

func (s *Session) eliminateLocked(p *Player) {
	if p.Eliminated {
		return
	}
	s.elimCount++
	p.Eliminated = true
	p.ElimOrder = s.elimCount
	p.Submitted = true
	s.publisher.Publish(s.Name, EventPlayerOut, map[string]interface{}{
		"username": p.Username,
	})
}

// afterEliminationLocked, eleme sonrası ortak mantık: tek aktif oyuncu
// kaldıysa oturum biter, yoksa sıra bir sonraki aktif oyuncuya geçer.
// Küçülen listede geçersiz kalan işaretçi başa sarar.
func (s *Session) afterEliminationLocked(eliminated *Player) {
	if s.terminal {
		return
	}
	if s.turnBased() {
		if s.activeCountLocked() <= 1 {
			s.finishLocked()
			return
		}
		if s.turn >= len(s.players) {
			s.turn = 0
		}
		if s.players[s.turn] == eliminated || s.players[s.turn].Eliminated {
			if s.Kind == KindWordChain {
				s.advanceChainTurnLocked()
				return
			}
			// Yerel turda sıra sadece göndermemiş oyuncuya geçebilir;
			// herkes göndermişse oyun biter.
			s.advancePendingTurnLocked()
		}
		return
	}
	if s.allActiveSubmittedLocked() {
		s.finishLocked()
	}
}

// TimeExpire, TimerService süre dolduğunda çağırır. expectedSeq oturumun
// zamanlayıcı kurulduğu andaki üretim sayacıdır; uyuşmuyorsa çağrı bayattır
// ve hiçbir durum değişmez.
func (s *Session) TimeExpire(expectedSeq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.terminal || expectedSeq != s.seq || !s.inProgressLocked() {
		return
	}

	switch {
	case s.Kind == KindWordChain:
		// Süresi içinde geçerli kelime gönderemeyen oyuncu elenir.
		player := s.players[s.turn]
		s.eliminateLocked(player)
		s.afterEliminationLocked(player)
	case s.Mode == ModeLocalTurn:
		// Sıradaki oyuncu adına eldeki kısmi cevaplarla otomatik gönderim.
		player := s.players[s.turn]
		_ = s.submitAnswersLocked(player.Username, nil, true)
	default:
		// SingleTimed / eşzamanlı OnlineTurn: oturum hemen biter,
		// cevaplanmamış sorular sıfır puan alır.
		s.finishLocked()
	}
}

// finishLocked, oturumu terminal yapar. Oda durumu ileriye, Closed'a gider;
// hakemlik akışı bundan sonra da karar alanlarını güncelleyebilir ama
// oturum yeniden açılmaz.
func (s *Session) finishLocked() {
	if s.terminal {
		return
	}
	s.terminal = true
	s.status = StatusClosed
	s.seq++
	if s.timers != nil {
		s.timers.Cancel(s.Name)
	}
	s.publisher.Publish(s.Name, EventGameFinished, map[string]interface{}{
		"winners": s.winnersLocked(),
		"scores":  s.scoresLocked(),
	})
}

// Kick, yöneticinin bir oyuncuyu oturumdan çıkarması. Doğal eleme ile aynı
// tur düzeltmesini uygular.
func (s *Session) Kick(adminName, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin := s.adminLocked()
	if admin == nil || admin.Username != adminName {
		return fmt.Errorf("%w: only the room admin can kick players", domain.ErrUnauthorized)
	}
	if s.terminal {
		return fmt.Errorf("%w: game is already finished", domain.ErrInvalidState)
	}
	player := s.findPlayerLocked(target)
	if player == nil {
		return fmt.Errorf("%w: player '%s' is not in this game", domain.ErrNotFound, target)
	}
	if player.Username == adminName {
		return fmt.Errorf("%w: admin cannot kick themselves", domain.ErrInvalidInput)
	}

	s.eliminateLocked(player)
	s.publisher.Publish(s.Name, EventPlayerKicked, map[string]interface{}{
		"username": target,
	})
	if s.status == StatusStarted {
		s.afterEliminationLocked(player)
	}
	return nil
}

// Veto, yöneticinin daha önce kabul edilmiş bir kelimeyi zincirden
// çıkarması. Tur sırasına ve diğer puanlara dokunmayan saf bir düzeltmedir.
func (s *Session) Veto(adminName, word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Kind != KindWordChain {
		return fmt.Errorf("%w: not a word chain game", domain.ErrInvalidState)
	}
	admin := s.adminLocked()
	if admin == nil || admin.Username != adminName {
		return fmt.Errorf("%w: only the room admin can veto words", domain.ErrUnauthorized)
	}

	lower := strings.ToLower(strings.TrimSpace(word))
	for i, cw := range s.chain {
		if strings.ToLower(cw.Word) == lower {
			s.chain = append(s.chain[:i], s.chain[i+1:]...)
			delete(s.usedWords, lower)
			delete(s.answers, cw.AnswerID)
			s.publisher.Publish(s.Name, EventWordVetoed, map[string]interface{}{
				"word": cw.Word,
			})
			return nil
		}
	}
	return fmt.Errorf("%w: word '%s' is not in the chain", domain.ErrNotFound, word)
}

func (s *Session) scoresLocked() map[string]int {
	return ComputeScores(s.answersSliceLocked())
}

func (s *Session) answersSliceLocked() []*Answer {
	out := make([]*Answer, 0, len(s.answers))
	for _, a := range s.answers {
		out = append(out, a)
	}
	return out
}

// winnersLocked, kazanan kümesini türetir. Zincir oyununda ayakta kalan son
// oyuncu, diğerlerinde en yüksek puanı paylaşan herkes; beraberlik çözülmez.
func (s *Session) winnersLocked() []string {
	if !s.terminal {
		return nil
	}
	if s.Kind == KindWordChain {
		var winners []string
		for _, p := range s.players {
			if !p.Eliminated {
				winners = append(winners, p.Username)
			}
		}
		return winners
	}
	return Winners(s.players, s.scoresLocked())
}

// Snapshot, istemciye dönen durum kopyası. Puanlar her çağrıda cevap
// kümesinden yeniden hesaplanır; hesap deterministiktir.
func (s *Session) Snapshot() StateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	players := make([]Player, 0, len(s.players))
	scores := s.scoresLocked()
	for _, p := range s.players {
		cp := *p
		cp.Score = scores[p.Username]
		players = append(players, cp)
	}

	timeLeft := 0
	if s.status == StatusStarted && !s.terminal {
		if remaining := time.Until(s.deadline); remaining > 0 {
			timeLeft = int(remaining.Seconds())
		}
	}

	snapshot := StateSnapshot{
		RoomName:  s.Name,
		Kind:      s.Kind,
		Mode:      s.Mode,
		Started:   s.status != StatusOpen,
		Terminal:  s.terminal,
		Players:   players,
		Questions: append([]Question(nil), s.questions...),
		TimeLeft:  timeLeft,
		Chain:     append([]ChainWord(nil), s.chain...),
		Winners:   s.winnersLocked(),
		Scores:    scores,
	}
	if s.turnBased() && s.status == StatusStarted && !s.terminal && len(s.players) > 0 {
		snapshot.Turn = s.players[s.turn].Username
	}
	return snapshot
}

// Status, odanın mevcut yaşam döngüsü durumunu döndürür.
func (s *Session) Status() RoomStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Terminal, oturumun bitip bitmediğini söyler.
func (s *Session) Terminal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.terminal
}

// Players, oyuncu listesinin kopyasını döndürür.
func (s *Session) Players() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, *p)
	}
	return out
}
