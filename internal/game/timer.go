package game

import (
	"sync"
	"time"
)

// TimerService, oda başına tek bir geri sayım sahibidir. Tur tabanlı
// modlarda her tur ilerleyişinde yeniden kurulur, süreli modlarda oturum
// başında bir kez kurulur. Aynı oda için yeni bir zamanlayıcı kurulduğunda
// eskisi iptal edilir; geç ateşlenen eski bir zamanlayıcının etkisiz
// kalmasını oturumun üretim sayacı (seq) garanti eder.
type TimerService struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewTimerService() *TimerService {
	return &TimerService{
		timers: make(map[string]*time.Timer),
	}
}

// Schedule, oda için yeni bir süre kurar; varsa eskisini iptal eder.
func (t *TimerService) Schedule(roomName string, d time.Duration, fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if old, ok := t.timers[roomName]; ok {
		old.Stop()
	}
	t.timers[roomName] = time.AfterFunc(d, fire)
}

// Cancel, odanın zamanlayıcısını durdurur. Oturum terminal olduğunda veya
// oyuncu süresinden önce gönderim yaptığında çağrılır.
func (t *TimerService) Cancel(roomName string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[roomName]; ok {
		timer.Stop()
		delete(t.timers, roomName)
	}
}
