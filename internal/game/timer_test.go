package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaleTimeExpireIsNoOp(t *testing.T) {
	// Zamanlayıcısız kayıt: süre dolumu elle tetiklenir.
	registry := NewRegistry(nil, nil, LetterRuleLast)

	session, err := registry.CreateRoom("family", KindWordBlitz, ModeLocalTurn, time.Minute, "ayse", []string{"ayse", "mehmet"})
	require.NoError(t, err)

	questions, err := session.Start("ayse", "K", 1, nil)
	require.NoError(t, err)

	stale := session.seq
	require.NoError(t, session.SubmitAnswers("ayse", fillAnswers(questions, "K"), false))

	// Gönderim turu ilerletti; eski tura kurulmuş zamanlayıcının geç
	// ateşlenmesi hiçbir şeyi değiştirmemeli.
	session.TimeExpire(stale)

	snapshot := session.Snapshot()
	assert.False(t, snapshot.Terminal)
	assert.Equal(t, "mehmet", snapshot.Turn)
}

func TestTimeExpireAutoSubmitsLocalTurn(t *testing.T) {
	registry := NewRegistry(nil, nil, LetterRuleLast)

	session, err := registry.CreateRoom("family", KindWordBlitz, ModeLocalTurn, time.Minute, "ayse", []string{"ayse", "mehmet"})
	require.NoError(t, err)

	_, err = session.Start("ayse", "K", 1, nil)
	require.NoError(t, err)

	// Süre dolumu sıradaki oyuncu adına boş gönderim yapar ve turu devreder.
	session.TimeExpire(session.seq)
	assert.Equal(t, "mehmet", session.Snapshot().Turn)

	session.TimeExpire(session.seq)
	snapshot := session.Snapshot()
	assert.True(t, snapshot.Terminal)
	assert.Equal(t, 0, snapshot.Scores["ayse"])
	assert.Equal(t, 0, snapshot.Scores["mehmet"])
}

func TestTimeExpireEliminatesChainPlayer(t *testing.T) {
	registry := NewRegistry(nil, nil, LetterRuleLast)

	session, err := registry.CreateRoom("chain", KindWordChain, ModeOnlineTurn, time.Minute, "alice", nil)
	require.NoError(t, err)
	require.NoError(t, session.Join("bob"))

	_, err = session.Start("alice", "", 1, nil)
	require.NoError(t, err)

	session.TimeExpire(session.seq)

	snapshot := session.Snapshot()
	assert.True(t, snapshot.Terminal)
	assert.Equal(t, []string{"bob"}, snapshot.Winners)
}

func TestTimeExpireFinishesTimedSession(t *testing.T) {
	registry := NewRegistry(nil, nil, LetterRuleLast)

	session, err := registry.CreateRoom("solo", KindLetterMatch, ModeSingleTimed, time.Minute, "dana", nil)
	require.NoError(t, err)

	_, err = session.Start("dana", "A", 1, nil)
	require.NoError(t, err)

	session.TimeExpire(session.seq)
	assert.True(t, session.Terminal())
}

func TestTimerServiceFiresAndReplaces(t *testing.T) {
	timers := NewTimerService()

	fired := make(chan string, 2)
	timers.Schedule("room", 5*time.Millisecond, func() { fired <- "first" })
	// Yeni kurulum eskisini iptal eder.
	timers.Schedule("room", 20*time.Millisecond, func() { fired <- "second" })

	select {
	case got := <-fired:
		assert.Equal(t, "second", got)
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	timers.Schedule("room", 10*time.Millisecond, func() { fired <- "third" })
	timers.Cancel("room")

	select {
	case got := <-fired:
		t.Fatalf("cancelled timer fired: %s", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestExpiryDrivenByRealTimer(t *testing.T) {
	registry := NewRegistry(NewTimerService(), nil, LetterRuleLast)

	session, err := registry.CreateRoom("solo", KindWordBlitz, ModeSingleTimed, 20*time.Millisecond, "dana", nil)
	require.NoError(t, err)

	_, err = session.Start("dana", "A", 1, nil)
	require.NoError(t, err)

	require.Eventually(t, session.Terminal, time.Second, 5*time.Millisecond)
}
