package game

import (
	"testing"
	"time"

	"word-game-service/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(NewTimerService(), nil, LetterRuleLast)
}

func fillAnswers(questions []Question, prefix string) map[uuid.UUID]string {
	answers := make(map[uuid.UUID]string, len(questions))
	for _, q := range questions {
		answers[q.ID] = prefix + q.Prompt
	}
	return answers
}

func TestLocalTurnRotation(t *testing.T) {
	registry := newTestRegistry(t)

	session, err := registry.CreateRoom("family", KindWordBlitz, ModeLocalTurn, time.Minute, "ayse", []string{"ayse", "mehmet", "zeynep"})
	require.NoError(t, err)

	questions, err := session.Start("ayse", "K", 1, nil)
	require.NoError(t, err)
	require.Len(t, questions, len(DefaultCategories))

	// Sıra ilk oyuncudadır; sıra dışı gönderim reddedilir.
	err = session.SubmitAnswers("mehmet", fillAnswers(questions, "K"), false)
	require.ErrorIs(t, err, domain.ErrInvalidState)

	require.NoError(t, session.SubmitAnswers("ayse", fillAnswers(questions, "K"), false))
	assert.Equal(t, "mehmet", session.Snapshot().Turn)

	require.NoError(t, session.SubmitAnswers("mehmet", fillAnswers(questions, "K"), false))
	assert.Equal(t, "zeynep", session.Snapshot().Turn)

	require.NoError(t, session.SubmitAnswers("zeynep", fillAnswers(questions, "K"), false))

	snapshot := session.Snapshot()
	assert.True(t, snapshot.Terminal)
	assert.Empty(t, snapshot.Turn)
	// Hiçbir cevap karara bağlanmadığı için herkes sıfırda ve herkes
	// kazanan kümesinde.
	assert.Equal(t, []string{"ayse", "mehmet", "zeynep"}, snapshot.Winners)
}

func TestLocalTurnIncompleteSubmission(t *testing.T) {
	registry := newTestRegistry(t)

	session, err := registry.CreateRoom("family", KindLetterMatch, ModeLocalTurn, time.Minute, "ayse", []string{"ayse", "mehmet"})
	require.NoError(t, err)

	questions, err := session.Start("ayse", "A", 1, nil)
	require.NoError(t, err)

	partial := fillAnswers(questions, "A")
	delete(partial, questions[0].ID)

	err = session.SubmitAnswers("ayse", partial, false)
	require.ErrorIs(t, err, domain.ErrValidation)

	// Başarısız gönderim hiçbir şeyi uygulamaz; sıra hala ilk oyuncudadır.
	assert.Equal(t, "ayse", session.Snapshot().Turn)
	assert.Empty(t, session.Records())
}

func TestOnlineConcurrentFinishesWhenAllSubmit(t *testing.T) {
	registry := newTestRegistry(t)

	session, err := registry.CreateRoom("arena", KindWordBlitz, ModeOnlineTurn, time.Minute, "alice", nil)
	require.NoError(t, err)
	require.NoError(t, session.Join("bob"))

	questions, err := session.Start("alice", "B", 1, nil)
	require.NoError(t, err)

	require.NoError(t, session.SubmitAnswers("alice", fillAnswers(questions, "B"), false))
	assert.False(t, session.Terminal())

	require.NoError(t, session.SubmitAnswers("bob", fillAnswers(questions, "B"), false))
	assert.True(t, session.Terminal())
	assert.Equal(t, StatusClosed, session.Status())
}

func TestJoinRules(t *testing.T) {
	registry := newTestRegistry(t)

	session, err := registry.CreateRoom("arena", KindWordBlitz, ModeOnlineTurn, time.Minute, "alice", nil)
	require.NoError(t, err)

	err = session.Join("alice")
	require.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, session.Join("bob"))

	_, err = session.Start("bob", "", 1, nil)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = session.Start("alice", "", 1, nil)
	require.NoError(t, err)

	err = session.Join("carol")
	require.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestWordChainEliminationFlow(t *testing.T) {
	registry := newTestRegistry(t)

	session, err := registry.CreateRoom("chain", KindWordChain, ModeOnlineTurn, time.Minute, "alice", nil)
	require.NoError(t, err)
	require.NoError(t, session.Join("bob"))
	require.NoError(t, session.Join("carol"))

	_, err = session.Start("alice", "", 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Snapshot().Turn)

	// İlk kelime serbesttir.
	_, err = session.SubmitWord("alice", "apple")
	require.NoError(t, err)
	assert.Equal(t, "bob", session.Snapshot().Turn)

	// "apple" -> E ile başlamalı.
	_, err = session.SubmitWord("bob", "egg")
	require.NoError(t, err)
	assert.Equal(t, "carol", session.Snapshot().Turn)

	// Tekrar eden kelime göndereni eler; sıra elenmeden sonraki aktif
	// oyuncuya geçer.
	_, err = session.SubmitWord("carol", "Apple")
	require.ErrorIs(t, err, domain.ErrValidation)

	snapshot := session.Snapshot()
	assert.Equal(t, "alice", snapshot.Turn)
	assert.False(t, snapshot.Terminal)

	// "egg" -> G. Yanlış harf de eler; iki aktif oyuncudan biri düşünce
	// oyun biter ve ayakta kalan kazanır.
	_, err = session.SubmitWord("alice", "grape")
	require.NoError(t, err)
	_, err = session.SubmitWord("bob", "zebra")
	require.ErrorIs(t, err, domain.ErrValidation)

	snapshot = session.Snapshot()
	assert.True(t, snapshot.Terminal)
	assert.Equal(t, []string{"alice"}, snapshot.Winners)

	// Kabul edilen zincir kelimeleri yapısal olarak doğru sayılır.
	assert.Equal(t, 2, snapshot.Scores["alice"])
	assert.Equal(t, 1, snapshot.Scores["bob"])
	assert.Equal(t, 0, snapshot.Scores["carol"])
}

func TestWordChainNeedsTwoPlayers(t *testing.T) {
	registry := newTestRegistry(t)

	session, err := registry.CreateRoom("chain", KindWordChain, ModeOnlineTurn, time.Minute, "alice", nil)
	require.NoError(t, err)

	_, err = session.Start("alice", "", 1, nil)
	require.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestVetoRemovesWordFromChain(t *testing.T) {
	registry := newTestRegistry(t)

	session, err := registry.CreateRoom("chain", KindWordChain, ModeOnlineTurn, time.Minute, "alice", nil)
	require.NoError(t, err)
	require.NoError(t, session.Join("bob"))

	_, err = session.Start("alice", "", 1, nil)
	require.NoError(t, err)

	_, err = session.SubmitWord("alice", "apple")
	require.NoError(t, err)
	_, err = session.SubmitWord("bob", "egg")
	require.NoError(t, err)

	err = session.Veto("bob", "apple")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	require.NoError(t, session.Veto("alice", "apple"))
	snapshot := session.Snapshot()
	require.Len(t, snapshot.Chain, 1)
	assert.Equal(t, "egg", snapshot.Chain[0].Word)

	// Veto edilen kelime yeniden kullanılabilir.
	assert.False(t, session.usedWords["apple"])

	err = session.Veto("alice", "banana")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIncrementalSubmitCompletesOnLastAnswer(t *testing.T) {
	registry := newTestRegistry(t)

	session, err := registry.CreateRoom("family", KindLetterMatch, ModeLocalTurn, time.Minute, "ayse", []string{"ayse", "mehmet"})
	require.NoError(t, err)

	questions, err := session.Start("ayse", "A", 1, nil)
	require.NoError(t, err)

	_, err = session.SubmitAnswer("mehmet", questions[0].ID, "Ankara")
	require.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = session.SubmitAnswer("ayse", questions[0].ID, "  ")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = session.SubmitAnswer("ayse", uuid.New(), "Ankara")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Son sorudan önceki cevaplar gönderimi kapatmaz, sıra değişmez.
	for _, q := range questions[:len(questions)-1] {
		completed, err := session.SubmitAnswer("ayse", q.ID, "A"+q.Prompt)
		require.NoError(t, err)
		assert.False(t, completed)
		assert.Equal(t, "ayse", session.Snapshot().Turn)
	}

	// Aynı soru yeniden cevaplanabilir; eski kayıt ezilir.
	last := questions[len(questions)-1]
	completed, err := session.SubmitAnswer("ayse", questions[0].ID, "Adana")
	require.NoError(t, err)
	assert.False(t, completed)

	completed, err = session.SubmitAnswer("ayse", last.ID, "A"+last.Prompt)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, "mehmet", session.Snapshot().Turn)

	// Gönderimi kapanan oyuncu artık cevap değiştiremez.
	_, err = session.SubmitAnswer("ayse", last.ID, "Aydin")
	require.ErrorIs(t, err, domain.ErrInvalidState)

	records := session.Records()
	require.Len(t, records, len(questions))
	assert.Equal(t, "Adana", records[0].Word)
}

func TestKickPlayer(t *testing.T) {
	registry := newTestRegistry(t)

	session, err := registry.CreateRoom("arena", KindWordBlitz, ModeOnlineTurn, time.Minute, "alice", nil)
	require.NoError(t, err)
	require.NoError(t, session.Join("bob"))

	err = session.Kick("bob", "alice")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	err = session.Kick("alice", "alice")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	questions, err := session.Start("alice", "B", 1, nil)
	require.NoError(t, err)

	require.NoError(t, session.SubmitAnswers("alice", fillAnswers(questions, "B"), false))

	// Göndermemiş son oyuncu atılınca oyun biter.
	require.NoError(t, session.Kick("alice", "bob"))
	assert.True(t, session.Terminal())
}

func TestKickLastPendingPlayerFinishesLocalTurn(t *testing.T) {
	registry := newTestRegistry(t)

	session, err := registry.CreateRoom("family", KindWordBlitz, ModeLocalTurn, time.Minute, "ayse", []string{"ayse", "mehmet", "zeynep"})
	require.NoError(t, err)

	questions, err := session.Start("ayse", "K", 1, nil)
	require.NoError(t, err)

	require.NoError(t, session.SubmitAnswers("ayse", fillAnswers(questions, "K"), false))
	require.NoError(t, session.SubmitAnswers("mehmet", fillAnswers(questions, "K"), false))
	assert.Equal(t, "zeynep", session.Snapshot().Turn)

	// Sıradaki son oyuncu atılınca gönderecek kimse kalmaz; sıra göndermiş
	// bir oyuncuya dönmez, oyun biter.
	expired := session.seq
	require.NoError(t, session.Kick("ayse", "zeynep"))

	snapshot := session.Snapshot()
	require.True(t, snapshot.Terminal)
	assert.Empty(t, snapshot.Turn)

	// Atılan oyuncunun tur zamanlayıcısı geç ateşlense bile verilmiş
	// cevaplara dokunamaz.
	session.TimeExpire(expired)

	records := session.Records()
	require.Len(t, records, 2*len(questions))
	for _, record := range records {
		assert.NotEmpty(t, record.Word)
	}
}

func TestKickCurrentTurnPlayerAdvancesToPending(t *testing.T) {
	registry := newTestRegistry(t)

	session, err := registry.CreateRoom("family", KindWordBlitz, ModeLocalTurn, time.Minute, "ayse", []string{"ayse", "mehmet", "zeynep"})
	require.NoError(t, err)

	questions, err := session.Start("ayse", "K", 1, nil)
	require.NoError(t, err)

	require.NoError(t, session.SubmitAnswers("ayse", fillAnswers(questions, "K"), false))
	assert.Equal(t, "mehmet", session.Snapshot().Turn)

	require.NoError(t, session.Kick("ayse", "mehmet"))

	snapshot := session.Snapshot()
	assert.False(t, snapshot.Terminal)
	assert.Equal(t, "zeynep", snapshot.Turn)

	require.NoError(t, session.SubmitAnswers("zeynep", fillAnswers(questions, "K"), false))
	assert.True(t, session.Terminal())
}
