package game

import (
	"testing"
	"time"

	"word-game-service/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomConflicts(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.CreateRoom("arena", KindWordBlitz, ModeOnlineTurn, time.Minute, "alice", nil)
	require.NoError(t, err)

	_, err = registry.CreateRoom("arena", KindWordChain, ModeOnlineTurn, time.Minute, "bob", nil)
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = registry.CreateRoom("", KindWordBlitz, ModeOnlineTurn, time.Minute, "alice", nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = registry.CreateRoom("family", KindWordBlitz, ModeLocalTurn, time.Minute, "alice", nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClosedRoomNameIsReusable(t *testing.T) {
	registry := newTestRegistry(t)

	session, err := registry.CreateRoom("solo", KindWordBlitz, ModeSingleTimed, time.Minute, "dana", nil)
	require.NoError(t, err)

	questions, err := session.Start("dana", "A", 1, nil)
	require.NoError(t, err)
	require.NoError(t, session.SubmitAnswers("dana", fillAnswers(questions, "A"), false))
	require.True(t, session.Terminal())

	// "Tekrar oyna": kapanan odanın adı yeniden kullanılabilir.
	fresh, err := registry.CreateRoom("solo", KindWordBlitz, ModeSingleTimed, time.Minute, "dana", nil)
	require.NoError(t, err)
	assert.False(t, fresh.Terminal())

	// Kayıt artık yeni oturumu döndürür.
	got, err := registry.Get("solo")
	require.NoError(t, err)
	assert.Same(t, fresh, got)
}

func TestListOpenExcludesStartedRooms(t *testing.T) {
	registry := newTestRegistry(t)

	open, err := registry.CreateRoom("open-room", KindWordBlitz, ModeOnlineTurn, time.Minute, "alice", nil)
	require.NoError(t, err)
	require.NoError(t, open.Join("bob"))

	started, err := registry.CreateRoom("started-room", KindWordBlitz, ModeOnlineTurn, time.Minute, "carol", nil)
	require.NoError(t, err)
	_, err = started.Start("carol", "", 1, nil)
	require.NoError(t, err)

	summaries := registry.ListOpen()
	require.Len(t, summaries, 1)
	assert.Equal(t, "open-room", summaries[0].RoomName)
	assert.Equal(t, 2, summaries[0].PlayerCount)
	assert.Equal(t, []string{"alice", "bob"}, summaries[0].Players)
}

func TestJoinThroughRegistry(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Join("missing", "alice")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = registry.CreateRoom("arena", KindWordBlitz, ModeOnlineTurn, time.Minute, "alice", nil)
	require.NoError(t, err)

	session, err := registry.Join("arena", "bob")
	require.NoError(t, err)
	assert.Len(t, session.Players(), 2)
}

func TestRemoveRoom(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.CreateRoom("arena", KindWordBlitz, ModeOnlineTurn, time.Minute, "alice", nil)
	require.NoError(t, err)

	registry.Remove("arena")
	_, err = registry.Get("arena")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Olmayan odayı silmek sessizce geçer.
	registry.Remove("arena")
}
