package httpUsecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"word-game-service/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainSession(t *testing.T) (*game.Registry, *game.Session) {
	t.Helper()
	registry := game.NewRegistry(game.NewTimerService(), nil, game.LetterRuleLast)

	session, err := registry.CreateRoom("chain", game.KindWordChain, game.ModeOnlineTurn, time.Minute, "alice", nil)
	require.NoError(t, err)
	require.NoError(t, session.Join("bob"))
	_, err = session.Start("alice", "", 1, nil)
	require.NoError(t, err)
	return registry, session
}

func TestSubmitWordAcceptsValidWord(t *testing.T) {
	registry, _ := chainSession(t)
	usecase := NewSubmitWordUseCase(registry)

	result, status, err := usecase.Execute(context.Background(), "chain", "alice", "apple")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, result.Accepted)
	assert.Equal(t, "apple", result.Word)
}

func TestSubmitWordRejectionIsAGameResult(t *testing.T) {
	registry, session := chainSession(t)
	usecase := NewSubmitWordUseCase(registry)

	_, _, err := usecase.Execute(context.Background(), "chain", "alice", "apple")
	require.NoError(t, err)

	// Kural ihlali HTTP hatası değildir: 200 döner, oyuncu elenmiştir.
	result, status, err := usecase.Execute(context.Background(), "chain", "bob", "banana")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, result.Accepted)
	assert.NotEmpty(t, result.Reason)
	assert.True(t, session.Terminal())
}

func TestSubmitWordOutOfTurnIsAnError(t *testing.T) {
	registry, _ := chainSession(t)
	usecase := NewSubmitWordUseCase(registry)

	_, status, err := usecase.Execute(context.Background(), "chain", "bob", "apple")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSubmitWordUnknownRoom(t *testing.T) {
	registry := game.NewRegistry(nil, nil, game.LetterRuleLast)
	usecase := NewSubmitWordUseCase(registry)

	_, status, err := usecase.Execute(context.Background(), "missing", "alice", "apple")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, status)
}
