package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"word-game-service/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJudge struct {
	verdict Verdict
	err     error
	calls   int
}

func (f *fakeJudge) Check(ctx context.Context, prompt, letter, text string) (Verdict, error) {
	f.calls++
	return f.verdict, f.err
}

func finishedSoloSession(t *testing.T) *Session {
	t.Helper()
	registry := NewRegistry(nil, nil, LetterRuleLast)

	session, err := registry.CreateRoom("solo", KindWordBlitz, ModeSingleTimed, time.Minute, "dana", nil)
	require.NoError(t, err)

	questions, err := session.Start("dana", "A", 1, nil)
	require.NoError(t, err)
	require.NoError(t, session.SubmitAnswers("dana", fillAnswers(questions, "A"), false))
	require.True(t, session.Terminal())
	return session
}

func TestAdjudicationRequiresTerminalSession(t *testing.T) {
	registry := NewRegistry(nil, nil, LetterRuleLast)
	judge := &fakeJudge{verdict: Verdict{Correct: true}}
	adj := NewAdjudicator(judge)

	session, err := registry.CreateRoom("solo", KindWordBlitz, ModeSingleTimed, time.Minute, "dana", nil)
	require.NoError(t, err)
	_, err = session.Start("dana", "A", 1, nil)
	require.NoError(t, err)

	_, err = adj.RequestAutomatedCheck(context.Background(), session, uuid.New())
	require.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Zero(t, judge.calls)
}

func TestAdjudicationWorkflow(t *testing.T) {
	session := finishedSoloSession(t)
	judge := &fakeJudge{verdict: Verdict{Correct: false, Explanation: "not a real word"}}
	adj := NewAdjudicator(judge)

	records := session.Records()
	require.NotEmpty(t, records)
	answerID := records[0].ID

	// Oylama otomatik kontrolden önce açılamaz.
	err := adj.RequestCommunityVote(session, answerID, "dana")
	require.ErrorIs(t, err, domain.ErrInvalidState)

	verdict, err := adj.RequestAutomatedCheck(context.Background(), session, answerID)
	require.NoError(t, err)
	assert.False(t, verdict.Correct)
	assert.Equal(t, 0, session.Snapshot().Scores["dana"])

	// Oylamayı sadece cevabın sahibi isteyebilir.
	err = adj.RequestCommunityVote(session, answerID, "mallory")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	require.NoError(t, adj.RequestCommunityVote(session, answerID, "dana"))
	err = adj.RequestCommunityVote(session, answerID, "dana")
	require.ErrorIs(t, err, domain.ErrConflict)

	// Topluluk cevabı kurtarır: çoğunluk eveti otomatik kararı ezer.
	yes, no, err := adj.CastVote(session, answerID, "bob", true)
	require.NoError(t, err)
	assert.Equal(t, 1, yes)
	assert.Equal(t, 0, no)

	_, _, err = adj.CastVote(session, answerID, "carol", true)
	require.NoError(t, err)
	_, _, err = adj.CastVote(session, answerID, "dave", false)
	require.NoError(t, err)

	assert.Equal(t, 1, session.Snapshot().Scores["dana"])

	// Aynı oyuncunun yeni oyu eskisinin üzerine yazar.
	yes, no, err = adj.CastVote(session, answerID, "carol", false)
	require.NoError(t, err)
	assert.Equal(t, 1, yes)
	assert.Equal(t, 2, no)
	assert.Equal(t, 0, session.Snapshot().Scores["dana"])

	// Yönetici kararı hepsini ezer.
	require.NoError(t, adj.Override(session, answerID, "dana", true))
	assert.Equal(t, 1, session.Snapshot().Scores["dana"])

	record := session.Records()[0]
	assert.True(t, record.AutoChecked)
	assert.False(t, record.AutoCorrect)
	assert.True(t, record.VoteRequested)
	assert.Equal(t, 1, record.VoteYes)
	assert.Equal(t, 2, record.VoteNo)
	assert.True(t, record.AdminOverride)
	assert.True(t, record.OverrideValue)
}

func TestOverrideRequiresAdmin(t *testing.T) {
	session := finishedSoloSession(t)
	adj := NewAdjudicator(&fakeJudge{})

	answerID := session.Records()[0].ID
	err := adj.Override(session, answerID, "mallory", true)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRepeatedCheckOverwritesVerdict(t *testing.T) {
	session := finishedSoloSession(t)
	judge := &fakeJudge{verdict: Verdict{Correct: false}}
	adj := NewAdjudicator(judge)

	answerID := session.Records()[0].ID

	_, err := adj.RequestAutomatedCheck(context.Background(), session, answerID)
	require.NoError(t, err)
	assert.Equal(t, 0, session.Snapshot().Scores["dana"])

	judge.verdict = Verdict{Correct: true}
	verdict, err := adj.RequestAutomatedCheck(context.Background(), session, answerID)
	require.NoError(t, err)
	assert.True(t, verdict.Correct)
	assert.Equal(t, 1, session.Snapshot().Scores["dana"])
	assert.Equal(t, 2, judge.calls)
}

func TestCheckPropagatesJudgeFailure(t *testing.T) {
	session := finishedSoloSession(t)
	adj := NewAdjudicator(&fakeJudge{err: errors.New("judge is down")})

	answerID := session.Records()[0].ID
	_, err := adj.RequestAutomatedCheck(context.Background(), session, answerID)
	require.ErrorIs(t, err, domain.ErrInternal)

	// Başarısız kontrol karar bırakmaz.
	record := session.Records()[0]
	assert.False(t, record.AutoChecked)
}
