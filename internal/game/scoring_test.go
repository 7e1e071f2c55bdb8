package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerWith(username string) *Answer {
	return &Answer{
		ID:       uuid.New(),
		Username: username,
		Votes:    make(map[string]bool),
	}
}

func TestFinalVerdictPrecedence(t *testing.T) {
	a := answerWith("alice")

	// Karar yok: bekliyor.
	correct, decided := FinalVerdict(a)
	assert.False(t, decided)
	assert.False(t, correct)

	// Otomatik karar tek başına geçerlidir.
	a.Auto = &Verdict{Correct: false, Explanation: "not a valid answer"}
	correct, decided = FinalVerdict(a)
	assert.True(t, decided)
	assert.False(t, correct)

	// Sonuçlanmış oy otomatik kararı ezer.
	a.VoteRequested = true
	a.Votes["bob"] = true
	a.Votes["carol"] = true
	a.Votes["dave"] = false
	correct, decided = FinalVerdict(a)
	assert.True(t, decided)
	assert.True(t, correct)

	// Berabere kalan oy sonuçsuzdur, otomatik karara dönülür.
	delete(a.Votes, "carol")
	correct, decided = FinalVerdict(a)
	assert.True(t, decided)
	assert.False(t, correct)

	// Yönetici kararı her şeyi ezer.
	value := true
	a.Override = &value
	correct, decided = FinalVerdict(a)
	assert.True(t, decided)
	assert.True(t, correct)
}

func TestLastVoteWins(t *testing.T) {
	a := answerWith("alice")
	a.VoteRequested = true

	a.Votes["bob"] = true
	a.Votes["bob"] = false
	assert.Equal(t, 0, a.VoteYes())
	assert.Equal(t, 1, a.VoteNo())
}

func TestComputeScores(t *testing.T) {
	good := answerWith("alice")
	good.Auto = &Verdict{Correct: true}
	bad := answerWith("alice")
	bad.Auto = &Verdict{Correct: false}
	pending := answerWith("bob")

	scores := ComputeScores([]*Answer{good, bad, pending})
	assert.Equal(t, 1, scores["alice"])
	// Bekleyen cevabın sahibi haritada sıfırla görünür.
	score, ok := scores["bob"]
	require.True(t, ok)
	assert.Equal(t, 0, score)
}

func TestWinnersTieSet(t *testing.T) {
	players := []*Player{
		{Username: "alice"},
		{Username: "bob"},
		{Username: "carol"},
	}

	winners := Winners(players, map[string]int{"alice": 2, "bob": 2, "carol": 1})
	assert.Equal(t, []string{"alice", "bob"}, winners)

	// Herkes sıfırdaysa herkes kazanan kümesindedir.
	winners = Winners(players, map[string]int{})
	assert.Equal(t, []string{"alice", "bob", "carol"}, winners)

	assert.Nil(t, Winners(nil, nil))
}
