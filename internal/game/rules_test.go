package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredLetter(t *testing.T) {
	tests := []struct {
		name     string
		rule     LetterRule
		previous string
		want     string
	}{
		{"empty chain is unconstrained", LetterRuleLast, "", ""},
		{"last letter", LetterRuleLast, "apple", "E"},
		{"first letter", LetterRuleFirst, "apple", "A"},
		{"middle letter", LetterRuleMiddle, "apple", "P"},
		{"single letter word", LetterRuleLast, "a", "A"},
		{"uppercases the result", LetterRuleLast, "kanguru", "U"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.RequiredLetter(tt.previous))
		})
	}
}

func TestParseLetterRule(t *testing.T) {
	assert.Equal(t, LetterRuleFirst, ParseLetterRule("first"))
	assert.Equal(t, LetterRuleMiddle, ParseLetterRule("MIDDLE"))
	assert.Equal(t, LetterRuleLast, ParseLetterRule("last"))
	assert.Equal(t, LetterRuleLast, ParseLetterRule("bogus"))
	assert.Equal(t, LetterRuleLast, ParseLetterRule(""))
}

func TestValidateWord(t *testing.T) {
	require.Error(t, ValidateWord("", "A"))
	require.Error(t, ValidateWord("   ", "A"))
	require.NoError(t, ValidateWord("apple", "A"))
	require.NoError(t, ValidateWord("apple", "a"))
	require.NoError(t, ValidateWord("Apple", ""))
	require.Error(t, ValidateWord("banana", "A"))
}

func TestValidateChainWord(t *testing.T) {
	used := map[string]bool{"apple": true}

	require.NoError(t, ValidateChainWord("avocado", "A", used))

	// Tekrar kontrolü harf kontrolünden önce gelir.
	err := ValidateChainWord("Apple", "A", used)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already used")

	err = ValidateChainWord("banana", "A", used)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start with")

	require.Error(t, ValidateChainWord("", "A", used))
}

func TestGenerateQuestions(t *testing.T) {
	questions := GenerateQuestions(nil, 2, "k")
	require.Len(t, questions, 2*len(DefaultCategories))
	for _, q := range questions {
		assert.Equal(t, "K", q.Letter)
		assert.NotEqual(t, 0, q.Round)
	}
	assert.Equal(t, 1, questions[0].Round)
	assert.Equal(t, 2, questions[len(questions)-1].Round)

	custom := GenerateQuestions([]string{"City", "River"}, 1, "")
	require.Len(t, custom, 2)
	assert.Equal(t, "City", custom[0].Prompt)
	assert.Equal(t, "River", custom[1].Prompt)
	for _, q := range custom {
		assert.Len(t, q.Letter, 1)
	}
}
