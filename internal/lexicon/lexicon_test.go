package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	lex := Default()

	assert.Equal(t, 21, lex.Size())

	weight, ok := lex.Weight("good")
	require.True(t, ok)
	assert.Equal(t, 1, weight)

	weight, ok = lex.Weight("terrible")
	require.True(t, ok)
	assert.Equal(t, -3, weight)

	_, ok = lex.Weight("blender")
	assert.False(t, ok)

	assert.True(t, lex.IsNegation("not"))
	assert.True(t, lex.IsNegation("hardly"))
	assert.False(t, lex.IsNegation("very"))
}

func TestRefundPatterns(t *testing.T) {
	lex := Default()

	tests := []struct {
		name    string
		cleaned string
		want    bool
	}{
		{"refund word", "i want a refund now", true},
		{"multi-word money back", "give me my money back", true},
		{"replacement", "send a replacement please", true},
		{"word boundary respected", "the refundable deposit", false},
		{"no intent", "works perfectly fine", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lex.MatchesRefund(tt.cleaned))
		})
	}
}

func TestCustomTables(t *testing.T) {
	lex, err := New(
		WithScores(map[string]int{"splendid": 2, "dire": -2}),
		WithNegations("nicht"),
		WithRefundPatterns(`\bgeld\b`),
	)
	require.NoError(t, err)

	weight, ok := lex.Weight("splendid")
	require.True(t, ok)
	assert.Equal(t, 2, weight)

	_, ok = lex.Weight("good")
	assert.False(t, ok, "overridden table should not keep defaults")

	assert.True(t, lex.IsNegation("nicht"))
	assert.False(t, lex.IsNegation("not"))

	assert.True(t, lex.MatchesRefund("mein geld bitte"))
}

func TestValidation(t *testing.T) {
	_, err := New(WithScores(map[string]int{"meh": 0}))
	assert.Error(t, err, "zero weights are rejected")

	_, err = New(WithScores(map[string]int{"Good": 1}))
	assert.Error(t, err, "uppercase keys are rejected")

	_, err = New(WithNegations("NOT"))
	assert.Error(t, err)

	_, err = New(WithRefundPatterns(`[unclosed`))
	assert.Error(t, err)
}
