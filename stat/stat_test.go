package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

func TestAggregate(t *testing.T) {
	data := sent.Dataset{
		{Tokens: []sent.Token{
			{Index: 0, Text: sent.Root, Pos: sent.Root},
			{Index: 1, Text: "hi", Pos: "INTJ"},
			{Index: 2, Text: "!", Pos: "PUNCT"},
		}},
		{Tokens: []sent.Token{
			{Index: 0, Text: sent.Root, Pos: sent.Root},
			{Index: 1, Text: "dogs", Pos: "NOUN"},
			{Index: 2, Text: "bark", Pos: "VERB"},
			{Index: 3, Text: "loudly", Pos: "ADV"},
			{Index: 4, Text: ".", Pos: "PUNCT"},
		}},
	}

	h := NewHandler()
	h.Aggregate(data)

	stats := h.Get()
	assert.Equal(t, 2, stats.NumSentences)
	assert.Equal(t, 6, stats.NumTokens)
	assert.Equal(t, 2, stats.NumPunct)
	assert.Equal(t, 3, stats.TokensPerSentenceMean)
	assert.Equal(t, 1, stats.TokensPerSentenceDis[2])
	assert.Equal(t, 1, stats.TokensPerSentenceDis[4])
}
