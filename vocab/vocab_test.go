package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

func TestVocabLowercases(t *testing.T) {
	v := New(true, true)

	id := v.ID("Dogs")
	assert.Equal(t, id, v.ID("dogs"))
	assert.Equal(t, "dogs", v.Lookup(id))
}

func TestVocabFrozenUnknown(t *testing.T) {
	v := New(true, true)
	v.ID("seen")
	v.Freeze()

	assert.Equal(t, Unknown, v.ID("never"))
	assert.NotEqual(t, Unknown, v.ID("seen"))
}

func TestVocabFrozenWithoutUnknown(t *testing.T) {
	v := New(false, false)
	v.ID("nsubj")
	v.Freeze()

	assert.Equal(t, -1, v.ID("obj"))
}

func TestVocabLookupOutOfRange(t *testing.T) {
	v := New(false, false)
	assert.Equal(t, "<UNK>", v.Lookup(42))
}

func TestSetApply(t *testing.T) {
	data := sent.Dataset{{Tokens: []sent.Token{
		{Index: 0, Text: sent.Root, Pos: sent.Root, Label: "root"},
		{Index: 1, Text: "Dogs", Pos: "NOUN", Label: "nsubj"},
		{Index: 2, Text: "dogs", Pos: "NOUN", Label: "obj"},
	}}}

	vocabs := NewSet()
	vocabs.Apply(data)

	// same word id regardless of case, same pos id
	require.Equal(t, data[0].Tokens[1].WordID, data[0].Tokens[2].WordID)
	require.Equal(t, data[0].Tokens[1].PosID, data[0].Tokens[2].PosID)
	assert.NotEqual(t, data[0].Tokens[1].LabelID, data[0].Tokens[2].LabelID)

	assert.Equal(t, "nsubj", vocabs.Labels.Lookup(data[0].Tokens[1].LabelID))
}
