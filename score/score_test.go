package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

func testSentence() sent.Sentence {
	return sent.Sentence{Id: 0, Tokens: []sent.Token{
		{Index: 0, Text: sent.Root, WordID: 0, PosID: 0, LabelID: 0},
		{Index: 1, Text: "dogs", WordID: 1, PosID: 1, LabelID: 1},
		{Index: 2, Text: "bark", WordID: 2, PosID: 2, LabelID: 2},
	}}
}

func testConfig() Config {
	return Config{
		WordVocabSize: 4,
		PosVocabSize:  4,
		NumLabels:     3,
		EmbedSize:     8,
		HiddenSize:    6,
		LabelSize:     5,
		Seed:          11,
	}
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New("chainer", Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestUniformShapes(t *testing.T) {
	scorer, err := New(BackendUniform, Config{NumLabels: 3})
	require.NoError(t, err)

	s := testSentence()
	scores, err := scorer.Score(s)
	require.NoError(t, err)

	rows, cols := scores.Arc.Dims()
	assert.Equal(t, s.Len(), rows)
	assert.Equal(t, s.Len(), cols)
	assert.Len(t, scores.Label, s.Len())
	assert.Equal(t, 3, scores.NumLabels())
}

func TestBiaffineShapes(t *testing.T) {
	scorer, err := New(BackendBiaffine, testConfig())
	require.NoError(t, err)

	s := testSentence()
	scores, err := scorer.Score(s)
	require.NoError(t, err)

	rows, cols := scores.Arc.Dims()
	assert.Equal(t, s.Len(), rows)
	assert.Equal(t, s.Len(), cols)

	lr, lc := scores.Label[1].Dims()
	assert.Equal(t, s.Len(), lr)
	assert.Equal(t, 3, lc)
}

func TestBiaffineDeterministic(t *testing.T) {
	s := testSentence()

	first, err := New(BackendBiaffine, testConfig())
	require.NoError(t, err)
	second, err := New(BackendBiaffine, testConfig())
	require.NoError(t, err)

	a, err := first.Score(s)
	require.NoError(t, err)
	b, err := second.Score(s)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(a.Arc, b.Arc, 1e-12))
	for i := range a.Label {
		assert.True(t, mat.EqualApprox(a.Label[i], b.Label[i], 1e-12))
	}

	// different seed, different scores
	cfg := testConfig()
	cfg.Seed = 12
	third, err := New(BackendBiaffine, cfg)
	require.NoError(t, err)

	c, err := third.Score(s)
	require.NoError(t, err)
	assert.False(t, mat.EqualApprox(a.Arc, c.Arc, 1e-12))
}

func TestBiaffineRejectsOutOfRangeIDs(t *testing.T) {
	scorer, err := New(BackendBiaffine, testConfig())
	require.NoError(t, err)

	s := testSentence()
	s.Tokens[1].WordID = 99

	_, err = scorer.Score(s)
	assert.Error(t, err)
}
