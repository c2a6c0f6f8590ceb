package evaluate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

// The worked example: root + 3 tokens, gold heads (1→root, 2→1, 3→1),
// predicted heads (1→root, 2→1, 3→2). Only token 1 is fully correct:
// token 2 has the right head but a wrong label, token 3 a wrong head.
func TestEvaluateWorkedExample(t *testing.T) {
	goldHeads := []int{0, 0, 1, 1}
	predHeads := []int{0, 0, 1, 2}

	// label ids: root=0, nsubj=1, obj=2, dobj=3
	goldLabels := []int{0, 0, 1, 2}
	predLabels := []int{0, 0, 3, 3}

	mask := []bool{true, false, false, false}

	r, err := Evaluate(predHeads, predLabels, goldHeads, goldLabels, mask)
	require.NoError(t, err)

	assert.Equal(t, 2, r.UAS)
	assert.Equal(t, 1, r.LAS)
	assert.Equal(t, 3, r.Total)
}

func TestEvaluateAllMasked(t *testing.T) {
	mask := []bool{true, true, true}

	r, err := Evaluate([]int{0, 0, 1}, []int{0, 1, 1}, []int{0, 0, 1}, []int{0, 1, 1}, mask)
	require.NoError(t, err)

	assert.Equal(t, Result{}, r)
}

// A mask ignoring nothing beyond the root counts every non-root token.
func TestEvaluateNoneMaskedCountsAll(t *testing.T) {
	mask := []bool{true, false, false, false}

	r, err := Evaluate([]int{0, 0, 1, 1}, []int{0, 1, 2, 2}, []int{0, 0, 1, 1}, []int{0, 1, 2, 2}, mask)
	require.NoError(t, err)

	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 3, r.UAS)
	assert.Equal(t, 3, r.LAS)
}

func TestEvaluateLengthMismatch(t *testing.T) {
	_, err := Evaluate([]int{0, 0}, []int{0}, []int{0, 0}, []int{0, 0}, []bool{true, false})
	assert.Error(t, err)
}

func TestEvaluateLASNeverExceedsUAS(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for iter := 0; iter < 200; iter++ {
		n := 2 + rng.Intn(10)

		predHeads := make([]int, n)
		predLabels := make([]int, n)
		goldHeads := make([]int, n)
		goldLabels := make([]int, n)
		mask := make([]bool, n)
		mask[0] = true

		for i := 1; i < n; i++ {
			predHeads[i] = rng.Intn(n)
			goldHeads[i] = rng.Intn(n)
			predLabels[i] = rng.Intn(4)
			goldLabels[i] = rng.Intn(4)
			mask[i] = rng.Intn(4) == 0
		}

		r, err := Evaluate(predHeads, predLabels, goldHeads, goldLabels, mask)
		require.NoError(t, err)

		assert.LessOrEqual(t, r.LAS, r.UAS)
		assert.LessOrEqual(t, r.UAS, r.Total)
	}
}

func TestTotalAggregation(t *testing.T) {
	var total Total
	total.Add(Result{UAS: 2, LAS: 1, Total: 3})
	total.Add(Result{UAS: 4, LAS: 4, Total: 5})

	uas, ok := total.UASPercent()
	require.True(t, ok)
	assert.InDelta(t, 75.0, uas, 1e-9)

	las, ok := total.LASPercent()
	require.True(t, ok)
	assert.InDelta(t, 62.5, las, 1e-9)

	assert.Equal(t, 2, total.Sentences)
}

func TestTotalUndefinedOnZeroCount(t *testing.T) {
	var total Total
	total.Add(Result{})

	_, ok := total.UASPercent()
	assert.False(t, ok)

	_, ok = total.LASPercent()
	assert.False(t, ok)
}

func TestIgnoreMask(t *testing.T) {
	s := sent.Sentence{Tokens: []sent.Token{
		{Index: 0, Text: sent.Root, Pos: sent.Root},
		{Index: 1, Text: "dogs", Pos: "NOUN"},
		{Index: 2, Text: "bark", Pos: "VERB"},
		{Index: 3, Text: ".", Pos: "PUNCT"},
	}}

	m := NewMasker()
	assert.Equal(t, []bool{true, false, false, true}, m.IgnoreMask(s))

	m.IgnorePunct = false
	assert.Equal(t, []bool{true, false, false, false}, m.IgnoreMask(s))
}

func TestIgnoreMaskCustomTags(t *testing.T) {
	s := sent.Sentence{Tokens: []sent.Token{
		{Index: 0, Text: sent.Root, Pos: sent.Root},
		{Index: 1, Text: "well", Pos: "INTJ"},
		{Index: 2, Text: ".", Pos: "PUNCT"},
	}}

	m := NewMasker("INTJ")
	assert.Equal(t, []bool{true, true, false}, m.IgnoreMask(s))
}
