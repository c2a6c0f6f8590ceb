package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTree(t *testing.T) {
	cases := []struct {
		name  string
		heads []int
		want  bool
	}{
		{"root only", []int{0}, true},
		{"single token", []int{0, 0}, true},
		{"chain", []int{0, 0, 1, 2}, true},
		{"flat", []int{0, 0, 1, 1}, true},
		{"two root children", []int{0, 0, 0}, false},
		{"no root child", []int{0, 2, 1}, false},
		{"cycle off root", []int{0, 0, 3, 2}, false},
		{"self head", []int{0, 1}, false},
		{"head out of range", []int{0, 5}, false},
		{"negative head", []int{0, -1}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsTree(tc.heads))
		})
	}
}

func TestBatches(t *testing.T) {
	data := Dataset{{Id: 0}, {Id: 1}, {Id: 2}, {Id: 3}, {Id: 4}}

	batches := data.Batches(2)
	assert.Len(t, batches, 3)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[2], 1)
	assert.Equal(t, 4, batches[2][0].Id)

	// non-positive size: everything in one batch
	assert.Len(t, data.Batches(0), 1)
}

func TestNumTokensExcludesRoot(t *testing.T) {
	s := Sentence{Tokens: []Token{{Index: 0, Text: Root}, {Index: 1, Text: "hi"}}}
	data := Dataset{s, s}

	assert.Equal(t, 2, data.NumTokens())
}

func TestGoldAccessors(t *testing.T) {
	s := Sentence{Tokens: []Token{
		{Index: 0, Head: 0, LabelID: 0},
		{Index: 1, Head: 0, LabelID: 2},
		{Index: 2, Head: 1, LabelID: 1},
	}}

	assert.Equal(t, []int{0, 0, 1}, s.GoldHeads())
	assert.Equal(t, []int{0, 2, 1}, s.GoldLabels())
}
