package sentence

// Root is the conventional text of the synthetic root token at index 0.
const Root = "<ROOT>"

// Token represents a word of the sentence, with POS and gold annotation.
type Token struct {
	// The index of the token in the sentence, starting at 0.
	// Index 0 is the synthetic root token.
	Index int `json:"index"`

	// The unmodified word
	Text string `json:"text"`

	// Universal POS tag
	Pos string `json:"pos"`

	// Gold head index. The root token points to itself (0).
	Head int `json:"head"`

	// Gold dependency relation
	Label string `json:"label"`

	// Numeric ids, filled by the vocab layer
	WordID  int `json:"-"`
	PosID   int `json:"-"`
	LabelID int `json:"-"`
}

// Sentence is an ordered token sequence with the root token at index 0.
type Sentence struct {
	Id     int     `json:"id"`
	Tokens []Token `json:"tokens"`
}

// Len returns the number of tokens including the root.
func (s Sentence) Len() int {
	return len(s.Tokens)
}

// Words returns the word ids of all tokens, root included.
func (s Sentence) Words() []int {
	ids := make([]int, len(s.Tokens))
	for i, t := range s.Tokens {
		ids[i] = t.WordID
	}
	return ids
}

// Tags returns the POS ids of all tokens, root included.
func (s Sentence) Tags() []int {
	ids := make([]int, len(s.Tokens))
	for i, t := range s.Tokens {
		ids[i] = t.PosID
	}
	return ids
}

// GoldHeads returns the gold head indices, root included (heads[0] == 0).
func (s Sentence) GoldHeads() []int {
	heads := make([]int, len(s.Tokens))
	for i, t := range s.Tokens {
		heads[i] = t.Head
	}
	return heads
}

// GoldLabels returns the gold label ids, root included.
func (s Sentence) GoldLabels() []int {
	labels := make([]int, len(s.Tokens))
	for i, t := range s.Tokens {
		labels[i] = t.LabelID
	}
	return labels
}

// Dataset is a collection of sentences
type Dataset []Sentence

// Batches splits the dataset into consecutive batches of at most size
// sentences. Order is stable, the last batch may be smaller.
func (d Dataset) Batches(size int) []Dataset {
	if size <= 0 {
		size = len(d)
	}

	batches := []Dataset{}
	for start := 0; start < len(d); start += size {
		end := start + size
		if end > len(d) {
			end = len(d)
		}

		batches = append(batches, d[start:end])
	}

	return batches
}

// NumTokens counts the tokens of the dataset, roots excluded.
func (d Dataset) NumTokens() int {
	n := 0
	for _, s := range d {
		if s.Len() > 0 {
			n += s.Len() - 1
		}
	}
	return n
}

// IsTree reports whether heads forms a single tree under the root token.
//
// heads is indexed by token position, heads[0] is ignored (root). Valid
// means: every head in [0, len(heads)), exactly one token attached to the
// root, and every token reaches the root (no cycles).
func IsTree(heads []int) bool {
	n := len(heads)
	if n < 2 {
		return n == 1
	}

	rootChildren := 0
	for i := 1; i < n; i++ {
		if heads[i] < 0 || heads[i] >= n || heads[i] == i {
			return false
		}

		if heads[i] == 0 {
			rootChildren++
		}
	}

	if rootChildren != 1 {
		return false
	}

	// every token must reach the root in at most n steps
	for i := 1; i < n; i++ {
		cur := i
		for steps := 0; cur != 0; steps++ {
			if steps > n {
				return false
			}

			cur = heads[cur]
		}
	}

	return true
}
