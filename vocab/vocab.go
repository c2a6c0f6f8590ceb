package vocab

import (
	"strings"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

const (
	// Unknown is the id returned for words never seen at build time.
	Unknown = 0

	unknownText = "<UNK>"
)

// Vocab maps strings to dense ids and back.
type Vocab struct {
	ids   map[string]int
	items []string

	// Lower folds entries to lower case before lookup (word vocabs).
	Lower bool

	// HasUnknown reserves id 0 for out-of-vocabulary items.
	// Without it, ID of a missing item adds the item.
	HasUnknown bool

	frozen bool
}

func New(lower, hasUnknown bool) *Vocab {
	v := &Vocab{
		ids:        map[string]int{},
		Lower:      lower,
		HasUnknown: hasUnknown,
	}

	if hasUnknown {
		v.ids[unknownText] = Unknown
		v.items = append(v.items, unknownText)
	}

	return v
}

// ID returns the id of item, adding it if the vocab is not frozen.
// A frozen vocab without an unknown id returns -1 for missing items.
func (v *Vocab) ID(item string) int {
	if v.Lower {
		item = strings.ToLower(item)
	}

	if id, ok := v.ids[item]; ok {
		return id
	}

	if v.frozen {
		if v.HasUnknown {
			return Unknown
		}

		return -1
	}

	id := len(v.items)
	v.ids[item] = id
	v.items = append(v.items, item)
	return id
}

// Lookup returns the string for id, or the unknown marker for ids out of
// range.
func (v *Vocab) Lookup(id int) string {
	if id < 0 || id >= len(v.items) {
		return unknownText
	}

	return v.items[id]
}

func (v *Vocab) Len() int {
	return len(v.items)
}

// Freeze stops the vocab from growing. Lookups of new items return the
// unknown id afterwards.
func (v *Vocab) Freeze() {
	v.frozen = true
}

// Set bundles the three vocabularies of a corpus.
type Set struct {
	Words  *Vocab
	Pos    *Vocab
	Labels *Vocab
}

func NewSet() *Set {
	return &Set{
		Words:  New(true, true),
		Pos:    New(false, false),
		Labels: New(false, false),
	}
}

// Apply fills the numeric ids of every token of the dataset in place,
// growing the vocabularies as needed (or mapping to unknown when frozen).
func (s *Set) Apply(data sent.Dataset) {
	for i := range data {
		for j := range data[i].Tokens {
			t := &data[i].Tokens[j]
			t.WordID = s.Words.ID(t.Text)
			t.PosID = s.Pos.ID(t.Pos)
			t.LabelID = s.Labels.ID(t.Label)
		}
	}
}

// Freeze freezes all three vocabularies.
func (s *Set) Freeze() {
	s.Words.Freeze()
	s.Pos.Freeze()
	s.Labels.Freeze()
}
