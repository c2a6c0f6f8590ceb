package evaluate

import (
	"fmt"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

// Result holds the attachment counts of one sentence.
//
// UAS counts tokens with the correct head, LAS tokens with the correct head
// and label, Total the evaluable tokens. LAS <= UAS <= Total always.
type Result struct {
	UAS, LAS, Total int
}

// Evaluate compares predicted arcs and labels against gold for one
// sentence. All slices are root-included and of equal length; mask[i] true
// excludes position i from every count. Excluding the root position is the
// mask's responsibility, Masker.IgnoreMask always does. A fully masked
// sentence yields the zero Result.
func Evaluate(predHeads, predLabels, goldHeads, goldLabels []int, mask []bool) (Result, error) {
	n := len(predHeads)
	if len(predLabels) != n || len(goldHeads) != n || len(goldLabels) != n || len(mask) != n {
		return Result{}, fmt.Errorf("evaluate: length mismatch: pred %d/%d gold %d/%d mask %d",
			len(predHeads), len(predLabels), len(goldHeads), len(goldLabels), len(mask))
	}

	var r Result
	for i := 0; i < n; i++ {
		if mask[i] {
			continue
		}

		r.Total++
		if predHeads[i] != goldHeads[i] {
			continue
		}

		r.UAS++
		if predLabels[i] == goldLabels[i] {
			r.LAS++
		}
	}

	return r, nil
}

// Total accumulates sentence results across a dataset.
type Total struct {
	Result
	Sentences int
}

func (t *Total) Add(r Result) {
	t.UAS += r.UAS
	t.LAS += r.LAS
	t.Total += r.Total
	t.Sentences++
}

// UASPercent returns the unlabeled attachment score as a percentage. The
// second value is false when no token was evaluable, in which case the
// score is undefined (never NaN).
func (t *Total) UASPercent() (float64, bool) {
	if t.Total == 0 {
		return 0, false
	}

	return float64(t.UAS) / float64(t.Total) * 100, true
}

// LASPercent is the labeled counterpart of UASPercent.
func (t *Total) LASPercent() (float64, bool) {
	if t.Total == 0 {
		return 0, false
	}

	return float64(t.LAS) / float64(t.Total) * 100, true
}

// PunctuationTags is the fixed POS table treated as punctuation, covering
// the UD and PTB tagsets.
var PunctuationTags = []string{
	"PUNCT", "SYM",
	".", ",", ":", "''", "``", "-LRB-", "-RRB-",
}

// Masker builds ignore masks from POS tags.
type Masker struct {
	ignored map[string]bool

	// IgnorePunct disables punctuation masking when false; the root
	// position is always masked.
	IgnorePunct bool
}

// NewMasker returns a Masker over the given POS tags, defaulting to
// PunctuationTags when none are given.
func NewMasker(tags ...string) *Masker {
	if len(tags) == 0 {
		tags = PunctuationTags
	}

	ignored := make(map[string]bool, len(tags))
	for _, tag := range tags {
		ignored[tag] = true
	}

	return &Masker{ignored: ignored, IgnorePunct: true}
}

// IgnoreMask returns the per-position exclusion mask of the sentence: true
// for the root position and for punctuation-tagged tokens.
func (m *Masker) IgnoreMask(s sent.Sentence) []bool {
	mask := make([]bool, s.Len())
	if s.Len() > 0 {
		mask[0] = true
	}

	if !m.IgnorePunct {
		return mask
	}

	for i, t := range s.Tokens {
		if i == 0 {
			continue
		}

		if m.ignored[t.Pos] {
			mask[i] = true
		}
	}

	return mask
}
