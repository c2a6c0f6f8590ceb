package score

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

// Scores holds the model confidences for one sentence of n tokens.
type Scores struct {
	// Arc is n×n, entry (i, j) is the confidence that the head of token i
	// is token j.
	Arc *mat.Dense

	// Label[i] is n×L, row j is the label distribution for the candidate
	// arc from dependent i to head j.
	Label []*mat.Dense
}

// NumLabels returns L, the size of the label distributions.
func (s *Scores) NumLabels() int {
	if len(s.Label) == 0 {
		return 0
	}

	_, l := s.Label[0].Dims()
	return l
}

// Scorer produces scores for a sentence.
// Implementations must be deterministic: identical sentences score
// identically.
type Scorer interface {
	Score(s sent.Sentence) (*Scores, error)
}

// Backends supported by New.
const (
	BackendBiaffine = "biaffine"
	BackendUniform  = "uniform"
)

// Config carries the scorer hyperparameters.
type Config struct {
	WordVocabSize int
	PosVocabSize  int
	NumLabels     int

	EmbedSize  int
	HiddenSize int
	LabelSize  int

	Seed int64
}

func (c Config) withDefaults() Config {
	if c.NumLabels == 0 {
		c.NumLabels = 1
	}
	if c.EmbedSize == 0 {
		c.EmbedSize = 100
	}
	if c.HiddenSize == 0 {
		c.HiddenSize = 128
	}
	if c.LabelSize == 0 {
		c.LabelSize = 64
	}
	return c
}

// New builds a scorer for the given backend name. Unknown backends are an
// error, raised before any corpus work starts.
func New(backend string, cfg Config) (Scorer, error) {
	switch backend {
	case BackendBiaffine:
		return newBiaffine(cfg.withDefaults()), nil
	case BackendUniform:
		return Uniform{NumLabels: cfg.NumLabels}, nil
	}

	return nil, fmt.Errorf("score: backend %q is not supported (supported: %s, %s)",
		backend, BackendBiaffine, BackendUniform)
}

// Uniform scores every candidate arc and label equally. Decoding a uniform
// sentence exercises only the tie-break rules, which makes it useful as a
// smoke backend.
type Uniform struct {
	NumLabels int
}

func (u Uniform) Score(s sent.Sentence) (*Scores, error) {
	n := s.Len()
	if n == 0 {
		return nil, fmt.Errorf("score: empty sentence %d", s.Id)
	}

	labels := u.NumLabels
	if labels == 0 {
		labels = 1
	}

	sc := &Scores{
		Arc:   mat.NewDense(n, n, nil),
		Label: make([]*mat.Dense, n),
	}
	for i := 0; i < n; i++ {
		sc.Label[i] = mat.NewDense(n, labels, nil)
	}

	return sc, nil
}
