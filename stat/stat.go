package stat

import (
	"github.com/speedcell4/biaffineparser/evaluate"
	sent "github.com/speedcell4/biaffineparser/sentence"
)

type Handler struct {
	stats  Stats
	masker *evaluate.Masker
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	NumPunct              int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats:  stats,
		masker: evaluate.NewMasker(),
	}
}

// Aggregate adds the dataset to the statistics. Token counts exclude the
// root position.
func (h *Handler) Aggregate(data sent.Dataset) {
	h.stats.NumSentences += len(data)
	//
	for _, s := range data {
		n := s.Len() - 1
		h.stats.NumTokens += n
		h.stats.TokensPerSentenceDis[n]++

		mask := h.masker.IgnoreMask(s)
		for i := 1; i < s.Len(); i++ {
			if mask[i] {
				h.stats.NumPunct++
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}
