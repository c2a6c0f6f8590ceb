package parser

import (
	"fmt"

	"github.com/speedcell4/biaffineparser/decode"
	"github.com/speedcell4/biaffineparser/score"
	sent "github.com/speedcell4/biaffineparser/sentence"
)

// Parser decodes scored sentences into dependency trees.
type Parser struct {
	Scorer score.Scorer
}

func New(s score.Scorer) *Parser {
	return &Parser{Scorer: s}
}

// ParseOne decodes a single sentence into head and label id sequences.
// Both are root-included (index 0 is a placeholder), matching the gold
// sequences of the sentence.
func (p *Parser) ParseOne(s sent.Sentence) ([]int, []int, error) {
	scores, err := p.Scorer.Score(s)
	if err != nil {
		return nil, nil, err
	}

	heads, err := decode.Heads(scores.Arc, s.Len())
	if err != nil {
		return nil, nil, fmt.Errorf("sentence %d: %w", s.Id, err)
	}

	labels, err := decode.Labels(scores.Label, heads)
	if err != nil {
		return nil, nil, fmt.Errorf("sentence %d: %w", s.Id, err)
	}

	return heads, labels, nil
}

// Parse decodes a batch. Sentences are independent of each other; the
// first error aborts the whole batch.
func (p *Parser) Parse(batch sent.Dataset) ([][]int, [][]int, error) {
	heads := make([][]int, 0, len(batch))
	labels := make([][]int, 0, len(batch))

	for _, s := range batch {
		h, l, err := p.ParseOne(s)
		if err != nil {
			return nil, nil, err
		}

		heads = append(heads, h)
		labels = append(labels, l)
	}

	return heads, labels, nil
}
