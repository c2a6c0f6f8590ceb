package score

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

// Biaffine is a forward-only deep biaffine scorer.
//
// Tokens are embedded by word and POS id, projected through tanh MLPs into
// head and dependent representations, and every (dependent, head) pair is
// scored with a bilinear form. Labels get their own smaller representations
// and one bilinear form per label.
type Biaffine struct {
	cfg Config

	wordEmb *mat.Dense // V×e
	posEmb  *mat.Dense // P×e

	// arc MLPs, input 2e
	arcDepW  *mat.Dense // 2e×h
	arcDepB  []float64
	arcHeadW *mat.Dense // 2e×h
	arcHeadB []float64

	arcU *mat.Dense // h×h bilinear form
	arcV []float64  // head bias term, length h

	// label MLPs, input 2e
	relDepW  *mat.Dense // 2e×r
	relDepB  []float64
	relHeadW *mat.Dense // 2e×r
	relHeadB []float64

	relU []*mat.Dense // per label, r×r
	relB []float64    // per label
}

func newBiaffine(cfg Config) *Biaffine {
	rng := rand.New(rand.NewSource(cfg.Seed))

	e, h, r := cfg.EmbedSize, cfg.HiddenSize, cfg.LabelSize

	b := &Biaffine{
		cfg:      cfg,
		wordEmb:  randDense(rng, cfg.WordVocabSize, e),
		posEmb:   randDense(rng, cfg.PosVocabSize, e),
		arcDepW:  randDense(rng, 2*e, h),
		arcDepB:  randVec(rng, h),
		arcHeadW: randDense(rng, 2*e, h),
		arcHeadB: randVec(rng, h),
		arcU:     randDense(rng, h, h),
		arcV:     randVec(rng, h),
		relDepW:  randDense(rng, 2*e, r),
		relDepB:  randVec(rng, r),
		relHeadW: randDense(rng, 2*e, r),
		relHeadB: randVec(rng, r),
	}

	for l := 0; l < cfg.NumLabels; l++ {
		b.relU = append(b.relU, randDense(rng, r, r))
	}
	b.relB = randVec(rng, cfg.NumLabels)

	return b
}

func (b *Biaffine) Score(s sent.Sentence) (*Scores, error) {
	n := s.Len()
	if n == 0 {
		return nil, fmt.Errorf("score: empty sentence %d", s.Id)
	}

	x, err := b.embed(s)
	if err != nil {
		return nil, err
	}

	arcDep := mlp(x, b.arcDepW, b.arcDepB)    // n×h
	arcHead := mlp(x, b.arcHeadW, b.arcHeadB) // n×h

	// arc[i][j] = arcDep_i · U · arcHead_j + v · arcHead_j
	var tmp, arc mat.Dense
	tmp.Mul(arcDep, b.arcU)
	arc.Mul(&tmp, arcHead.T())
	headBias := matVec(arcHead, b.arcV)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			arc.Set(i, j, arc.At(i, j)+headBias[j])
		}
	}

	relDep := mlp(x, b.relDepW, b.relDepB)
	relHead := mlp(x, b.relHeadW, b.relHeadB)

	labels := make([]*mat.Dense, n)
	for i := 0; i < n; i++ {
		labels[i] = mat.NewDense(n, b.cfg.NumLabels, nil)
	}

	for l := 0; l < b.cfg.NumLabels; l++ {
		var lt, lm mat.Dense
		lt.Mul(relDep, b.relU[l])
		lm.Mul(&lt, relHead.T()) // n×n, entry (i, j) scores label l on arc i→j
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				labels[i].Set(j, l, lm.At(i, j)+b.relB[l])
			}
		}
	}

	return &Scores{Arc: &arc, Label: labels}, nil
}

// embed builds the n×2e input matrix from word and POS embeddings.
func (b *Biaffine) embed(s sent.Sentence) (*mat.Dense, error) {
	n := s.Len()
	e := b.cfg.EmbedSize

	x := mat.NewDense(n, 2*e, nil)
	for i, t := range s.Tokens {
		if t.WordID < 0 || t.WordID >= b.cfg.WordVocabSize {
			return nil, fmt.Errorf("score: sentence %d token %d: word id %d out of range [0, %d)",
				s.Id, i, t.WordID, b.cfg.WordVocabSize)
		}
		if t.PosID < 0 || t.PosID >= b.cfg.PosVocabSize {
			return nil, fmt.Errorf("score: sentence %d token %d: pos id %d out of range [0, %d)",
				s.Id, i, t.PosID, b.cfg.PosVocabSize)
		}

		x.SetRow(i, append(append([]float64{}, b.wordEmb.RawRowView(t.WordID)...),
			b.posEmb.RawRowView(t.PosID)...))
	}

	return x, nil
}

// mlp computes tanh(x·w + bias) row-wise.
func mlp(x, w *mat.Dense, bias []float64) *mat.Dense {
	var out mat.Dense
	out.Mul(x, w)

	rows, cols := out.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, math.Tanh(out.At(i, j)+bias[j]))
		}
	}

	return &out
}

func matVec(m *mat.Dense, v []float64) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols; j++ {
			sum += m.At(i, j) * v[j]
		}
		out[i] = sum
	}

	return out
}

func randDense(rng *rand.Rand, rows, cols int) *mat.Dense {
	if rows == 0 {
		rows = 1
	}
	if cols == 0 {
		cols = 1
	}

	data := make([]float64, rows*cols)
	scale := 1.0 / math.Sqrt(float64(cols))
	for i := range data {
		data[i] = (rng.Float64() - 0.5) * scale
	}

	return mat.NewDense(rows, cols, data)
}

func randVec(rng *rand.Rand, n int) []float64 {
	if n == 0 {
		n = 1
	}

	v := make([]float64, n)
	for i := range v {
		v[i] = (rng.Float64() - 0.5) * 0.1
	}

	return v
}
