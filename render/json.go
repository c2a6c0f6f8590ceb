package render

import (
	"encoding/json"
	"io"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

// ParsedSentence is the JSON shape of one decoded sentence.
type ParsedSentence struct {
	Id     int      `json:"id"`
	Words  []string `json:"words"`
	Pos    []string `json:"pos"`
	Heads  []int    `json:"heads"`
	Labels []string `json:"labels"`
}

// JSONRenderer writes decoded sentences as a JSON array.
type JSONRenderer struct {
	out    io.Writer
	labels LabelLookup

	parsed []ParsedSentence
}

func NewJSONRenderer(out io.Writer, labels LabelLookup) *JSONRenderer {
	return &JSONRenderer{out: out, labels: labels}
}

// Add collects one decoded sentence.
func (r *JSONRenderer) Add(s sent.Sentence, heads, labelIDs []int) {
	p := ParsedSentence{Id: s.Id}
	for i := 1; i < s.Len(); i++ {
		p.Words = append(p.Words, s.Tokens[i].Text)
		p.Pos = append(p.Pos, s.Tokens[i].Pos)
		p.Heads = append(p.Heads, heads[i])
		p.Labels = append(p.Labels, r.labels(labelIDs[i]))
	}

	r.parsed = append(r.parsed, p)
}

// Render writes the collected sentences and resets the renderer.
func (r *JSONRenderer) Render() error {
	if r.parsed == nil {
		r.parsed = []ParsedSentence{}
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	err := enc.Encode(r.parsed)
	r.parsed = nil
	return err
}
