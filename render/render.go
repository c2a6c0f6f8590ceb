package render

import (
	"fmt"
	"io"
	"strings"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

const Defaultformat = "conll"

var (
	Red      = "\033[1;31m"
	Yellow   = "\033[0;33m"
	Off      = "\033[0m"
	Green256 = "\033[1;38;5;70m"
	Grey256  = "\033[1;38;5;145m"
)

func SupportedFormats() []string {
	return []string{"conll", "tree"}
}

// LabelLookup maps a label id back to its display string.
type LabelLookup func(id int) string

// Renderer writes decoded sentences.
type Renderer struct {
	Out io.Writer

	HasColor bool

	// Format determines the output of Parsed
	//
	// conll: one `word \t pos \t head \t label` line per token
	// tree: one line per token with the gold arc alongside
	Format string

	Labels LabelLookup
}

func NewRenderer(out io.Writer, labels LabelLookup) *Renderer {
	return &Renderer{
		Out:    out,
		Format: Defaultformat,
		Labels: labels,
	}
}

// Text writes the decode-mode output for one sentence: a tab-separated
// `word, pos, head, label` line per non-root token, then a blank line.
func (r *Renderer) Text(s sent.Sentence, heads, labels []int) {
	for i := 1; i < s.Len(); i++ {
		t := s.Tokens[i]
		fmt.Fprintf(r.Out, "%s\t%s\t%d\t%s\n", t.Text, t.Pos, heads[i], r.Labels(labels[i]))
	}

	fmt.Fprintln(r.Out)
}

// Tree writes one line per non-root token showing the predicted arc next
// to the gold one. With color, wrong arcs are red and correct ones green.
func (r *Renderer) Tree(s sent.Sentence, heads, labels []int) {
	for i := 1; i < s.Len(); i++ {
		t := s.Tokens[i]

		pred := fmt.Sprintf("%d:%s", heads[i], r.Labels(labels[i]))
		gold := fmt.Sprintf("%d:%s", t.Head, t.Label)

		marker := " "
		if heads[i] != t.Head || r.Labels(labels[i]) != t.Label {
			marker = "*"
			pred = r.color(Red, pred)
		} else {
			pred = r.color(Green256, pred)
		}

		fmt.Fprintf(r.Out, "%3d %-20s %-8s %s %-24s gold %s\n",
			i, clip(t.Text, 20), t.Pos, marker, pred, gold)
	}

	fmt.Fprintln(r.Out)
}

// Parsed renders one sentence in the current Format.
func (r *Renderer) Parsed(s sent.Sentence, heads, labels []int) {
	switch r.Format {
	case "tree":
		r.Tree(s, heads, labels)
	default:
		r.Text(s, heads, labels)
	}
}

// Sentence writes the plain words of a sentence on one line.
func (r *Renderer) Sentence(s sent.Sentence, prefix string) {
	words := []string{}
	for _, t := range s.Tokens[1:] {
		words = append(words, t.Text)
	}

	fmt.Fprintf(r.Out, "%s%s\n", prefix, strings.Join(words, " "))
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) color(code, s string) string {
	if !r.HasColor {
		return s
	}

	return code + s + Off
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
