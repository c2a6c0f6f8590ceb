package inspect

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/speedcell4/biaffineparser/parser"
	"github.com/speedcell4/biaffineparser/render"
	sent "github.com/speedcell4/biaffineparser/sentence"

	"github.com/c-bata/go-prompt"
)

const (
	completionThreshold = 2

	// maxMatches limits the sentence list printed for a word lookup
	maxMatches = 10
)

// Handler is the decode-inspection REPL: pick a sentence by index or by a
// word it contains, see the predicted tree next to gold.
type Handler struct {
	Data     sent.Dataset
	Parser   *parser.Parser
	Renderer *render.Renderer

	words []string
}

func NewHandler(data sent.Dataset, p *parser.Parser, r *render.Renderer) *Handler {
	return &Handler{
		Data:     data,
		Parser:   p,
		Renderer: r,
		words:    corpusWords(data),
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 enter a sentence index or a word, Ctrl+F: next format, quit to exit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🌲 ", h.completer(),
			prompt.OptionTitle("biaffine inspect"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Println("Format set to: " + h.Renderer.Format)
				}}),
		)

		if in == "quit" {
			return nil
		}

		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}

		history = append(history, in)

		if id, err := strconv.Atoi(in); err == nil {
			if err := h.show(id); err != nil {
				fmt.Println(err)
			}
			continue
		}

		h.find(in)
	}
}

// show decodes and renders the sentence with the given index.
func (h *Handler) show(id int) error {
	if id < 0 || id >= len(h.Data) {
		return fmt.Errorf("no sentence %d (corpus has %d)", id, len(h.Data))
	}

	s := h.Data[id]
	heads, labels, err := h.Parser.ParseOne(s)
	if err != nil {
		return err
	}

	h.Renderer.Sentence(s, fmt.Sprintf("✍  %d ", s.Id))
	fmt.Println()
	h.Renderer.Parsed(s, heads, labels)
	return nil
}

// find lists the sentences containing the word (case insensitive).
func (h *Handler) find(word string) {
	word = strings.ToLower(word)

	matches := 0
	for _, s := range h.Data {
		for _, t := range s.Tokens[1:] {
			if strings.ToLower(t.Text) != word {
				continue
			}

			h.Renderer.Sentence(s, fmt.Sprintf("✍  %5d ", s.Id))
			matches++
			break
		}

		if matches >= maxMatches {
			break
		}
	}

	if matches == 0 {
		fmt.Printf("no sentence contains %q\n", word)
	}
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		if len(befCursor) < completionThreshold {
			return s
		}

		for _, w := range h.words {
			if strings.HasPrefix(w, strings.ToLower(befCursor)) {
				s = append(s, prompt.Suggest{Text: w})
			}
		}

		return s
	}
}

// corpusWords collects the unique lowercased words of the corpus, sorted.
func corpusWords(data sent.Dataset) []string {
	seen := map[string]bool{}
	for _, s := range data {
		for _, t := range s.Tokens[1:] {
			seen[strings.ToLower(t.Text)] = true
		}
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}

	sort.Strings(words)
	return words
}
