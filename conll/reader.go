package conll

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

// Field indices of the 10-column CoNLL-U format.
const (
	fieldID     = 0
	fieldForm   = 1
	fieldUpos   = 3
	fieldHead   = 6
	fieldDeprel = 7

	numFields = 10
)

// rootLabel is the relation assigned to the synthetic root token.
const rootLabel = "root"

// Read parses CoNLL-U sentences from r.
//
// Comment lines (#) are skipped, so are multiword ranges (id contains "-")
// and empty nodes (id contains "."). Every sentence gets the synthetic root
// token prepended at index 0.
func Read(r io.Reader) (sent.Dataset, error) {
	var data sent.Dataset

	cur := newSentence(len(data))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.TrimSpace(line) == "" {
			if cur.Len() > 1 {
				data = append(data, cur)
				cur = newSentence(len(data))
			}
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < numFields {
			return nil, fmt.Errorf("conll: line %d: expected %d fields, got %d", lineNo, numFields, len(fields))
		}

		id := fields[fieldID]
		if strings.Contains(id, "-") || strings.Contains(id, ".") {
			continue
		}

		head, err := strconv.Atoi(fields[fieldHead])
		if err != nil {
			return nil, fmt.Errorf("conll: line %d: bad head %q: %w", lineNo, fields[fieldHead], err)
		}

		cur.Tokens = append(cur.Tokens, sent.Token{
			Index: len(cur.Tokens),
			Text:  fields[fieldForm],
			Pos:   fields[fieldUpos],
			Head:  head,
			Label: fields[fieldDeprel],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("conll: read: %w", err)
	}

	// file may not end with a blank line
	if cur.Len() > 1 {
		data = append(data, cur)
	}

	return data, nil
}

// ReadFile reads a CoNLL-U file from the given path.
func ReadFile(path string) (sent.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("conll: %w", err)
	}
	defer f.Close()

	data, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return data, nil
}

func newSentence(id int) sent.Sentence {
	return sent.Sentence{
		Id: id,
		Tokens: []sent.Token{{
			Index: 0,
			Text:  sent.Root,
			Pos:   sent.Root,
			Head:  0,
			Label: rootLabel,
		}},
	}
}
