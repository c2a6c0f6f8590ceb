package conll

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

// Reader defines read operations for corpus storage
type Reader interface {
	// Names returns the names of all available corpus files
	Names() ([]string, error)

	// Load returns the dataset for a single corpus file by name
	Load(name string) (sent.Dataset, error)
}

// Dir is a filesystem Reader over a directory of .conllu files.
type Dir struct {
	Path string
}

func NewDir(path string) *Dir {
	return &Dir{Path: path}
}

func (d *Dir) Names() ([]string, error) {
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, fmt.Errorf("conll: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if strings.HasSuffix(e.Name(), ".conllu") || strings.HasSuffix(e.Name(), ".conll") {
			names = append(names, e.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

func (d *Dir) Load(name string) (sent.Dataset, error) {
	return ReadFile(filepath.Join(d.Path, name))
}

// LoadAll reads every corpus file of the reader into one dataset,
// renumbering sentence ids across files. The cb is called once per file
// before it is read, for progress reporting.
func LoadAll(r Reader, cb func(current, total int, name string)) (sent.Dataset, error) {
	names, err := r.Names()
	if err != nil {
		return nil, err
	}

	var all sent.Dataset
	for i, name := range names {
		if cb != nil {
			cb(i+1, len(names), name)
		}

		data, err := r.Load(name)
		if err != nil {
			return nil, err
		}

		for j := range data {
			data[j].Id = len(all) + j
		}

		all = append(all, data...)
	}

	return all, nil
}
