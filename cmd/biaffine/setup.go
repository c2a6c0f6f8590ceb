package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/speedcell4/biaffineparser/conll"
	"github.com/speedcell4/biaffineparser/score"
	sent "github.com/speedcell4/biaffineparser/sentence"
	"github.com/speedcell4/biaffineparser/vocab"
)

// Shared flags across commands
func corpusFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "corpus",
		Usage:    "directory of .conllu files, or a single file",
		Required: true,
	}
}

func backendFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "backend",
		Usage: fmt.Sprintf("scorer backend (%s, %s)", score.BackendBiaffine, score.BackendUniform),
		Value: score.BackendBiaffine,
	}
}

func seedFlag() *cli.Int64Flag {
	return &cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed for scorer initialization",
		Value: 1,
	}
}

// loadCorpus reads the corpus path (directory or single file) into one
// dataset, with a progress bar over the files.
func loadCorpus(path string) (sent.Dataset, error) {
	dir := conll.NewDir(path)

	names, err := dir.Names()
	if err != nil {
		// a single file is also accepted
		return conll.ReadFile(path)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no .conllu files in %s", path)
	}

	// Start progress indicator
	uiprogress.Start()
	bar := uiprogress.AddBar(len(names))
	bar.AppendCompleted()
	bar.PrependElapsed()

	var current string
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return current
	})

	data, err := conll.LoadAll(dir, func(i, total int, name string) {
		current = name
		bar.Incr()
	})

	uiprogress.Stop()
	if err != nil {
		return nil, err
	}

	return data, nil
}

// setup loads the corpus, builds the vocabularies and the scorer. The
// backend is validated before any corpus file is read.
func setup(c *cli.Context) (sent.Dataset, *vocab.Set, score.Scorer, error) {
	backend := c.String("backend")

	// fail fast on unsupported backends, before decoding work begins
	if _, err := score.New(backend, score.Config{}); err != nil {
		return nil, nil, nil, err
	}

	logrus.Infof("load dataset from %s", c.String("corpus"))
	data, err := loadCorpus(c.String("corpus"))
	if err != nil {
		return nil, nil, nil, err
	}

	vocabs := vocab.NewSet()
	vocabs.Apply(data)
	vocabs.Freeze()

	scorer, err := score.New(backend, score.Config{
		WordVocabSize: vocabs.Words.Len(),
		PosVocabSize:  vocabs.Pos.Len(),
		NumLabels:     vocabs.Labels.Len(),
		Seed:          c.Int64("seed"),
	})
	if err != nil {
		return nil, nil, nil, err
	}

	logrus.Infof("# sentences: %d", len(data))
	logrus.Infof("# tokens: %d", data.NumTokens())
	logrus.Infof("# backend: %s", backend)

	return data, vocabs, scorer, nil
}
