package main

import (
	"github.com/gosuri/uiprogress"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/speedcell4/biaffineparser/evaluate"
	"github.com/speedcell4/biaffineparser/parser"
)

func evalCommand() *cli.Command {
	return &cli.Command{
		Name:  "eval",
		Usage: "decode a corpus and report UAS/LAS against gold",
		Flags: []cli.Flag{
			corpusFlag(),
			backendFlag(),
			seedFlag(),
			&cli.IntFlag{
				Name:  "batchsize",
				Usage: "number of sentences per batch",
				Value: 32,
			},
			&cli.BoolFlag{
				Name:  "all-tokens",
				Usage: "count punctuation tokens too",
			},
		},
		Action: evalAction,
	}
}

func evalAction(c *cli.Context) error {
	data, _, scorer, err := setup(c)
	if err != nil {
		return err
	}

	p := parser.New(scorer)
	masker := evaluate.NewMasker()
	masker.IgnorePunct = !c.Bool("all-tokens")

	batches := data.Batches(c.Int("batchsize"))
	logrus.Infof("# minibatch-size: %d", c.Int("batchsize"))

	uiprogress.Start()
	bar := uiprogress.AddBar(len(batches))
	bar.AppendCompleted()
	bar.PrependElapsed()

	var total evaluate.Total
	for _, batch := range batches {
		heads, labels, err := p.Parse(batch)
		if err != nil {
			uiprogress.Stop()
			return err
		}

		for i, s := range batch {
			mask := masker.IgnoreMask(s)
			r, err := evaluate.Evaluate(heads[i], labels[i], s.GoldHeads(), s.GoldLabels(), mask)
			if err != nil {
				uiprogress.Stop()
				return err
			}

			total.Add(r)
		}

		bar.Incr()
	}

	uiprogress.Stop()

	uas, ok := total.UASPercent()
	if !ok {
		logrus.Warn("[evaluation] UAS: undefined, LAS: undefined (no evaluable tokens)")
		return nil
	}

	las, _ := total.LASPercent()
	logrus.Infof("[evaluation] UAS: %.8f, LAS: %.8f", uas, las)
	return nil
}
