package main

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/speedcell4/biaffineparser/stat"
)

func statCommand() *cli.Command {
	return &cli.Command{
		Name:  "stat",
		Usage: "print corpus statistics",
		Flags: []cli.Flag{
			corpusFlag(),
		},
		Action: statAction,
	}
}

func statAction(c *cli.Context) error {
	data, err := loadCorpus(c.String("corpus"))
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(data)

	stats := hdl.Get()
	fmt.Printf("Num sentences %d, num tokens %d, tokens per sentence %d, punctuation %d\n",
		stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean, stats.NumPunct)

	lengths := []int{}
	for l := range stats.TokensPerSentenceDis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	for _, l := range lengths {
		fmt.Printf("%4d tokens: %d sentences\n", l, stats.TokensPerSentenceDis[l])
	}

	return nil
}
