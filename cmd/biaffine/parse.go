package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/speedcell4/biaffineparser/parser"
	"github.com/speedcell4/biaffineparser/render"
)

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "decode a corpus and print the predicted trees",
		Flags: []cli.Flag{
			corpusFlag(),
			backendFlag(),
			seedFlag(),
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format (text, json)",
				Value: "text",
			},
		},
		Action: parseAction,
	}
}

func parseAction(c *cli.Context) error {
	format := c.String("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("format %q is not supported (supported: text, json)", format)
	}

	data, vocabs, scorer, err := setup(c)
	if err != nil {
		return err
	}

	p := parser.New(scorer)

	if format == "json" {
		jr := render.NewJSONRenderer(os.Stdout, vocabs.Labels.Lookup)
		for _, s := range data {
			heads, labels, err := p.ParseOne(s)
			if err != nil {
				return err
			}

			jr.Add(s, heads, labels)
		}

		return jr.Render()
	}

	r := render.NewRenderer(os.Stdout, vocabs.Labels.Lookup)
	for _, s := range data {
		heads, labels, err := p.ParseOne(s)
		if err != nil {
			return err
		}

		r.Text(s, heads, labels)
	}

	return nil
}
