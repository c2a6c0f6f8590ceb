package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/speedcell4/biaffineparser/inspect"
	"github.com/speedcell4/biaffineparser/parser"
	"github.com/speedcell4/biaffineparser/render"
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "browse decoded sentences interactively",
		Flags: []cli.Flag{
			corpusFlag(),
			backendFlag(),
			seedFlag(),
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Action: inspectAction,
	}
}

func inspectAction(c *cli.Context) error {
	data, vocabs, scorer, err := setup(c)
	if err != nil {
		return err
	}

	r := render.NewRenderer(os.Stdout, vocabs.Labels.Lookup)
	r.HasColor = !c.Bool("no-color")
	r.Format = "tree"

	h := inspect.NewHandler(data, parser.New(scorer), r)
	return h.Run()
}
