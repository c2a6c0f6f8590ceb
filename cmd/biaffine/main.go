package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "biaffine",
		Usage: "decode and evaluate biaffine dependency parses",
		Commands: []*cli.Command{
			evalCommand(),
			parseCommand(),
			inspectCommand(),
			statCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatalf("biaffine: %v", err)
	}
}
