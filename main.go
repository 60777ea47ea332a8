package main

import (
	"context"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/battleship-cli/app"
	"github.com/wojtekolesinski/battleship-cli/config"
)

func main() {
	if err := run(); err != nil {
		log.Error("main [run]", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	a, err := app.New(cfg, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(context.Background())
}
