package main

import (
	"context"
	"errors"
	"os"

	"github.com/DarwinAwardWinner/copytags/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:      "copytags",
		Usage:     "Copy tags between parallel music libraries",
		UsageText: "copytags SOURCE DEST [SOURCE DEST ...]",
		Version:   "1.0.0",
		Action:    runner.Copy,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		logger.Fatalf("application error: %v", err)
	}
}
