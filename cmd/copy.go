package main

import (
	"context"

	"github.com/DarwinAwardWinner/copytags/internal/shared"
	"github.com/DarwinAwardWinner/copytags/internal/tasks"
	"github.com/DarwinAwardWinner/copytags/internal/ui"
	"github.com/urfave/cli/v3"
)

// Copy consumes the positional arguments pairwise as (source, destination)
// and runs a recursive tag copy for each pair.
func (r *Runner) Copy(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if err := validatePairs(args); err != nil {
		r.logger.Error(err.Error())
		return err
	}

	logger := shared.WithLogger(r.logger, "run", shared.GenerateID())
	engine := tasks.NewCopyEngine(r.backend, logger)

	for i := 0; i < len(args); i += 2 {
		src, dest := args[i], args[i+1]
		summary, err := engine.CopyTree(src, dest)
		if err != nil {
			return err
		}
		r.writePlain("%s", ui.Summary(summary))
	}
	return nil
}

// validatePairs checks the pairwise argument contract: exit code 1 for no
// arguments, 2 for an odd count.
func validatePairs(args []string) cli.ExitCoder {
	if len(args) == 0 {
		return cli.Exit("no files specified", 1)
	}
	if len(args)%2 != 0 {
		return cli.Exit("need an even number of files", 2)
	}
	return nil
}
