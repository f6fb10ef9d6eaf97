package main

import (
	"fmt"
	"io"
	"os"

	"github.com/DarwinAwardWinner/copytags/internal/shared"
	"github.com/DarwinAwardWinner/copytags/internal/tags"
	"github.com/charmbracelet/log"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	backend tags.Backend
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Backend tags.Backend
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Backend == nil {
		opts.Backend = tags.NewTagLibBackend()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		backend: opts.Backend,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
