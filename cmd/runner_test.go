package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/DarwinAwardWinner/copytags/internal/shared"
	tu "github.com/DarwinAwardWinner/copytags/internal/testing"
	"github.com/urfave/cli/v3"
)

func TestNewRunner(t *testing.T) {
	t.Run("with all dependencies provided", func(t *testing.T) {
		backend := tu.NewFakeBackend(".mp3")
		logger := shared.NewLogger(nil)
		output := &bytes.Buffer{}

		runner := NewRunner(RunnerOpts{
			Backend: backend,
			Logger:  logger,
			Output:  output,
		})

		if runner.backend != backend {
			t.Error("expected backend to be set")
		}
		if runner.logger != logger {
			t.Error("expected logger to be set")
		}
		if runner.output != output {
			t.Error("expected output to be set")
		}
	})

	t.Run("with nil backend uses taglib", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		if runner.backend == nil {
			t.Error("expected default backend to be set")
		}
	})

	t.Run("with nil logger uses default", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		if runner.logger == nil {
			t.Error("expected default logger to be set")
		}
	})

	t.Run("with nil output uses stdout", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		if runner.output != os.Stdout {
			t.Error("expected output to default to os.Stdout")
		}
	})
}

func TestValidatePairs(t *testing.T) {
	tc := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{name: "no arguments", args: []string{}, wantCode: 1},
		{name: "odd count", args: []string{"/src", "/dest", "/extra"}, wantCode: 2},
		{name: "single pair", args: []string{"/src", "/dest"}, wantCode: 0},
		{name: "two pairs", args: []string{"/a", "/b", "/c", "/d"}, wantCode: 0},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePairs(tt.args)
			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("validatePairs() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("validatePairs() = nil, want exit error")
			}
			if got := err.ExitCode(); got != tt.wantCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestCopy(t *testing.T) {
	t.Run("copies one pair end to end", func(t *testing.T) {
		backend := tu.NewFakeBackend(".flac", ".mp3")
		root, err := filepath.EvalSymlinks(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to resolve temp dir: %v", err)
		}
		srcDir := filepath.Join(root, "src")
		destDir := filepath.Join(root, "dest")
		backend.AddFile(t, filepath.Join(srcDir, "Album", "01.flac"), map[string][]string{"artist": {"Foo"}})
		backend.AddFile(t, filepath.Join(destDir, "Album", "01.mp3"), map[string][]string{"artist": {"Bar"}})

		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Backend: backend, Logger: shared.NewLogger(nil), Output: output})
		app := &cli.Command{Name: "copytags", Action: runner.Copy}

		if err := app.Run(context.Background(), []string{"copytags", srcDir, destDir}); err != nil {
			t.Fatalf("Run() unexpected error: %v", err)
		}

		got := backend.FileTags(t, filepath.Join(destDir, "Album", "01.mp3"))["artist"]
		if !reflect.DeepEqual(got, []string{"Foo"}) {
			t.Errorf("destination artist = %v, want [Foo]", got)
		}
		if !strings.Contains(output.String(), "1 copied") {
			t.Errorf("expected summary in output, got %q", output.String())
		}
	})

	t.Run("processes multiple pairs", func(t *testing.T) {
		backend := tu.NewFakeBackend(".flac", ".mp3")
		root, err := filepath.EvalSymlinks(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to resolve temp dir: %v", err)
		}
		for _, set := range []string{"a", "b"} {
			backend.AddFile(t, filepath.Join(root, set, "src", "01.flac"), map[string][]string{"artist": {"Foo"}})
			backend.AddFile(t, filepath.Join(root, set, "dest", "01.mp3"), nil)
		}

		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Backend: backend, Logger: shared.NewLogger(nil), Output: output})
		app := &cli.Command{Name: "copytags", Action: runner.Copy}

		args := []string{
			"copytags",
			filepath.Join(root, "a", "src"), filepath.Join(root, "a", "dest"),
			filepath.Join(root, "b", "src"), filepath.Join(root, "b", "dest"),
		}
		if err := app.Run(context.Background(), args); err != nil {
			t.Fatalf("Run() unexpected error: %v", err)
		}

		for _, set := range []string{"a", "b"} {
			got := backend.FileTags(t, filepath.Join(root, set, "dest", "01.mp3"))["artist"]
			if !reflect.DeepEqual(got, []string{"Foo"}) {
				t.Errorf("pair %s: destination artist = %v, want [Foo]", set, got)
			}
		}
	})
}
