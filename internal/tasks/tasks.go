// package tasks implements tag copy operations between music collections.
//
// The core abstraction is CopyEngine, which pairs each destination file
// with its source counterpart and replaces the destination's tags with the
// source's, minus the blacklist. Per-pair outcomes are collected into a
// BatchSummary so a single bad pair never aborts a batch.
package tasks

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/DarwinAwardWinner/copytags/internal/library"
	"github.com/DarwinAwardWinner/copytags/internal/pathmap"
	"github.com/DarwinAwardWinner/copytags/internal/shared"
	"github.com/DarwinAwardWinner/copytags/internal/tags"
	"github.com/charmbracelet/log"
)

// PairStatus classifies the outcome of one file pair.
type PairStatus int

const (
	// PairCopied means tags were copied and persisted.
	PairCopied PairStatus = iota
	// PairSkipped means no source file could be resolved for the
	// destination; the destination was left untouched.
	PairSkipped
	// PairFailed means the copy was attempted but aborted; the
	// destination's on-disk tags are unchanged.
	PairFailed
)

func (s PairStatus) String() string {
	switch s {
	case PairCopied:
		return "copied"
	case PairSkipped:
		return "skipped"
	case PairFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PairResult represents the result of processing a single file pair.
type PairResult struct {
	Source string // Resolved source path, empty when resolution failed
	Dest   string // Destination path
	Status PairStatus
	Err    error // Reason for skip/failure, nil on success
}

// BatchSummary aggregates the per-pair results of one recursive copy.
type BatchSummary struct {
	Pairs   []PairResult
	Copied  int
	Skipped int
	Failed  int
}

func (s *BatchSummary) add(r PairResult) {
	s.Pairs = append(s.Pairs, r)
	switch r.Status {
	case PairCopied:
		s.Copied++
	case PairSkipped:
		s.Skipped++
	case PairFailed:
		s.Failed++
	}
}

// CopyEngine copies tags from a source collection onto a destination
// collection through a metadata backend.
type CopyEngine struct {
	backend tags.Backend
	logger  *log.Logger
}

// NewCopyEngine creates a CopyEngine with the provided backend and logger.
func NewCopyEngine(backend tags.Backend, logger *log.Logger) *CopyEngine {
	return &CopyEngine{backend: backend, logger: logger}
}

// CopyTags replaces the tags of dest with those of src, excluding
// blacklisted keys in both directions. The destination store inherits the
// source store's blacklist, so exclusion is symmetric: a blacklisted key
// is neither copied from src nor deleted from dest. Nothing touches the
// disk until the final write, so an aborted copy leaves dest unchanged.
func (e *CopyEngine) CopyTags(src, dest string) error {
	srcStore, err := tags.Open(e.backend, src, tags.DefaultBlacklist(), e.logger)
	if err != nil {
		return err
	}
	destStore, err := tags.Open(e.backend, dest, srcStore.Blacklist(), e.logger)
	if err != nil {
		return err
	}

	for _, key := range destStore.Keys() {
		destStore.Delete(key)
	}
	// Keys come back sorted, which keeps per-tag logging deterministic.
	for _, key := range srcStore.Keys() {
		values := srcStore.Get(key)
		e.logger.Debug("copying tag", "key", key, "values", values)
		destStore.Set(key, values)
	}

	if err := destStore.Write(); err != nil {
		if errors.Is(err, shared.ErrTagsUnsupported) {
			e.logger.Warn("no tags copied because destination format does not support tags", "dest", dest)
		}
		return err
	}
	return nil
}

// CopyTree copies tags onto every audio file under destDir from its
// counterpart under srcDir. A pair whose source cannot be resolved is
// skipped with an error logged; a pair whose copy fails is recorded as
// failed; the batch always runs to completion.
func (e *CopyEngine) CopyTree(srcDir, destDir string) (*BatchSummary, error) {
	srcDir, err := realpath(srcDir)
	if err != nil {
		return nil, fmt.Errorf("resolve source dir: %w", err)
	}
	destDir, err = realpath(destDir)
	if err != nil {
		return nil, fmt.Errorf("resolve destination dir: %w", err)
	}

	destFiles, err := library.ListMusicFiles(e.backend, e.logger, []string{destDir}, true)
	if err != nil {
		return nil, err
	}

	summary := &BatchSummary{}
	for _, destFile := range destFiles {
		srcFile, err := pathmap.FindSourceFile(destFile, srcDir, destDir)
		if err != nil {
			e.logger.Error("no source file for destination", "dest", destFile, "err", err)
			summary.add(PairResult{Dest: destFile, Status: PairSkipped, Err: err})
			continue
		}

		e.logger.Info("copying tags", "source", srcFile, "dest", destFile)
		if err := e.CopyTags(srcFile, destFile); err != nil {
			if !errors.Is(err, shared.ErrTagsUnsupported) {
				e.logger.Error("copy failed", "source", srcFile, "dest", destFile, "err", err)
			}
			summary.add(PairResult{Source: srcFile, Dest: destFile, Status: PairFailed, Err: err})
			continue
		}
		summary.add(PairResult{Source: srcFile, Dest: destFile, Status: PairCopied})
	}
	return summary, nil
}

// realpath resolves symlinks and returns an absolute path, like
// realpath(1).
func realpath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
