// package library enumerates the audio files of a music collection.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DarwinAwardWinner/copytags/internal/tags"
	"github.com/charmbracelet/log"
)

// ListMusicFiles recursively searches paths for files the backend
// recognizes as audio and returns their resolved absolute paths, sorted.
//
// Directory entries are walked depth-first, following symbolic links into
// directories. When ignoreHidden is true, files and directories whose name
// starts with "." are skipped before descending. Entries the backend does
// not recognize are dropped without logging, since arbitrary files sitting
// in a music tree are routine. The result is deduplicated by resolved
// path, so two links to the same file yield one entry.
func ListMusicFiles(backend tags.Backend, logger *log.Logger, paths []string, ignoreHidden bool) ([]string, error) {
	seen := map[string]struct{}{}
	visited := map[string]struct{}{}

	probe := func(path string) {
		resolved, err := resolve(path)
		if err != nil {
			logger.Debug("skipping unresolvable path", "path", path, "err", err)
			return
		}
		if _, ok := seen[resolved]; ok {
			return
		}
		if _, err := backend.Open(path); err != nil {
			// Not an audio file.
			return
		}
		seen[resolved] = struct{}{}
	}

	var walk func(dir string)
	walk = func(dir string) {
		resolved, err := resolve(dir)
		if err != nil {
			logger.Debug("skipping unresolvable directory", "dir", dir, "err", err)
			return
		}
		if _, ok := visited[resolved]; ok {
			// Already walked, possibly via a symlink cycle.
			return
		}
		visited[resolved] = struct{}{}

		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Debug("skipping unreadable directory", "dir", dir, "err", err)
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			if ignoreHidden && strings.HasPrefix(name, ".") {
				continue
			}
			full := filepath.Join(dir, name)
			if isDir(entry, full) {
				walk(full)
			} else {
				probe(full)
			}
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if info.IsDir() {
			walk(p)
		} else {
			probe(p)
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// isDir reports whether entry is a directory, following a symlink if
// necessary.
func isDir(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink != 0 {
		info, err := os.Stat(path)
		return err == nil && info.IsDir()
	}
	return false
}

func resolve(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
