// package pathmap resolves destination files back to their source
// counterparts across a mirrored directory tree.
//
// A transcoded library mirrors its source tree under a different root and
// usually a different file extension, so resolution is a root-prefix
// substitution followed by an extension-agnostic basename lookup.
package pathmap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DarwinAwardWinner/copytags/internal/shared"
)

// SubstitutePrefix strips oldRoot from the front of path and replaces it
// with newRoot. The prefix comparison is segment-wise, so "/a/bc" does not
// start with "/a/b". Returns [shared.ErrPrefixMismatch] when path is not
// under oldRoot.
func SubstitutePrefix(path, oldRoot, newRoot string) (string, error) {
	sep := string(filepath.Separator)
	pathSegs := strings.Split(filepath.Clean(path), sep)
	oldSegs := strings.Split(filepath.Clean(oldRoot), sep)
	newSegs := strings.Split(filepath.Clean(newRoot), sep)

	if len(pathSegs) < len(oldSegs) {
		return "", fmt.Errorf("%w: path %q is shorter than prefix %q", shared.ErrPrefixMismatch, path, oldRoot)
	}
	for i, seg := range oldSegs {
		if pathSegs[i] != seg {
			return "", fmt.Errorf("%w: path %q does not start with %q", shared.ErrPrefixMismatch, path, oldRoot)
		}
	}

	full := append(append([]string{}, newSegs...), pathSegs[len(oldSegs):]...)
	// An absolute new root splits into a leading empty segment, which must
	// become the root separator rather than be dropped by Join.
	if full[0] == "" {
		full[0] = sep
	}
	return filepath.Join(full...), nil
}

// FindFileAnyExt returns an existing file whose path equals pathNoExt plus
// an arbitrary (possibly empty) extension. The containing directory is
// scanned in lexicographic order and the first basename match wins, so with
// both "track.flac" and "track.m4a" present the alphabetically earlier
// extension is chosen. Returns [shared.ErrNoMatchingFile] when nothing
// matches.
func FindFileAnyExt(pathNoExt string) (string, error) {
	dir := filepath.Dir(pathNoExt)
	base := filepath.Base(pathNoExt)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("list %s: %w", dir, err)
	}

	// os.ReadDir returns entries sorted by name.
	for _, entry := range entries {
		name := entry.Name()
		if strings.TrimSuffix(name, filepath.Ext(name)) == base {
			return filepath.Join(dir, name), nil
		}
	}
	return "", fmt.Errorf("%w: no file in %s with basename %q", shared.ErrNoMatchingFile, dir, base)
}

// FindSourceFile locates the source counterpart of destFile: the file under
// srcRoot at the same relative position, ignoring its extension.
func FindSourceFile(destFile, srcRoot, destRoot string) (string, error) {
	mapped, err := SubstitutePrefix(destFile, destRoot, srcRoot)
	if err != nil {
		return "", err
	}
	noExt := strings.TrimSuffix(mapped, filepath.Ext(mapped))
	return FindFileAnyExt(noExt)
}
