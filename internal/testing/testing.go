// package testing contains shared testing utilities
package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/DarwinAwardWinner/copytags/internal/shared"
	"github.com/DarwinAwardWinner/copytags/internal/tags"
)

// FakeBackend is a test double for [tags.Backend]. It recognizes files by
// extension and keeps tag maps in memory, keyed by absolute path, so tag
// logic is testable without real audio files.
type FakeBackend struct {
	mu sync.Mutex

	// AudioExts lists the extensions (with dot) treated as audio.
	AudioExts []string
	// Tags holds the current tag map per absolute file path.
	Tags map[string]map[string][]string
	// UnsupportedKeys are rejected by Set with [shared.ErrUnsupportedKey].
	UnsupportedKeys map[string]bool
	// Tagless paths fail Save with [shared.ErrTagsUnsupported].
	Tagless map[string]bool
}

// NewFakeBackend creates a FakeBackend recognizing the given extensions.
func NewFakeBackend(audioExts ...string) *FakeBackend {
	return &FakeBackend{
		AudioExts:       audioExts,
		Tags:            map[string]map[string][]string{},
		UnsupportedKeys: map[string]bool{},
		Tagless:         map[string]bool{},
	}
}

// AddFile registers path as a known audio file with the given tags,
// creating an empty placeholder on disk so enumeration can find it.
func (b *FakeBackend) AddFile(t *testing.T, path string, fileTags map[string][]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
	b.SetTags(t, path, fileTags)
}

// SetTags stores a copy of fileTags for path without touching the disk.
func (b *FakeBackend) SetTags(t *testing.T, path string, fileTags map[string][]string) {
	t.Helper()
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("Failed to resolve %s: %v", path, err)
	}
	copied := map[string][]string{}
	for k, v := range fileTags {
		copied[k] = append([]string(nil), v...)
	}
	b.mu.Lock()
	b.Tags[abs] = copied
	b.mu.Unlock()
}

// FileTags returns the persisted tag map for path.
func (b *FakeBackend) FileTags(t *testing.T, path string) map[string][]string {
	t.Helper()
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("Failed to resolve %s: %v", path, err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Tags[abs]
}

// Open implements [tags.Backend].
func (b *FakeBackend) Open(path string) (tags.Handle, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrUnrecognizedFormat, path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrUnrecognizedFormat, path, err)
	}
	recognized := false
	for _, ext := range b.AudioExts {
		if filepath.Ext(abs) == ext {
			recognized = true
			break
		}
	}
	if !recognized {
		return nil, fmt.Errorf("%w: %s", shared.ErrUnrecognizedFormat, path)
	}

	b.mu.Lock()
	stored := b.Tags[abs]
	b.mu.Unlock()
	staged := map[string][]string{}
	for k, v := range stored {
		staged[k] = append([]string(nil), v...)
	}
	return &FakeHandle{backend: b, path: abs, staged: staged}, nil
}

// FakeHandle is the in-memory [tags.Handle] returned by FakeBackend.
type FakeHandle struct {
	backend *FakeBackend
	path    string
	staged  map[string][]string
}

func (h *FakeHandle) Path() string { return h.path }

func (h *FakeHandle) Get(key string) []string { return h.staged[key] }

func (h *FakeHandle) Set(key string, values []string) error {
	if h.backend.UnsupportedKeys[key] {
		return fmt.Errorf("%w: %q", shared.ErrUnsupportedKey, key)
	}
	h.staged[key] = append([]string(nil), values...)
	return nil
}

func (h *FakeHandle) Delete(key string) { delete(h.staged, key) }

func (h *FakeHandle) Keys() []string {
	keys := make([]string, 0, len(h.staged))
	for k := range h.staged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (h *FakeHandle) Save() error {
	if h.backend.Tagless[h.path] {
		return fmt.Errorf("%w: %s", shared.ErrTagsUnsupported, h.path)
	}
	copied := map[string][]string{}
	for k, v := range h.staged {
		copied[k] = append([]string(nil), v...)
	}
	h.backend.mu.Lock()
	h.backend.Tags[h.path] = copied
	h.backend.mu.Unlock()
	return nil
}

// WriteFile creates path (and its parents) with the given contents.
func WriteFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
