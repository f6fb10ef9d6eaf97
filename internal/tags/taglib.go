package tags

import (
	"errors"
	"fmt"
	"sort"

	"github.com/DarwinAwardWinner/copytags/internal/shared"
	"go.senan.xyz/taglib"
)

// TagLibBackend implements Backend on top of [go.senan.xyz/taglib], which
// covers every common audio container (MP3, FLAC, M4A, Ogg, ...).
type TagLibBackend struct{}

// NewTagLibBackend creates a Backend backed by TagLib.
func NewTagLibBackend() *TagLibBackend {
	return &TagLibBackend{}
}

// Open reads the full tag map of path. Files TagLib cannot identify map to
// [shared.ErrUnrecognizedFormat].
func (TagLibBackend) Open(path string) (Handle, error) {
	m, err := taglib.ReadTags(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrUnrecognizedFormat, path, err)
	}
	return &taglibHandle{path: path, tags: m}, nil
}

type taglibHandle struct {
	path string
	tags map[string][]string
}

func (h *taglibHandle) Path() string { return h.path }

func (h *taglibHandle) Get(key string) []string { return h.tags[key] }

// Set never rejects a key: TagLib property maps accept arbitrary keys for
// every format it writes.
func (h *taglibHandle) Set(key string, values []string) error {
	h.tags[key] = append([]string(nil), values...)
	return nil
}

func (h *taglibHandle) Delete(key string) { delete(h.tags, key) }

func (h *taglibHandle) Keys() []string {
	keys := make([]string, 0, len(h.tags))
	for k := range h.tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save replaces the on-disk tags with the staged map in one write.
func (h *taglibHandle) Save() error {
	if err := taglib.WriteTags(h.path, h.tags, taglib.Clear); err != nil {
		if errors.Is(err, taglib.ErrSavingFile) {
			return fmt.Errorf("%w: %s: %v", shared.ErrTagsUnsupported, h.path, err)
		}
		return fmt.Errorf("write tags to %s: %w", h.path, err)
	}
	return nil
}
