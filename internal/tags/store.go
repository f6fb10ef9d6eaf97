package tags

import (
	"errors"

	"github.com/DarwinAwardWinner/copytags/internal/shared"
	"github.com/charmbracelet/log"
)

// Store is a capability-restricted view over a Handle: blacklisted keys are
// invisible to Get, Set, Delete and Keys. Attempts to touch them are
// dropped with a debug log rather than erroring, and a key the underlying
// format rejects is likewise a logged skip, since that is a common
// occurrence when copying onto MP3/M4A.
type Store struct {
	handle    Handle
	blacklist Blacklist
	logger    *log.Logger
}

// Open loads path through backend and wraps the handle with blacklist.
// The blacklist should come from [NewBlacklist] or [DefaultBlacklist] so
// the reserved-key rule is present.
func Open(backend Backend, path string, blacklist Blacklist, logger *log.Logger) (*Store, error) {
	handle, err := backend.Open(path)
	if err != nil {
		return nil, err
	}
	return &Store{handle: handle, blacklist: blacklist, logger: logger}, nil
}

// Path returns the path of the backing file.
func (s *Store) Path() string { return s.handle.Path() }

// Blacklist returns the store's blacklist, so a destination store can be
// opened with the exact rules of its source.
func (s *Store) Blacklist() Blacklist { return s.blacklist }

// Blacklisted reports whether key is hidden by the blacklist.
func (s *Store) Blacklisted(key string) bool { return s.blacklist.Matches(key) }

// Get returns the values under key, or nil when key is absent or
// blacklisted.
func (s *Store) Get(key string) []string {
	if s.Blacklisted(key) {
		s.logger.Debug("attempted to get blacklisted key", "key", key)
		return nil
	}
	return s.handle.Get(key)
}

// Set stages values under key. Blacklisted and format-unsupported keys are
// skipped.
func (s *Store) Set(key string, values []string) {
	if s.Blacklisted(key) {
		s.logger.Debug("attempted to set blacklisted key", "key", key)
		return
	}
	if err := s.handle.Set(key, values); err != nil {
		if errors.Is(err, shared.ErrUnsupportedKey) {
			s.logger.Debug("skipping unsupported tag", "key", key, "file", s.handle.Path())
			return
		}
		s.logger.Debug("failed to set tag", "key", key, "file", s.handle.Path(), "err", err)
	}
}

// Delete stages removal of key unless it is blacklisted.
func (s *Store) Delete(key string) {
	if s.Blacklisted(key) {
		s.logger.Debug("attempted to delete blacklisted key", "key", key)
		return
	}
	s.handle.Delete(key)
}

// Keys returns the handle's keys minus blacklisted ones, in the handle's
// (sorted) order.
func (s *Store) Keys() []string {
	keys := []string{}
	for _, key := range s.handle.Keys() {
		if !s.Blacklisted(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Len returns the number of visible keys.
func (s *Store) Len() int { return len(s.Keys()) }

// Write persists all staged changes. This is the only point at which the
// file on disk is mutated.
func (s *Store) Write() error { return s.handle.Save() }
