// package tags provides dictionary-style access to audio file metadata,
// with a blacklist hiding non-transferable keys.
package tags

// Backend abstracts the external metadata library that parses and persists
// audio tags. This abstraction allows for easier testing and decoupling
// from concrete implementation.
type Backend interface {
	// Open parses path and returns a tag handle for it. Returns an error
	// wrapping [shared.ErrUnrecognizedFormat] when path is not recognized
	// as an audio file.
	Open(path string) (Handle, error)
}

// Handle is a mutable dictionary view over a single audio file's tags.
// Mutations are staged in memory; only Save touches the file on disk.
// Tag values are strings or lists of strings, nothing more is assumed.
type Handle interface {
	// Path returns the file path the handle was opened from.
	Path() string

	// Get returns the values stored under key, or nil when absent.
	Get(key string) []string

	// Set stages values under key. Returns an error wrapping
	// [shared.ErrUnsupportedKey] when the underlying format cannot hold
	// that key.
	Set(key string, values []string) error

	// Delete stages removal of key.
	Delete(key string)

	// Keys returns all present keys in sorted order.
	Keys() []string

	// Save persists staged changes to the backing file. Returns an error
	// wrapping [shared.ErrTagsUnsupported] when the format cannot hold
	// tags at all.
	Save() error
}
