package shared

import "fmt"

var (
	// Path mapping errors
	ErrPrefixMismatch = fmt.Errorf("path does not start with prefix")
	ErrNoMatchingFile = fmt.Errorf("no file with matching basename")

	// Tag store errors
	ErrUnrecognizedFormat = fmt.Errorf("unrecognized audio format")
	ErrTagsUnsupported    = fmt.Errorf("format does not support tags")
	ErrUnsupportedKey     = fmt.Errorf("tag key unsupported by format")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
