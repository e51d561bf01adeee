// File: pkg/combine/errors.go
package combine

import "errors"

// Errors that abort a run. Per-file and per-directory problems are logged and
// never returned.
var (
	// ErrConfiguration reports an invalid root, option value or config file.
	ErrConfiguration = errors.New("configuration error")
	// ErrOutputWrite reports that the output file could not be created or written.
	ErrOutputWrite = errors.New("output write error")
	// ErrAborted is returned when the user declines to overwrite an existing file.
	ErrAborted = errors.New("aborted by user")
)
