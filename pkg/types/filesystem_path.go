// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath is a directory or file location as handed to the
	// scanner: a base directory, a search root (possibly relative to the
	// base) or a discovered project directory. Blank values are rejected
	// because filepath.Join would silently turn them into the base itself.
	FilesystemPath string

	// InvalidFilesystemPathError reports a blank FilesystemPath.
	InvalidFilesystemPathError struct {
		Value FilesystemPath
	}
)

func (p FilesystemPath) String() string { return string(p) }

// Validate rejects empty and whitespace-only paths.
func (p FilesystemPath) Validate() error {
	if strings.TrimSpace(string(p)) != "" {
		return nil
	}
	return &InvalidFilesystemPathError{Value: p}
}

func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: must not be blank", e.Value)
}

// Unwrap returns ErrInvalidFilesystemPath.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
