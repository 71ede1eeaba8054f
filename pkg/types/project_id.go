// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidProjectID is the sentinel error wrapped by InvalidProjectIDError.
var ErrInvalidProjectID = errors.New("invalid project id")

type (
	// ProjectID identifies a project inside a workspace. By convention it is
	// the name of the project's directory, so it never contains a path
	// separator.
	ProjectID string

	// InvalidProjectIDError is returned when a ProjectID is empty, is "." or
	// "..", or contains a path separator.
	InvalidProjectIDError struct {
		Value ProjectID
	}
)

// String returns the string representation of the ProjectID.
func (id ProjectID) String() string { return string(id) }

// Validate returns an error if the ProjectID cannot name a directory.
func (id ProjectID) Validate() error {
	s := string(id)
	if s == "" || s == "." || s == ".." || strings.ContainsAny(s, "/"+string(filepath.Separator)) {
		return &InvalidProjectIDError{Value: id}
	}
	return nil
}

// Error implements the error interface for InvalidProjectIDError.
func (e *InvalidProjectIDError) Error() string {
	return fmt.Sprintf("invalid project id %q: must be a single non-empty directory name", e.Value)
}

// Unwrap returns ErrInvalidProjectID for errors.Is() compatibility.
func (e *InvalidProjectIDError) Unwrap() error { return ErrInvalidProjectID }
