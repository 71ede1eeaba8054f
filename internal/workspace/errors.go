// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"errors"
	"fmt"

	"github.com/projscan/projscan/pkg/types"
)

var (
	// ErrProjectNotFound is the sentinel error wrapped by NotFoundError.
	ErrProjectNotFound = errors.New("project not found")
	// ErrDuplicateProject is the sentinel error wrapped by UniquenessViolationError.
	ErrDuplicateProject = errors.New("duplicate project id")
	// ErrFilesystem is the sentinel error wrapped by FilesystemError.
	ErrFilesystem = errors.New("workspace filesystem error")
)

type (
	// NotFoundError is returned when the whole search space has been scanned
	// without finding the requested project.
	NotFoundError struct {
		ID types.ProjectID
	}

	// UniquenessViolationError is returned when two directories yield the same
	// project id. FirstDir was discovered earlier; SecondDir triggered the error.
	UniquenessViolationError struct {
		ID        types.ProjectID
		FirstDir  types.FilesystemPath
		SecondDir types.FilesystemPath
	}

	// FilesystemError is returned when listing or inspecting a directory fails.
	FilesystemError struct {
		Op   string
		Path types.FilesystemPath
		Err  error
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("project %q not found in workspace", e.ID)
}

// Unwrap returns ErrProjectNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrProjectNotFound }

// Error implements the error interface.
func (e *UniquenessViolationError) Error() string {
	return fmt.Sprintf(
		"project %q appears in two places in the workspace:\n"+
			"  - %s\n"+
			"  - %s",
		e.ID, e.FirstDir, e.SecondDir)
}

// Unwrap returns ErrDuplicateProject for errors.Is() compatibility.
func (e *UniquenessViolationError) Unwrap() error { return ErrDuplicateProject }

// Error implements the error interface.
func (e *FilesystemError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns both ErrFilesystem and the underlying OS error.
func (e *FilesystemError) Unwrap() []error { return []error{ErrFilesystem, e.Err} }
