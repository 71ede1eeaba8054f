// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/projscan/projscan/pkg/types"
)

// ExitError carries the process status out of a command: 2 when a project
// is not found, 3 when the workspace holds a duplicate project, 1 otherwise.
// Execute unwraps it once fang has printed the message.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("projscan: exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap exposes the scanner or config error for errors.Is and errors.As.
func (e *ExitError) Unwrap() error { return e.Err }
