// SPDX-License-Identifier: MPL-2.0

// Package project owns the on-disk convention that makes a directory a
// project: the presence of the marker file MarkerFile. Loading and
// interpreting the marker's contents belongs to higher layers.
package project

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/projscan/projscan/pkg/fspath"
	"github.com/projscan/projscan/pkg/types"
)

// MarkerFile is the file whose presence identifies a project directory.
const MarkerFile = "bnd.bnd"

// IsProject reports whether dir contains the project marker file.
// A missing marker is not an error; any other stat failure is returned.
func IsProject(fs afero.Fs, dir types.FilesystemPath) (bool, error) {
	ok, err := afero.Exists(fs, string(MarkerPath(dir)))
	if err != nil {
		return false, fmt.Errorf("checking for %s in %s: %w", MarkerFile, dir, err)
	}
	return ok, nil
}

// MarkerPath returns the path of the marker file inside dir.
func MarkerPath(dir types.FilesystemPath) types.FilesystemPath {
	return fspath.JoinStr(dir, MarkerFile)
}
