// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"github.com/projscan/projscan/pkg/fspath"
	"github.com/projscan/projscan/pkg/types"
)

// Project is a discovered project: its id and the directory holding it.
// The id is always the final element of the directory path.
type Project struct {
	id  types.ProjectID
	dir types.FilesystemPath
}

func newProject(dir types.FilesystemPath) Project {
	return Project{id: types.ProjectID(fspath.Base(dir)), dir: dir}
}

// ID returns the project id.
func (p Project) ID() types.ProjectID { return p.id }

// Dir returns the project directory.
func (p Project) Dir() types.FilesystemPath { return p.dir }

// String returns "id dir".
func (p Project) String() string { return string(p.id) + " " + string(p.dir) }
