// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/projscan/projscan/pkg/project"
	"github.com/projscan/projscan/pkg/types"
)

// WorkspaceEntry is one directory of a test workspace. Path is slash
// separated and relative to the workspace base.
type WorkspaceEntry struct {
	Path    string
	Project bool
}

// Dir describes a plain directory.
func Dir(path string) WorkspaceEntry {
	return WorkspaceEntry{Path: path}
}

// Project describes a directory holding a project marker file.
func Project(path string) WorkspaceEntry {
	return WorkspaceEntry{Path: path, Project: true}
}

// WriteWorkspace creates entries below base on fs, in order.
func WriteWorkspace(t testing.TB, fs afero.Fs, base string, entries ...WorkspaceEntry) {
	t.Helper()
	for _, e := range entries {
		dir := filepath.Join(base, filepath.FromSlash(e.Path))
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
		if !e.Project {
			continue
		}
		marker := string(project.MarkerPath(types.FilesystemPath(dir)))
		if err := afero.WriteFile(fs, marker, []byte("# "+e.Path+"\n"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", marker, err)
		}
	}
}
