// SPDX-License-Identifier: MPL-2.0

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/projscan/projscan/pkg/types"
)

func TestIsProject(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/ws/P1", 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := fs.MkdirAll("/ws/plain", 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := afero.WriteFile(fs, "/ws/P1/"+MarkerFile, []byte("Bundle-Version: 1.0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		dir  types.FilesystemPath
		want bool
	}{
		{"/ws/P1", true},
		{"/ws/plain", false},
		{"/ws/missing", false},
	}
	for _, tt := range tests {
		got, err := IsProject(fs, tt.dir)
		if err != nil {
			t.Fatalf("IsProject(%q) unexpected error: %v", tt.dir, err)
		}
		if got != tt.want {
			t.Errorf("IsProject(%q) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestIsProject_OsFs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, MarkerFile), nil, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	ok, err := IsProject(afero.NewOsFs(), types.FilesystemPath(dir))
	if err != nil {
		t.Fatalf("IsProject() error = %v", err)
	}
	if !ok {
		t.Error("IsProject() = false for directory with marker file")
	}
}

func TestMarkerPath(t *testing.T) {
	t.Parallel()

	got := MarkerPath(types.FilesystemPath(filepath.Join("ws", "P1")))
	want := types.FilesystemPath(filepath.Join("ws", "P1", MarkerFile))
	if got != want {
		t.Errorf("MarkerPath() = %q, want %q", got, want)
	}
}
