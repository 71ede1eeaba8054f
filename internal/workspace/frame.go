// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"os"
	"sort"

	"github.com/spf13/afero"

	"github.com/projscan/projscan/pkg/fspath"
	"github.com/projscan/projscan/pkg/types"
)

// frame holds the not yet visited subdirectories of one directory. The
// listing is read and sorted once, when the frame is created.
type frame struct {
	dir     types.FilesystemPath
	subdirs []types.FilesystemPath
	cursor  int
}

func newFrame(fs afero.Fs, dir types.FilesystemPath) (*frame, error) {
	names, err := listSubdirs(fs, dir)
	if err != nil {
		return nil, err
	}

	subdirs := make([]types.FilesystemPath, len(names))
	for i, name := range names {
		subdirs[i] = fspath.JoinStr(dir, name)
	}
	return &frame{dir: dir, subdirs: subdirs}, nil
}

func (f *frame) hasNext() bool {
	return f.cursor < len(f.subdirs)
}

// next returns the next subdirectory. Callers must check hasNext first.
func (f *frame) next() types.FilesystemPath {
	if !f.hasNext() {
		panic("workspace: next called on exhausted frame " + string(f.dir))
	}
	dir := f.subdirs[f.cursor]
	f.cursor++
	return dir
}

// listSubdirs returns the names of the directories directly inside dir,
// sorted lexicographically. Symlinks are followed; dangling ones are skipped.
func listSubdirs(fs afero.Fs, dir types.FilesystemPath) ([]string, error) {
	entries, err := afero.ReadDir(fs, string(dir))
	if err != nil {
		return nil, &FilesystemError{Op: "list directory", Path: dir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		isDir := entry.IsDir()
		if entry.Mode()&os.ModeSymlink != 0 {
			target, statErr := fs.Stat(string(fspath.JoinStr(dir, entry.Name())))
			isDir = statErr == nil && target.IsDir()
		}
		if isDir {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
