// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/projscan/projscan/internal/clauses"
	"github.com/projscan/projscan/internal/testutil"
	"github.com/projscan/projscan/pkg/types"
)

// multilevelSpec is the search configuration used with multilevelLayout.
const multilevelSpec = "root1;depth=2,root2;depth=1"

// multilevelDirs is the number of directories a full scan of multilevelLayout
// under multilevelSpec checks: A, A/P1, P2, Q, Q/P3, Q/deep, P4, P5, x.
const multilevelDirs = 9

// multilevelLayout holds five reachable projects P1..P5 plus decoys that must
// never be reported: P9 and P6 sit below their clause's depth, "nested" sits
// inside project P3.
var multilevelLayout = []testutil.WorkspaceEntry{
	testutil.Dir("root1/A"),
	testutil.Project("root1/A/P1"),
	testutil.Project("root1/P2"),
	testutil.Dir("root1/Q"),
	testutil.Project("root1/Q/P3"),
	testutil.Project("root1/Q/P3/nested"),
	testutil.Dir("root1/Q/deep"),
	testutil.Project("root1/Q/deep/P9"),
	testutil.Project("root2/P4"),
	testutil.Project("root2/P5"),
	testutil.Dir("root2/x"),
	testutil.Project("root2/x/P6"),
}

// nameClashLayout has project P1 in two depth-1 roots.
var nameClashLayout = []testutil.WorkspaceEntry{
	testutil.Project("root1/P1"),
	testutil.Project("root1/P2"),
	testutil.Project("root2/P0"),
	testutil.Project("root2/P1"),
}

const nameClashSpec = "root1;depth=1,root2;depth=1"

// fixtureFs describes a filesystem flavor the scanner tests run against.
type fixtureFs struct {
	name string
	make func(t *testing.T) (afero.Fs, string)
}

var fixtureFilesystems = []fixtureFs{
	{"memory", func(t *testing.T) (afero.Fs, string) {
		return afero.NewMemMapFs(), filepath.FromSlash("/ws")
	}},
	{"os", func(t *testing.T) (afero.Fs, string) {
		return afero.NewOsFs(), t.TempDir()
	}},
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFixtureScanner lays out entries on fs under base and opens a scanner for spec.
func newFixtureScanner(t *testing.T, fs afero.Fs, base string, entries []testutil.WorkspaceEntry, spec string) *Scanner {
	t.Helper()
	testutil.WriteWorkspace(t, fs, base, entries...)

	parsed, err := clauses.Parse(spec)
	if err != nil {
		t.Fatalf("clauses.Parse(%q) error = %v", spec, err)
	}
	search, err := NewSearchClauses(parsed, types.FilesystemPath(base))
	if err != nil {
		t.Fatalf("NewSearchClauses() error = %v", err)
	}
	return New(search, WithFs(fs), WithLogger(quietLogger()))
}

func ids(names ...string) []types.ProjectID {
	out := make([]types.ProjectID, len(names))
	for i, n := range names {
		out[i] = types.ProjectID(n)
	}
	return out
}
