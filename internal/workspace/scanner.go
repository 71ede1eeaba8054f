// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/afero"

	"github.com/projscan/projscan/internal/clauses"
	"github.com/projscan/projscan/pkg/fspath"
	"github.com/projscan/projscan/pkg/project"
	"github.com/projscan/projscan/pkg/types"
)

type (
	// Scanner finds projects incrementally across an ordered list of search
	// clauses and caches everything it has discovered. It is not safe for
	// concurrent use; see SyncScanner.
	Scanner struct {
		fs     afero.Fs
		logger *slog.Logger

		search     []SearchClause
		nextClause int
		depth      types.SearchDepth
		stack      []*frame

		cache map[types.ProjectID]Project
		order []types.ProjectID

		visited   int
		exhausted bool
		// failure is set by the first uniqueness violation or filesystem
		// error; once set, every query returns it.
		failure error
	}

	// Option configures a Scanner.
	Option func(*Scanner)
)

// WithFs sets the filesystem the scanner reads. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *Scanner) {
		s.fs = fs
	}
}

// WithLogger sets the logger used for scan tracing. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New creates a Scanner over the given search clauses, explored in order.
func New(search []SearchClause, opts ...Option) *Scanner {
	s := &Scanner{
		search: slices.Clone(search),
		cache:  make(map[types.ProjectID]Project),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Open parses a clause specification such as "root1;depth=2,root2", expands
// environment variables in its roots, resolves them against baseDir and
// returns a Scanner for the result.
func Open(spec string, baseDir types.FilesystemPath, opts ...Option) (*Scanner, error) {
	parsed, err := clauses.Parse(spec)
	if err != nil {
		return nil, err
	}
	parsed, err = clauses.ExpandRoots(parsed, nil)
	if err != nil {
		return nil, err
	}
	search, err := NewSearchClauses(parsed, baseDir)
	if err != nil {
		return nil, err
	}
	return New(search, opts...), nil
}

// FindProject returns the directory of the project with the given id,
// scanning only as far as needed. Ids that were already discovered are
// answered from the cache without touching the filesystem. When the whole
// search space holds no such project the error wraps ErrProjectNotFound;
// an id that cannot be a directory name gets the same answer without a scan.
func (s *Scanner) FindProject(id types.ProjectID) (types.FilesystemPath, error) {
	if s.failure != nil {
		return "", s.failure
	}
	if p, ok := s.cache[id]; ok {
		return p.dir, nil
	}
	if id.Validate() != nil {
		return "", &NotFoundError{ID: id}
	}

	for {
		p, ok, err := s.next()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", &NotFoundError{ID: id}
		}
		if p.id == id {
			return p.dir, nil
		}
	}
}

// FindAllProjects scans the remaining search space and returns the ids of all
// projects in discovery order. Scanning resumes where earlier queries stopped.
// If a duplicate id is found, the error is returned and no list is produced.
func (s *Scanner) FindAllProjects() ([]types.ProjectID, error) {
	if err := s.drain(); err != nil {
		return nil, err
	}
	return slices.Clone(s.order), nil
}

// Projects is FindAllProjects returning full records instead of ids.
func (s *Scanner) Projects() ([]Project, error) {
	if err := s.drain(); err != nil {
		return nil, err
	}
	projects := make([]Project, len(s.order))
	for i, id := range s.order {
		projects[i] = s.cache[id]
	}
	return projects, nil
}

// VisitedCount returns the number of directories checked for project-hood so far.
func (s *Scanner) VisitedCount() int { return s.visited }

// Exhausted reports whether the whole search space has been scanned.
func (s *Scanner) Exhausted() bool { return s.exhausted }

// Err returns the error that stopped the scanner, or nil.
func (s *Scanner) Err() error { return s.failure }

func (s *Scanner) drain() error {
	for {
		_, ok, err := s.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// next advances the depth-first search until it discovers one new project
// (ok is true) or runs out of search space (ok is false). It never revisits a
// directory, and once the space is exhausted it keeps reporting so.
func (s *Scanner) next() (p Project, ok bool, err error) {
	if s.failure != nil {
		return Project{}, false, s.failure
	}
	if s.exhausted {
		return Project{}, false, nil
	}

	for {
		if len(s.stack) == 0 {
			if s.nextClause >= len(s.search) {
				s.exhausted = true
				s.logger.Debug("workspace scan complete", "visited", s.visited, "projects", len(s.order))
				return Project{}, false, nil
			}
			if err := s.enterClause(s.search[s.nextClause]); err != nil {
				return Project{}, false, s.fail(err)
			}
			s.nextClause++
			continue
		}

		top := s.stack[len(s.stack)-1]
		if !top.hasNext() {
			s.stack[len(s.stack)-1] = nil
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}

		dir := top.next()
		s.visited++
		isProject, err := project.IsProject(s.fs, dir)
		if err != nil {
			return Project{}, false, s.fail(&FilesystemError{Op: "inspect directory", Path: dir, Err: err})
		}

		if isProject {
			found := newProject(dir)
			prev, seen := s.cache[found.id]
			if !seen {
				s.cache[found.id] = found
				s.order = append(s.order, found.id)
				s.logger.Debug("project discovered", "id", found.id, "dir", found.dir, "visited", s.visited)
				return found, true, nil
			}
			if fspath.Clean(prev.dir) != fspath.Clean(found.dir) {
				return Project{}, false, s.fail(&UniquenessViolationError{
					ID:        found.id,
					FirstDir:  prev.dir,
					SecondDir: found.dir,
				})
			}
			// Overlapping clauses can reach the same directory twice.
			continue
		}

		if types.SearchDepth(len(s.stack)) < s.depth {
			child, err := newFrame(s.fs, dir)
			if err != nil {
				return Project{}, false, s.fail(err)
			}
			s.stack = append(s.stack, child)
		}
	}
}

// enterClause pushes the root frame of a clause. A root that does not exist
// contributes nothing.
func (s *Scanner) enterClause(clause SearchClause) error {
	exists, err := afero.DirExists(s.fs, string(clause.Root))
	if err != nil {
		return &FilesystemError{Op: "stat search root", Path: clause.Root, Err: err}
	}
	if !exists {
		s.logger.Warn("search root does not exist, skipping", "root", clause.Root)
		return nil
	}

	root, err := newFrame(s.fs, clause.Root)
	if err != nil {
		return err
	}
	s.depth = clause.Depth
	s.stack = append(s.stack, root)
	s.logger.Debug("entering search clause", "clause", clause.String())
	return nil
}

func (s *Scanner) fail(err error) error {
	s.failure = err
	s.stack = nil
	s.logger.Debug("workspace scan stopped", "error", err)
	return err
}

// String summarizes the scanner state for diagnostics.
func (s *Scanner) String() string {
	return fmt.Sprintf("workspace.Scanner{clauses: %d/%d, depth: %d, projects: %d, visited: %d, exhausted: %v}",
		s.nextClause, len(s.search), len(s.stack), len(s.order), s.visited, s.exhausted)
}
