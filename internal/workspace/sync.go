// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"sync"

	"github.com/projscan/projscan/pkg/types"
)

// SyncScanner serializes access to a Scanner so several goroutines of one
// build session can share its cache. Queries still run one at a time.
type SyncScanner struct {
	mu      sync.Mutex
	scanner *Scanner
}

// NewSyncScanner wraps s. The caller must not use s directly afterwards.
func NewSyncScanner(s *Scanner) *SyncScanner {
	return &SyncScanner{scanner: s}
}

// FindProject is Scanner.FindProject under the lock.
func (s *SyncScanner) FindProject(id types.ProjectID) (types.FilesystemPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanner.FindProject(id)
}

// FindAllProjects is Scanner.FindAllProjects under the lock.
func (s *SyncScanner) FindAllProjects() ([]types.ProjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanner.FindAllProjects()
}

// Projects is Scanner.Projects under the lock.
func (s *SyncScanner) Projects() ([]Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanner.Projects()
}

// VisitedCount is Scanner.VisitedCount under the lock.
func (s *SyncScanner) VisitedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanner.VisitedCount()
}

// Exhausted is Scanner.Exhausted under the lock.
func (s *SyncScanner) Exhausted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanner.Exhausted()
}

// Err is Scanner.Err under the lock.
func (s *SyncScanner) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanner.Err()
}
