// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/projscan/projscan/internal/clauses"
	"github.com/projscan/projscan/pkg/fspath"
	"github.com/projscan/projscan/pkg/types"
)

// DefaultRegistrySize is the number of workspaces a Registry keeps scanners for.
const DefaultRegistrySize = 16

// Registry hands out one SyncScanner per workspace configuration (base
// directory plus clause specification) so that repeated lookups in a session
// share one cache. The least recently used scanners are dropped once more
// than the configured number of workspaces are in use; callers holding a
// dropped scanner can keep using it.
type Registry struct {
	mu       sync.Mutex
	opts     []Option
	scanners *lru.Cache[string, *SyncScanner]
}

// NewRegistry creates a Registry holding at most size scanners. Options are
// applied to every scanner it creates.
func NewRegistry(size int, opts ...Option) (*Registry, error) {
	if size <= 0 {
		size = DefaultRegistrySize
	}
	cache, err := lru.New[string, *SyncScanner](size)
	if err != nil {
		return nil, fmt.Errorf("creating scanner registry: %w", err)
	}
	return &Registry{opts: opts, scanners: cache}, nil
}

// Scanner returns the scanner for spec resolved against baseDir, creating it
// on first use. Specifications that differ only in formatting share a scanner.
func (r *Registry) Scanner(baseDir types.FilesystemPath, spec string) (*SyncScanner, error) {
	absBase, err := fspath.Abs(baseDir)
	if err != nil {
		return nil, err
	}
	parsed, err := clauses.Parse(spec)
	if err != nil {
		return nil, err
	}
	key := string(absBase) + "\x00" + clauses.Format(parsed)

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.scanners.Get(key); ok {
		return s, nil
	}

	scanner, err := Open(spec, absBase, r.opts...)
	if err != nil {
		return nil, err
	}
	s := NewSyncScanner(scanner)
	r.scanners.Add(key, s)
	return s, nil
}

// Len returns the number of scanners currently held.
func (r *Registry) Len() int {
	return r.scanners.Len()
}

// Purge drops every held scanner.
func (r *Registry) Purge() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scanners.Purge()
}
