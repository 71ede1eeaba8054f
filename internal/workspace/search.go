// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"fmt"

	"github.com/projscan/projscan/internal/clauses"
	"github.com/projscan/projscan/pkg/fspath"
	"github.com/projscan/projscan/pkg/types"
)

// DepthAttribute is the clause attribute holding the search depth.
const DepthAttribute = "depth"

// SearchClause is one root directory and the number of levels below it that
// are checked for projects.
type SearchClause struct {
	Root  types.FilesystemPath
	Depth types.SearchDepth
}

// String renders the clause as root;depth=N.
func (c SearchClause) String() string {
	return fmt.Sprintf("%s;%s=%d", c.Root, DepthAttribute, c.Depth)
}

// NewSearchClause converts a parsed clause. Relative roots are resolved
// against baseDir; a missing depth attribute means types.DefaultSearchDepth.
func NewSearchClause(c clauses.Clause, baseDir types.FilesystemPath) (SearchClause, error) {
	depth := types.DefaultSearchDepth
	if raw, ok := c.Attr(DepthAttribute); ok {
		d, err := types.ParseSearchDepth(raw)
		if err != nil {
			return SearchClause{}, &clauses.ConfigurationError{
				Input:  c.String(),
				Reason: "depth must be a positive integer",
				Cause:  err,
			}
		}
		depth = d
	}

	return SearchClause{
		Root:  fspath.Resolve(baseDir, types.FilesystemPath(c.Root)),
		Depth: depth,
	}, nil
}

// NewSearchClauses converts parsed clauses, preserving their order.
func NewSearchClauses(cs []clauses.Clause, baseDir types.FilesystemPath) ([]SearchClause, error) {
	search := make([]SearchClause, 0, len(cs))
	for _, c := range cs {
		sc, err := NewSearchClause(c, baseDir)
		if err != nil {
			return nil, err
		}
		search = append(search, sc)
	}
	return search, nil
}
