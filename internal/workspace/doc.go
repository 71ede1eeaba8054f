// SPDX-License-Identifier: MPL-2.0

// Package workspace locates projects inside a statically laid out directory
// tree.
//
// A Scanner walks an ordered list of search clauses (root directory plus a
// maximum depth) depth-first, siblings in lexicographic order, and treats a
// directory containing project.MarkerFile as a project whose id is the
// directory name. Scanning is incremental: each query does the minimum amount
// of directory listing needed to answer it, and everything discovered is
// cached for later queries, so no directory is ever examined twice by the
// same Scanner. The tree is assumed not to change while a Scanner is in use.
//
// Project ids must be unique across the workspace. The moment a second
// directory with an already-seen id is discovered, the query that found it
// fails with a *UniquenessViolationError and the Scanner refuses any further
// work.
//
// A Scanner is not safe for concurrent use. SyncScanner serializes access to
// one, and Registry keeps one SyncScanner per workspace configuration.
//
// File organization:
//   - search.go: SearchClause and conversion from parsed clauses
//   - frame.go: lazy, sorted, single-pass subdirectory enumeration
//   - scanner.go: the Scanner engine and its queries
//   - sync.go, registry.go: shared access for multi-goroutine callers
package workspace
