// SPDX-License-Identifier: MPL-2.0

// Package clauses parses the declarative search-root syntax used to configure
// the workspace scanner, for example:
//
//	root1;depth=2,root2;depth=1
//
// A clause is a root directory name followed by zero or more `name=value`
// attributes separated by semicolons. Clauses are separated by commas and
// keep their declaration order. Attribute values may be double-quoted to
// embed separators.
package clauses
