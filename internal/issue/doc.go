// SPDX-License-Identifier: MPL-2.0

// Package issue holds the catalog of user-facing problems projscan can report
// and the ActionableError type the CLI formats them with.
//
// Catalog entries are Markdown documents rendered with glamour; an
// ActionableError may link to one through its IssueId so the CLI can print
// the long-form guidance next to the short error line.
package issue
