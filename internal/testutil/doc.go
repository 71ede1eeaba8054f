// SPDX-License-Identifier: MPL-2.0

// Package testutil holds test helpers shared across projscan packages.
//
// The Must* helpers fail the test on error instead of returning it, the
// environment helpers return cleanup functions that restore the previous
// state, and WriteWorkspace lays out a directory tree of projects on any
// afero filesystem.
package testutil
