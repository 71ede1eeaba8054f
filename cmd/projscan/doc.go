// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the projscan command line interface.
//
// Commands are built from an App, the composition root that owns the
// configuration provider, the filesystem and the scanner registry. Handlers
// never read package-level state, so tests build their own App with fake
// dependencies and drive the command tree with SetArgs.
package cmd
