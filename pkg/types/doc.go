// SPDX-License-Identifier: MPL-2.0

// Package types defines the value types shared by the scanner, the
// configuration layer and the CLI. They carry validation but have no
// domain-specific dependencies.
//
// This package is a leaf dependency: it imports only the standard library.
package types
