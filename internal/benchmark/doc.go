// SPDX-License-Identifier: MPL-2.0

// Package benchmark holds benchmarks for the hot paths of projscan, used for
// PGO profile generation:
//   - search clause parsing
//   - configuration loading (CUE schema validation)
//   - full and incremental workspace scans on disk and in memory
//   - cached lookups and the scanner registry
//
// To generate a profile, run:
//
//	go test ./internal/benchmark -run '^$' -bench . -cpuprofile default.pgo
package benchmark
