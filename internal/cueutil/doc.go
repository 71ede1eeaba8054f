// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema.
//
// Decoding is a three step flow: compile the schema, compile the user data
// and unify it with a root definition, then validate and decode into a Go
// struct. Errors carry the offending field as a JSON-style path:
//
//	config.cue: ui.color_scheme: 2 errors in empty disjunction
//
// Usage:
//
//	//go:embed config_schema.cue
//	var schema []byte
//
//	res, err := cueutil.ParseAndDecode[Config](schema, data, "#Config",
//		cueutil.WithFilename(path), cueutil.WithConcrete(false))
package cueutil
