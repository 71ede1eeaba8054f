// SPDX-License-Identifier: MPL-2.0

package clauses

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

const (
	clauseSeparator    = ','
	attributeSeparator = ';'
	quote              = '"'
)

// ErrConfiguration is the sentinel error wrapped by ConfigurationError.
var ErrConfiguration = errors.New("invalid search clause")

type (
	// Clause is one parsed search clause: a root and its attributes.
	Clause struct {
		Root  string
		Attrs map[string]string
	}

	// ConfigurationError is returned for malformed clause syntax or invalid
	// attribute values. It wraps ErrConfiguration for errors.Is() compatibility.
	ConfigurationError struct {
		// Input is the clause text (or the whole specification) that failed.
		Input string
		// Reason describes what is wrong with it.
		Reason string
		// Cause is an optional underlying error.
		Cause error
	}
)

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("invalid search clause %q: %s", e.Input, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns ErrConfiguration, plus the cause when there is one.
func (e *ConfigurationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrConfiguration, e.Cause}
	}
	return []error{ErrConfiguration}
}

// Attr returns the named attribute and whether it was present.
func (c Clause) Attr(name string) (string, bool) {
	v, ok := c.Attrs[name]
	return v, ok
}

// String renders the clause in canonical form with attributes sorted by name.
func (c Clause) String() string {
	var sb strings.Builder
	sb.WriteString(quoteIfNeeded(c.Root))

	names := make([]string, 0, len(c.Attrs))
	for name := range c.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteByte(attributeSeparator)
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(quoteIfNeeded(c.Attrs[name]))
	}
	return sb.String()
}

// Format renders clauses in canonical form. Parse(Format(cs)) yields cs.
func Format(cs []Clause) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, string(clauseSeparator))
}

// Parse parses a clause specification. An empty or blank specification
// yields no clauses. Each root may appear only once.
func Parse(spec string) ([]Clause, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	rawClauses, err := split(spec, clauseSeparator)
	if err != nil {
		return nil, &ConfigurationError{Input: spec, Reason: err.Error()}
	}

	result := make([]Clause, 0, len(rawClauses))
	seen := make(map[string]int, len(rawClauses))
	for i, raw := range rawClauses {
		c, err := parseClause(raw)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[c.Root]; dup {
			return nil, &ConfigurationError{
				Input:  spec,
				Reason: fmt.Sprintf("clause %d repeats root %q from clause %d", i+1, c.Root, first+1),
			}
		}
		seen[c.Root] = i
		result = append(result, c)
	}
	return result, nil
}

// ExpandRoots performs shell-style parameter expansion ($VAR, ${VAR}) on every
// clause root. A nil env resolves variables from the process environment.
func ExpandRoots(cs []Clause, env func(string) string) ([]Clause, error) {
	out := make([]Clause, len(cs))
	for i, c := range cs {
		root, err := shell.Expand(c.Root, env)
		if err != nil {
			return nil, &ConfigurationError{Input: c.Root, Reason: "cannot expand root", Cause: err}
		}
		if strings.TrimSpace(root) == "" {
			return nil, &ConfigurationError{Input: c.Root, Reason: "root expands to an empty path"}
		}
		out[i] = Clause{Root: root, Attrs: c.Attrs}
	}
	return out, nil
}

func parseClause(raw string) (Clause, error) {
	parts, err := split(raw, attributeSeparator)
	if err != nil {
		return Clause{}, &ConfigurationError{Input: raw, Reason: err.Error()}
	}

	root := unquote(strings.TrimSpace(parts[0]))
	if root == "" {
		return Clause{}, &ConfigurationError{Input: raw, Reason: "missing root directory"}
	}

	c := Clause{Root: root, Attrs: make(map[string]string, len(parts)-1)}
	for _, part := range parts[1:] {
		name, value, ok := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return Clause{}, &ConfigurationError{Input: raw, Reason: fmt.Sprintf("malformed attribute %q", strings.TrimSpace(part))}
		}
		if _, dup := c.Attrs[name]; dup {
			return Clause{}, &ConfigurationError{Input: raw, Reason: fmt.Sprintf("attribute %q given twice", name)}
		}
		c.Attrs[name] = unquote(strings.TrimSpace(value))
	}
	return c, nil
}

// split cuts s at every sep that is not inside a double-quoted section.
func split(s string, sep byte) ([]string, error) {
	var parts []string
	inQuote := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case quote:
			inQuote = !inQuote
		case sep:
			if !inQuote {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quote")
	}
	return append(parts, s[start:]), nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == quote && s[len(s)-1] == quote {
		return s[1 : len(s)-1]
	}
	return s
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, `,;= `) {
		return string(quote) + s + string(quote)
	}
	return s
}
