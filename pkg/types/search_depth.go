// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultSearchDepth is used when a search clause carries no depth attribute.
const DefaultSearchDepth SearchDepth = 1

// ErrInvalidSearchDepth is the sentinel error wrapped by InvalidSearchDepthError.
var ErrInvalidSearchDepth = errors.New("invalid search depth")

type (
	// SearchDepth is the number of directory levels below a search root that
	// are eligible to be checked for project-hood. It must be positive.
	SearchDepth int

	// InvalidSearchDepthError is returned when a depth is not a positive integer.
	InvalidSearchDepthError struct {
		Value string
	}
)

// ParseSearchDepth parses the textual form of a depth attribute.
func ParseSearchDepth(s string) (SearchDepth, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, &InvalidSearchDepthError{Value: s}
	}
	return SearchDepth(n), nil
}

// Validate returns an error if the depth is not positive.
func (d SearchDepth) Validate() error {
	if d <= 0 {
		return &InvalidSearchDepthError{Value: strconv.Itoa(int(d))}
	}
	return nil
}

// String returns the decimal string representation of the SearchDepth.
func (d SearchDepth) String() string { return strconv.Itoa(int(d)) }

// Error implements the error interface.
func (e *InvalidSearchDepthError) Error() string {
	return fmt.Sprintf("invalid search depth %q (must be a positive integer)", e.Value)
}

// Unwrap returns ErrInvalidSearchDepth for errors.Is() compatibility.
func (e *InvalidSearchDepthError) Unwrap() error { return ErrInvalidSearchDepth }
