// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/projscan/projscan/internal/config"
)

// newLogger builds the process logger. It writes to w and doubles as the
// slog.Handler behind every library log call.
func newLogger(w io.Writer, level config.LogLevel) (*log.Logger, error) {
	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  lvl,
	}), nil
}
