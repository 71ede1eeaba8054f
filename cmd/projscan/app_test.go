// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projscan/projscan/internal/config"
	"github.com/projscan/projscan/pkg/types"
)

func TestResolveSettings(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ProjectSearch = "bundles;depth=2"
	cfg.BaseDir = types.FilesystemPath(base)
	cfg.RegistrySize = 4
	cfg.Log.Level = config.LogLevelInfo
	loaded := &config.Loaded{Config: cfg, Path: "/etc/projscan.cue"}

	changed := func(names ...string) func(string) bool {
		return func(name string) bool {
			for _, n := range names {
				if n == name {
					return true
				}
			}
			return false
		}
	}

	tests := []struct {
		name    string
		flags   rootFlags
		changed []string
		check   func(t *testing.T, s Settings)
		wantErr error
	}{
		{
			name:  "config values without flags",
			flags: rootFlags{search: ".", logLevel: "warn"},
			check: func(t *testing.T, s Settings) {
				assert.Equal(t, "bundles;depth=2", s.Search)
				assert.Equal(t, types.FilesystemPath(base), s.BaseDir)
				assert.Equal(t, 4, s.RegistrySize)
				assert.Equal(t, config.LogLevelInfo, s.LogLevel)
				assert.Equal(t, "/etc/projscan.cue", s.ConfigPath)
				assert.False(t, s.Verbose)
			},
		},
		{
			name:    "explicit flags win",
			flags:   rootFlags{search: "other", baseDir: filepath.Join(base, "sub"), logLevel: "debug", verbose: true},
			changed: []string{flagSearch, flagBaseDir, flagLogLevel},
			check: func(t *testing.T, s Settings) {
				assert.Equal(t, "other", s.Search)
				assert.Equal(t, types.FilesystemPath(filepath.Join(base, "sub")), s.BaseDir)
				assert.Equal(t, config.LogLevelDebug, s.LogLevel)
				assert.True(t, s.Verbose)
			},
		},
		{
			name:    "relative base dir becomes absolute",
			flags:   rootFlags{baseDir: "ws"},
			changed: []string{flagBaseDir},
			check: func(t *testing.T, s Settings) {
				assert.True(t, filepath.IsAbs(string(s.BaseDir)), "base dir %q is not absolute", s.BaseDir)
				assert.Equal(t, "ws", filepath.Base(string(s.BaseDir)))
			},
		},
		{
			name:    "invalid log level flag",
			flags:   rootFlags{logLevel: "loud"},
			changed: []string{flagLogLevel},
			wantErr: config.ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := resolveSettings(loaded, tt.flags, changed(tt.changed...))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestResolveSettingsDefaultsBaseDirToWorkingDirectory(t *testing.T) {
	t.Parallel()

	s, err := resolveSettings(&config.Loaded{Config: config.DefaultConfig()}, rootFlags{}, func(string) bool { return false })
	require.NoError(t, err)

	wd, err := filepath.Abs(".")
	require.NoError(t, err)
	assert.Equal(t, types.FilesystemPath(wd), s.BaseDir)
	assert.Equal(t, config.DefaultProjectSearch, s.Search)
}

func TestNewAppRejectsInvalidConfigDir(t *testing.T) {
	t.Parallel()

	_, err := NewApp(Dependencies{ConfigDir: "   "})
	assert.ErrorIs(t, err, types.ErrInvalidFilesystemPath)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	for _, level := range []config.LogLevel{config.LogLevelDebug, config.LogLevelInfo, config.LogLevelWarn, config.LogLevelError} {
		logger, err := newLogger(io.Discard, level)
		require.NoError(t, err, "level %s", level)
		assert.Equal(t, string(level), logger.GetLevel().String())
	}

	_, err := newLogger(io.Discard, "verbose")
	assert.Error(t, err)
}
