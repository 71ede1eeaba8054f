// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/projscan/projscan/internal/config"
	"github.com/projscan/projscan/internal/workspace"
	"github.com/projscan/projscan/pkg/fspath"
	"github.com/projscan/projscan/pkg/types"
)

const (
	flagConfig   = "config"
	flagVerbose  = "verbose"
	flagBaseDir  = "base-dir"
	flagSearch   = "search"
	flagLogLevel = "log-level"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every Cobra handler receives an App and reaches
	// configuration and scanners through it.
	App struct {
		Config ConfigProvider

		fs        afero.Fs
		stdout    io.Writer
		stderr    io.Writer
		configDir types.FilesystemPath

		flags      rootFlags
		settings   Settings
		configured bool
		logger     *slog.Logger
		// installGlobalLogger makes configure replace slog's default logger.
		// Only the real process entry point sets it.
		installGlobalLogger bool

		registryOnce sync.Once
		registry     *workspace.Registry
		registryErr  error
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Fs     afero.Fs
		Stdout io.Writer
		Stderr io.Writer
		// ConfigDir overrides the user configuration directory.
		ConfigDir types.FilesystemPath
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Loaded, error)
	}

	// Settings is the effective configuration of one invocation: the loaded
	// configuration with command line flags applied on top.
	Settings struct {
		// ConfigPath is the file the configuration came from, or empty.
		ConfigPath string
		// Search is the clause specification scanned for projects.
		Search string
		// BaseDir is the absolute directory relative clause roots resolve against.
		BaseDir      types.FilesystemPath
		RegistrySize int
		Verbose      bool
		ColorScheme  config.ColorScheme
		LogLevel     config.LogLevel
	}

	rootFlags struct {
		configPath string
		verbose    bool
		baseDir    string
		search     string
		logLevel   string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.ConfigDir != "" {
		if err := deps.ConfigDir.Validate(); err != nil {
			return nil, fmt.Errorf("config dir: %w", err)
		}
	}

	return &App{
		Config:    deps.Config,
		fs:        deps.Fs,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		configDir: deps.ConfigDir,
		logger:    slog.New(slog.DiscardHandler),
	}, nil
}

// Settings returns the effective settings of the running command. They are
// populated once the root command's pre-run hook has loaded configuration.
func (a *App) Settings() Settings {
	return a.settings
}

// loadOptions translates the root flags into config loading inputs.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: types.FilesystemPath(a.flags.configPath),
		ConfigDirPath:  a.configDir,
		BaseDir:        types.FilesystemPath(a.flags.baseDir),
	}
}

// configure loads configuration, applies flag overrides and installs the
// logger. Handlers that run outside the normal hook chain (shell completion)
// call it themselves; it only does the work once.
func (a *App) configure(cmd *cobra.Command) error {
	if a.configured {
		return nil
	}

	loaded, err := a.Config.Load(cmd.Context(), a.loadOptions())
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	settings, err := resolveSettings(loaded, a.flags, cmd.Flags().Changed)
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	logger, err := newLogger(a.stderr, settings.LogLevel)
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	a.settings = settings
	a.logger = slog.New(logger)
	if a.installGlobalLogger {
		slog.SetDefault(a.logger)
	}
	a.configured = true

	a.logger.Debug("configuration loaded",
		"path", settings.ConfigPath,
		"search", settings.Search,
		"base_dir", settings.BaseDir)
	return nil
}

// scanner returns the shared scanner for the configured workspace. Every
// call within one process returns the same scanner for the same settings.
func (a *App) scanner() (*workspace.SyncScanner, error) {
	a.registryOnce.Do(func() {
		a.registry, a.registryErr = workspace.NewRegistry(a.settings.RegistrySize,
			workspace.WithFs(a.fs),
			workspace.WithLogger(a.logger),
		)
	})
	if a.registryErr != nil {
		return nil, a.registryErr
	}
	return a.registry.Scanner(a.settings.BaseDir, a.settings.Search)
}

// resolveSettings layers explicitly set flags over the loaded configuration.
func resolveSettings(loaded *config.Loaded, flags rootFlags, changed func(string) bool) (Settings, error) {
	cfg := loaded.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := Settings{
		ConfigPath:   loaded.Path,
		Search:       cfg.ProjectSearch,
		BaseDir:      cfg.BaseDir,
		RegistrySize: cfg.RegistrySize,
		Verbose:      cfg.UI.Verbose || flags.verbose,
		ColorScheme:  cfg.UI.ColorScheme,
		LogLevel:     cfg.Log.Level,
	}

	if changed(flagSearch) {
		s.Search = flags.search
	}
	if changed(flagBaseDir) {
		s.BaseDir = types.FilesystemPath(flags.baseDir)
	}
	if changed(flagLogLevel) {
		level := config.LogLevel(flags.logLevel)
		if err := level.Validate(); err != nil {
			return Settings{}, fmt.Errorf("--%s: %w", flagLogLevel, err)
		}
		s.LogLevel = level
	}

	if s.BaseDir == "" {
		s.BaseDir = "."
	}
	abs, err := fspath.Abs(s.BaseDir)
	if err != nil {
		return Settings{}, fmt.Errorf("resolving base directory: %w", err)
	}
	s.BaseDir = abs

	return s, nil
}
