// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/projscan/projscan/internal/cueutil"
	"github.com/projscan/projscan/internal/issue"
)

const (
	// AppName is the application name.
	AppName = "projscan"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// LocalConfigFileName is looked up in the base directory when the user
	// config file does not exist.
	LocalConfigFileName = AppName + "." + ConfigFileExt
	// EnvPrefix prefixes environment overrides, e.g. PROJSCAN_PROJECT_SEARCH.
	EnvPrefix = "PROJSCAN"
)

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns the projscan configuration directory: %APPDATA% on
// Windows, ~/Library/Application Support on macOS and $XDG_CONFIG_HOME
// (default ~/.config) elsewhere.
//
//nolint:revive // ConfigDir reads better than Dir at call sites
func ConfigDir() (string, error) {
	var base string

	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, AppName), nil
}

// UserConfigFilePath returns where the user config file lives (or would be
// created), honoring opts.ConfigDirPath.
func UserConfigFilePath(opts LoadOptions) (string, error) {
	dir := string(opts.ConfigDirPath)
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// ResolveFilePath returns the config file Load would read, or "" when none
// exists and defaults apply.
func ResolveFilePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		return string(opts.ConfigFilePath), nil
	}

	userPath, err := UserConfigFilePath(opts)
	if err != nil {
		return "", err
	}
	if fileExists(userPath) {
		return userPath, nil
	}

	localPath := filepath.Join(string(opts.BaseDir), LocalConfigFileName)
	if fileExists(localPath) {
		return localPath, nil
	}
	return "", nil
}

// loadWithOptions loads defaults, then the resolved config file, then
// PROJSCAN_* environment overrides, and validates the result.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	if err := opts.Validate(); err != nil {
		return nil, "", err
	}

	v := newViper()

	if opts.ConfigFilePath != "" && !fileExists(string(opts.ConfigFilePath)) {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(string(opts.ConfigFilePath)).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Verify the file path passed to --config").
			WithSuggestion("Run 'projscan config init' to create a default configuration").
			Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
			BuildError()
	}

	path, err := ResolveFilePath(opts)
	if err != nil {
		return nil, "", err
	}

	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Run 'projscan config dump' to see a valid configuration").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check " + EnvPrefix + "_* environment variables as well as the config file").
			Wrap(err).
			BuildError()
	}

	return &cfg, path, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("project_search", defaults.ProjectSearch)
	v.SetDefault("base_dir", string(defaults.BaseDir))
	v.SetDefault("registry_size", defaults.RegistrySize)
	v.SetDefault("ui.color_scheme", string(defaults.UI.ColorScheme))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("log.level", string(defaults.Log.Level))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// loadCUEIntoViper validates a CUE file against #Config and merges it into v.
// Fields are optional, so concreteness is not required.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	res, err := cueutil.ParseAndDecode[map[string]any](configSchema, data, "#Config",
		cueutil.WithFilename(path),
		cueutil.WithConcrete(false),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*res.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default configuration to path unless a file
// already exists there. It reports whether a file was written.
func CreateDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := Save(DefaultConfig(), path); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes cfg to path as CUE, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateCUE renders cfg as a CUE document accepted by the #Config schema.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// projscan configuration\n\n")
	fmt.Fprintf(&sb, "project_search: %q\n", cfg.ProjectSearch)
	if cfg.BaseDir != "" {
		fmt.Fprintf(&sb, "base_dir: %q\n", cfg.BaseDir)
	}
	fmt.Fprintf(&sb, "registry_size: %d\n", cfg.RegistrySize)

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "color_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "verbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	sb.WriteString("\nlog: {\n")
	fmt.Fprintf(&sb, "level: %q\n", cfg.Log.Level)
	sb.WriteString("}\n")

	formatted, err := cueutil.Format([]byte(sb.String()))
	if err != nil {
		return sb.String()
	}
	return string(formatted)
}
