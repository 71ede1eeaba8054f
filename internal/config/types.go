// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/projscan/projscan/internal/clauses"
	"github.com/projscan/projscan/pkg/types"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light color scheme.
	ColorSchemeLight ColorScheme = "light"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"

	// DefaultProjectSearch scans the direct children of the base directory.
	DefaultProjectSearch = "."
	// DefaultRegistrySize matches workspace.DefaultRegistrySize.
	DefaultRegistrySize = 16
	maxRegistrySize     = 1024

	// depthAttribute mirrors workspace.DepthAttribute.
	depthAttribute = "depth"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidRegistrySize is returned when registry_size is out of range.
	ErrInvalidRegistrySize = errors.New("invalid registry size")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError wraps ErrInvalidColorScheme.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel is the minimum level written to stderr.
	LogLevel string

	// InvalidLogLevelError wraps ErrInvalidLogLevel.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidRegistrySizeError wraps ErrInvalidRegistrySize.
	InvalidRegistrySizeError struct {
		Value int
	}

	// InvalidConfigError collects every field-level problem of a Config.
	// It wraps ErrInvalidConfig and each field error.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// ProjectSearch is the clause specification, e.g. "bundles;depth=2,cnf".
		ProjectSearch string `json:"project_search" mapstructure:"project_search"`
		// BaseDir anchors relative clause roots. Empty means the working directory.
		BaseDir types.FilesystemPath `json:"base_dir,omitempty" mapstructure:"base_dir"`
		// RegistrySize bounds the number of live scanners.
		RegistrySize int `json:"registry_size" mapstructure:"registry_size"`
		UI           UIConfig  `json:"ui" mapstructure:"ui"`
		Log          LogConfig `json:"log" mapstructure:"log"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose prints full error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// LogConfig configures the process logger.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ProjectSearch: DefaultProjectSearch,
		RegistrySize:  DefaultRegistrySize,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
		Log: LogConfig{
			Level: LogLevelWarn,
		},
	}
}

// Validate checks every field, including the clause syntax of ProjectSearch,
// and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if err := validateProjectSearch(c.ProjectSearch); err != nil {
		errs = append(errs, fmt.Errorf("project_search: %w", err))
	}
	if c.BaseDir != "" {
		if err := c.BaseDir.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("base_dir: %w", err))
		}
	}
	if c.RegistrySize < 1 || c.RegistrySize > maxRegistrySize {
		errs = append(errs, &InvalidRegistrySizeError{Value: c.RegistrySize})
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Log.Level.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// validateProjectSearch parses the clause list and checks every depth
// attribute, so a bad depth is reported at load time rather than on the
// first scan.
func validateProjectSearch(spec string) error {
	cs, err := clauses.Parse(spec)
	if err != nil {
		return err
	}
	for _, c := range cs {
		if raw, ok := c.Attr(depthAttribute); ok {
			if _, err := types.ParseSearchDepth(raw); err != nil {
				return fmt.Errorf("clause %q: %w", c.Root, err)
			}
		}
	}
	return nil
}

func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return "invalid config: " + e.FieldErrors[0].Error()
	}
	return fmt.Sprintf("invalid config: %d field errors: %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

func (cs ColorScheme) String() string { return string(cs) }

// Validate accepts auto, dark and light.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

func (l LogLevel) String() string { return string(l) }

// Validate accepts debug, info, warn and error.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return &InvalidLogLevelError{Value: l}
	}
}

func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

func (e *InvalidRegistrySizeError) Error() string {
	return fmt.Sprintf("invalid registry size %d (must be between 1 and %d)", e.Value, maxRegistrySize)
}

func (e *InvalidRegistrySizeError) Unwrap() error { return ErrInvalidRegistrySize }
