// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"

	"github.com/projscan/projscan/pkg/types"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.ProjectSearch != "." {
		t.Errorf("ProjectSearch = %q, want %q", cfg.ProjectSearch, ".")
	}
	if cfg.RegistrySize != DefaultRegistrySize {
		t.Errorf("RegistrySize = %d, want %d", cfg.RegistrySize, DefaultRegistrySize)
	}
	if cfg.Log.Level != LogLevelWarn {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want auto", cfg.UI.ColorScheme)
	}
}

func TestColorScheme_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   ColorScheme
		wantErr bool
	}{
		{ColorSchemeAuto, false},
		{ColorSchemeDark, false},
		{ColorSchemeLight, false},
		{"", true},
		{"solarized", true},
		{"AUTO", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorScheme(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrInvalidColorScheme) {
				t.Errorf("error should wrap ErrInvalidColorScheme, got %v", err)
			}
			var csErr *InvalidColorSchemeError
			if !errors.As(err, &csErr) || csErr.Value != tt.value {
				t.Errorf("error should be *InvalidColorSchemeError for %q, got %T", tt.value, err)
			}
		})
	}
}

func TestLogLevel_Validate(t *testing.T) {
	t.Parallel()

	for _, level := range []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError} {
		if err := level.Validate(); err != nil {
			t.Errorf("LogLevel(%q).Validate() = %v", level, err)
		}
	}

	for _, level := range []LogLevel{"", "trace", "WARN", "fatal"} {
		err := level.Validate()
		if !errors.Is(err, ErrInvalidLogLevel) {
			t.Errorf("LogLevel(%q).Validate() = %v, want ErrInvalidLogLevel", level, err)
		}
	}
}

func TestConfig_Validate_CollectsFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := Config{
		ProjectSearch: "root;depth",
		BaseDir:       "   ",
		RegistrySize:  0,
		UI:            UIConfig{ColorScheme: "neon"},
		Log:           LogConfig{Level: "loud"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error should be *InvalidConfigError, got %T", err)
	}
	if len(cfgErr.FieldErrors) != 5 {
		t.Errorf("FieldErrors = %d, want 5: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
	}

	for _, sentinel := range []error{ErrInvalidConfig, ErrInvalidRegistrySize, ErrInvalidColorScheme, ErrInvalidLogLevel} {
		if !errors.Is(err, sentinel) {
			t.Errorf("error should wrap %v", sentinel)
		}
	}
}

func TestConfig_Validate_RegistrySizeBounds(t *testing.T) {
	t.Parallel()

	for _, size := range []int{1, 16, 1024} {
		cfg := DefaultConfig()
		cfg.RegistrySize = size
		if err := cfg.Validate(); err != nil {
			t.Errorf("RegistrySize %d: Validate() = %v", size, err)
		}
	}

	for _, size := range []int{-1, 0, 1025} {
		cfg := DefaultConfig()
		cfg.RegistrySize = size
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidRegistrySize) {
			t.Errorf("RegistrySize %d: Validate() = %v, want ErrInvalidRegistrySize", size, err)
		}
	}
}

func TestConfig_Validate_SearchDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		search  string
		wantErr bool
	}{
		{"root", false},
		{"root;depth=3,other", false},
		{"root;depth=0", true},
		{"root;depth=-2", true},
		{"ok,root;depth=deep", true},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.ProjectSearch = tt.search
			err := cfg.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, types.ErrInvalidSearchDepth) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig wrapping ErrInvalidSearchDepth", err)
			}
		})
	}
}
