// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/projscan/projscan/internal/config"
	"github.com/projscan/projscan/internal/issue"
	"github.com/projscan/projscan/pkg/types"
)

// newConfigCommand creates the `projscan config` command tree. Only the
// subcommands that need it load configuration, so a broken config file can
// still be located and replaced.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage projscan configuration",
		Long: `Manage projscan configuration.

Configuration is read from the first file that exists:
  1. the file passed with --config
  2. the user config file:
     - Linux: ~/.config/projscan/config.cue
     - macOS: ~/Library/Application Support/projscan/config.cue
     - Windows: %APPDATA%\projscan\config.cue
  3. projscan.cue in the base directory

PROJSCAN_* environment variables override file values, and command line
flags override both.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	var local bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app, local)
		},
	}
	initCmd.Flags().BoolVar(&local, "local", false, "create "+config.LocalConfigFileName+" in the base directory instead of the user config")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.Config.Load(cmd.Context(), app.loadOptions())
			if err != nil {
				return &ExitError{Code: types.ExitFailure, Err: err}
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(loaded.Config))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	loaded, err := app.Config.Load(ctx, app.loadOptions())
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}
	cfg := loaded.Config

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	out := app.stdout

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if loaded.Path != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), loaded.Path)
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("project_search"), valueStyle.Render(cfg.ProjectSearch))
	if cfg.BaseDir != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("base_dir"), valueStyle.Render(string(cfg.BaseDir)))
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("base_dir"), SubtitleStyle.Render("(working directory)"))
	}
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("registry_size"), valueStyle.Render(fmt.Sprintf("%d", cfg.RegistrySize)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(out, "  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Fprintf(out, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("log"))
	fmt.Fprintf(out, "  level: %s\n", valueStyle.Render(string(cfg.Log.Level)))

	return nil
}

func initConfig(app *App, local bool) error {
	path, err := initTargetPath(app, local)
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	created, err := config.CreateDefaultConfig(path)
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
			WithOperation("create configuration").
			WithResource(path).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check that the directory is writable").
			Wrap(err).
			BuildError()}
	}

	if !created {
		fmt.Fprintf(app.stdout, "%s %s\n", WarningStyle.Render("Config file already exists:"), path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created config file:"), path)
	return nil
}

func initTargetPath(app *App, local bool) (string, error) {
	opts := app.loadOptions()
	if opts.ConfigFilePath != "" {
		return string(opts.ConfigFilePath), nil
	}
	if !local {
		return config.UserConfigFilePath(opts)
	}
	base := string(opts.BaseDir)
	if base == "" {
		base = "."
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("resolving base directory: %w", err)
	}
	return filepath.Join(abs, config.LocalConfigFileName), nil
}

func showConfigPath(app *App) error {
	opts := app.loadOptions()

	path, err := config.ResolveFilePath(opts)
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}
	userPath, err := config.UserConfigFilePath(opts)
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	if path != "" {
		fmt.Fprintln(app.stdout, path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s %s\n", SubtitleStyle.Render("(using defaults; 'projscan config init' creates)"), userPath)
	return nil
}
