// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/projscan/projscan/internal/config"
	"github.com/projscan/projscan/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the projscan command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "projscan",
		Short: "Find projects in a workspace without scanning all of it",
		Long: TitleStyle.Render("projscan") + SubtitleStyle.Render(" - Find projects in a workspace without scanning all of it") + `

projscan locates project directories (directories holding a bnd.bnd file)
below a list of search clauses. Each clause is a root directory and a depth;
the workspace is scanned lazily and only as far as a query needs.

` + SubtitleStyle.Render("Search clauses:") + `
  root1;depth=2,root2       root1 two levels deep, then root2 one level
  $HOME/work;depth=3        environment variables are expanded

` + SubtitleStyle.Render("Examples:") + `
  projscan find com.acme.api        Print the directory of a project
  projscan list --paths             List every project in discovery order
  projscan resolve api web core     Resolve several projects at once
  projscan config show              Show the effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.configure(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.flags.configPath, flagConfig, "", "config file (default is $XDG_CONFIG_HOME/projscan/config.cue, then ./projscan.cue)")
	flags.BoolVarP(&app.flags.verbose, flagVerbose, "v", false, "enable verbose error output")
	flags.StringVarP(&app.flags.baseDir, flagBaseDir, "C", "", "directory relative search roots are resolved against (default is the working directory)")
	flags.StringVarP(&app.flags.search, flagSearch, "s", config.DefaultProjectSearch, "search clauses, e.g. \"root1;depth=2,root2\"")
	flags.StringVar(&app.flags.logLevel, flagLogLevel, string(config.LogLevelWarn), "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newFindCommand(app))
	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newResolveCommand(app))
	rootCmd.AddCommand(newRootsCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newCompletionCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute builds the production App and runs the command tree. It is called
// by main.main and exits the process with the command's exit code.
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(int(types.ExitFailure))
	}
	app.installGlobalLogger = true

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitFailure))
	}
}
