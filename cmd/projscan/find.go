// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/projscan/projscan/pkg/types"
)

// newFindCommand creates the `projscan find` command.
func newFindCommand(app *App) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "find <project-id>",
		Short: "Print the directory of a project",
		Long: `Print the directory of a project.

The workspace is scanned in search clause order and only until the project
is found. Exits with status 2 when no directory in the search space holds
the project, and with status 3 when two directories share its name.`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return app.completeProjectIDs(cmd, args, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd.Context(), app, types.ProjectID(args[0]), stats)
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "print the number of directories visited to stderr")

	return cmd
}

func runFind(ctx context.Context, app *App, id types.ProjectID, stats bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := id.Validate(); err != nil {
		return app.classifyScanError(err, id)
	}

	sc, err := app.scanner()
	if err != nil {
		return app.classifyScanError(err, id)
	}

	dir, err := sc.FindProject(id)
	if stats {
		fmt.Fprintln(app.stderr, VerboseStyle.Render(fmt.Sprintf("visited %d directories", sc.VisitedCount())))
	}
	if err != nil {
		return app.classifyScanError(err, id)
	}

	fmt.Fprintln(app.stdout, dir)
	return nil
}

// completeProjectIDs offers the ids of every reachable project not already
// named in args. Completion
// bypasses the pre-run hook, so configuration is loaded here on demand.
func (a *App) completeProjectIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if err := a.configure(cmd); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	sc, err := a.scanner()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ids, err := sc.FindAllProjects()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, id := range ids {
		if strings.HasPrefix(string(id), toComplete) && !slices.Contains(args, string(id)) {
			completions = append(completions, string(id))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
