// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/projscan/projscan/pkg/types"
)

// maxConcurrentResolves bounds the lookups in flight against one scanner.
// Lookups serialize on the scanner's lock, so more would only queue.
const maxConcurrentResolves = 8

// newResolveCommand creates the `projscan resolve` command.
func newResolveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <project-id>...",
		Short: "Resolve several projects through one shared scan",
		Long: `Resolve several projects through one shared scan.

Lookups run concurrently against a single scanner, so every directory is
examined at most once no matter how many projects are requested. Output is
one "id<TAB>dir" line per argument, in argument order. The first failing
lookup decides the exit status.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: app.completeProjectIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]types.ProjectID, len(args))
			for i, arg := range args {
				ids[i] = types.ProjectID(arg)
			}
			return runResolve(cmd.Context(), app, ids)
		},
	}
}

func runResolve(ctx context.Context, app *App, ids []types.ProjectID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return app.classifyScanError(err, id)
		}
	}

	sc, err := app.scanner()
	if err != nil {
		return app.classifyScanError(err, "")
	}

	dirs := make([]types.FilesystemPath, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentResolves)
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dir, err := sc.FindProject(id)
			if err != nil {
				return app.classifyScanError(err, id)
			}
			dirs[i] = dir
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, id := range ids {
		fmt.Fprintf(app.stdout, "%s\t%s\n", id, dirs[i])
	}
	app.logger.Debug("resolved projects", "count", len(ids), "visited", sc.VisitedCount())
	return nil
}
