// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/projscan/projscan/internal/clauses"
	"github.com/projscan/projscan/internal/issue"
	"github.com/projscan/projscan/internal/workspace"
	"github.com/projscan/projscan/pkg/types"
)

// rootStatus is one resolved search clause and whether its root exists.
type rootStatus struct {
	Clause workspace.SearchClause
	Exists bool
}

// newRootsCommand creates the `projscan roots` command.
func newRootsCommand(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Show the resolved search clauses",
		Long: `Show the search clauses in scan order, with roots expanded and resolved
against the base directory. Roots that do not exist are skipped by every
scan; --strict turns them into an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoots(app, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail if a search root does not exist")

	return cmd
}

func runRoots(app *App, strict bool) error {
	statuses, err := resolveRoots(app.fs, app.settings.Search, app.settings.BaseDir)
	if err != nil {
		return app.classifyScanError(err, "")
	}

	var missing []string
	for _, st := range statuses {
		mark := SuccessStyle.Render("ok")
		if !st.Exists {
			mark = WarningStyle.Render("missing")
			missing = append(missing, string(st.Clause.Root))
		}
		fmt.Fprintf(app.stdout, "%s\t%s\t%s\n", st.Clause.Root, VerboseStyle.Render("depth="+st.Clause.Depth.String()), mark)
	}

	if strict && len(missing) > 0 {
		ctx := issue.NewErrorContext().
			WithOperation("check search roots").
			WithResource(app.settings.Search).
			WithIssue(issue.SearchRootNotFoundId).
			WithSuggestion("Create the missing directories or remove their clauses")
		return &ExitError{Code: types.ExitFailure, Err: ctx.
			Wrap(fmt.Errorf("%d search root(s) do not exist: %v", len(missing), missing)).
			BuildError()}
	}
	return nil
}

// resolveRoots parses spec the way scanners do and checks each root on fs.
func resolveRoots(fs afero.Fs, spec string, baseDir types.FilesystemPath) ([]rootStatus, error) {
	parsed, err := clauses.Parse(spec)
	if err != nil {
		return nil, err
	}
	parsed, err = clauses.ExpandRoots(parsed, nil)
	if err != nil {
		return nil, err
	}
	search, err := workspace.NewSearchClauses(parsed, baseDir)
	if err != nil {
		return nil, err
	}

	statuses := make([]rootStatus, len(search))
	for i, clause := range search {
		exists, err := afero.DirExists(fs, string(clause.Root))
		if err != nil {
			return nil, &workspace.FilesystemError{Op: "stat search root", Path: clause.Root, Err: err}
		}
		statuses[i] = rootStatus{Clause: clause, Exists: exists}
	}
	return statuses, nil
}
