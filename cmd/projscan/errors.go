// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/fang"

	"github.com/projscan/projscan/internal/clauses"
	"github.com/projscan/projscan/internal/config"
	"github.com/projscan/projscan/internal/issue"
	"github.com/projscan/projscan/internal/workspace"
	"github.com/projscan/projscan/pkg/types"
)

// classifyScanError turns an error from scanner creation or a query into an
// ExitError carrying an actionable message and the matching exit code. id is
// the project being looked up, or empty for whole-workspace queries.
func (a *App) classifyScanError(err error, id types.ProjectID) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	search := a.settings.Search

	var notFound *workspace.NotFoundError
	var dup *workspace.UniquenessViolationError
	var fsErr *workspace.FilesystemError

	switch {
	case errors.As(err, &notFound):
		return &ExitError{Code: types.ExitNotFound, Err: issue.NewErrorContext().
			WithOperation("find project").
			WithResource(string(notFound.ID)).
			WithIssue(issue.ProjectNotFoundId).
			WithSuggestion("Run 'projscan list' to see every project the search reaches").
			WithSuggestion(fmt.Sprintf("Widen the search (currently %q), e.g. --search \"<root>;depth=3\"", search)).
			Wrap(err).
			BuildError()}

	case errors.As(err, &dup):
		return &ExitError{Code: types.ExitDuplicateProject, Err: issue.NewErrorContext().
			WithOperation("scan workspace").
			WithResource(string(dup.ID)).
			WithIssue(issue.DuplicateProjectId).
			WithSuggestion("Rename one of the two directories").
			WithSuggestion("Or narrow the search clauses so only one of them is reachable").
			Wrap(err).
			BuildError()}

	case errors.Is(err, types.ErrInvalidProjectID):
		return &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
			WithOperation("find project").
			WithResource(string(id)).
			WithIssue(issue.InvalidProjectIdId).
			WithSuggestion("Pass the bare directory name of the project, without path separators").
			Wrap(err).
			BuildError()}

	case errors.Is(err, clauses.ErrConfiguration), errors.Is(err, types.ErrInvalidSearchDepth):
		return &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
			WithOperation("parse search clauses").
			WithResource(search).
			WithIssue(issue.InvalidSearchClauseId).
			WithSuggestion("Clauses look like root;depth=N, separated by commas").
			WithSuggestion("Quote roots containing commas or semicolons: \"my,dir\";depth=2").
			Wrap(err).
			BuildError()}

	case errors.As(err, &fsErr):
		return &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
			WithOperation("scan workspace").
			WithResource(string(fsErr.Path)).
			WithIssue(issue.FilesystemErrorId).
			WithSuggestion("Check the directory permissions below the search roots").
			Wrap(err).
			BuildError()}
	}

	return &ExitError{Code: types.ExitFailure, Err: err}
}

// handleError is the fang error handler. Actionable errors are printed with
// their suggestions, and in verbose mode with the error chain and the issue
// catalog entry; anything else falls back to fang's default rendering.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		fang.DefaultErrorHandler(w, styles, err)
		return
	}

	verbose := a.settings.Verbose || a.flags.verbose
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+ae.Format(verbose))

	if !verbose {
		return
	}
	if entry := ae.Issue(); entry != nil {
		rendered, renderErr := entry.Render(glamourStyle(a.settings.ColorScheme))
		if renderErr != nil {
			a.logger.Warn("failed to render issue catalog entry", "issueID", entry.Id(), "error", renderErr)
			return
		}
		fmt.Fprint(w, rendered)
	}
}

// glamourStyle maps the configured color scheme onto a glamour style name.
func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
