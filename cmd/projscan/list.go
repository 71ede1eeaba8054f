// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/projscan/projscan/internal/issue"
	"github.com/projscan/projscan/internal/workspace"
	"github.com/projscan/projscan/pkg/types"
)

const (
	listFormatText listFormat = "text"
	listFormatJSON listFormat = "json"
	listFormatTOML listFormat = "toml"
)

var errUnknownListFormat = errors.New("unknown output format")

type (
	listFormat string

	// listEntry is one project in structured list output.
	listEntry struct {
		ID  string `json:"id" toml:"id"`
		Dir string `json:"dir,omitempty" toml:"dir,omitempty"`
	}

	// listDocument is the structured list output.
	listDocument struct {
		Projects []listEntry `json:"projects" toml:"projects"`
		Visited  int         `json:"visited" toml:"visited"`
	}
)

// newListCommand creates the `projscan list` command.
func newListCommand(app *App) *cobra.Command {
	var (
		format string
		paths  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every project in discovery order",
		Long: `List every project the search clauses reach, in discovery order.

Discovery order follows the clauses as written and, within a clause, a
depth-first walk visiting sibling directories in byte order of their names.
Fails with status 3 if two directories share a project name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), app, listFormat(format), paths)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", string(listFormatText), "output format (text, json, toml)")
	cmd.Flags().BoolVar(&paths, "paths", false, "include project directories")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{string(listFormatText), string(listFormatJSON), string(listFormatTOML)},
		cobra.ShellCompDirectiveNoFileComp,
	))

	return cmd
}

func runList(ctx context.Context, app *App, format listFormat, paths bool) error {
	if err := format.Validate(); err != nil {
		return &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
			WithOperation("list projects").
			WithSuggestion("Use --format text, --format json or --format toml").
			Wrap(err).
			BuildError()}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	sc, err := app.scanner()
	if err != nil {
		return app.classifyScanError(err, "")
	}
	projects, err := sc.Projects()
	if err != nil {
		return app.classifyScanError(err, "")
	}

	out, err := renderProjectList(projects, sc.VisitedCount(), format, paths)
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}
	fmt.Fprint(app.stdout, out)
	return nil
}

func renderProjectList(projects []workspace.Project, visited int, format listFormat, paths bool) (string, error) {
	if format == listFormatText {
		var sb strings.Builder
		for _, p := range projects {
			if paths {
				fmt.Fprintf(&sb, "%s\t%s\n", p.ID(), p.Dir())
			} else {
				sb.WriteString(string(p.ID()) + "\n")
			}
		}
		return sb.String(), nil
	}

	doc := listDocument{Projects: make([]listEntry, 0, len(projects)), Visited: visited}
	for _, p := range projects {
		entry := listEntry{ID: string(p.ID())}
		if paths {
			entry.Dir = string(p.Dir())
		}
		doc.Projects = append(doc.Projects, entry)
	}

	switch format {
	case listFormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding project list as JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		data, err := toml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("encoding project list as TOML: %w", err)
		}
		return string(data), nil
	}
}

// Validate accepts text, json and toml.
func (f listFormat) Validate() error {
	switch f {
	case listFormatText, listFormatJSON, listFormatTOML:
		return nil
	default:
		return fmt.Errorf("%w %q", errUnknownListFormat, f)
	}
}
