// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ProjectNotFoundId Id = iota + 1
	DuplicateProjectId
	InvalidProjectIdId
	InvalidSearchClauseId
	SearchRootNotFoundId
	FilesystemErrorId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // lookup key
	mdMsg    MarkdownMsg // rendered with glamour
	docLinks []HttpLink
	extLinks []HttpLink // third-party references
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the Markdown message, followed by a "See also" list when the
// issue carries links. stylePath is passed through to glamour ("dark",
// "light", "notty" or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
		for _, link := range i.extLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	projectNotFoundIssue = &Issue{
		id: ProjectNotFoundId,
		mdMsg: `
# Project not found!

No directory under the configured search roots contains a project with this name.
A project is a directory holding a ` + "`bnd.bnd`" + ` file; its name is the directory name.

## Things you can try:
- List every project the search clauses can reach:
~~~
$ projscan list
~~~

- Check the search clauses and their depths:
~~~
$ projscan config show
~~~

- Allow the scan to descend further:
~~~
$ projscan find my.project --search 'modules;depth=3'
~~~`,
	}

	duplicateProjectIssue = &Issue{
		id: DuplicateProjectId,
		mdMsg: `
# Duplicate project!

Two different directories in the workspace hold a project with the same name.
Project names must be unique across every search root, so the scan stops at
the second occurrence and every further query fails with this error.

## Things you can try:
- Rename or remove one of the two directories listed above
- Narrow the search clauses so only one of them is reachable
- Lower the depth of the clause that reaches the unwanted copy`,
	}

	invalidProjectIdIssue = &Issue{
		id: InvalidProjectIdId,
		mdMsg: `
# Invalid project name!

Project names are single directory names. They cannot be empty, cannot contain
path separators and cannot be ` + "`.`" + ` or ` + "`..`" + `.

## Things you can try:
- Pass the last path element only, for example ` + "`com.example.core`" + `
- Use ` + "`projscan list --paths`" + ` to see names and locations side by side`,
	}

	invalidSearchClauseIssue = &Issue{
		id: InvalidSearchClauseId,
		mdMsg: `
# Invalid search clause!

The project search specification could not be parsed.

## Syntax:
~~~
<root>[;depth=<n>][,<root>[;depth=<n>]...]
~~~

- Roots are resolved against the base directory when relative
- ` + "`depth`" + ` is a positive integer and defaults to 1
- Roots may reference environment variables, for example ` + "`$HOME/src`" + `

## Example configuration:
~~~cue
project_search: "bundles;depth=2,cnf"
~~~`,
	}

	searchRootNotFoundIssue = &Issue{
		id: SearchRootNotFoundId,
		mdMsg: `
# Search root not found!

A search clause names a directory that does not exist. The clause is skipped
and the scan continues with the next one.

## Things you can try:
- Check the base directory (` + "`--base-dir`" + `) the roots are resolved against
- Remove the clause from ` + "`project_search`" + ` if the directory is gone`,
	}

	filesystemErrorIssue = &Issue{
		id: FilesystemErrorId,
		mdMsg: `
# Filesystem error!

A directory or marker file could not be read during the scan. The scan cannot
continue past an unreadable directory without risking a wrong answer, so it
stops and reports the failure on every query.

## Things you can try:
- Check the permissions of the directory named above
- Run again with ` + "`--verbose`" + ` to see the full error chain`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the projscan configuration file.

## Configuration file locations:
- ` + "`$XDG_CONFIG_HOME/projscan/config.cue`" + ` (usually ` + "`~/.config/projscan/config.cue`" + `)
- ` + "`./projscan.cue`" + ` in the working directory

## Things you can try:
- Create a default configuration:
~~~
$ projscan config init
~~~

- Check the configuration syntax against the schema:
~~~
$ projscan config dump
~~~

## Example configuration:
~~~cue
project_search: "bundles;depth=2,cnf"
registry_size:  16

ui: {
  color_scheme: "auto"
  verbose:      false
}

log: level: "warn"
~~~`,
	}

	issues = map[Id]*Issue{
		projectNotFoundIssue.Id():     projectNotFoundIssue,
		duplicateProjectIssue.Id():    duplicateProjectIssue,
		invalidProjectIdIssue.Id():    invalidProjectIdIssue,
		invalidSearchClauseIssue.Id(): invalidSearchClauseIssue,
		searchRootNotFoundIssue.Id():  searchRootNotFoundIssue,
		filesystemErrorIssue.Id():     filesystemErrorIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id - b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
