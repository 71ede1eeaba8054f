// SPDX-License-Identifier: MPL-2.0

package clauses

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
		want []Clause
	}{
		{
			name: "two roots with depth",
			spec: "root1;depth=2,root2;depth=1",
			want: []Clause{
				{Root: "root1", Attrs: map[string]string{"depth": "2"}},
				{Root: "root2", Attrs: map[string]string{"depth": "1"}},
			},
		},
		{
			name: "root without attributes",
			spec: "modules",
			want: []Clause{{Root: "modules", Attrs: map[string]string{}}},
		},
		{
			name: "whitespace is trimmed",
			spec: " a ; depth = 3 ,  b ",
			want: []Clause{
				{Root: "a", Attrs: map[string]string{"depth": "3"}},
				{Root: "b", Attrs: map[string]string{}},
			},
		},
		{
			name: "quoted root keeps separators",
			spec: `"dir,with;chars";depth=2`,
			want: []Clause{{Root: "dir,with;chars", Attrs: map[string]string{"depth": "2"}}},
		},
		{
			name: "quoted attribute value",
			spec: `root;note="a;b"`,
			want: []Clause{{Root: "root", Attrs: map[string]string{"note": "a;b"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{"", "   "} {
		got, err := Parse(spec)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
	}{
		{"trailing comma", "root1,"},
		{"empty root", ";depth=2"},
		{"attribute without value separator", "root1;depth"},
		{"attribute without name", "root1;=2"},
		{"unterminated quote", `"root1;depth=2`},
		{"duplicate root", "root1,root2,root1"},
		{"duplicate attribute", "root1;depth=1;depth=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration), "error should wrap ErrConfiguration: %v", err)

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.NotEmpty(t, cfgErr.Reason)
		})
	}
}

func TestClause_Attr(t *testing.T) {
	t.Parallel()

	cs, err := Parse("root1;depth=2")
	require.NoError(t, err)
	require.Len(t, cs, 1)

	depth, ok := cs[0].Attr("depth")
	assert.True(t, ok)
	assert.Equal(t, "2", depth)

	_, ok = cs[0].Attr("missing")
	assert.False(t, ok)
}

func TestFormat_RoundTrip(t *testing.T) {
	t.Parallel()

	spec := `root2;x=1;depth=3,"my dir"`
	cs, err := Parse(spec)
	require.NoError(t, err)

	formatted := Format(cs)
	assert.Equal(t, `root2;depth=3;x=1,"my dir"`, formatted)

	again, err := Parse(formatted)
	require.NoError(t, err)
	assert.Equal(t, cs, again)
}

func TestExpandRoots(t *testing.T) {
	t.Parallel()

	env := func(name string) string {
		switch name {
		case "WS":
			return "/srv/ws"
		case "SUB":
			return "modules"
		}
		return ""
	}

	cs, err := Parse("$WS/a;depth=2,${WS}/$SUB,plain")
	require.NoError(t, err)

	got, err := ExpandRoots(cs, env)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "/srv/ws/a", got[0].Root)
	assert.Equal(t, "2", got[0].Attrs["depth"])
	assert.Equal(t, "/srv/ws/modules", got[1].Root)
	assert.Equal(t, "plain", got[2].Root)

	// The input slice is left untouched.
	assert.Equal(t, "$WS/a", cs[0].Root)
}

func TestExpandRoots_EmptyExpansion(t *testing.T) {
	t.Parallel()

	cs, err := Parse("$UNSET_ROOT")
	require.NoError(t, err)

	_, err = ExpandRoots(cs, func(string) string { return "" })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}
