package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCommandsActiveQuery(t *testing.T) {
	ranked := Rank(sampleCommands(), "go")
	groups := GroupCommands(ranked, true)
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Label)
	assert.Equal(t, ids(ranked), ids(groups[0].Commands))
}

func TestGroupCommandsNoResults(t *testing.T) {
	groups := GroupCommands(Rank(sampleCommands(), "zz"), true)
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Commands)
}

func TestGroupCommandsBrowse(t *testing.T) {
	cmds := sampleCommands()
	groups := GroupCommands(cmds, false)
	require.Len(t, groups, 4)

	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
	}
	assert.Equal(t, []string{"Navigation", "Themes & Colors", "Actions", "Social Links"}, labels)
	assert.Equal(t, []string{"nav-home", "nav-about", "nav-contact"}, ids(groups[0].Commands))
	assert.Equal(t, []string{"theme-neo-dark"}, ids(groups[1].Commands))
}

func TestGroupCommandsUnknownCategoriesShareOther(t *testing.T) {
	cmds := []Command{
		{ID: "a", Category: "plugin"},
		{ID: "b", Category: CategoryAction},
		{ID: "c"},
	}
	groups := GroupCommands(cmds, false)
	require.Len(t, groups, 2)
	assert.Equal(t, "Other", groups[0].Label)
	assert.Equal(t, []string{"a", "c"}, ids(groups[0].Commands))
	assert.Equal(t, "Actions", groups[1].Label)
}

func TestFlatten(t *testing.T) {
	groups := GroupCommands(sampleCommands(), false)
	flat := Flatten(groups)
	assert.Equal(t, []string{"nav-home", "nav-about", "nav-contact", "theme-neo-dark", "action-resume", "social-github"}, ids(flat))
	assert.Empty(t, Flatten(nil))
}

func TestResolveRecent(t *testing.T) {
	cmds := sampleCommands()
	got := ResolveRecent([]string{"social-github", "gone", "nav-home"}, cmds)
	assert.Equal(t, []string{"social-github", "nav-home"}, ids(got))
	assert.Nil(t, ResolveRecent(nil, cmds))
}
