package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/folio/pkg/palette"
)

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"ID", "LABEL"}, [][]string{
		{"nav-home", "Go to Home"},
		{"x", "Short"},
	})
	assert.Equal(t, "ID        LABEL\nnav-home  Go to Home\nx         Short\n", out)
}

func TestFormatRowTruncates(t *testing.T) {
	assert.Equal(t, "abc…  z", formatRow([]string{"abcdefgh", "z"}, []int{4, 1}))
	assert.Equal(t, "a", formatRow([]string{"a", ""}, []int{1, 0}))
}

func TestColumnWidthsWide(t *testing.T) {
	assert.Equal(t, []int{4, 2}, columnWidths([][]string{{"日本", "ab"}, {"x"}}))
}

func TestWriteStructured(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeStructured(&buf, outputJSON, map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a":1}`, buf.String())

	buf.Reset()
	require.NoError(t, writeStructured(&buf, outputYAML, map[string]int{"a": 1}))
	assert.Equal(t, "a: 1\n", buf.String())

	assert.Error(t, writeStructured(&buf, "xml", nil))
}

func TestCheckOutput(t *testing.T) {
	assert.NoError(t, checkOutput("json", "table", "json"))
	assert.ErrorContains(t, checkOutput("xml", "table", "json"), "table|json")
}

func TestSuggestID(t *testing.T) {
	cmds := []palette.Command{{ID: "nav-about"}, {ID: "nav-home"}, {ID: "theme-aurora"}}
	tests := []struct {
		id   string
		want string
	}{
		{"nav-abut", "nav-about"},
		{"nav-hom", "nav-home"},
		{"theme-auror", "theme-aurora"},
		{"zzz", ""},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, suggestID(cmds, tt.id))
		})
	}
}

func TestFindCommand(t *testing.T) {
	cmds := []palette.Command{{ID: "nav-about", Label: "Go to About"}}
	c, err := findCommand(cmds, "nav-about")
	require.NoError(t, err)
	assert.Equal(t, "Go to About", c.Label)

	_, err = findCommand(cmds, "x")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}
