// Package palette implements a command palette core: ranking commands
// against a fuzzy query, grouping them for display, remembering recently
// executed commands, and the open/closed controller that ties them together.
// Hosts supply the command registry and bind the actions.
package palette

import (
	"strings"
)

// Category tags a command for grouped display.
type Category string

const (
	CategoryNavigation Category = "navigation"
	CategoryAction     Category = "action"
	CategoryTheme      Category = "theme"
	CategorySocial     Category = "social"
)

// OtherLabel is the group label for commands whose category is missing or unknown.
const OtherLabel = "Other"

var categoryLabels = map[Category]string{
	CategoryNavigation: "Navigation",
	CategoryAction:     "Actions",
	CategoryTheme:      "Themes & Colors",
	CategorySocial:     "Social Links",
}

// CategoryLabel returns the display label for a category.
func CategoryLabel(c Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return OtherLabel
}

// Command describes one palette-invocable operation. Action is opaque to the
// palette: it is called, never inspected.
type Command struct {
	ID          string
	Label       string
	Description string
	Keywords    []string
	Category    Category
	Icon        string
	Shortcut    string
	Action      func()
}

// Field names a command attribute used for matching.
type Field string

const (
	FieldLabel       Field = "label"
	FieldDescription Field = "description"
	FieldKeywords    Field = "keywords"
)

// DefaultFields is the match field set used when none is given.
var DefaultFields = []Field{FieldLabel, FieldDescription, FieldKeywords}

// Value returns the text of field f, or "" when the command has none.
// Keywords are joined with commas and scored as one field.
func (c Command) Value(f Field) string {
	switch f {
	case FieldLabel:
		return c.Label
	case FieldDescription:
		return c.Description
	case FieldKeywords:
		return strings.Join(c.Keywords, ",")
	}
	return ""
}
