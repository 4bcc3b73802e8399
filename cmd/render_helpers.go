package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
	outputTOML  = "toml"
)

// maxCellWidth caps a table column; longer cells are truncated.
const maxCellWidth = 48

// columnWidths returns the display width of each column over rows.
func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], min(runewidth.StringWidth(cell), maxCellWidth))
		}
	}
	return widths
}

// formatRow pads each cell to its column width, separated by two spaces.
// The last cell is not padded.
func formatRow(row []string, widths []int) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		w := maxCellWidth
		if i < len(widths) {
			w = widths[i]
		}
		cell = runewidth.Truncate(cell, w, "…")
		if i < len(row)-1 {
			cell = runewidth.FillRight(cell, w)
		}
		cells[i] = cell
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}

// renderTable lays out header and rows as aligned columns.
func renderTable(header []string, rows [][]string) string {
	all := append([][]string{header}, rows...)
	widths := columnWidths(all)
	var b strings.Builder
	for _, row := range all {
		b.WriteString(formatRow(row, widths))
		b.WriteString("\n")
	}
	return b.String()
}

// writeStructured encodes v to w as json, yaml or toml.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputTOML:
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func checkOutput(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q (expected %s)", format, strings.Join(allowed, "|"))
}
