// Copyright Skyarchive Labs, 2026. All rights reserved.

package gator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/skyarchive/gator/pkg/types"
)

// FormatTable writes a result table as human-readable aligned rows.
func FormatTable(t *types.Table, w io.Writer) {
	if t == nil || t.NumRows() == 0 {
		fmt.Fprintln(w, "No rows returned.")
		return
	}

	widths := make([]int, len(t.Columns))
	cells := make([][]string, len(t.Rows))
	for i, c := range t.Columns {
		widths[i] = len(c.Name)
	}
	for ri, row := range t.Rows {
		cells[ri] = make([]string, len(t.Columns))
		for ci := range t.Columns {
			s := formatCell(row[ci])
			cells[ri][ci] = s
			if len(s) > widths[ci] {
				widths[ci] = len(s)
			}
		}
	}

	for i, c := range t.Columns {
		fmt.Fprintf(w, "%-*s", widths[i], c.Name)
		if i < len(t.Columns)-1 {
			fmt.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)

	total := 0
	for _, wd := range widths {
		total += wd
	}
	fmt.Fprintln(w, strings.Repeat("-", total+2*(len(widths)-1)))

	for _, row := range cells {
		for ci, s := range row {
			fmt.Fprintf(w, "%-*s", widths[ci], s)
			if ci < len(row)-1 {
				fmt.Fprint(w, "  ")
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\n%d rows\n", t.NumRows())
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case float64:
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// FormatJSON writes a result table as indented JSON.
func FormatJSON(t *types.Table, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// FormatYAML writes a result table as YAML.
func FormatYAML(t *types.Table, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(t)
}

// FormatCatalogsJSON writes the catalog mapping as indented JSON.
func FormatCatalogsJSON(catalogs map[string]string, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(catalogs)
}

// FormatCatalogsYAML writes the catalog mapping as YAML.
func FormatCatalogsYAML(catalogs map[string]string, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(catalogs)
}
