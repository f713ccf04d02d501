// Copyright Skyarchive Labs, 2026. All rights reserved.

// Package votable parses VOTable XML payloads into typed tables.
// Only the subset the Gator service emits is covered: the first TABLE of
// the first RESOURCE, FIELD metadata, and TABLEDATA rows. Conformance
// problems that do not prevent parsing are collected as warnings rather
// than errors.
package votable

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/skyarchive/gator/pkg/types"
)

// Document is a parsed VOTable with any conformance warnings found
// along the way.
type Document struct {
	Table    *types.Table
	Warnings []string
}

// VOTable XML structures, limited to what the service emits.
type voTable struct {
	Resources []voResource `xml:"RESOURCE"`
	Infos     []voInfo     `xml:"INFO"`
}

type voResource struct {
	Tables []voTableElem `xml:"TABLE"`
	Infos  []voInfo      `xml:"INFO"`
}

type voInfo struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	Text  string `xml:",chardata"`
}

type voTableElem struct {
	Fields []voField `xml:"FIELD"`
	Rows   []voRow   `xml:"DATA>TABLEDATA>TR"`
}

type voField struct {
	Name        string `xml:"name,attr"`
	ID          string `xml:"ID,attr"`
	Datatype    string `xml:"datatype,attr"`
	Unit        string `xml:"unit,attr"`
	Description string `xml:"DESCRIPTION"`
}

type voRow struct {
	Cells []string `xml:"TD"`
}

// Parse decodes a VOTable payload and converts its first table into a
// typed types.Table. It fails only when the XML cannot be decoded or no
// TABLE element is present; cell-level problems become warnings and
// null cells.
func Parse(body []byte) (*Document, error) {
	var vot voTable
	if err := xml.Unmarshal(body, &vot); err != nil {
		return nil, fmt.Errorf("decoding VOTable: %w", err)
	}

	doc := &Document{}
	for _, info := range append(vot.Infos, resourceInfos(vot.Resources)...) {
		if strings.EqualFold(info.Name, "QUERY_STATUS") && strings.EqualFold(info.Value, "ERROR") {
			doc.Warnings = append(doc.Warnings, "service reported query error: "+strings.TrimSpace(info.Text))
		}
	}

	elem := firstTable(vot)
	if elem == nil {
		return nil, fmt.Errorf("VOTable contains no TABLE element")
	}

	table := &types.Table{Columns: make([]types.Column, len(elem.Fields))}
	kinds := make([]types.Datatype, len(elem.Fields))
	for i, f := range elem.Fields {
		name := f.Name
		if name == "" {
			name = f.ID
		}
		if name == "" {
			name = fmt.Sprintf("col%d", i+1)
			doc.Warnings = append(doc.Warnings, fmt.Sprintf("FIELD %d has neither name nor ID", i+1))
		}
		kind, known := mapDatatype(f.Datatype)
		if !known {
			doc.Warnings = append(doc.Warnings, fmt.Sprintf("FIELD %q: unknown datatype %q, treating as string", name, f.Datatype))
		}
		kinds[i] = kind
		table.Columns[i] = types.Column{
			Name:        name,
			Datatype:    kind,
			Unit:        f.Unit,
			Description: strings.TrimSpace(f.Description),
		}
	}

	for ri, row := range elem.Rows {
		if len(row.Cells) != len(table.Columns) {
			doc.Warnings = append(doc.Warnings, fmt.Sprintf("row %d has %d cells, want %d", ri+1, len(row.Cells), len(table.Columns)))
		}
		cells := make([]any, len(table.Columns))
		for ci := range table.Columns {
			if ci >= len(row.Cells) {
				continue
			}
			v, warn := convertCell(row.Cells[ci], kinds[ci])
			if warn != "" {
				doc.Warnings = append(doc.Warnings, fmt.Sprintf("row %d, column %q: %s", ri+1, table.Columns[ci].Name, warn))
			}
			cells[ci] = v
		}
		table.Rows = append(table.Rows, cells)
	}

	doc.Table = table
	return doc, nil
}

func resourceInfos(resources []voResource) []voInfo {
	var infos []voInfo
	for _, r := range resources {
		infos = append(infos, r.Infos...)
	}
	return infos
}

// firstTable returns the first TABLE of the first RESOURCE that has one.
func firstTable(vot voTable) *voTableElem {
	for i := range vot.Resources {
		if len(vot.Resources[i].Tables) > 0 {
			return &vot.Resources[i].Tables[0]
		}
	}
	return nil
}

// mapDatatype maps a VOTable datatype attribute onto the table cell
// kinds. Unknown datatypes fall back to string.
func mapDatatype(dt string) (types.Datatype, bool) {
	switch strings.ToLower(dt) {
	case "short", "int", "long", "unsignedbyte":
		return types.DatatypeInt, true
	case "float", "double":
		return types.DatatypeFloat, true
	case "boolean":
		return types.DatatypeBool, true
	case "char", "unicodechar":
		return types.DatatypeString, true
	default:
		return types.DatatypeString, false
	}
}

// convertCell converts one TD value. Empty and "null" cells are nulls.
// A cell that fails conversion is kept as a null with a warning.
func convertCell(raw string, kind types.Datatype) (any, string) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "null") {
		return nil, ""
	}
	switch kind {
	case types.DatatypeInt:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Sprintf("cannot parse %q as integer", s)
		}
		return v, ""
	case types.DatatypeFloat:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Sprintf("cannot parse %q as float", s)
		}
		return v, ""
	case types.DatatypeBool:
		switch strings.ToLower(s) {
		case "t", "true", "1":
			return true, ""
		case "f", "false", "0":
			return false, ""
		}
		return nil, fmt.Sprintf("cannot parse %q as boolean", s)
	default:
		return s, ""
	}
}
