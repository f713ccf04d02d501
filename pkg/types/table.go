// Copyright Skyarchive Labs, 2026. All rights reserved.

// Package types defines shared data structures for the gator client:
// the typed result table produced from VOTable responses and the
// configuration structs held by the client.
package types

import "fmt"

// Datatype identifies the Go representation of a table column.
type Datatype string

const (
	DatatypeInt    Datatype = "int"
	DatatypeFloat  Datatype = "float"
	DatatypeBool   Datatype = "bool"
	DatatypeString Datatype = "string"
)

// Column describes one field of a result table.
type Column struct {
	// Name is the column name as declared by the service.
	Name string `json:"name" yaml:"name"`

	// Datatype is the Go-side type of the column's cells.
	Datatype Datatype `json:"datatype" yaml:"datatype"`

	// Unit is the physical unit declared for the column (e.g. "deg"),
	// empty when the service declares none.
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`

	// Description is the column description, when declared.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Table is a typed tabular query result. Cells are int64, float64, bool,
// or string according to the column datatype; a nil cell is a null.
type Table struct {
	Columns []Column `json:"columns" yaml:"columns"`
	Rows    [][]any  `json:"rows" yaml:"rows"`
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int { return len(t.Rows) }

// ColumnIndex returns the index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Float64Column returns the named column as float64 values. Integer
// cells are widened. The mask is false where the cell is null.
func (t *Table) Float64Column(name string) (values []float64, mask []bool, err error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, nil, fmt.Errorf("no column %q", name)
	}
	values = make([]float64, len(t.Rows))
	mask = make([]bool, len(t.Rows))
	for i, row := range t.Rows {
		switch v := row[idx].(type) {
		case nil:
			continue
		case float64:
			values[i], mask[i] = v, true
		case int64:
			values[i], mask[i] = float64(v), true
		default:
			return nil, nil, fmt.Errorf("column %q: cell %d is %T, not numeric", name, i, row[idx])
		}
	}
	return values, mask, nil
}
