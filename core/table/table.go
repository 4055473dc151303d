// Package table carries raw tabular input between the file loaders and the
// ingest steps. Cells stay strings; typing is the ingest layer's job.
package table

import "fmt"

// MissingColumnError reports a required column absent from a table header.
type MissingColumnError struct {
	Column string
}

func (e MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found", e.Column)
}

// Table is a header-indexed view over raw rows. The first raw row becomes the
// header; lookups are by exact header name.
type Table struct {
	Header []string
	Rows   [][]string

	index map[string]int
}

// FromRows builds a Table from raw rows, treating the first row as header.
// An empty input yields an empty table with no columns.
func FromRows(rows [][]string) *Table {
	t := &Table{index: make(map[string]int)}
	if len(rows) == 0 {
		return t
	}
	t.Header = rows[0]
	t.Rows = rows[1:]
	for i, name := range t.Header {
		if _, ok := t.index[name]; !ok {
			t.index[name] = i
		}
	}
	return t
}

// Column returns the index of the named column.
func (t *Table) Column(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, MissingColumnError{Column: name}
	}
	return i, nil
}

// Cell returns row[col], tolerating ragged rows: out-of-range cells read as
// empty strings, the way short CSV/XLSX rows behave in practice.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
