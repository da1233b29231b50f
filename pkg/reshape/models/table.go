// Package models defines data structures for the form-export reshaper.
package models

// Table represents an ordered tabular dataset read from a delimited file.
type Table struct {
	// Headers holds the column names in input order.
	Headers []string
	// Rows holds the data rows, each aligned with Headers.
	Rows [][]string
}

// ColumnIndex returns the 0-based position of the named column,
// or -1 when the column is absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Value returns the cell at the given row for the given column index.
// Rows shorter than the header row read as empty cells.
func (t *Table) Value(row, col int) string {
	if col < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}
