// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package flatten

// Table is a sequence of rows sharing one column header.
//
// Every row always has exactly one value per column: Append fills columns
// missing from a record with "" and drops columns the table does not know.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewTable creates an empty table with the given header.
func NewTable(columns []string) *Table {
	cols := append([]string(nil), columns...)
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}
	return &Table{columns: cols, index: index}
}

// Columns returns a copy of the header.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Append aligns r to the header and adds it as the last row.
func (t *Table) Append(r Record) {
	row := make([]string, len(t.columns))
	for _, c := range r {
		if i, ok := t.index[c.Column]; ok {
			row[i] = c.Value
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the rows in append order. Callers must not modify them.
func (t *Table) Rows() [][]string {
	return t.rows
}

// Record returns row i as a Record in header order.
func (t *Table) Record(i int) Record {
	row := t.rows[i]
	rec := make(Record, len(t.columns))
	for j, col := range t.columns {
		rec[j] = Cell{Column: col, Value: row[j]}
	}
	return rec
}

// Records returns every row as a Record.
func (t *Table) Records() []Record {
	recs := make([]Record, len(t.rows))
	for i := range t.rows {
		recs[i] = t.Record(i)
	}
	return recs
}
