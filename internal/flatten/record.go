// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package flatten

import (
	"bytes"
	"encoding/json"
)

// Cell is one column of a flat record.
type Cell struct {
	Column string
	Value  string
}

// Record is one flat row: ordered column/value pairs.
type Record []Cell

// Get returns the value of column, or "" when the record has no such column.
func (r Record) Get(column string) string {
	for _, c := range r {
		if c.Column == column {
			return c.Value
		}
	}
	return ""
}

// Columns returns the column names in record order.
func (r Record) Columns() []string {
	cols := make([]string, len(r))
	for i, c := range r {
		cols[i] = c.Column
	}
	return cols
}

// Values returns the values in record order.
func (r Record) Values() []string {
	vals := make([]string, len(r))
	for i, c := range r {
		vals[i] = c.Value
	}
	return vals
}

// MarshalJSON encodes the record as an object whose keys keep column order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Column)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// singleLine replaces line breaks in every value with a space.
func (r Record) singleLine() Record {
	for i := range r {
		r[i].Value = newlineReplacer.Replace(r[i].Value)
	}
	return r
}
