package model

import "strings"

// Table is a raw tabular dataset as read from CSV or XLSX. The pipeline
// treats it as immutable and only produces derived tables.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex maps each column name, trimmed of surrounding whitespace, to
// its position. Duplicate names keep the first occurrence.
func (t *Table) ColumnIndex() map[string]int {
	idx := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		name := strings.TrimSpace(c)
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	return idx
}
