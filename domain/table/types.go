package table

import "strings"

// RawRow is one source row keyed by header text, every cell still a string.
type RawRow map[string]string

// InputTable is a decoded spreadsheet: the header row plus the data rows in
// source order. Cells are untyped text; coercion happens downstream.
type InputTable struct {
	Headers []string
	Rows    []RawRow
}

// IsEmpty reports whether the table has no data rows.
func (t *InputTable) IsEmpty() bool {
	return len(t.Rows) == 0
}

// ColumnExists reports whether a header is present in the table.
func (t *InputTable) ColumnExists(column string) bool {
	for _, h := range t.Headers {
		if h == column {
			return true
		}
	}
	return false
}

// Cell reads one cell by row index and header. Out-of-range rows and absent
// columns read as the empty string.
func (t *InputTable) Cell(rowIdx int, column string) string {
	if rowIdx < 0 || rowIdx >= len(t.Rows) {
		return ""
	}
	return t.Rows[rowIdx][column]
}

// TrimHeaders returns a copy of the table with surrounding whitespace
// stripped from every header, row maps rekeyed to match. The receiver is
// left untouched.
func (t *InputTable) TrimHeaders() *InputTable {
	trimmed := &InputTable{
		Headers: make([]string, len(t.Headers)),
		Rows:    make([]RawRow, len(t.Rows)),
	}
	for i, h := range t.Headers {
		trimmed.Headers[i] = strings.TrimSpace(h)
	}
	for i, row := range t.Rows {
		rekeyed := make(RawRow, len(row))
		for key, val := range row {
			rekeyed[strings.TrimSpace(key)] = val
		}
		trimmed.Rows[i] = rekeyed
	}
	return trimmed
}
