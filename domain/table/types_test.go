package table

import "testing"

func TestTrimHeaders(t *testing.T) {
	tbl := &InputTable{
		Headers: []string{" SKU ", "Value Sales\t"},
		Rows: []RawRow{
			{" SKU ": "P1", "Value Sales\t": "100"},
		},
	}

	trimmed := tbl.TrimHeaders()

	if trimmed.Headers[0] != "SKU" || trimmed.Headers[1] != "Value Sales" {
		t.Errorf("headers not trimmed: %v", trimmed.Headers)
	}
	if trimmed.Rows[0]["SKU"] != "P1" {
		t.Errorf("row keys not rekeyed after trim")
	}
	// Original table is untouched.
	if tbl.Headers[0] != " SKU " {
		t.Error("TrimHeaders mutated its receiver")
	}
}

func TestCellAndColumnExists(t *testing.T) {
	tbl := &InputTable{
		Headers: []string{"A"},
		Rows:    []RawRow{{"A": "1"}},
	}

	if !tbl.ColumnExists("A") || tbl.ColumnExists("B") {
		t.Error("ColumnExists misreported")
	}
	if tbl.Cell(0, "A") != "1" {
		t.Error("Cell lookup failed")
	}
	if tbl.Cell(5, "A") != "" {
		t.Error("out-of-range row should read empty")
	}
	if tbl.IsEmpty() {
		t.Error("table with rows reported empty")
	}
}
