package normalize

import (
	"errors"
	"testing"

	"retailedge/domain/core"
	"retailedge/domain/table"
)

func TestCoerceNumeric(t *testing.T) {
	cases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"1234.5", 1234.5, true},
		{"1,234.56", 1234.56, true},
		{"€1.234,56", 1234.56, true},
		{"$99", 99, true},
		{"£ 2,500", 2500, true},
		{"12,5", 12.5, true},
		{"(50)", -50, true},
		{"15%", 15, true},
		{"-3.2", -3.2, true},
		{"0", 0, true},
		{"", 0, false},
		{"   ", 0, false},
		{"n/a", 0, false},
		{"twelve", 0, false},
		{"Subtotal:", 0, false},
	}

	for _, tc := range cases {
		got, ok := CoerceNumeric(tc.input)
		if ok != tc.ok {
			t.Errorf("CoerceNumeric(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("CoerceNumeric(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func testTable() *table.InputTable {
	return &table.InputTable{
		Headers: []string{"SKU", "Sales"},
		Rows: []table.RawRow{
			{"SKU": "A1", "Sales": "€100.50"},
			{"SKU": "A2", "Sales": "not a number"},
			{"SKU": "A3", "Sales": ""},
			{"SKU": "", "Sales": "2,000"},
		},
	}
}

func TestNumericSeries_ResolvedColumn(t *testing.T) {
	series, err := NumericSeries(testTable(), "Sales", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{100.5, 0, 0, 2000}
	if len(series) != len(want) {
		t.Fatalf("series length = %d, want %d", len(series), len(want))
	}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("series[%d] = %v, want %v", i, series[i], want[i])
		}
	}
}

func TestNumericSeries_UnresolvedIsAllZero(t *testing.T) {
	series, err := NumericSeries(testTable(), "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 4 {
		t.Fatalf("series length = %d, want 4", len(series))
	}
	for i, v := range series {
		if v != 0 {
			t.Errorf("series[%d] = %v, want 0", i, v)
		}
	}
}

func TestNumericSeries_VanishedColumn(t *testing.T) {
	_, err := NumericSeries(testTable(), "Gone", true)
	if !errors.Is(err, core.ErrColumnVanished) {
		t.Fatalf("error = %v, want ErrColumnVanished", err)
	}
	if !core.IsDegenerateTable(err) {
		t.Error("vanished column should classify as a degenerate-table error")
	}
}

func TestTextSeries_SentinelDefaults(t *testing.T) {
	// Unresolved role: whole series is the sentinel.
	series, err := TextSeries(testTable(), "", false, "General")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range series {
		if v != "General" {
			t.Errorf("series[%d] = %q, want sentinel", i, v)
		}
	}

	// Resolved role: empty cells become the sentinel, others pass through.
	series, err = TextSeries(testTable(), "SKU", true, "N/A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"A1", "A2", "A3", "N/A"}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("series[%d] = %q, want %q", i, series[i], want[i])
		}
	}
}
