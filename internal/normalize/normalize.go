package normalize

import (
	"math"
	"strconv"
	"strings"

	"retailedge/domain/core"
	"retailedge/domain/table"
)

// NumericSeries coerces one resolved column into a float series aligned to
// table row order. An unresolved role (resolved == false) yields an all-zero
// series; cells that fail coercion yield 0. Normalization is total: every
// row produces a value and no row is dropped. The only error is structural:
// a resolved column that is no longer present in the table.
func NumericSeries(t *table.InputTable, column string, resolved bool) ([]float64, error) {
	series := make([]float64, len(t.Rows))
	if !resolved {
		return series, nil
	}
	if !t.ColumnExists(column) {
		return nil, core.ErrColumnVanished
	}
	for i, row := range t.Rows {
		if val, ok := CoerceNumeric(row[column]); ok {
			series[i] = val
		}
	}
	return series, nil
}

// TextSeries passes one resolved text column through, substituting the
// sentinel for unresolved roles and for empty cells.
func TextSeries(t *table.InputTable, column string, resolved bool, sentinel string) ([]string, error) {
	series := make([]string, len(t.Rows))
	if !resolved {
		for i := range series {
			series[i] = sentinel
		}
		return series, nil
	}
	if !t.ColumnExists(column) {
		return nil, core.ErrColumnVanished
	}
	for i, row := range t.Rows {
		val := strings.TrimSpace(row[column])
		if val == "" {
			val = sentinel
		}
		series[i] = val
	}
	return series, nil
}

// currencySymbols are stripped before numeric parsing. Spreadsheets bake
// them into cells and sometimes into headers.
var currencySymbols = []string{"€", "$", "£", "¥", "EUR", "USD", "GBP"}

// CoerceNumeric parses spreadsheet cell text into a float, tolerating
// currency symbols, percent signs, parenthesized negatives and both
// 1,234.56 and 1.234,56 separator conventions. Returns false for cells
// that are blank or not numeric.
func CoerceNumeric(raw string) (float64, bool) {
	cleanVal := strings.TrimSpace(raw)
	if cleanVal == "" {
		return 0, false
	}

	// Accounting convention: (123) means -123.
	isNegative := false
	if strings.HasPrefix(cleanVal, "(") && strings.HasSuffix(cleanVal, ")") {
		cleanVal = strings.TrimSuffix(strings.TrimPrefix(cleanVal, "("), ")")
		isNegative = true
	}

	for _, symbol := range currencySymbols {
		cleanVal = strings.ReplaceAll(cleanVal, symbol, "")
	}
	cleanVal = strings.ReplaceAll(cleanVal, "%", "")
	cleanVal = strings.TrimSpace(cleanVal)

	hasComma := strings.Contains(cleanVal, ",")
	hasPeriod := strings.Contains(cleanVal, ".")

	switch {
	case hasComma && hasPeriod:
		// Whichever separator comes last is the decimal point.
		if strings.LastIndex(cleanVal, ",") > strings.LastIndex(cleanVal, ".") {
			cleanVal = strings.ReplaceAll(cleanVal, ".", "")
			cleanVal = strings.ReplaceAll(cleanVal, ",", ".")
		} else {
			cleanVal = strings.ReplaceAll(cleanVal, ",", "")
		}
	case hasComma:
		// A lone comma followed by exactly three digits is a thousands
		// separator; otherwise treat it as a European decimal comma.
		commaIdx := strings.LastIndex(cleanVal, ",")
		afterComma := cleanVal[commaIdx+1:]
		if len(afterComma) == 3 && strings.Count(cleanVal, ",") >= 1 && isAllDigits(afterComma) {
			cleanVal = strings.ReplaceAll(cleanVal, ",", "")
		} else {
			cleanVal = strings.ReplaceAll(cleanVal, ",", ".")
		}
	}
	cleanVal = strings.ReplaceAll(cleanVal, " ", "")

	if isNegative {
		cleanVal = "-" + cleanVal
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
