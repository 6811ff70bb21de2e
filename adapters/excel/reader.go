package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"retailedge/domain/core"
	"retailedge/domain/table"
)

// DataReader decodes spreadsheet bytes (xlsx or csv) into an InputTable.
// The file arrives over the network, so decoding works from memory rather
// than from a path.
type DataReader struct{}

// NewDataReader creates a new data reader.
func NewDataReader() *DataReader {
	return &DataReader{}
}

// Decode detects the format from the source name and decodes the bytes.
// Anything that is not .csv is attempted as xlsx, which is what retailer
// exports overwhelmingly are.
func (r *DataReader) Decode(data []byte, sourceName string) (*table.InputTable, error) {
	if len(data) == 0 {
		return nil, core.NewDecodeError("file", fmt.Errorf("empty payload"))
	}
	ext := strings.ToLower(path.Ext(strings.SplitN(sourceName, "?", 2)[0]))
	if ext == ".csv" {
		return r.decodeCSV(data)
	}
	return r.decodeExcel(data)
}

// decodeExcel reads the first sheet of an xlsx workbook.
func (r *DataReader) decodeExcel(data []byte) (*table.InputTable, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, core.NewDecodeError("xlsx", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.NewDecodeError("xlsx", fmt.Errorf("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, core.NewDecodeError("xlsx", err)
	}
	log.Printf("[DataReader] Sheet %q read in %.2fms (%d rows)",
		sheets[0], float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// decodeCSV reads a CSV payload.
func (r *DataReader) decodeCSV(data []byte) (*table.InputTable, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // exports are often ragged
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewDecodeError("csv", err)
	}
	return r.processRows(rows)
}

// processRows converts raw string rows into an InputTable. The first row
// is the header row; header cells are trimmed and coerced to text. Rows
// shorter than the header are padded implicitly (missing cells read as "").
func (r *DataReader) processRows(rows [][]string) (*table.InputTable, error) {
	if len(rows) == 0 {
		return nil, core.NewDecodeError("table", fmt.Errorf("no header row"))
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]table.RawRow, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(table.RawRow, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] Decoded table (%d columns, %d rows)", len(headers), len(dataRows))

	return &table.InputTable{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}
