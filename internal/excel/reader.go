// Package excel reads the semi-structured revenue workbooks. The
// reports carry a few banner rows above the real header, so the
// reader works from a fixed header offset and an explicit column
// selection rather than inferring any layout.
package excel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Layout describes where the tabular data sits inside a workbook.
type Layout struct {
	// Sheet is the sheet to read; empty means the first sheet.
	Sheet string
	// HeaderRow is the 0-based index of the header row. Rows above
	// it are discarded.
	HeaderRow int
	// Columns selects columns by spreadsheet name, e.g. "A:N" or
	// "A,B,D:O". Empty keeps every column.
	Columns string
}

// Reader reads workbooks under one fixed layout.
type Reader struct {
	layout  Layout
	columns []int
}

// NewReader validates the column selection once and returns a reader
// for the given layout.
func NewReader(layout Layout) (*Reader, error) {
	columns, err := parseColumns(layout.Columns)
	if err != nil {
		return nil, fmt.Errorf("invalid column selection %q: %w", layout.Columns, err)
	}
	return &Reader{layout: layout, columns: columns}, nil
}

// Read opens the workbook bytes and returns the header row and the
// data rows beneath it, with the column selection applied. Cells
// outside a short row come back as empty strings so every returned
// row has one cell per selected column.
func (r *Reader) Read(data []byte) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := r.layout.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read rows from sheet %q: %w", sheet, err)
	}
	if len(rows) <= r.layout.HeaderRow {
		return nil, nil, fmt.Errorf("sheet %q has %d rows, header expected at row %d", sheet, len(rows), r.layout.HeaderRow+1)
	}

	header := r.selectCells(rows[r.layout.HeaderRow], len(rows[r.layout.HeaderRow]))
	width := len(header)

	body := make([][]string, 0, len(rows)-r.layout.HeaderRow-1)
	for _, row := range rows[r.layout.HeaderRow+1:] {
		body = append(body, r.selectCells(row, width))
	}
	return header, body, nil
}

// selectCells applies the column selection to one row, padding short
// rows with empty cells. With no selection the row is padded to
// width.
func (r *Reader) selectCells(row []string, width int) []string {
	if r.columns == nil {
		out := make([]string, width)
		copy(out, row)
		return out
	}
	out := make([]string, len(r.columns))
	for i, col := range r.columns {
		if col < len(row) {
			out[i] = row[col]
		}
	}
	return out
}

// parseColumns expands a selection like "A,B,D:O" into 0-based column
// indices, in the order given.
func parseColumns(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	var columns []int
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		from, to, hasRange := strings.Cut(token, ":")

		start, err := excelize.ColumnNameToNumber(from)
		if err != nil {
			return nil, err
		}
		end := start
		if hasRange {
			end, err = excelize.ColumnNameToNumber(to)
			if err != nil {
				return nil, err
			}
		}
		if end < start {
			return nil, fmt.Errorf("range %q runs backwards", token)
		}
		for c := start; c <= end; c++ {
			columns = append(columns, c-1)
		}
	}
	return columns, nil
}
