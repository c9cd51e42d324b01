package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// revenueCodePattern is the shape of a genuine revenue-code cell:
// four digits, dot, two digits, dot, two digits. Titles, subtotals
// and blank separator rows never match.
var revenueCodePattern = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}$`)

// IsRevenueCode reports whether the first-column cell identifies a
// real revenue record.
func IsRevenueCode(cell string) bool {
	return revenueCodePattern.MatchString(cell)
}

// ValidationPolicy selects how the valid data block is carved out of
// the raw row set. The two source report families need different
// boundary handling, so the choice is explicit per pipeline.
type ValidationPolicy int

const (
	// PolicyTruncateAtLastMatch discards everything after the last
	// row whose code matches, then keeps the matching rows within
	// that block. Used by the Actual reports, where footers follow
	// the data.
	PolicyTruncateAtLastMatch ValidationPolicy = iota

	// PolicyFilterMatches keeps matching rows wherever they appear.
	// Used by the Estimate reports.
	PolicyFilterMatches
)

func (p ValidationPolicy) String() string {
	switch p {
	case PolicyTruncateAtLastMatch:
		return "truncate-at-last-match"
	case PolicyFilterMatches:
		return "filter-all-matches"
	default:
		return fmt.Sprintf("ValidationPolicy(%d)", int(p))
	}
}

// FilterRows applies the validation policy to the raw data rows and
// returns only genuine revenue rows. A file with zero matching rows
// is not revenue data at all and fails with a ValidationError rather
// than producing an empty table.
func FilterRows(rows [][]string, policy ValidationPolicy) ([][]string, error) {
	last := -1
	for i, row := range rows {
		if len(row) > 0 && IsRevenueCode(row[0]) {
			last = i
		}
	}
	if last < 0 {
		return nil, &ValidationError{Reason: "no revenue rows found"}
	}

	if policy == PolicyTruncateAtLastMatch {
		rows = rows[:last+1]
	}

	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 && IsRevenueCode(row[0]) {
			kept = append(kept, row)
		}
	}
	return kept, nil
}

// NewWideTable validates the header layout once and binds the
// filtered rows to it. The layout contract is positional: code,
// source, then one column per month.
func NewWideTable(header []string, rows [][]string) (*WideTable, error) {
	if len(header) < 3 {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("schema mismatch: want code, source and at least one month column, got %d columns", len(header)),
		}
	}

	months := make([]string, len(header)-2)
	for i, h := range header[2:] {
		months[i] = strings.TrimSpace(h)
	}

	t := &WideTable{
		Months: months,
		Rows:   make([]WideRow, 0, len(rows)),
	}
	for _, row := range rows {
		wr := WideRow{
			RevenueCode: row[0],
			Values:      make([]string, len(months)),
		}
		if len(row) > 1 {
			wr.RevenueSource = row[1]
		}
		for i := range months {
			if i+2 < len(row) {
				wr.Values[i] = row[i+2]
			}
		}
		t.Rows = append(t.Rows, wr)
	}
	return t, nil
}
