package pipeline

import "strings"

// missingSentinel is how the source reports mark an absent value.
const missingSentinel = "-"

// CleanTable normalizes every cell in place: surrounding whitespace
// is trimmed and the "-" sentinel becomes a missing value (empty
// string). A row whose source label ends up missing inherits its
// revenue code, so every real row leaves here with a non-missing
// source. Cleaning runs before reshaping and is idempotent.
func CleanTable(t *WideTable) {
	for i := range t.Rows {
		row := &t.Rows[i]
		row.RevenueCode = cleanCell(row.RevenueCode)
		row.RevenueSource = cleanCell(row.RevenueSource)
		for j := range row.Values {
			row.Values[j] = cleanCell(row.Values[j])
		}
		if row.RevenueSource == "" {
			row.RevenueSource = row.RevenueCode
		}
	}
}

func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if s == missingSentinel {
		return ""
	}
	return s
}
