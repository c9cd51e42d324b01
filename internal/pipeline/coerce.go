package pipeline

import (
	"strconv"
	"strings"
)

// CoerceValues parses every raw cell into a number. Spreadsheet
// values may carry thousands separators, so commas are stripped
// before parsing. Coercion failures are non-fatal: the record is
// kept and only its value stays missing.
func CoerceValues(records []LongRecord) {
	for i := range records {
		raw := strings.TrimSpace(records[i].Raw)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			continue
		}
		records[i].Value = &v
	}
}
