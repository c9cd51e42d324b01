package pipeline

// Reshape unpivots a wide table into long format: one record per
// (revenue code, month), with the identifying columns repeated as
// keys. Month labels come from the column headers; values are carried
// through as raw text, unconverted.
func Reshape(t *WideTable) []LongRecord {
	out := make([]LongRecord, 0, len(t.Rows)*len(t.Months))
	for _, row := range t.Rows {
		source := row.RevenueSource
		for i, month := range t.Months {
			raw := ""
			if i < len(row.Values) {
				raw = row.Values[i]
			}
			out = append(out, LongRecord{
				Month:         month,
				RevenueCode:   row.RevenueCode,
				RevenueSource: &source,
				Raw:           raw,
			})
		}
	}
	return out
}
