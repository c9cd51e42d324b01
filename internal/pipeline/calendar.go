package pipeline

// Months is the canonical ordered list of calendar months every
// revenue code must cover in the staging table.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// CompleteCalendar guarantees exactly twelve records per revenue code
// by reindexing the input onto the cross-product of the distinct
// codes and the canonical months. Pairs present in the input carry
// their value and source through unchanged (first occurrence wins on
// duplicates); absent pairs are synthesized with a missing value and
// a nil source, since the file truly had no row to take a label from.
// Downstream consumers expect a rectangular code×month grid; a code
// reported for only part of the year would otherwise distort totals.
func CompleteCalendar(records []LongRecord) []LongRecord {
	type key struct {
		code, month string
	}

	present := make(map[key]LongRecord, len(records))
	var codes []string
	seenCode := make(map[string]bool)

	for _, r := range records {
		if !seenCode[r.RevenueCode] {
			seenCode[r.RevenueCode] = true
			codes = append(codes, r.RevenueCode)
		}
		k := key{r.RevenueCode, r.Month}
		if _, ok := present[k]; !ok {
			present[k] = r
		}
	}

	out := make([]LongRecord, 0, len(codes)*len(Months))
	for _, code := range codes {
		for _, month := range Months {
			if r, ok := present[key{code, month}]; ok {
				out = append(out, r)
				continue
			}
			out = append(out, LongRecord{
				Month:       month,
				RevenueCode: code,
			})
		}
	}
	return out
}
