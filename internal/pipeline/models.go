package pipeline

// WideRow is one validated spreadsheet row before reshaping: the two
// identifying columns plus the raw text of each month cell, in column
// order.
type WideRow struct {
	RevenueCode   string
	RevenueSource string
	Values        []string
}

// WideTable couples the validated rows with the month column headers
// they were read under. Months are trimmed header labels in
// chronological (left-to-right) order.
type WideTable struct {
	Months []string
	Rows   []WideRow
}

// LongRecord is one (revenue code, month) observation in long format.
// Raw holds the cell text as read; Value is set by numeric coercion
// and stays nil when the cell was missing or unparseable.
// RevenueSource is nil only on rows synthesized by calendar
// completion, where the source file carried no row for that month.
type LongRecord struct {
	Year          int
	Month         string
	RevenueCode   string
	RevenueSource *string
	Raw           string
	Value         *float64
}
