package bigquery

import (
	"cloud.google.com/go/bigquery"
)

// RevenueRow is one staging-table row in the destination schema.
// Year and Month come from the file name and the month column header;
// Revenue_Source and Value are NULL when the source file carried no
// data for that cell.
type RevenueRow struct {
	Year          int64                `bigquery:"Year"`           // REQUIRED
	Month         string               `bigquery:"Month"`          // REQUIRED
	RevenueCode   string               `bigquery:"Revenue_Code"`   // REQUIRED
	RevenueSource bigquery.NullString  `bigquery:"Revenue_Source"` // NULLABLE
	Value         bigquery.NullFloat64 `bigquery:"Value"`          // NULLABLE
}
