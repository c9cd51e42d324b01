package pipeline

import (
	"regexp"
	"strconv"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// ExtractYear derives the reporting year from a file name: the first
// run of 4 consecutive digits. A file represents exactly one
// reporting year, so the result is applied uniformly to every record
// produced from it.
func ExtractYear(fileName string) (int, error) {
	m := yearPattern.FindString(fileName)
	if m == "" {
		return 0, &ConfigError{Reason: "no 4-digit year found in file name " + strconv.Quote(fileName)}
	}
	return strconv.Atoi(m)
}

// ApplyYear stamps the reporting year onto every record. Calendar
// completion rebuilds the record set from the code×month
// cross-product, which does not carry the year, so this runs after
// completion.
func ApplyYear(records []LongRecord, year int) {
	for i := range records {
		records[i].Year = year
	}
}
