package pipeline

import "testing"

func TestCoerceValues(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		missing bool
	}{
		{"plain integer", "100", 100, false},
		{"decimal", "12.5", 12.5, false},
		{"thousands separator", "1,234.5", 1234.5, false},
		{"surrounding spaces", " 300 ", 300, false},
		{"negative", "-42", -42, false},
		{"empty stays missing", "", 0, true},
		{"text stays missing", "n/a", 0, true},
		{"garbled number stays missing", "12..5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []LongRecord{{RevenueCode: "1000.01.01", Month: "January", Raw: tt.raw}}
			CoerceValues(records)

			got := records[0].Value
			if tt.missing {
				if got != nil {
					t.Errorf("CoerceValues(%q) = %v, want missing", tt.raw, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("CoerceValues(%q) = missing, want %v", tt.raw, tt.want)
			}
			if *got != tt.want {
				t.Errorf("CoerceValues(%q) = %v, want %v", tt.raw, *got, tt.want)
			}
		})
	}
}

func TestCoerceValues_KeepsRecords(t *testing.T) {
	records := []LongRecord{
		{RevenueCode: "1000.01.01", Month: "January", Raw: "abc"},
		{RevenueCode: "1000.01.01", Month: "February", Raw: "200"},
	}

	CoerceValues(records)

	// Coercion failure nulls the value but never drops the record.
	if len(records) != 2 {
		t.Fatalf("record count changed: %d", len(records))
	}
	if records[0].Value != nil {
		t.Error("unparseable value should stay missing")
	}
	if records[1].Value == nil || *records[1].Value != 200 {
		t.Error("parseable value lost")
	}
}
