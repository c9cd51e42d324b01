package pipeline

import (
	"errors"
	"testing"
)

func TestIsRevenueCode(t *testing.T) {
	tests := []struct {
		cell string
		want bool
	}{
		{"1000.01.01", true},
		{"2000.05.10", true},
		{"9999.99.99", true},
		{"TOTAL", false},
		{"", false},
		{"1000.1.01", false},
		{"10000.01.01", false},
		{"1000.01.011", false},
		{"1000-01-01", false},
		{" 1000.01.01", false},
		{"1000.01.01 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			if got := IsRevenueCode(tt.cell); got != tt.want {
				t.Errorf("IsRevenueCode(%q) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestFilterRows(t *testing.T) {
	rows := [][]string{
		{"Revenue report", ""},
		{"1000.01.01", "Sales", "100"},
		{"Subtotal", "", "100"},
		{"2000.05.10", "Fees", "50"},
		{"TOTAL", "", "150"},
		{"2000.05.11", "Late fees", "5"},
		{"Prepared by accounting", ""},
	}

	tests := []struct {
		name      string
		policy    ValidationPolicy
		wantCodes []string
	}{
		{
			name:      "filter keeps every match",
			policy:    PolicyFilterMatches,
			wantCodes: []string{"1000.01.01", "2000.05.10", "2000.05.11"},
		},
		{
			name:      "truncate keeps matches up to the last one",
			policy:    PolicyTruncateAtLastMatch,
			wantCodes: []string{"1000.01.01", "2000.05.10", "2000.05.11"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterRows(rows, tt.policy)
			if err != nil {
				t.Fatalf("FilterRows() error = %v", err)
			}
			if len(got) != len(tt.wantCodes) {
				t.Fatalf("FilterRows() kept %d rows, want %d", len(got), len(tt.wantCodes))
			}
			for i, row := range got {
				if row[0] != tt.wantCodes[i] {
					t.Errorf("row %d code = %q, want %q", i, row[0], tt.wantCodes[i])
				}
			}
		})
	}
}

func TestFilterRows_NoMatches(t *testing.T) {
	rows := [][]string{
		{"Revenue report", ""},
		{"TOTAL", "", "150"},
		{},
	}

	for _, policy := range []ValidationPolicy{PolicyTruncateAtLastMatch, PolicyFilterMatches} {
		t.Run(policy.String(), func(t *testing.T) {
			_, err := FilterRows(rows, policy)
			if err == nil {
				t.Fatal("FilterRows() expected error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("FilterRows() error = %T, want *ValidationError", err)
			}
		})
	}
}

func TestNewWideTable(t *testing.T) {
	header := []string{"Revenue Code", "Revenue Source", " January ", "February"}
	rows := [][]string{
		{"1000.01.01", "Sales", "100", "200"},
		{"2000.05.10"}, // short row: source and months absent
	}

	table, err := NewWideTable(header, rows)
	if err != nil {
		t.Fatalf("NewWideTable() error = %v", err)
	}

	wantMonths := []string{"January", "February"}
	if len(table.Months) != len(wantMonths) {
		t.Fatalf("got %d months, want %d", len(table.Months), len(wantMonths))
	}
	for i, m := range wantMonths {
		if table.Months[i] != m {
			t.Errorf("month %d = %q, want %q", i, table.Months[i], m)
		}
	}

	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	if table.Rows[0].RevenueSource != "Sales" || table.Rows[0].Values[1] != "200" {
		t.Errorf("row 0 not carried through: %+v", table.Rows[0])
	}
	short := table.Rows[1]
	if short.RevenueSource != "" || short.Values[0] != "" || short.Values[1] != "" {
		t.Errorf("short row not padded with empty cells: %+v", short)
	}
}

func TestNewWideTable_SchemaMismatch(t *testing.T) {
	_, err := NewWideTable([]string{"Revenue Code", "Revenue Source"}, nil)
	if err == nil {
		t.Fatal("NewWideTable() expected error for missing month columns")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("NewWideTable() error = %T, want *ValidationError", err)
	}
}
