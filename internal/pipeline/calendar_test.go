package pipeline

import "testing"

func strp(s string) *string { return &s }

func TestCompleteCalendar(t *testing.T) {
	records := []LongRecord{
		{RevenueCode: "1000.01.01", Month: "January", RevenueSource: strp("Sales"), Raw: "100"},
		{RevenueCode: "1000.01.01", Month: "March", RevenueSource: strp("Sales"), Raw: "300"},
		{RevenueCode: "2000.05.10", Month: "July", RevenueSource: strp("Fees"), Raw: "50"},
	}

	out := CompleteCalendar(records)

	if len(out) != 24 {
		t.Fatalf("got %d records, want 24 (2 codes x 12 months)", len(out))
	}

	// Exactly one record per (code, month), in canonical month order
	// within each code.
	byCode := map[string][]LongRecord{}
	for _, r := range out {
		byCode[r.RevenueCode] = append(byCode[r.RevenueCode], r)
	}
	if len(byCode) != 2 {
		t.Fatalf("got %d distinct codes, want 2", len(byCode))
	}
	for code, recs := range byCode {
		if len(recs) != 12 {
			t.Errorf("code %s has %d records, want 12", code, len(recs))
		}
		for i, r := range recs {
			if r.Month != Months[i] {
				t.Errorf("code %s record %d month = %s, want %s", code, i, r.Month, Months[i])
			}
		}
	}

	// Present pairs keep their value and source unchanged.
	first := byCode["1000.01.01"]
	if first[0].Raw != "100" || first[2].Raw != "300" {
		t.Errorf("present values not preserved: jan=%q mar=%q", first[0].Raw, first[2].Raw)
	}
	if first[0].RevenueSource == nil || *first[0].RevenueSource != "Sales" {
		t.Error("present source not preserved")
	}

	// Synthesized pairs have missing value and no source label.
	feb := first[1]
	if feb.Raw != "" || feb.Value != nil {
		t.Errorf("synthesized February should be missing, got raw=%q", feb.Raw)
	}
	if feb.RevenueSource != nil {
		t.Errorf("synthesized February source = %q, want nil", *feb.RevenueSource)
	}
}

func TestCompleteCalendar_DuplicatePairKeepsFirst(t *testing.T) {
	records := []LongRecord{
		{RevenueCode: "1000.01.01", Month: "January", Raw: "100"},
		{RevenueCode: "1000.01.01", Month: "January", Raw: "999"},
	}

	out := CompleteCalendar(records)

	if len(out) != 12 {
		t.Fatalf("got %d records, want 12", len(out))
	}
	if out[0].Month != "January" || out[0].Raw != "100" {
		t.Errorf("duplicate pair resolved to %q, want first occurrence 100", out[0].Raw)
	}
}
