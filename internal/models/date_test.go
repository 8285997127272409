package models

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year != 2025 || d.Month != time.March || d.Day != 15 {
		t.Errorf("ParseDate = %v", d)
	}
	if d.String() != "2025-03-15" {
		t.Errorf("String() = %q", d.String())
	}

	if _, err := ParseDate("15/03/2025"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2025, time.March, 15)
	b := a.AddDays(1)

	if !a.Before(b) || b.Before(a) {
		t.Error("Before is inconsistent")
	}
	if !b.After(a) {
		t.Error("After is inconsistent")
	}
	if !a.Equal(NewDate(2025, time.March, 15)) {
		t.Error("Equal must compare by year-month-day")
	}
	if !a.AddDays(-15).Equal(NewDate(2025, time.February, 28)) {
		t.Errorf("AddDays across month boundary = %v", a.AddDays(-15))
	}
}

func TestDateSetNoDuplicates(t *testing.T) {
	day := NewDate(2025, time.March, 15)

	var set DateSet
	set = set.Add(day)
	set = set.Add(day)
	if len(set) != 1 {
		t.Fatalf("Add must not create duplicates, len = %d", len(set))
	}

	set = set.Remove(day)
	if set.Contains(day) {
		t.Error("Remove left the date behind")
	}
}

func TestDateSetScanRoundTrip(t *testing.T) {
	day := NewDate(2025, time.March, 15)
	set := DateSet{day, day.AddDays(-1)}

	v, err := set.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var decoded DateSet
	if err := decoded.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(decoded) != 2 || !decoded.Contains(day) || !decoded.Contains(day.AddDays(-1)) {
		t.Errorf("round trip lost dates: %v", decoded)
	}
}

func TestDateSetScanDropsDuplicates(t *testing.T) {
	var set DateSet
	if err := set.Scan([]byte(`["2025-03-15","2025-03-15","2025-03-14"]`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(set) != 2 {
		t.Errorf("Scan must drop duplicate dates, len = %d", len(set))
	}
}

func TestDateSetScanNull(t *testing.T) {
	var set DateSet
	if err := set.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if set == nil || len(set) != 0 {
		t.Errorf("Scan(nil) must produce an empty set, got %v", set)
	}
}
