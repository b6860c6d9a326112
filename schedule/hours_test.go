package schedule

import (
	"testing"
	"time"
)

func TestSetUnknownDayDropped(t *testing.T) {
	hours := DefaultWorkingHours()
	before := hours

	if hours.Set("funday", DayHours{Start: "10:00", End: "12:00", Available: true}) {
		t.Fatalf("unrecognized day accepted")
	}
	if hours != before {
		t.Fatalf("unrecognized day mutated the calendar")
	}
}

func TestSetCoercesDefaults(t *testing.T) {
	hours := DefaultWorkingHours()
	if !hours.Set("tuesday", DayHours{Available: true}) {
		t.Fatalf("recognized day rejected")
	}
	got := hours.Tuesday
	if got.Start != "09:00" || got.End != "18:00" || !got.Available {
		t.Fatalf("unexpected coerced entry: %+v", got)
	}

	// Omitted available flag stays false, matching the sanitization policy.
	hours.Set("wednesday", DayHours{Start: "08:00", End: "12:00"})
	if hours.Wednesday.Available {
		t.Fatalf("available should default to false")
	}
}

func TestToggle(t *testing.T) {
	hours := DefaultWorkingHours()
	if !hours.Toggle("sunday") {
		t.Fatalf("toggle rejected a known day")
	}
	if !hours.Sunday.Available {
		t.Fatalf("expected Sunday toggled open")
	}
	if hours.Toggle("noday") {
		t.Fatalf("toggle accepted an unknown day")
	}
}

func TestDayNameRoundTrip(t *testing.T) {
	hours := DefaultWorkingHours()
	hours.Set("saturday", DayHours{Start: "10:00", End: "14:00", Available: true})

	got := hours.Day(time.Saturday)
	if got.Start != "10:00" || got.End != "14:00" {
		t.Fatalf("Day(Saturday) = %+v", got)
	}
}

func TestLedgerIdempotentRelease(t *testing.T) {
	ledger := SlotLedger{}
	ledger.Book("2/3/2026", "09:00 AM")
	ledger.Book("2/3/2026", "10:00 AM")

	ledger.Release("2/3/2026", "09:00 AM")
	ledger.Release("2/3/2026", "09:00 AM")

	if ledger.IsBooked("2/3/2026", "09:00 AM") {
		t.Fatalf("released slot still booked")
	}
	if !ledger.IsBooked("2/3/2026", "10:00 AM") {
		t.Fatalf("unrelated slot lost")
	}
	if len(ledger["2/3/2026"]) != 1 {
		t.Fatalf("double release corrupted ledger: %v", ledger["2/3/2026"])
	}
}
