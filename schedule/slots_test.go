package schedule

import (
	"reflect"
	"testing"
	"time"
)

// Monday 2026-03-02 08:00 local.
func mondayMorning() time.Time {
	return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
}

func TestDailySlotsWeekOutline(t *testing.T) {
	now := mondayMorning()
	board := DailySlots(DefaultWorkingHours(), SlotLedger{}, now)

	if len(board) != 7 {
		t.Fatalf("expected 7 day lists, got %d", len(board))
	}

	monday := board[0]
	if len(monday) == 0 {
		t.Fatalf("expected slots for Monday")
	}
	if monday[0].Time != "09:00 AM" {
		t.Fatalf("expected first Monday slot 09:00 AM, got %q", monday[0].Time)
	}
	if monday[1].Time != "09:30 AM" {
		t.Fatalf("expected 30-minute increments, got %q", monday[1].Time)
	}
	last := monday[len(monday)-1]
	if last.Time != "05:30 PM" {
		t.Fatalf("expected last Monday slot 05:30 PM, got %q", last.Time)
	}
	// 09:00 through 17:30 inclusive.
	if len(monday) != 18 {
		t.Fatalf("expected 18 Monday slots, got %d", len(monday))
	}

	// Sunday is day index 6 when today is Monday, and closed by default.
	if len(board[6]) != 0 {
		t.Fatalf("expected empty Sunday list, got %d slots", len(board[6]))
	}
}

func TestDailySlotsSkipsPastTimesToday(t *testing.T) {
	// Monday 10:10: the cursor must advance to 10:30.
	now := time.Date(2026, 3, 2, 10, 10, 0, 0, time.UTC)
	board := DailySlots(DefaultWorkingHours(), SlotLedger{}, now)

	monday := board[0]
	if len(monday) == 0 {
		t.Fatalf("expected slots for Monday")
	}
	if monday[0].Time != "10:30 AM" {
		t.Fatalf("expected first slot 10:30 AM, got %q", monday[0].Time)
	}

	// Tomorrow is unaffected by the current time.
	tuesday := board[1]
	if tuesday[0].Time != "09:00 AM" {
		t.Fatalf("expected Tuesday to start at 09:00 AM, got %q", tuesday[0].Time)
	}
}

func TestDailySlotsExcludesBooked(t *testing.T) {
	now := mondayMorning()
	ledger := SlotLedger{}
	ledger.Book(DateKey(now), "09:00 AM")

	board := DailySlots(DefaultWorkingHours(), ledger, now)
	for _, s := range board[0] {
		if s.Time == "09:00 AM" {
			t.Fatalf("booked slot still offered")
		}
	}
	if board[0][0].Time != "09:30 AM" {
		t.Fatalf("expected first free slot 09:30 AM, got %q", board[0][0].Time)
	}

	// Releasing the slot brings it back.
	ledger.Release(DateKey(now), "09:00 AM")
	board = DailySlots(DefaultWorkingHours(), ledger, now)
	if board[0][0].Time != "09:00 AM" {
		t.Fatalf("released slot not offered again, got %q", board[0][0].Time)
	}
}

func TestDailySlotsDeterministic(t *testing.T) {
	now := mondayMorning()
	ledger := SlotLedger{DateKey(now): {"10:00 AM", "02:30 PM"}}

	first := DailySlots(DefaultWorkingHours(), ledger, now)
	second := DailySlots(DefaultWorkingHours(), ledger, now)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls produced different boards")
	}
}

func TestDailySlotsDegenerateHours(t *testing.T) {
	hours := DefaultWorkingHours()
	hours.Set("monday", DayHours{Start: "18:00", End: "09:00", Available: true})

	board := DailySlots(hours, SlotLedger{}, mondayMorning())
	if len(board[0]) != 0 {
		t.Fatalf("start >= end should yield zero slots, got %d", len(board[0]))
	}
	if len(board) != 7 {
		t.Fatalf("degenerate day must still hold its position, got %d lists", len(board))
	}
}

func TestDailySlotsMalformedHours(t *testing.T) {
	hours := DefaultWorkingHours()
	hours.Monday = DayHours{Start: "soon", End: "later", Available: true}

	board := DailySlots(hours, SlotLedger{}, mondayMorning())
	if len(board[0]) != 0 {
		t.Fatalf("unparseable hours should yield zero slots, got %d", len(board[0]))
	}
}

func TestDateKeyNoZeroPadding(t *testing.T) {
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if got := DateKey(d); got != "2/3/2026" {
		t.Fatalf("expected 2/3/2026, got %q", got)
	}
}

func TestTimeLabelFormat(t *testing.T) {
	cases := map[string]time.Time{
		"09:00 AM": time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		"12:30 PM": time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC),
		"05:30 PM": time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC),
		"12:00 AM": time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	for want, in := range cases {
		if got := TimeLabel(in); got != want {
			t.Fatalf("TimeLabel(%v) = %q, want %q", in, got, want)
		}
	}
}
