package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const slotStep = 30 * time.Minute

// Slot is one bookable 30-minute candidate.
type Slot struct {
	Datetime time.Time `json:"datetime"`
	Time     string    `json:"time"`
}

// DateKey renders a time as the ledger's date key: D/M/YYYY, no zero padding.
// Ledger entries are matched byte-for-byte against these keys.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// TimeLabel renders a time as the ledger's time label, e.g. "09:00 AM".
func TimeLabel(t time.Time) string {
	return t.Format("03:04 PM")
}

func parseHM(s string) (int, int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// DailySlots produces the seven-day slot board for a servicer: one list per
// day starting today, each holding the free 30-minute candidates within that
// day's working hours. Days marked unavailable yield an empty list in place,
// never a missing one, because clients consume the output positionally.
// The result is a pure function of hours, ledger and now.
func DailySlots(hours WorkingHours, ledger SlotLedger, now time.Time) [][]Slot {
	board := make([][]Slot, 0, 7)

	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i)
		entry := hours.Day(day.Weekday())
		if !entry.Available {
			board = append(board, []Slot{})
			continue
		}

		startH, startM, okStart := parseHM(entry.Start)
		endH, endM, okEnd := parseHM(entry.End)
		if !okStart || !okEnd {
			board = append(board, []Slot{})
			continue
		}

		cursor := time.Date(day.Year(), day.Month(), day.Day(), startH, startM, 0, 0, now.Location())
		end := time.Date(day.Year(), day.Month(), day.Day(), endH, endM, 0, 0, now.Location())

		// Today never offers past times: advance to the next 30-minute boundary.
		if i == 0 && cursor.Before(now) {
			cursor = roundUpToStep(now)
		}

		slots := []Slot{}
		for cursor.Before(end) {
			label := TimeLabel(cursor)
			if !ledger.IsBooked(DateKey(cursor), label) {
				slots = append(slots, Slot{Datetime: cursor, Time: label})
			}
			cursor = cursor.Add(slotStep)
		}
		board = append(board, slots)
	}

	return board
}

func roundUpToStep(t time.Time) time.Time {
	truncated := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	minutes := t.Minute()
	rounded := ((minutes + 29) / 30) * 30
	return truncated.Add(time.Duration(rounded) * time.Minute)
}
