package schedule

// SlotLedger maps a date key (D/M/YYYY) to the time labels already booked on
// that date. A label present in the list means the slot is taken. The Mongo
// repository performs the persisted equivalents of Book and Release as single
// conditional updates; these in-memory forms define the contract.
type SlotLedger map[string][]string

// IsBooked reports whether a time label is held for a date.
func (l SlotLedger) IsBooked(date, timeLabel string) bool {
	for _, t := range l[date] {
		if t == timeLabel {
			return true
		}
	}
	return false
}

// Book records a time label under a date. Callers must check IsBooked first;
// Book itself does not reject duplicates.
func (l SlotLedger) Book(date, timeLabel string) {
	l[date] = append(l[date], timeLabel)
}

// Release removes a time label from a date's list. Releasing a label that is
// not held is a no-op, so double-release is tolerated.
func (l SlotLedger) Release(date, timeLabel string) {
	times := l[date]
	for i, t := range times {
		if t == timeLabel {
			l[date] = append(times[:i], times[i+1:]...)
			return
		}
	}
}
