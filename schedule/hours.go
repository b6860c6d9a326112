package schedule

import "time"

const (
	defaultStart = "09:00"
	defaultEnd   = "18:00"
)

// DayHours is one day's entry in a servicer's weekly working-hours template.
type DayHours struct {
	Start     string `bson:"start" json:"start"`
	End       string `bson:"end" json:"end"`
	Available bool   `bson:"available" json:"available"`
}

// WorkingHours is a servicer's weekly availability template. It is a fixed
// seven-field struct rather than an open map so the document always carries
// exactly the seven recognized day keys.
type WorkingHours struct {
	Monday    DayHours `bson:"monday" json:"monday"`
	Tuesday   DayHours `bson:"tuesday" json:"tuesday"`
	Wednesday DayHours `bson:"wednesday" json:"wednesday"`
	Thursday  DayHours `bson:"thursday" json:"thursday"`
	Friday    DayHours `bson:"friday" json:"friday"`
	Saturday  DayHours `bson:"saturday" json:"saturday"`
	Sunday    DayHours `bson:"sunday" json:"sunday"`
}

// DefaultWorkingHours returns the template assigned at servicer creation:
// 09:00-18:00 every day, Sunday closed.
func DefaultWorkingHours() WorkingHours {
	open := DayHours{Start: defaultStart, End: defaultEnd, Available: true}
	return WorkingHours{
		Monday:    open,
		Tuesday:   open,
		Wednesday: open,
		Thursday:  open,
		Friday:    open,
		Saturday:  open,
		Sunday:    DayHours{Start: defaultStart, End: defaultEnd, Available: false},
	}
}

// DayName returns the lowercase English name for a weekday.
func DayName(d time.Weekday) string {
	names := [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	return names[d]
}

func (wh *WorkingHours) field(name string) *DayHours {
	switch name {
	case "monday":
		return &wh.Monday
	case "tuesday":
		return &wh.Tuesday
	case "wednesday":
		return &wh.Wednesday
	case "thursday":
		return &wh.Thursday
	case "friday":
		return &wh.Friday
	case "saturday":
		return &wh.Saturday
	case "sunday":
		return &wh.Sunday
	}
	return nil
}

// Day returns the entry for a weekday.
func (wh *WorkingHours) Day(d time.Weekday) DayHours {
	return *wh.field(DayName(d))
}

// Set stores an entry under a day name, coercing missing start/end to
// defaults. Unrecognized day names are silently dropped and reported false.
func (wh *WorkingHours) Set(name string, h DayHours) bool {
	entry := wh.field(name)
	if entry == nil {
		return false
	}
	if h.Start == "" {
		h.Start = defaultStart
	}
	if h.End == "" {
		h.End = defaultEnd
	}
	*entry = h
	return true
}

// Toggle flips a day's available flag. Unrecognized day names are a no-op.
func (wh *WorkingHours) Toggle(name string) bool {
	entry := wh.field(name)
	if entry == nil {
		return false
	}
	entry.Available = !entry.Available
	return true
}
