package staff

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// Shift is the wall-clock window during which an employee may act.
// When End is before Start the window wraps past midnight.
type Shift struct {
	start kernel.TimeOfDay
	end   kernel.TimeOfDay
}

func NewShift(start, end kernel.TimeOfDay) Shift {
	return Shift{start: start, end: end}
}

// ParseShift parses two "HH:MM" strings.
func ParseShift(start, end string) (Shift, error) {
	s, err := kernel.ParseTimeOfDay(start)
	if err != nil {
		return Shift{}, err
	}
	e, err := kernel.ParseTimeOfDay(end)
	if err != nil {
		return Shift{}, err
	}
	return NewShift(s, e), nil
}

func (s Shift) Start() kernel.TimeOfDay { return s.start }

func (s Shift) End() kernel.TimeOfDay { return s.end }

// Contains reports whether now falls inside [start, end) as a time of day.
// now is read in its own location, so callers convert it to outlet time first.
// A window with start equal to end is empty.
func (s Shift) Contains(now time.Time) bool {
	t := kernel.TimeOfDayOf(now)
	if s.end.Before(s.start) {
		return !t.Before(s.start) || t.Before(s.end)
	}
	return !t.Before(s.start) && t.Before(s.end)
}

func (s Shift) String() string {
	return s.start.String() + " - " + s.end.String()
}
