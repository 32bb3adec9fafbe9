// Package clock provides the wall clock used by command handlers.
package clock

import "time"

// System reads time.Now in UTC.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}
