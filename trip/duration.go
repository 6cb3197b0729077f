package trip

import (
	"math"
	"time"
)

// DefaultTripDays is used whenever a day count cannot be derived from the
// dates. Missing or same-day date pairs plan a 3-day trip rather than
// surfacing an error.
const DefaultTripDays = 3

// Duration returns the trip length as the ceiling of the whole-day
// difference between start and end. The difference is taken as an absolute
// value, so reversed dates still yield a positive count. A zero result or a
// missing date falls back to DefaultTripDays.
func Duration(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return DefaultTripDays
	}

	diff := end.Sub(start).Hours() / 24
	days := int(math.Ceil(math.Abs(diff)))
	if days == 0 {
		return DefaultTripDays
	}
	return days
}
