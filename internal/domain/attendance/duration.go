package attendance

import (
	"math"
	"time"
)

// LunchBreakThresholdHours is the minimum shift length before the one hour
// lunch deduction applies. Shorter shifts report raw elapsed time.
const LunchBreakThresholdHours = 4.0

// WorkDuration computes worked hours between check-in and check-out. Shifts of
// four hours or more have exactly one hour deducted for lunch, floored at zero.
// The result is rounded to 4 decimal places. Both the check-out path and the
// correction approval path must go through this function so a corrected
// check-out yields the same duration a live check-out at that instant would.
func WorkDuration(checkIn, checkOut time.Time) float64 {
	durationMinutes := checkOut.Sub(checkIn).Minutes()
	durationHours := durationMinutes / 60

	workHours := durationHours
	if durationHours >= LunchBreakThresholdHours {
		workHours = durationHours - 1
	}
	workHours = math.Max(0, workHours)

	return math.Round(workHours*10000) / 10000
}
