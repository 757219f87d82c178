package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return parsed
}

func TestWorkDuration_LunchDeducted(t *testing.T) {
	// 4.5 elapsed hours crosses the threshold, so one hour comes off.
	checkIn := mustTime(t, "2026-03-02 09:00:00")
	checkOut := mustTime(t, "2026-03-02 13:30:00")

	assert.Equal(t, 3.5, WorkDuration(checkIn, checkOut))
}

func TestWorkDuration_ShortShiftKeepsRawHours(t *testing.T) {
	checkIn := mustTime(t, "2026-03-02 09:00:00")
	checkOut := mustTime(t, "2026-03-02 11:00:00")

	assert.Equal(t, 2.0, WorkDuration(checkIn, checkOut))
}

func TestWorkDuration_ExactlyAtThreshold(t *testing.T) {
	// Exactly four hours still gets the deduction.
	checkIn := mustTime(t, "2026-03-02 08:00:00")
	checkOut := mustTime(t, "2026-03-02 12:00:00")

	assert.Equal(t, 3.0, WorkDuration(checkIn, checkOut))
}

func TestWorkDuration_JustUnderThreshold(t *testing.T) {
	checkIn := mustTime(t, "2026-03-02 08:00:00")
	checkOut := mustTime(t, "2026-03-02 11:59:00")

	assert.InDelta(t, 3.9833, WorkDuration(checkIn, checkOut), 0.0001)
}

func TestWorkDuration_NeverNegative(t *testing.T) {
	// A check-out recorded before the check-in floors at zero instead of
	// reporting negative hours.
	checkIn := mustTime(t, "2026-03-02 09:00:00")
	checkOut := mustTime(t, "2026-03-02 08:00:00")

	assert.Equal(t, 0.0, WorkDuration(checkIn, checkOut))
}

func TestWorkDuration_RoundsToFourDecimals(t *testing.T) {
	checkIn := mustTime(t, "2026-03-02 09:00:00")
	checkOut := checkIn.Add(7*time.Hour + 17*time.Minute + 23*time.Second)

	// 7h17m23s minus lunch = 6.2897222... hours
	assert.Equal(t, 6.2897, WorkDuration(checkIn, checkOut))
}
