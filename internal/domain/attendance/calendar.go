package attendance

import "time"

// DayStatus is the derived classification of a calendar day as shown on the
// attendance calendar. It is never stored.
type DayStatus string

const (
	DayHoliday   DayStatus = "holiday"
	DayCheckedIn DayStatus = "checked-in"
	DayCompleted DayStatus = "completed"
	DayAbsent    DayStatus = "absent"
	DayNoData    DayStatus = "no-data"
)

// ClassifyDay derives the display status for a calendar day. Precedence:
// holiday > open session > closed session > absent (past day, no record) >
// no-data (today or future, no record).
func ClassifyDay(day, today time.Time, isHoliday bool, record *Attendance) DayStatus {
	if isHoliday {
		return DayHoliday
	}
	if record != nil {
		if record.Open() {
			return DayCheckedIn
		}
		return DayCompleted
	}

	dayDate := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if dayDate.Before(todayDate) {
		return DayAbsent
	}
	return DayNoData
}

// CalendarDay is one merged entry of the attendance calendar: the stored
// record overlaid with holiday info and, once approved, correction times.
type CalendarDay struct {
	Date          string     `json:"date"`
	Status        DayStatus  `json:"status"`
	HolidayName   *string    `json:"holiday_name,omitempty"`
	CheckInTime   *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime  *time.Time `json:"check_out_time,omitempty"`
	DurationHours *float64   `json:"duration_hours,omitempty"`
	Corrected     bool       `json:"corrected"`
}
