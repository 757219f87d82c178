package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records.
type Repository interface {
	// Create inserts a new attendance record
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves an attendance record by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetForDay retrieves the most recent record whose check-in falls inside
	// [dayStart, dayEnd). Returns nil when the user has no record that day.
	GetForDay(ctx context.Context, userID string, dayStart, dayEnd time.Time) (*Attendance, error)

	// GetOpenSession retrieves the user's most recent record with a null
	// check-out time. Returns ErrNoActiveSession when none exists.
	GetOpenSession(ctx context.Context, userID string) (Attendance, error)

	// Update persists changed fields of an existing record
	Update(ctx context.Context, att Attendance) error

	// ListByUser retrieves a user's records with check-in inside [from, to),
	// newest first.
	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]Attendance, error)

	// ListByUsers retrieves records for a set of users inside [from, to),
	// annotated with each owner's name and email.
	ListByUsers(ctx context.Context, userIDs []string, from, to time.Time) ([]Attendance, error)

	// ListAll retrieves every user's records inside [from, to), annotated
	// with each owner's name and email, newest first.
	ListAll(ctx context.Context, from, to time.Time) ([]Attendance, error)
}

// Service is the attendance session engine: the daily check-in/check-out state
// machine, derived day classification and range reporting.
type Service interface {
	CheckIn(ctx context.Context, userID string) (AttendanceResponse, error)
	CheckOut(ctx context.Context, userID string) (AttendanceResponse, error)
	GetTodayStatus(ctx context.Context, userID string) (TodayStatusResponse, error)
	ListMine(ctx context.Context, userID string, filter RangeFilter) ([]AttendanceResponse, error)
	ListTeam(ctx context.Context, managerID string, filter RangeFilter) ([]AttendanceResponse, error)
	Calendar(ctx context.Context, userID string, filter RangeFilter) ([]CalendarDay, error)
	Report(ctx context.Context, userID string, filter RangeFilter) (ReportResponse, error)
	CompanyReport(ctx context.Context, filter RangeFilter) ([]AttendanceResponse, error)
}
