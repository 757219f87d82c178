package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendhub/attendhub-backend-go/internal/domain/attendance"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, check_in_time, check_out_time, status, duration_hours, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.CheckInTime, &att.CheckOutTime,
		&att.Status, &att.DurationHours, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (user_id, check_in_time, check_out_time, status, duration_hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.UserID, att.CheckInTime, att.CheckOutTime, att.Status, att.DurationHours,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return att, nil
}

// GetForDay implements attendance.Repository.
func (r *attendanceRepository) GetForDay(ctx context.Context, userID string, dayStart, dayEnd time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1 AND check_in_time >= $2 AND check_in_time < $3
		ORDER BY check_in_time DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, dayStart, dayEnd))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for day: %w", err)
	}

	return &att, nil
}

// GetOpenSession implements attendance.Repository.
func (r *attendanceRepository) GetOpenSession(ctx context.Context, userID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1 AND check_out_time IS NULL
		ORDER BY check_in_time DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrNoActiveSession
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return att, nil
}

// Update implements attendance.Repository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET check_in_time = $1, check_out_time = $2, status = $3, duration_hours = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		att.CheckInTime, att.CheckOutTime, att.Status, att.DurationHours, att.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

// ListByUser implements attendance.Repository.
func (r *attendanceRepository) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1 AND check_in_time >= $2 AND check_in_time < $3
		ORDER BY check_in_time DESC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, nil
}

// ListAll implements attendance.Repository.
func (r *attendanceRepository) ListAll(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.check_in_time, a.check_out_time, a.status, a.duration_hours,
		       a.created_at, a.updated_at, u.full_name, u.email
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE a.check_in_time >= $1 AND a.check_in_time < $2
		ORDER BY a.check_in_time DESC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query company attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.UserID, &att.CheckInTime, &att.CheckOutTime,
			&att.Status, &att.DurationHours, &att.CreatedAt, &att.UpdatedAt,
			&att.UserName, &att.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, nil
}

// ListByUsers implements attendance.Repository.
func (r *attendanceRepository) ListByUsers(ctx context.Context, userIDs []string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.check_in_time, a.check_out_time, a.status, a.duration_hours,
		       a.created_at, a.updated_at, u.full_name, u.email
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE a.user_id = ANY($1) AND a.check_in_time >= $2 AND a.check_in_time < $3
		ORDER BY a.check_in_time DESC
	`

	rows, err := q.Query(ctx, query, userIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query team attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.UserID, &att.CheckInTime, &att.CheckOutTime,
			&att.Status, &att.DurationHours, &att.CreatedAt, &att.UpdatedAt,
			&att.UserName, &att.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, nil
}
