package postgresql

import (
	"context"
	"fmt"

	"github.com/attendhub/attendhub-backend-go/internal/domain/correction"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type correctionRepository struct {
	db *database.DB
}

func NewCorrectionRepository(db *database.DB) correction.Repository {
	return &correctionRepository{db: db}
}

const correctionColumns = `id, user_id, attendance_date, missing_type, requested_time, reason, status, attendance_id, approved_by, remarks, applied, created_at, updated_at`

func scanCorrection(row pgx.Row) (correction.Correction, error) {
	var c correction.Correction
	err := row.Scan(
		&c.ID, &c.UserID, &c.AttendanceDate, &c.MissingType, &c.RequestedTime,
		&c.Reason, &c.Status, &c.AttendanceID, &c.ApprovedBy, &c.Remarks,
		&c.Applied, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements correction.Repository.
func (r *correctionRepository) Create(ctx context.Context, c correction.Correction) (correction.Correction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_corrections (user_id, attendance_date, missing_type, requested_time, reason, status, attendance_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.UserID, c.AttendanceDate, c.MissingType, c.RequestedTime,
		c.Reason, c.Status, c.AttendanceID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return correction.Correction{}, fmt.Errorf("failed to create attendance correction: %w", err)
	}

	return c, nil
}

// GetByID implements correction.Repository.
func (r *correctionRepository) GetByID(ctx context.Context, id string) (correction.Correction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + correctionColumns + ` FROM attendance_corrections WHERE id = $1`

	c, err := scanCorrection(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return correction.Correction{}, correction.ErrCorrectionNotFound
		}
		return correction.Correction{}, fmt.Errorf("failed to get attendance correction: %w", err)
	}

	return c, nil
}

// HasOutstanding implements correction.Repository.
func (r *correctionRepository) HasOutstanding(ctx context.Context, userID, attendanceDate string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_corrections
			WHERE user_id = $1 AND attendance_date = $2 AND status <> 'rejected'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, attendanceDate).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check outstanding correction: %w", err)
	}

	return exists, nil
}

// Resolve implements correction.Repository.
func (r *correctionRepository) Resolve(ctx context.Context, id string, status correction.Status, approvedBy string, remarks *string, applied bool, attendanceID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_corrections
		SET status = $1, approved_by = $2, remarks = $3, applied = $4, attendance_id = $5, updated_at = NOW()
		WHERE id = $6 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, status, approvedBy, remarks, applied, attendanceID, id)
	if err != nil {
		return false, fmt.Errorf("failed to resolve attendance correction: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListByUser implements correction.Repository.
func (r *correctionRepository) ListByUser(ctx context.Context, userID string) ([]correction.Correction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + correctionColumns + ` FROM attendance_corrections WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance corrections: %w", err)
	}
	defer rows.Close()

	var corrections []correction.Correction
	for rows.Next() {
		c, err := scanCorrection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance correction: %w", err)
		}
		corrections = append(corrections, c)
	}

	return corrections, nil
}

// ListAll implements correction.Repository.
func (r *correctionRepository) ListAll(ctx context.Context) ([]correction.Correction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ac.id, ac.user_id, ac.attendance_date, ac.missing_type, ac.requested_time,
		       ac.reason, ac.status, ac.attendance_id, ac.approved_by, ac.remarks, ac.applied,
		       ac.created_at, ac.updated_at, u.full_name, u.email
		FROM attendance_corrections ac
		JOIN users u ON u.id = ac.user_id
		ORDER BY ac.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all attendance corrections: %w", err)
	}
	defer rows.Close()

	var corrections []correction.Correction
	for rows.Next() {
		var c correction.Correction
		err := rows.Scan(
			&c.ID, &c.UserID, &c.AttendanceDate, &c.MissingType, &c.RequestedTime,
			&c.Reason, &c.Status, &c.AttendanceID, &c.ApprovedBy, &c.Remarks,
			&c.Applied, &c.CreatedAt, &c.UpdatedAt, &c.UserName, &c.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance correction: %w", err)
		}
		corrections = append(corrections, c)
	}

	return corrections, nil
}
