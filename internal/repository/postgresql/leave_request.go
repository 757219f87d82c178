package postgresql

import (
	"context"
	"fmt"

	"github.com/attendhub/attendhub-backend-go/internal/domain/leave"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `id, user_id, leave_type, start_date, end_date, reason, status, approved_by, rejection_reason, created_at, updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.UserID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status, &req.ApprovedBy, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// Create implements leave.Repository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (user_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.UserID, req.LeaveType, req.StartDate, req.EndDate, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.Repository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// Update implements leave.Repository.
func (r *leaveRequestRepository) Update(ctx context.Context, req leave.LeaveRequest) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET leave_type = $1, start_date = $2, end_date = $3, reason = $4, updated_at = NOW()
		WHERE id = $5 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, req.LeaveType, req.StartDate, req.EndDate, req.Reason, req.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update leave request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Resolve implements leave.Repository.
func (r *leaveRequestRepository) Resolve(ctx context.Context, id string, status leave.Status, approvedBy *string, rejectionReason *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, status, approvedBy, rejectionReason, id)
	if err != nil {
		return false, fmt.Errorf("failed to resolve leave request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeletePending implements leave.Repository.
func (r *leaveRequestRepository) DeletePending(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM leave_requests WHERE id = $1 AND status = 'pending'`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete leave request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListByUser implements leave.Repository.
func (r *leaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// ListAll implements leave.Repository.
func (r *leaveRequestRepository) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.leave_type, lr.start_date, lr.end_date, lr.reason,
		       lr.status, lr.approved_by, lr.rejection_reason, lr.created_at, lr.updated_at,
		       u.full_name, u.email
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.UserID, &req.LeaveType, &req.StartDate, &req.EndDate,
			&req.Reason, &req.Status, &req.ApprovedBy, &req.RejectionReason,
			&req.CreatedAt, &req.UpdatedAt, &req.UserName, &req.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}
