package correction

import "context"

// Repository defines data access for attendance corrections.
type Repository interface {
	Create(ctx context.Context, c Correction) (Correction, error)
	GetByID(ctx context.Context, id string) (Correction, error)

	// HasOutstanding reports whether a non-rejected correction already exists
	// for the (user, attendance date) pair.
	HasOutstanding(ctx context.Context, userID, attendanceDate string) (bool, error)

	// Resolve transitions pending -> status atomically (conditional update on
	// status = pending). Returns false when no pending row matched.
	Resolve(ctx context.Context, id string, status Status, approvedBy string, remarks *string, applied bool, attendanceID *string) (bool, error)

	// ListByUser returns a user's own corrections, newest first.
	ListByUser(ctx context.Context, userID string) ([]Correction, error)

	// ListAll returns every correction annotated with the requester's name
	// and email, newest first. Manager/admin view only.
	ListAll(ctx context.Context) ([]Correction, error)
}

// Service is the correction workflow engine. Approval retroactively mutates
// the linked attendance record inside the same transaction that resolves the
// correction; rejection flips a linked record to absent.
type Service interface {
	Submit(ctx context.Context, userID string, req SubmitRequest) (CorrectionResponse, error)
	Approve(ctx context.Context, correctionID, approverID string, remarks *string) (CorrectionResponse, error)
	Reject(ctx context.Context, correctionID, approverID, reason string) (CorrectionResponse, error)

	// List is role-scoped: employees see their own corrections, managers and
	// admins see all corrections joined with requester identity.
	List(ctx context.Context, userID string, isApprover bool) ([]CorrectionResponse, error)
}
