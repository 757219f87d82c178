package leave

import "context"

// Repository defines data access for leave requests.
type Repository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// Update persists edits to a pending request. Returns false when the row
	// was not pending anymore (or missing) so the edit did not apply.
	Update(ctx context.Context, req LeaveRequest) (bool, error)

	// Resolve transitions pending -> status atomically (conditional update on
	// status = pending). Returns false when no pending row matched, which the
	// service disambiguates into not-found vs already-resolved.
	Resolve(ctx context.Context, id string, status Status, approvedBy *string, rejectionReason *string) (bool, error)

	// DeletePending deletes the request only while it is pending. Returns
	// false when no pending row matched.
	DeletePending(ctx context.Context, id string) (bool, error)

	// ListByUser returns a user's own requests, newest first.
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// ListAll returns every request annotated with the requester's name and
	// email, newest first. Manager/admin view only.
	ListAll(ctx context.Context) ([]LeaveRequest, error)
}

// Service is the leave workflow engine: pending -> approved | rejected, with
// best-effort notifications on every transition.
type Service interface {
	Submit(ctx context.Context, userID string, req SubmitRequest) (LeaveRequestResponse, error)
	Approve(ctx context.Context, requestID, approverID string) (LeaveRequestResponse, error)
	Reject(ctx context.Context, requestID, approverID, reason string) (LeaveRequestResponse, error)
	Edit(ctx context.Context, actorUserID string, requestID string, req EditRequest) (LeaveRequestResponse, error)
	Delete(ctx context.Context, actorUserID string, requestID string) error

	// List is role-scoped: employees see their own requests, managers and
	// admins see all requests joined with requester identity.
	List(ctx context.Context, userID string, isApprover bool) ([]LeaveRequestResponse, error)
}
