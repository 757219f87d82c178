package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/attendhub/attendhub-backend-go/internal/domain/leave"
	"github.com/attendhub/attendhub-backend-go/internal/domain/notification"
	"github.com/attendhub/attendhub-backend-go/internal/domain/user"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/validator"
)

type service struct {
	repo     leave.Repository
	userRepo user.Repository
	notifier notification.Notifier
}

func NewService(repo leave.Repository, userRepo user.Repository, notifier notification.Notifier) leave.Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// Submit implements leave.Service. Every manager and admin is notified that a
// request is awaiting review.
func (s *service) Submit(ctx context.Context, userID string, req leave.SubmitRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.repo.Create(ctx, leave.LeaveRequest{
		UserID:    userID,
		LeaveType: req.LeaveType,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.notifyApprovers(ctx, userID, created.ID)

	return toResponse(created), nil
}

func (s *service) notifyApprovers(ctx context.Context, requesterID, requestID string) {
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return
	}

	approvers, err := s.userRepo.ListByRoles(ctx, []user.Role{user.RoleManager, user.RoleAdmin})
	if err != nil {
		return
	}

	approverIDs := make([]string, 0, len(approvers))
	for _, approver := range approvers {
		approverIDs = append(approverIDs, approver.ID)
	}

	message := fmt.Sprintf("%s has submitted a leave request for approval.", requester.FullName)
	s.notifier.NotifyMany(ctx, approverIDs, message, notification.KindLeave, requestID)
}

// Approve implements leave.Service. The pending guard and the status flip are
// a single conditional update; a second approval attempt loses the race and
// reports AlreadyResolved.
func (s *service) Approve(ctx context.Context, requestID, approverID string) (leave.LeaveRequestResponse, error) {
	matched, err := s.repo.Resolve(ctx, requestID, leave.StatusApproved, &approverID, nil)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !matched {
		return leave.LeaveRequestResponse{}, s.resolveConflict(ctx, requestID)
	}

	resolved, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.notifier.Notify(ctx, resolved.UserID, "Your leave request has been approved.", notification.KindLeave, requestID)

	return toResponse(resolved), nil
}

// Reject implements leave.Service.
func (s *service) Reject(ctx context.Context, requestID, approverID, reason string) (leave.LeaveRequestResponse, error) {
	if validator.IsEmpty(reason) {
		return leave.LeaveRequestResponse{}, leave.ErrMissingReason
	}

	matched, err := s.repo.Resolve(ctx, requestID, leave.StatusRejected, &approverID, &reason)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !matched {
		return leave.LeaveRequestResponse{}, s.resolveConflict(ctx, requestID)
	}

	resolved, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	message := fmt.Sprintf("Your leave request has been rejected. Reason: %s", reason)
	s.notifier.Notify(ctx, resolved.UserID, message, notification.KindLeave, requestID)

	return toResponse(resolved), nil
}

// resolveConflict disambiguates a failed conditional update into not-found
// versus already-resolved.
func (s *service) resolveConflict(ctx context.Context, requestID string) error {
	if _, err := s.repo.GetByID(ctx, requestID); err != nil {
		return err
	}
	return leave.ErrAlreadyResolved
}

// Edit implements leave.Service. Only the owner may edit, and only while the
// request is still pending. The date range invariant is re-validated against
// the merged fields.
func (s *service) Edit(ctx context.Context, actorUserID string, requestID string, req leave.EditRequest) (leave.LeaveRequestResponse, error) {
	existing, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if existing.UserID != actorUserID {
		return leave.LeaveRequestResponse{}, leave.ErrNotOwner
	}
	if existing.Resolved() {
		return leave.LeaveRequestResponse{}, leave.ErrNotEditable
	}

	merged := leave.SubmitRequest{
		LeaveType: existing.LeaveType,
		StartDate: existing.StartDate.Format("2006-01-02"),
		EndDate:   existing.EndDate.Format("2006-01-02"),
		Reason:    existing.Reason,
	}
	if req.LeaveType != nil {
		merged.LeaveType = *req.LeaveType
	}
	if req.StartDate != nil {
		merged.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		merged.EndDate = *req.EndDate
	}
	if req.Reason != nil {
		merged.Reason = *req.Reason
	}
	if err := merged.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	existing.LeaveType = merged.LeaveType
	existing.StartDate, _ = time.Parse("2006-01-02", merged.StartDate)
	existing.EndDate, _ = time.Parse("2006-01-02", merged.EndDate)
	existing.Reason = merged.Reason

	matched, err := s.repo.Update(ctx, existing)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !matched {
		return leave.LeaveRequestResponse{}, leave.ErrNotEditable
	}

	return toResponse(existing), nil
}

// Delete implements leave.Service.
func (s *service) Delete(ctx context.Context, actorUserID string, requestID string) error {
	existing, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if existing.UserID != actorUserID {
		return leave.ErrNotOwner
	}

	matched, err := s.repo.DeletePending(ctx, requestID)
	if err != nil {
		return err
	}
	if !matched {
		return leave.ErrNotEditable
	}

	return nil
}

// List implements leave.Service.
func (s *service) List(ctx context.Context, userID string, isApprover bool) ([]leave.LeaveRequestResponse, error) {
	var (
		requests []leave.LeaveRequest
		err      error
	)
	if isApprover {
		requests, err = s.repo.ListAll(ctx)
	} else {
		requests, err = s.repo.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return responses, nil
}

func toResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:              req.ID,
		UserID:          req.UserID,
		UserName:        req.UserName,
		UserEmail:       req.UserEmail,
		LeaveType:       req.LeaveType,
		StartDate:       req.StartDate.Format("2006-01-02"),
		EndDate:         req.EndDate.Format("2006-01-02"),
		Reason:          req.Reason,
		Status:          req.Status,
		ApprovedBy:      req.ApprovedBy,
		RejectionReason: req.RejectionReason,
		CreatedAt:       req.CreatedAt,
	}
}
