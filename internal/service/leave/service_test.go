package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/attendhub/attendhub-backend-go/internal/domain/leave"
	"github.com/attendhub/attendhub-backend-go/internal/domain/notification"
	"github.com/attendhub/attendhub-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	seq      int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (r *fakeLeaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.seq++
	req.ID = fmt.Sprintf("leave-%d", r.seq)
	req.CreatedAt = time.Now()
	r.requests[req.ID] = req
	return req, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *fakeLeaveRepo) Update(_ context.Context, req leave.LeaveRequest) (bool, error) {
	existing, ok := r.requests[req.ID]
	if !ok || existing.Status != leave.StatusPending {
		return false, nil
	}
	r.requests[req.ID] = req
	return true, nil
}

func (r *fakeLeaveRepo) Resolve(_ context.Context, id string, status leave.Status, approvedBy *string, rejectionReason *string) (bool, error) {
	req, ok := r.requests[id]
	if !ok || req.Status != leave.StatusPending {
		return false, nil
	}
	req.Status = status
	req.ApprovedBy = approvedBy
	req.RejectionReason = rejectionReason
	r.requests[id] = req
	return true, nil
}

func (r *fakeLeaveRepo) DeletePending(_ context.Context, id string) (bool, error) {
	req, ok := r.requests[id]
	if !ok || req.Status != leave.StatusPending {
		return false, nil
	}
	delete(r.requests, id)
	return true, nil
}

func (r *fakeLeaveRepo) ListByUser(_ context.Context, userID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range r.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListAll(_ context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range r.requests {
		out = append(out, req)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) ListByRoles(_ context.Context, roles []user.Role) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListNonAdmin(_ context.Context) ([]user.User, error) { return nil, nil }

func (r *fakeUserRepo) ListTeam(_ context.Context, managerID string) ([]user.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u user.User) error { return nil }

type sentNote struct {
	UserID  string
	Message string
	Kind    notification.Kind
	RefID   string
}

type fakeNotifier struct {
	sent []sentNote
}

func (n *fakeNotifier) Notify(_ context.Context, userID, message string, kind notification.Kind, referenceID string) {
	n.sent = append(n.sent, sentNote{UserID: userID, Message: message, Kind: kind, RefID: referenceID})
}

func (n *fakeNotifier) NotifyMany(ctx context.Context, userIDs []string, message string, kind notification.Kind, referenceID string) {
	for _, userID := range userIDs {
		n.Notify(ctx, userID, message, kind, referenceID)
	}
}

func newTestService() (*service, *fakeLeaveRepo, *fakeUserRepo, *fakeNotifier) {
	repo := newFakeLeaveRepo()
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"emp-1":     {ID: "emp-1", FullName: "Alice Santos", Role: user.RoleEmployee},
		"manager-1": {ID: "manager-1", FullName: "Bob Reyes", Role: user.RoleManager},
		"admin-1":   {ID: "admin-1", FullName: "Carol Cruz", Role: user.RoleAdmin},
	}}
	notifier := &fakeNotifier{}

	svc := &service{repo: repo, userRepo: userRepo, notifier: notifier}
	return svc, repo, userRepo, notifier
}

func validSubmit() leave.SubmitRequest {
	return leave.SubmitRequest{
		LeaveType: "sick",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-08",
		Reason:    "Flu",
	}
}

func TestSubmit_NotifiesAllApprovers(t *testing.T) {
	svc, repo, _, notifier := newTestService()

	result, err := svc.Submit(context.Background(), "emp-1", validSubmit())

	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, result.Status)
	assert.Len(t, repo.requests, 1)

	// One notification per manager/admin, naming the requester.
	require.Len(t, notifier.sent, 2)
	recipients := map[string]bool{}
	for _, note := range notifier.sent {
		recipients[note.UserID] = true
		assert.Equal(t, "Alice Santos has submitted a leave request for approval.", note.Message)
		assert.Equal(t, notification.KindLeave, note.Kind)
	}
	assert.True(t, recipients["manager-1"])
	assert.True(t, recipients["admin-1"])
}

func TestSubmit_InvertedRangeFailsBeforeInsert(t *testing.T) {
	svc, repo, _, notifier := newTestService()

	req := validSubmit()
	req.StartDate = "2026-04-10"
	req.EndDate = "2026-04-06"

	_, err := svc.Submit(context.Background(), "emp-1", req)

	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
	assert.Empty(t, repo.requests)
	assert.Empty(t, notifier.sent)
}

func TestSubmit_UnknownLeaveTypeFails(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := validSubmit()
	req.LeaveType = "sabbatical"

	_, err := svc.Submit(context.Background(), "emp-1", req)
	assert.Error(t, err)
}

func TestApprove_SetsStatusAndNotifiesRequester(t *testing.T) {
	svc, _, _, notifier := newTestService()
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "emp-1", validSubmit())
	require.NoError(t, err)
	notifier.sent = nil

	result, err := svc.Approve(ctx, submitted.ID, "manager-1")

	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, result.Status)
	require.NotNil(t, result.ApprovedBy)
	assert.Equal(t, "manager-1", *result.ApprovedBy)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "emp-1", notifier.sent[0].UserID)
	assert.Equal(t, "Your leave request has been approved.", notifier.sent[0].Message)
}

func TestApprove_TwiceFailsWithAlreadyResolved(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "emp-1", validSubmit())
	require.NoError(t, err)

	_, err = svc.Approve(ctx, submitted.ID, "manager-1")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, submitted.ID, "manager-1")
	assert.ErrorIs(t, err, leave.ErrAlreadyResolved)
}

func TestApprove_MissingRequestFailsWithNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Approve(context.Background(), "nope", "manager-1")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestReject_RequiresReason(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Reject(context.Background(), "leave-1", "manager-1", "   ")
	assert.ErrorIs(t, err, leave.ErrMissingReason)
}

func TestReject_StoresReasonAndNotifies(t *testing.T) {
	svc, _, _, notifier := newTestService()
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "emp-1", validSubmit())
	require.NoError(t, err)
	notifier.sent = nil

	result, err := svc.Reject(ctx, submitted.ID, "manager-1", "Coverage gap that week")

	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, result.Status)
	require.NotNil(t, result.RejectionReason)
	assert.Equal(t, "Coverage gap that week", *result.RejectionReason)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Your leave request has been rejected. Reason: Coverage gap that week", notifier.sent[0].Message)
}

func TestEdit_OnlyOwnerAndOnlyPending(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "emp-1", validSubmit())
	require.NoError(t, err)

	newReason := "Family emergency"
	_, err = svc.Edit(ctx, "emp-2", submitted.ID, leave.EditRequest{Reason: &newReason})
	assert.ErrorIs(t, err, leave.ErrNotOwner)

	result, err := svc.Edit(ctx, "emp-1", submitted.ID, leave.EditRequest{Reason: &newReason})
	require.NoError(t, err)
	assert.Equal(t, "Family emergency", result.Reason)

	_, err = svc.Approve(ctx, submitted.ID, "manager-1")
	require.NoError(t, err)

	_, err = svc.Edit(ctx, "emp-1", submitted.ID, leave.EditRequest{Reason: &newReason})
	assert.ErrorIs(t, err, leave.ErrNotEditable)
}

func TestEdit_RevalidatesDateRange(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "emp-1", validSubmit())
	require.NoError(t, err)

	badEnd := "2026-04-01"
	_, err = svc.Edit(ctx, "emp-1", submitted.ID, leave.EditRequest{EndDate: &badEnd})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestDelete_PendingOnly(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "emp-1", validSubmit())
	require.NoError(t, err)

	resolved, err := svc.Submit(ctx, "emp-1", validSubmit())
	require.NoError(t, err)
	_, err = svc.Approve(ctx, resolved.ID, "manager-1")
	require.NoError(t, err)

	err = svc.Delete(ctx, "emp-1", resolved.ID)
	assert.ErrorIs(t, err, leave.ErrNotEditable)

	err = svc.Delete(ctx, "emp-1", submitted.ID)
	require.NoError(t, err)
	_, ok := repo.requests[submitted.ID]
	assert.False(t, ok)
}

func TestList_RoleScoped(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Submit(ctx, "emp-1", validSubmit())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "manager-1", validSubmit())
	require.NoError(t, err)

	own, err := svc.List(ctx, "emp-1", false)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := svc.List(ctx, "manager-1", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
