package correction

import (
	"context"
	"fmt"
	"time"

	"github.com/attendhub/attendhub-backend-go/internal/domain/attendance"
	"github.com/attendhub/attendhub-backend-go/internal/domain/correction"
	"github.com/attendhub/attendhub-backend-go/internal/domain/notification"
	"github.com/attendhub/attendhub-backend-go/internal/domain/user"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/validator"
)

// Transactor runs fn atomically; every repository call made with the context
// it passes to fn joins the same transaction.
type Transactor func(ctx context.Context, fn func(ctx context.Context) error) error

type service struct {
	repo     correction.Repository
	attRepo  attendance.Repository
	userRepo user.Repository
	notifier notification.Notifier
	tx       Transactor
	loc      *time.Location
}

func NewService(
	repo correction.Repository,
	attRepo attendance.Repository,
	userRepo user.Repository,
	notifier notification.Notifier,
	tx Transactor,
) correction.Service {
	return &service{
		repo:     repo,
		attRepo:  attRepo,
		userRepo: userRepo,
		notifier: notifier,
		tx:       tx,
		loc:      time.Local,
	}
}

// Submit implements correction.Service. The attendance link is best-effort: a
// correction may target a day with no attendance row at all.
func (s *service) Submit(ctx context.Context, userID string, req correction.SubmitRequest) (correction.CorrectionResponse, error) {
	if err := req.Validate(); err != nil {
		return correction.CorrectionResponse{}, err
	}

	outstanding, err := s.repo.HasOutstanding(ctx, userID, req.AttendanceDate)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}
	if outstanding {
		return correction.CorrectionResponse{}, correction.ErrDuplicatePending
	}

	var attendanceID *string
	if att := s.findAttendance(ctx, userID, req.AttendanceDate); att != nil {
		attendanceID = &att.ID
	}

	created, err := s.repo.Create(ctx, correction.Correction{
		UserID:         userID,
		AttendanceDate: req.AttendanceDate,
		MissingType:    correction.MissingType(req.MissingType),
		RequestedTime:  req.RequestedTime,
		Reason:         req.Reason,
		Status:         correction.StatusPending,
		AttendanceID:   attendanceID,
	})
	if err != nil {
		return correction.CorrectionResponse{}, err
	}

	s.notifyApprovers(ctx, created)

	return toResponse(created), nil
}

// findAttendance resolves the record whose check-in falls on the given day.
// Lookup failures are treated the same as no match.
func (s *service) findAttendance(ctx context.Context, userID, attendanceDate string) *attendance.Attendance {
	day, err := time.ParseInLocation("2006-01-02", attendanceDate, s.loc)
	if err != nil {
		return nil
	}

	att, err := s.attRepo.GetForDay(ctx, userID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil
	}
	return att
}

func (s *service) notifyApprovers(ctx context.Context, c correction.Correction) {
	approvers, err := s.userRepo.ListByRoles(ctx, []user.Role{user.RoleManager, user.RoleAdmin})
	if err != nil {
		return
	}

	approverIDs := make([]string, 0, len(approvers))
	for _, approver := range approvers {
		approverIDs = append(approverIDs, approver.ID)
	}

	message := fmt.Sprintf("Attendance correction requested for %s by employee.", c.AttendanceDate)
	s.notifier.NotifyMany(ctx, approverIDs, message, notification.KindCorrection, c.ID)
}

// Approve implements correction.Service. The attendance mutation and the
// status flip commit together; if rewriting the attendance record fails the
// correction stays pending.
func (s *service) Approve(ctx context.Context, correctionID, approverID string, remarks *string) (correction.CorrectionResponse, error) {
	c, err := s.repo.GetByID(ctx, correctionID)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}
	if c.Resolved() {
		return correction.CorrectionResponse{}, correction.ErrAlreadyResolved
	}

	err = s.tx(ctx, func(txCtx context.Context) error {
		attendanceID := c.AttendanceID
		if attendanceID == nil {
			if att := s.findAttendance(txCtx, c.UserID, c.AttendanceDate); att != nil {
				attendanceID = &att.ID
			}
		}

		timestamp, err := s.requestedTimestamp(c)
		if err != nil {
			return err
		}

		if attendanceID != nil {
			if err := s.applyCorrection(txCtx, *attendanceID, c.MissingType, timestamp); err != nil {
				return err
			}
		}

		matched, err := s.repo.Resolve(txCtx, c.ID, correction.StatusApproved, approverID, remarks, true, attendanceID)
		if err != nil {
			return err
		}
		if !matched {
			return correction.ErrAlreadyResolved
		}
		return nil
	})
	if err != nil {
		return correction.CorrectionResponse{}, err
	}

	s.notifier.Notify(ctx, c.UserID, "Your attendance correction request has been approved.", notification.KindCorrection, c.ID)

	resolved, err := s.repo.GetByID(ctx, correctionID)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}
	return toResponse(resolved), nil
}

// requestedTimestamp combines the attendance date with the requested wall
// clock time, normalizing HH:MM to HH:MM:SS first.
func (s *service) requestedTimestamp(c correction.Correction) (time.Time, error) {
	normalized := validator.NormalizeClockTime(c.RequestedTime)
	timestamp, err := time.ParseInLocation("2006-01-02 15:04:05", c.AttendanceDate+" "+normalized, s.loc)
	if err != nil {
		return time.Time{}, correction.ErrInvalidRequest
	}
	return timestamp, nil
}

// applyCorrection rewrites the linked attendance record. A corrected check-out
// recomputes the duration through the same rule a live check-out uses.
func (s *service) applyCorrection(ctx context.Context, attendanceID string, missingType correction.MissingType, timestamp time.Time) error {
	att, err := s.attRepo.GetByID(ctx, attendanceID)
	if err != nil {
		return err
	}

	switch missingType {
	case correction.MissingCheckIn:
		att.CheckInTime = timestamp
		att.Status = attendance.StatusCheckedIn
	case correction.MissingCheckOut:
		att.CheckOutTime = &timestamp
		att.Status = attendance.StatusCheckedOut
		hours := attendance.WorkDuration(att.CheckInTime, timestamp)
		att.DurationHours = &hours
	}

	return s.attRepo.Update(ctx, att)
}

// Reject implements correction.Service. A linked attendance record is flipped
// to absent; its recorded times are left untouched.
func (s *service) Reject(ctx context.Context, correctionID, approverID, reason string) (correction.CorrectionResponse, error) {
	if validator.IsEmpty(reason) {
		return correction.CorrectionResponse{}, correction.ErrMissingReason
	}

	c, err := s.repo.GetByID(ctx, correctionID)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}
	if c.Resolved() {
		return correction.CorrectionResponse{}, correction.ErrAlreadyResolved
	}

	matched, err := s.repo.Resolve(ctx, c.ID, correction.StatusRejected, approverID, &reason, false, c.AttendanceID)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}
	if !matched {
		return correction.CorrectionResponse{}, correction.ErrAlreadyResolved
	}

	if c.AttendanceID != nil {
		att, err := s.attRepo.GetByID(ctx, *c.AttendanceID)
		if err != nil {
			return correction.CorrectionResponse{}, err
		}
		att.Status = attendance.StatusAbsent
		if err := s.attRepo.Update(ctx, att); err != nil {
			return correction.CorrectionResponse{}, err
		}
	}

	message := fmt.Sprintf("Your attendance correction request has been rejected. %s", reason)
	s.notifier.Notify(ctx, c.UserID, message, notification.KindCorrection, c.ID)

	resolved, err := s.repo.GetByID(ctx, correctionID)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}
	return toResponse(resolved), nil
}

// List implements correction.Service.
func (s *service) List(ctx context.Context, userID string, isApprover bool) ([]correction.CorrectionResponse, error) {
	var (
		corrections []correction.Correction
		err         error
	)
	if isApprover {
		corrections, err = s.repo.ListAll(ctx)
	} else {
		corrections, err = s.repo.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]correction.CorrectionResponse, 0, len(corrections))
	for _, c := range corrections {
		responses = append(responses, toResponse(c))
	}
	return responses, nil
}

func toResponse(c correction.Correction) correction.CorrectionResponse {
	return correction.CorrectionResponse{
		ID:             c.ID,
		UserID:         c.UserID,
		UserName:       c.UserName,
		UserEmail:      c.UserEmail,
		AttendanceDate: c.AttendanceDate,
		MissingType:    c.MissingType,
		RequestedTime:  c.RequestedTime,
		Reason:         c.Reason,
		Status:         c.Status,
		AttendanceID:   c.AttendanceID,
		ApprovedBy:     c.ApprovedBy,
		Remarks:        c.Remarks,
		Applied:        c.Applied,
		CreatedAt:      c.CreatedAt,
	}
}
