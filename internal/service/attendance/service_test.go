package attendance

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/attendhub/attendhub-backend-go/internal/domain/attendance"
	"github.com/attendhub/attendhub-backend-go/internal/domain/correction"
	"github.com/attendhub/attendhub-backend-go/internal/domain/holiday"
	"github.com/attendhub/attendhub-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.seq++
	att.ID = fmt.Sprintf("att-%d", r.seq)
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	r.records[att.ID] = att
	return att, nil
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	att, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (r *fakeAttendanceRepo) GetForDay(_ context.Context, userID string, dayStart, dayEnd time.Time) (*attendance.Attendance, error) {
	var match *attendance.Attendance
	for id := range r.records {
		att := r.records[id]
		if att.UserID != userID {
			continue
		}
		if att.CheckInTime.Before(dayStart) || !att.CheckInTime.Before(dayEnd) {
			continue
		}
		if match == nil || att.CheckInTime.After(match.CheckInTime) {
			copied := att
			match = &copied
		}
	}
	return match, nil
}

func (r *fakeAttendanceRepo) GetOpenSession(_ context.Context, userID string) (attendance.Attendance, error) {
	var match *attendance.Attendance
	for id := range r.records {
		att := r.records[id]
		if att.UserID != userID || att.CheckOutTime != nil {
			continue
		}
		if match == nil || att.CheckInTime.After(match.CheckInTime) {
			copied := att
			match = &copied
		}
	}
	if match == nil {
		return attendance.Attendance{}, attendance.ErrNoActiveSession
	}
	return *match, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	if _, ok := r.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	r.records[att.ID] = att
	return nil
}

func (r *fakeAttendanceRepo) ListByUser(_ context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for id := range r.records {
		att := r.records[id]
		if att.UserID != userID {
			continue
		}
		if att.CheckInTime.Before(from) || !att.CheckInTime.Before(to) {
			continue
		}
		out = append(out, att)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckInTime.After(out[j].CheckInTime) })
	return out, nil
}

func (r *fakeAttendanceRepo) ListByUsers(ctx context.Context, userIDs []string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, userID := range userIDs {
		records, _ := r.ListByUser(ctx, userID, from, to)
		out = append(out, records...)
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListAll(_ context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for id := range r.records {
		att := r.records[id]
		if att.CheckInTime.Before(from) || !att.CheckInTime.Before(to) {
			continue
		}
		out = append(out, att)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckInTime.After(out[j].CheckInTime) })
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

func (r *fakeUserRepo) ListNonAdmin(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		if u.Role != user.RoleAdmin {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListTeam(_ context.Context, managerID string) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		if u.ManagerID != nil && *u.ManagerID == managerID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u user.User) error {
	r.users[u.ID] = u
	return nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (r *fakeHolidayRepo) ListBetween(_ context.Context, from, to string) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range r.holidays {
		if h.Date >= from && h.Date <= to {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) Seed(_ context.Context, holidays []holiday.Holiday) error {
	r.holidays = append(r.holidays, holidays...)
	return nil
}

type fakeCorrectionRepo struct {
	corrections map[string]correction.Correction
	seq         int
}

func newFakeCorrectionRepo() *fakeCorrectionRepo {
	return &fakeCorrectionRepo{corrections: make(map[string]correction.Correction)}
}

func (r *fakeCorrectionRepo) Create(_ context.Context, c correction.Correction) (correction.Correction, error) {
	r.seq++
	c.ID = fmt.Sprintf("corr-%d", r.seq)
	c.CreatedAt = time.Now()
	r.corrections[c.ID] = c
	return c, nil
}

func (r *fakeCorrectionRepo) GetByID(_ context.Context, id string) (correction.Correction, error) {
	c, ok := r.corrections[id]
	if !ok {
		return correction.Correction{}, correction.ErrCorrectionNotFound
	}
	return c, nil
}

func (r *fakeCorrectionRepo) HasOutstanding(_ context.Context, userID, attendanceDate string) (bool, error) {
	for _, c := range r.corrections {
		if c.UserID == userID && c.AttendanceDate == attendanceDate && c.Status != correction.StatusRejected {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCorrectionRepo) Resolve(_ context.Context, id string, status correction.Status, approvedBy string, remarks *string, applied bool, attendanceID *string) (bool, error) {
	c, ok := r.corrections[id]
	if !ok || c.Status != correction.StatusPending {
		return false, nil
	}
	c.Status = status
	c.ApprovedBy = &approvedBy
	c.Remarks = remarks
	c.Applied = applied
	c.AttendanceID = attendanceID
	r.corrections[id] = c
	return true, nil
}

func (r *fakeCorrectionRepo) ListByUser(_ context.Context, userID string) ([]correction.Correction, error) {
	var out []correction.Correction
	for _, c := range r.corrections {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCorrectionRepo) ListAll(_ context.Context) ([]correction.Correction, error) {
	var out []correction.Correction
	for _, c := range r.corrections {
		out = append(out, c)
	}
	return out, nil
}

func newTestService(now time.Time) (*service, *fakeAttendanceRepo, *fakeUserRepo, *fakeHolidayRepo, *fakeCorrectionRepo) {
	attRepo := newFakeAttendanceRepo()
	userRepo := &fakeUserRepo{users: make(map[string]user.User)}
	holidayRepo := &fakeHolidayRepo{}
	correctionRepo := newFakeCorrectionRepo()

	svc := &service{
		repo:           attRepo,
		userRepo:       userRepo,
		holidayRepo:    holidayRepo,
		correctionRepo: correctionRepo,
		nowFn:          func() time.Time { return now },
		loc:            time.UTC,
	}
	return svc, attRepo, userRepo, holidayRepo, correctionRepo
}

func TestCheckIn_CreatesOpenSession(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc, _, _, _, _ := newTestService(now)

	result, err := svc.CheckIn(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCheckedIn, result.Status)
	assert.Equal(t, now, result.CheckInTime)
	assert.Nil(t, result.CheckOutTime)
}

func TestCheckIn_TwiceSameDayFails(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc, _, _, _, _ := newTestService(now)

	_, err := svc.CheckIn(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), "user-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_AfterCheckOutFails(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc, _, _, _, _ := newTestService(now)

	_, err := svc.CheckIn(ctx, "user-1")
	require.NoError(t, err)

	svc.nowFn = func() time.Time { return now.Add(8 * time.Hour) }
	_, err = svc.CheckOut(ctx, "user-1")
	require.NoError(t, err)

	// A closed day cannot be reopened.
	_, err = svc.CheckIn(ctx, "user-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckIn_NextDaySucceeds(t *testing.T) {
	ctx := context.Background()
	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc, _, _, _, _ := newTestService(day1)

	_, err := svc.CheckIn(ctx, "user-1")
	require.NoError(t, err)

	svc.nowFn = func() time.Time { return day1.AddDate(0, 0, 1) }
	_, err = svc.CheckIn(ctx, "user-1")
	assert.NoError(t, err)
}

func TestCheckIn_AbsentDayAllowsNewRecord(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	svc, attRepo, _, _, _ := newTestService(now)

	// A rejected correction leaves the day's record marked absent; that must
	// not lock the employee out of checking in again.
	out := time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)
	_, err := attRepo.Create(ctx, attendance.Attendance{
		UserID:       "user-1",
		CheckInTime:  time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		CheckOutTime: &out,
		Status:       attendance.StatusAbsent,
	})
	require.NoError(t, err)

	result, err := svc.CheckIn(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCheckedIn, result.Status)
	assert.Equal(t, now, result.CheckInTime)
	assert.Len(t, attRepo.records, 2)
}

func TestCheckOut_WithoutCheckInFails(t *testing.T) {
	svc, _, _, _, _ := newTestService(time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(context.Background(), "user-1")
	assert.ErrorIs(t, err, attendance.ErrNoActiveSession)
}

func TestCheckOut_AppliesLunchDeduction(t *testing.T) {
	ctx := context.Background()
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc, _, _, _, _ := newTestService(checkIn)

	_, err := svc.CheckIn(ctx, "user-1")
	require.NoError(t, err)

	svc.nowFn = func() time.Time { return checkIn.Add(8 * time.Hour) }
	result, err := svc.CheckOut(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCheckedOut, result.Status)
	require.NotNil(t, result.DurationHours)
	assert.Equal(t, 7.0, *result.DurationHours)
}

func TestGetTodayStatus_TransitionsThroughDay(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc, _, _, _, _ := newTestService(now)

	status, err := svc.GetTodayStatus(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "no-data", status.State)

	_, err = svc.CheckIn(ctx, "user-1")
	require.NoError(t, err)

	status, err = svc.GetTodayStatus(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "checked-in", status.State)

	svc.nowFn = func() time.Time { return now.Add(8 * time.Hour) }
	_, err = svc.CheckOut(ctx, "user-1")
	require.NoError(t, err)

	status, err = svc.GetTodayStatus(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "completed", status.State)
}

func TestListMine_RejectsInvertedRange(t *testing.T) {
	svc, _, _, _, _ := newTestService(time.Now())

	_, err := svc.ListMine(context.Background(), "user-1", attendance.RangeFilter{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-01",
	})

	assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)
}

func TestCalendar_ClassifiesAndOverlays(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	svc, attRepo, _, holidayRepo, _ := newTestService(now)

	holidayRepo.holidays = []holiday.Holiday{
		{Date: "2026-05-01", Name: "Labor Day", Type: holiday.TypeRegular},
	}

	// Completed day on the 2nd.
	out := time.Date(2026, 5, 2, 17, 0, 0, 0, time.UTC)
	hours := 7.0
	_, err := attRepo.Create(ctx, attendance.Attendance{
		UserID:        "user-1",
		CheckInTime:   time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC),
		CheckOutTime:  &out,
		Status:        attendance.StatusCheckedOut,
		DurationHours: &hours,
	})
	require.NoError(t, err)

	days, err := svc.Calendar(ctx, "user-1", attendance.RangeFilter{
		StartDate: "2026-05-01",
		EndDate:   "2026-05-04",
	})
	require.NoError(t, err)
	require.Len(t, days, 4)

	assert.Equal(t, attendance.DayHoliday, days[0].Status)
	require.NotNil(t, days[0].HolidayName)
	assert.Equal(t, "Labor Day", *days[0].HolidayName)

	assert.Equal(t, attendance.DayCompleted, days[1].Status)
	require.NotNil(t, days[1].DurationHours)
	assert.Equal(t, 7.0, *days[1].DurationHours)

	// The 3rd is in the past with no record.
	assert.Equal(t, attendance.DayAbsent, days[2].Status)

	// Today has no record yet.
	assert.Equal(t, attendance.DayNoData, days[3].Status)
}

func TestReport_Summarizes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	svc, attRepo, _, _, _ := newTestService(now)

	for day, hours := range map[int]float64{2: 7.0, 3: 8.0} {
		out := time.Date(2026, 3, day, 17, 0, 0, 0, time.UTC)
		h := hours
		_, err := attRepo.Create(ctx, attendance.Attendance{
			UserID:        "user-1",
			CheckInTime:   time.Date(2026, 3, day, 9, 0, 0, 0, time.UTC),
			CheckOutTime:  &out,
			Status:        attendance.StatusCheckedOut,
			DurationHours: &h,
		})
		require.NoError(t, err)
	}

	report, err := svc.Report(ctx, "user-1", attendance.RangeFilter{
		StartDate: "2026-03-02",
		EndDate:   "2026-03-06",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, report.TotalDays)
	assert.Equal(t, 2, report.PresentDays)
	assert.Equal(t, 3, report.AbsentDays)
	assert.Equal(t, 15.0, report.TotalHours)
	assert.Equal(t, 7.5, report.AverageHours)
	assert.Len(t, report.Records, 2)
}

func TestReport_CountsDaysAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	svc, _, _, _, _ := newTestService(time.Date(2026, 3, 10, 12, 0, 0, 0, loc))
	svc.loc = loc

	// 2026-03-08 loses an hour to the DST transition; the range still spans
	// two calendar days.
	report, err := svc.Report(context.Background(), "user-1", attendance.RangeFilter{
		StartDate: "2026-03-07",
		EndDate:   "2026-03-08",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalDays)
}

func TestCompanyReport_ListsAllUsers(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc, attRepo, _, _, _ := newTestService(now)

	for _, userID := range []string{"emp-1", "emp-2", "emp-3"} {
		_, err := attRepo.Create(ctx, attendance.Attendance{
			UserID:      userID,
			CheckInTime: now,
			Status:      attendance.StatusCheckedIn,
		})
		require.NoError(t, err)
	}

	result, err := svc.CompanyReport(ctx, attendance.RangeFilter{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})

	require.NoError(t, err)
	assert.Len(t, result, 3)
}

func TestCompanyReport_RejectsInvertedRange(t *testing.T) {
	svc, _, _, _, _ := newTestService(time.Now())

	_, err := svc.CompanyReport(context.Background(), attendance.RangeFilter{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-01",
	})

	assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)
}

func TestListTeam_EmptyTeam(t *testing.T) {
	svc, _, _, _, _ := newTestService(time.Now())

	result, err := svc.ListTeam(context.Background(), "manager-1", attendance.RangeFilter{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestListTeam_ReturnsTeamRecords(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc, attRepo, userRepo, _, _ := newTestService(now)

	managerID := "manager-1"
	userRepo.users["emp-1"] = user.User{ID: "emp-1", Role: user.RoleEmployee, ManagerID: &managerID}
	userRepo.users["emp-2"] = user.User{ID: "emp-2", Role: user.RoleEmployee}

	for _, userID := range []string{"emp-1", "emp-2"} {
		_, err := attRepo.Create(ctx, attendance.Attendance{
			UserID:      userID,
			CheckInTime: now,
			Status:      attendance.StatusCheckedIn,
		})
		require.NoError(t, err)
	}

	result, err := svc.ListTeam(ctx, managerID, attendance.RangeFilter{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "emp-1", result[0].UserID)
}
