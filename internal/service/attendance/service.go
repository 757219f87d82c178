package attendance

import (
	"context"
	"time"

	"github.com/attendhub/attendhub-backend-go/internal/domain/attendance"
	"github.com/attendhub/attendhub-backend-go/internal/domain/correction"
	"github.com/attendhub/attendhub-backend-go/internal/domain/holiday"
	"github.com/attendhub/attendhub-backend-go/internal/domain/user"
)

type service struct {
	repo           attendance.Repository
	userRepo       user.Repository
	holidayRepo    holiday.Repository
	correctionRepo correction.Repository
	nowFn          func() time.Time
	loc            *time.Location
}

func NewService(
	repo attendance.Repository,
	userRepo user.Repository,
	holidayRepo holiday.Repository,
	correctionRepo correction.Repository,
) attendance.Service {
	return &service{
		repo:           repo,
		userRepo:       userRepo,
		holidayRepo:    holidayRepo,
		correctionRepo: correctionRepo,
		nowFn:          time.Now,
		loc:            time.Local,
	}
}

// dayBounds returns [midnight, midnight+24h) for the day containing t.
func (s *service) dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}

// CheckIn implements attendance.Service. A day whose record is already closed
// cannot be reopened; a second check-in on an open day is rejected too. A day
// marked absent (a rejected correction does this) does not block a fresh
// check-in.
func (s *service) CheckIn(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := s.nowFn().In(s.loc)
	dayStart, dayEnd := s.dayBounds(now)

	existing, err := s.repo.GetForDay(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		switch existing.Status {
		case attendance.StatusCheckedOut:
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
		case attendance.StatusCheckedIn:
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
	}

	created, err := s.repo.Create(ctx, attendance.Attendance{
		UserID:      userID,
		CheckInTime: now,
		Status:      attendance.StatusCheckedIn,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// CheckOut implements attendance.Service. Closes the most recent open session
// and computes the worked duration with the lunch deduction applied.
func (s *service) CheckOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	att, err := s.repo.GetOpenSession(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.nowFn().In(s.loc)
	hours := attendance.WorkDuration(att.CheckInTime, now)

	att.CheckOutTime = &now
	att.DurationHours = &hours
	att.Status = attendance.StatusCheckedOut

	if err := s.repo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(att), nil
}

// GetTodayStatus implements attendance.Service.
func (s *service) GetTodayStatus(ctx context.Context, userID string) (attendance.TodayStatusResponse, error) {
	now := s.nowFn().In(s.loc)
	dayStart, dayEnd := s.dayBounds(now)

	record, err := s.repo.GetForDay(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}
	if record == nil {
		return attendance.TodayStatusResponse{State: "no-data"}, nil
	}

	resp := toResponse(*record)
	state := "completed"
	if record.Open() {
		state = "checked-in"
	}

	return attendance.TodayStatusResponse{State: state, Attendance: &resp}, nil
}

// ListMine implements attendance.Service.
func (s *service) ListMine(ctx context.Context, userID string, filter attendance.RangeFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	from, to := filter.Bounds(s.loc)

	records, err := s.repo.ListByUser(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// ListTeam implements attendance.Service. Records are annotated with each
// owner's name and email for the manager view.
func (s *service) ListTeam(ctx context.Context, managerID string, filter attendance.RangeFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	from, to := filter.Bounds(s.loc)

	team, err := s.userRepo.ListTeam(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if len(team) == 0 {
		return []attendance.AttendanceResponse{}, nil
	}

	userIDs := make([]string, len(team))
	for i, member := range team {
		userIDs[i] = member.ID
	}

	records, err := s.repo.ListByUsers(ctx, userIDs, from, to)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// Calendar implements attendance.Service. Each day in the range is classified
// and overlaid with holiday info; days whose record was rewritten by an
// approved correction are flagged.
func (s *service) Calendar(ctx context.Context, userID string, filter attendance.RangeFilter) ([]attendance.CalendarDay, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	from, to := filter.Bounds(s.loc)

	records, err := s.repo.ListByUser(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	// Records come back newest first; keep the latest record per day.
	recordByDay := make(map[string]*attendance.Attendance)
	for i := range records {
		day := records[i].CheckInTime.In(s.loc).Format("2006-01-02")
		if _, ok := recordByDay[day]; !ok {
			recordByDay[day] = &records[i]
		}
	}

	holidays, err := s.holidayRepo.ListBetween(ctx, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}
	holidayByDay := make(map[string]string, len(holidays))
	for _, h := range holidays {
		holidayByDay[h.Date] = h.Name
	}

	corrections, err := s.correctionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	correctedDays := make(map[string]bool)
	for _, c := range corrections {
		if c.Status == correction.StatusApproved && c.Applied {
			correctedDays[c.AttendanceDate] = true
		}
	}

	today := s.nowFn().In(s.loc)

	var days []attendance.CalendarDay
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		record := recordByDay[key]
		holidayName, isHoliday := holidayByDay[key]

		day := attendance.CalendarDay{
			Date:      key,
			Status:    attendance.ClassifyDay(d, today, isHoliday, record),
			Corrected: correctedDays[key],
		}
		if isHoliday {
			day.HolidayName = &holidayName
		}
		if record != nil {
			checkIn := record.CheckInTime
			day.CheckInTime = &checkIn
			day.CheckOutTime = record.CheckOutTime
			day.DurationHours = record.DurationHours
		}
		days = append(days, day)
	}

	return days, nil
}

// Report implements attendance.Service.
func (s *service) Report(ctx context.Context, userID string, filter attendance.RangeFilter) (attendance.ReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ReportResponse{}, err
	}
	from, to := filter.Bounds(s.loc)

	records, err := s.repo.ListByUser(ctx, userID, from, to)
	if err != nil {
		return attendance.ReportResponse{}, err
	}

	presentDays := make(map[string]struct{})
	var totalHours float64
	for _, record := range records {
		presentDays[record.CheckInTime.In(s.loc).Format("2006-01-02")] = struct{}{}
		if record.DurationHours != nil {
			totalHours += *record.DurationHours
		}
	}

	// Count calendar days rather than dividing elapsed hours, so a DST
	// transition inside the range does not drop a day.
	totalDays := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		totalDays++
	}
	present := len(presentDays)

	var average float64
	if present > 0 {
		average = totalHours / float64(present)
	}

	return attendance.ReportResponse{
		TotalDays:    totalDays,
		PresentDays:  present,
		AbsentDays:   totalDays - present,
		TotalHours:   totalHours,
		AverageHours: average,
		Records:      toResponses(records),
	}, nil
}

// CompanyReport implements attendance.Service. The admin dashboard's org-wide
// listing: every user's records in the range, annotated with name and email.
func (s *service) CompanyReport(ctx context.Context, filter attendance.RangeFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	from, to := filter.Bounds(s.loc)

	records, err := s.repo.ListAll(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:            att.ID,
		UserID:        att.UserID,
		UserName:      att.UserName,
		UserEmail:     att.UserEmail,
		CheckInTime:   att.CheckInTime,
		CheckOutTime:  att.CheckOutTime,
		Status:        att.Status,
		DurationHours: att.DurationHours,
	}
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}
	return responses
}
