package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	attendanceerrors "go-hrm/internal/attendance/errors"
	"go-hrm/internal/identity"
	"go-hrm/internal/shared/pgerr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	raceConstraint = "uq_attendance_user_date"
	hrNotePrefix   = "HR correction: "
	defaultHRNote  = "Corrected by HR"
	monthLayout    = "2006-01"
)

type Service interface {
	ClockIn(ctx context.Context, userID uuid.UUID, req ClockRequest) (ClockResponse, error)
	ClockOut(ctx context.Context, userID uuid.UUID, req ClockRequest) (ClockResponse, error)
	TodayStatus(ctx context.Context, userID uuid.UUID) (TodayStatusResponse, error)
	MonthlySummary(ctx context.Context, userID uuid.UUID, month string) (MonthlySummaryResponse, error)
	Correct(ctx context.Context, actor *identity.Principal, id string, req CorrectionRequest) (CorrectionResponse, error)
	TeamToday(ctx context.Context, actor *identity.Principal) ([]TeamAttendanceResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, loc *time.Location, logger ...*zap.Logger) Service {
	return NewServiceWithClock(db, repo, loc, time.Now, logger...)
}

func NewServiceWithClock(db *gorm.DB, repo Repository, loc *time.Location, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{db: db, repo: repo, loc: loc, now: now, logger: l}
}

func (s *service) ClockIn(ctx context.Context, userID uuid.UUID, req ClockRequest) (ClockResponse, error) {
	now := s.now()
	today := LocalDate(now, s.loc)
	s.logger.Debug("clock in requested", zap.String("user_id", userID.String()), zap.Time("date", today))

	var row *Attendance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		existing, err := qtx.FindByUserAndDate(ctx, userID, today, false)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			if existing.Status == StatusCompleted {
				return attendanceerrors.ErrAlreadyCompleted
			}
			return attendanceerrors.ErrAlreadyClockedIn
		}

		row = &Attendance{
			ID:      uuid.New(),
			UserID:  userID,
			Date:    today,
			ClockIn: now.UTC(),
			Status:  StatusInProgress,
			Note:    strings.TrimSpace(req.Note),
		}
		if err := qtx.Create(ctx, row); err != nil {
			if pgerr.IsUniqueViolation(err, raceConstraint) {
				return attendanceerrors.ErrRaceConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		s.logFailure("clock in", userID, err)
		return ClockResponse{}, err
	}

	s.logger.Info("clock in success", zap.String("user_id", userID.String()), zap.String("attendance_id", row.ID.String()))
	return ClockResponse{
		Status:       TodayClockedIn,
		AttendanceID: row.ID.String(),
		Date:         row.Date.Format(dateLayout),
		ClockIn:      row.ClockIn.In(s.loc).Format(time.RFC3339),
	}, nil
}

func (s *service) ClockOut(ctx context.Context, userID uuid.UUID, req ClockRequest) (ClockResponse, error) {
	now := s.now()
	today := LocalDate(now, s.loc)
	s.logger.Debug("clock out requested", zap.String("user_id", userID.String()))

	var row *Attendance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		a, err := qtx.FindByUserAndDate(ctx, userID, today, true)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return attendanceerrors.ErrNoOpenAttendance
			}
			return err
		}
		if a.Status == StatusCompleted || a.ClockOut != nil {
			return attendanceerrors.ErrAlreadyClosed
		}

		out := now.UTC()
		a.ClockOut = &out
		a.DurationSeconds = DurationSeconds(a.ClockIn, out)
		a.Status = StatusCompleted
		a.Note = appendNote(a.Note, strings.TrimSpace(req.Note))
		if err := qtx.Update(ctx, a); err != nil {
			return err
		}
		row = a
		return nil
	})
	if err != nil {
		s.logFailure("clock out", userID, err)
		return ClockResponse{}, err
	}

	s.logger.Info("clock out success",
		zap.String("user_id", userID.String()),
		zap.Int64("duration_seconds", row.DurationSeconds),
	)
	return ClockResponse{
		Status:          TodayCompleted,
		AttendanceID:    row.ID.String(),
		Date:            row.Date.Format(dateLayout),
		ClockIn:         row.ClockIn.In(s.loc).Format(time.RFC3339),
		ClockOut:        row.ClockOut.In(s.loc).Format(time.RFC3339),
		DurationSeconds: row.DurationSeconds,
	}, nil
}

func (s *service) logFailure(op string, userID uuid.UUID, err error) {
	switch {
	case errors.Is(err, attendanceerrors.ErrAlreadyClockedIn),
		errors.Is(err, attendanceerrors.ErrAlreadyCompleted),
		errors.Is(err, attendanceerrors.ErrNoOpenAttendance),
		errors.Is(err, attendanceerrors.ErrAlreadyClosed),
		errors.Is(err, attendanceerrors.ErrRaceConflict):
		s.logger.Warn(op+" rejected", zap.String("user_id", userID.String()), zap.Error(err))
	default:
		s.logger.Error(op+" failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
}

func (s *service) TodayStatus(ctx context.Context, userID uuid.UUID) (TodayStatusResponse, error) {
	a, err := s.repo.FindByUserAndDate(ctx, userID, LocalDate(s.now(), s.loc), false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TodayStatusResponse{State: TodayNotClockedIn}, nil
		}
		s.logger.Error("today status failed", zap.Error(err))
		return TodayStatusResponse{}, err
	}

	resp := TodayStatusResponse{
		State:   TodayClockedIn,
		ClockIn: a.ClockIn.In(s.loc).Format(time.RFC3339),
	}
	if a.Status == StatusCompleted && a.ClockOut != nil {
		resp.State = TodayCompleted
		resp.ClockOut = a.ClockOut.In(s.loc).Format(time.RFC3339)
		resp.DurationSeconds = a.DurationSeconds
	}
	return resp, nil
}

func (s *service) MonthlySummary(ctx context.Context, userID uuid.UUID, month string) (MonthlySummaryResponse, error) {
	var first time.Time
	if month == "" {
		first = LocalDate(s.now(), s.loc)
		first = time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		m, err := time.Parse(monthLayout, month)
		if err != nil {
			return MonthlySummaryResponse{}, attendanceerrors.ErrInvalidMonth
		}
		first = m
	}
	from, to := MonthRange(first.Year(), first.Month())

	rows, err := s.repo.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("monthly summary failed", zap.String("user_id", userID.String()), zap.Error(err))
		return MonthlySummaryResponse{}, err
	}

	sum := Summarize(rows, s.loc)
	days := make([]AttendanceResponse, 0, len(rows))
	for _, a := range rows {
		days = append(days, s.mapToResponse(a))
	}

	return MonthlySummaryResponse{
		Month:           from.Format(monthLayout),
		Days:            days,
		DaysPresent:     sum.DaysPresent,
		TotalSeconds:    sum.TotalSeconds,
		TotalHours:      FormatSeconds(sum.TotalSeconds),
		AverageSeconds:  sum.AverageSeconds,
		AverageHours:    FormatSeconds(sum.AverageSeconds),
		OvertimeSeconds: sum.OvertimeSeconds,
		Overtime:        FormatSeconds(sum.OvertimeSeconds),
		LateCount:       sum.LateCount,
	}, nil
}

// Correct applies an HR correction. A clock-in on another date moves the
// row only when that keeps one row per user and date.
func (s *service) Correct(ctx context.Context, actor *identity.Principal, id string, req CorrectionRequest) (CorrectionResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return CorrectionResponse{}, err
	}
	aid, err := uuid.Parse(id)
	if err != nil {
		return CorrectionResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}
	s.logger.Debug("hr attendance correction requested",
		zap.String("attendance_id", id),
		zap.String("actor_id", actor.UserID.String()),
	)

	clockIn, err := parseOptionalTime(req.ClockIn)
	if err != nil {
		return CorrectionResponse{}, err
	}
	clockOut, err := parseOptionalTime(req.ClockOut)
	if err != nil {
		return CorrectionResponse{}, err
	}
	if req.Status != nil && *req.Status != StatusInProgress && *req.Status != StatusCompleted {
		return CorrectionResponse{}, attendanceerrors.ErrInvalidStatus
	}

	var (
		row   *Attendance
		moved bool
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		a, err := qtx.FindByID(ctx, aid, true)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return attendanceerrors.ErrAttendanceNotFound
			}
			return err
		}

		if clockIn != nil {
			newDate := LocalDate(*clockIn, s.loc)
			if !newDate.Equal(a.Date) {
				taken, err := qtx.ExistsOnDate(ctx, a.UserID, newDate, a.ID)
				if err != nil {
					return err
				}
				if taken {
					s.logger.Warn("hr correction kept original date, target date already has attendance",
						zap.String("attendance_id", id),
						zap.Time("target_date", newDate),
					)
				} else {
					a.Date = newDate
					moved = true
				}
			}
			a.ClockIn = clockIn.UTC()
		}
		if clockOut != nil {
			out := clockOut.UTC()
			a.ClockOut = &out
		}
		if req.Status != nil {
			a.Status = *req.Status
		}

		if a.ClockOut != nil {
			if a.ClockOut.Before(a.ClockIn) {
				return attendanceerrors.ErrClockOutBeforeClockIn
			}
			a.DurationSeconds = DurationSeconds(a.ClockIn, *a.ClockOut)
			if req.Status == nil {
				a.Status = StatusCompleted
			}
		}

		note := strings.TrimSpace(req.Note)
		if note == "" {
			note = defaultHRNote
		}
		a.Note = appendHRNote(a.Note, note)
		a.ManualEntry = true

		if err := qtx.Update(ctx, a); err != nil {
			if pgerr.IsUniqueViolation(err, raceConstraint) {
				return attendanceerrors.ErrRaceConflict
			}
			return err
		}
		row = a
		return nil
	})
	if err != nil {
		if errors.Is(err, attendanceerrors.ErrAttendanceNotFound) || errors.Is(err, attendanceerrors.ErrClockOutBeforeClockIn) {
			s.logger.Warn("hr attendance correction rejected", zap.String("attendance_id", id), zap.Error(err))
		} else {
			s.logger.Error("hr attendance correction failed", zap.String("attendance_id", id), zap.Error(err))
		}
		return CorrectionResponse{}, err
	}

	s.logger.Info("hr attendance correction success", zap.String("attendance_id", id), zap.Bool("date_moved", moved))
	return CorrectionResponse{Attendance: s.mapToResponse(*row), DateMoved: moved}, nil
}

// TeamToday lists today's rows: employees see their own, TL and HR also see employees.
func (s *service) TeamToday(ctx context.Context, actor *identity.Principal) ([]TeamAttendanceResponse, error) {
	if actor == nil {
		return nil, identity.ErrUnauthenticated
	}

	var roles []identity.Role
	switch {
	case identity.IsTL(actor), identity.IsHR(actor):
		roles = identity.EmployeeRoles
	case identity.IsEmployee(actor):
		roles = nil
	default:
		return nil, identity.ErrForbidden
	}

	rows, err := s.repo.ListTeamOnDate(ctx, LocalDate(s.now(), s.loc), actor.UserID, roles)
	if err != nil {
		s.logger.Error("team today failed", zap.Error(err))
		return nil, err
	}

	out := make([]TeamAttendanceResponse, 0, len(rows))
	for _, r := range rows {
		name := strings.TrimSpace(r.FirstName + " " + r.LastName)
		if name == "" {
			name = r.Username
		}
		out = append(out, TeamAttendanceResponse{
			AttendanceResponse: s.mapToResponse(r.Attendance),
			Username:           r.Username,
			FullName:           name,
		})
	}
	return out, nil
}

func parseOptionalTime(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(*raw))
	if err != nil {
		return nil, attendanceerrors.ErrInvalidTimestamp
	}
	return &t, nil
}

func appendNote(existing, note string) string {
	switch {
	case note == "":
		return existing
	case existing == "":
		return note
	}
	return existing + "\n" + note
}

// appendHRNote adds the marker once; repeating the same correction is a no-op.
func appendHRNote(existing, note string) string {
	marker := hrNotePrefix + note
	if strings.Contains(existing, marker) {
		return existing
	}
	return appendNote(existing, marker)
}

// FormatSeconds renders seconds as HH:MM.
func FormatSeconds(seconds int64) string {
	return fmt.Sprintf("%02d:%02d", seconds/3600, (seconds%3600)/60)
}

func (s *service) mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:              a.ID.String(),
		UserID:          a.UserID.String(),
		Date:            a.Date.Format(dateLayout),
		ClockIn:         a.ClockIn.In(s.loc).Format(time.RFC3339),
		DurationSeconds: a.DurationSeconds,
		Duration:        FormatSeconds(a.DurationSeconds),
		Status:          a.Status,
		Late:            IsLate(a.ClockIn, s.loc),
		Note:            a.Note,
		ManualEntry:     a.ManualEntry,
	}
	if a.ClockOut != nil {
		v := a.ClockOut.In(s.loc).Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}
