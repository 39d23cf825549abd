package payroll

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-hrm/internal/attendance"
	"go-hrm/internal/employee"
	"go-hrm/internal/employeesalary"
	"go-hrm/internal/events"
	"go-hrm/internal/identity"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/notification"
	payrollerrors "go-hrm/internal/payroll/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SalarySource resolves the active salary of a profile.
type SalarySource interface {
	ActiveSalary(ctx context.Context, profileID uuid.UUID) (*employeesalary.EmployeeSalary, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, actor *identity.Principal, profileID string, req GeneratePayslipRequest) (PayslipResponse, error)
	Finalize(ctx context.Context, actor *identity.Principal, id string) (PayslipResponse, error)
	ListForPeriod(ctx context.Context, actor *identity.Principal, filter ListPayslipsFilter, page, pageSize int) ([]PayslipResponse, int64, error)
	MyPayslips(ctx context.Context, actor *identity.Principal, page, pageSize int) ([]PayslipResponse, int64, error)
	Download(ctx context.Context, actor *identity.Principal, year, month int) (PayslipFile, error)
}

type service struct {
	db            *gorm.DB
	repo          Repository
	profiles      employee.Repository
	salaries      SalarySource
	attendance    attendance.Repository
	notifications notification.Repository
	outbox        kafka.OutboxRepository
	now           func() time.Time
	logger        *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	profiles employee.Repository,
	salaries SalarySource,
	attendanceRepo attendance.Repository,
	notifications notification.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		profiles:      profiles,
		salaries:      salaries,
		attendance:    attendanceRepo,
		notifications: notifications,
		outbox:        outbox,
		now:           time.Now,
		logger:        l,
	}
}

func (s *service) Generate(ctx context.Context, actor *identity.Principal, profileID string, req GeneratePayslipRequest) (PayslipResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return PayslipResponse{}, err
	}
	pid, err := uuid.Parse(strings.TrimSpace(profileID))
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidProfileID
	}
	if err := validatePeriod(req.Year, req.Month); err != nil {
		return PayslipResponse{}, err
	}
	insurance, err := parseMoney(req.Insurance)
	if err != nil {
		return PayslipResponse{}, err
	}
	esi, err := parseMoney(req.ESI)
	if err != nil {
		return PayslipResponse{}, err
	}

	s.logger.Debug("generate payslip requested",
		zap.String("actor_id", actor.UserID.String()),
		zap.String("profile_id", pid.String()),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
	)

	profile, err := s.findProfile(ctx, pid)
	if err != nil {
		s.logFailure("generate payslip", actor.UserID, err)
		return PayslipResponse{}, err
	}
	salary, err := s.salaries.ActiveSalary(ctx, pid)
	if err != nil {
		s.logFailure("generate payslip", actor.UserID, err)
		return PayslipResponse{}, err
	}

	month := time.Month(req.Month)
	from, to := attendance.MonthRange(req.Year, month)
	rows, err := s.attendance.ListCompletedByUserBetween(ctx, profile.UserID, from, to)
	if err != nil {
		s.logFailure("generate payslip", actor.UserID, err)
		return PayslipResponse{}, err
	}
	var overtime int64
	for _, a := range rows {
		overtime += attendance.OvertimeSeconds(a)
	}

	st := salary.Structure
	breakdown := Compute(Input{
		MonthlyCTC:         st.MonthlyCTC,
		BasicPercent:       st.BasicPercent,
		HRAPercent:         st.HRAPercent,
		OvertimeMultiplier: st.OvertimeMultiplier,
		WorkingDays:        WorkingDays(req.Year, month),
		DaysPresent:        len(rows),
		OvertimeSeconds:    overtime,
		Insurance:          insurance,
		ESI:                esi,
	})

	generatedBy := actor.UserID
	slip := &Payslip{
		ProfileID:       pid,
		Year:            req.Year,
		Month:           req.Month,
		WorkingDays:     breakdown.WorkingDays,
		DaysPresent:     breakdown.DaysPresent,
		OvertimeSeconds: breakdown.OvertimeSeconds,
		GrossAmount:     Round(breakdown.ProrataGross),
		OvertimeAmount:  Round(breakdown.OvertimeAmount),
		Deductions:      Round(breakdown.Deductions),
		NetAmount:       Round(breakdown.NetAmount),
		Details:         datatypes.JSONMap(breakdown.Details()),
		GeneratedByID:   &generatedBy,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		existing, err := qtx.FindByPeriod(ctx, pid, req.Year, req.Month, true)
		switch {
		case err == nil:
			if existing.Finalized {
				return payrollerrors.ErrPayslipFinalized
			}
			slip.ID = existing.ID
			slip.CreatedAt = existing.CreatedAt
		case errors.Is(err, gorm.ErrRecordNotFound):
			slip.ID = uuid.New()
		default:
			return err
		}

		written, err := qtx.Upsert(ctx, slip)
		if err != nil {
			return err
		}
		if !written {
			return payrollerrors.ErrPayslipFinalized
		}

		plan := notification.NewPlan(
			"Payslip generated",
			fmt.Sprintf("Your payslip for %s %d is ready.", month.String(), req.Year),
			notification.TypePayroll,
			map[string]any{"payslip_id": slip.ID.String(), "year": req.Year, "month": req.Month},
			profile.UserID,
		)
		if _, err := s.notifications.WithTx(tx).Apply(ctx, plan); err != nil {
			return err
		}
		return s.queueGenerated(ctx, tx, slip, profile)
	})
	if err != nil {
		s.logFailure("generate payslip", actor.UserID, err)
		return PayslipResponse{}, err
	}

	s.logger.Info("payslip generated",
		zap.String("payslip_id", slip.ID.String()),
		zap.String("profile_id", pid.String()),
		zap.String("net_amount", money(slip.NetAmount)),
	)

	resp := mapPayslip(*slip)
	resp.EmpID = profile.EmpID
	resp.EmployeeName = profile.FullName()
	return resp, nil
}

func (s *service) Finalize(ctx context.Context, actor *identity.Principal, id string) (PayslipResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return PayslipResponse{}, err
	}
	slipID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidPayslipID
	}

	var out Payslip
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		slip, err := qtx.FindByID(ctx, slipID, true)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return payrollerrors.ErrPayslipNotFound
			}
			return err
		}
		if slip.Finalized {
			return payrollerrors.ErrAlreadyFinalized
		}

		at := s.now().UTC()
		if err := qtx.Finalize(ctx, slip.ID, actor.UserID, at); err != nil {
			return err
		}
		finalizedBy := actor.UserID
		slip.Finalized = true
		slip.FinalizedByID = &finalizedBy
		slip.FinalizedAt = &at
		out = *slip
		return nil
	})
	if err != nil {
		s.logFailure("finalize payslip", actor.UserID, err)
		return PayslipResponse{}, err
	}

	s.logger.Info("payslip finalized", zap.String("payslip_id", out.ID.String()))
	return mapPayslip(out), nil
}

func (s *service) ListForPeriod(ctx context.Context, actor *identity.Principal, filter ListPayslipsFilter, page, pageSize int) ([]PayslipResponse, int64, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return nil, 0, err
	}
	if err := validatePeriod(filter.Year, filter.Month); err != nil {
		return nil, 0, err
	}
	rows, total, err := s.repo.ListByPeriod(ctx, filter.Year, filter.Month, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]PayslipResponse, len(rows))
	for i, row := range rows {
		out[i] = mapPayslip(row.Payslip)
		out[i].EmpID = row.EmpID
		out[i].EmployeeName = strings.TrimSpace(row.FirstName + " " + row.LastName)
	}
	return out, total, nil
}

func (s *service) MyPayslips(ctx context.Context, actor *identity.Principal, page, pageSize int) ([]PayslipResponse, int64, error) {
	if actor == nil {
		return nil, 0, identity.ErrUnauthenticated
	}
	profile, err := s.ownProfile(ctx, actor)
	if err != nil {
		return nil, 0, err
	}
	rows, total, err := s.repo.ListByProfile(ctx, profile.ID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]PayslipResponse, len(rows))
	for i, p := range rows {
		out[i] = mapPayslip(p)
		out[i].EmpID = profile.EmpID
	}
	return out, total, nil
}

func (s *service) Download(ctx context.Context, actor *identity.Principal, year, month int) (PayslipFile, error) {
	if actor == nil {
		return PayslipFile{}, identity.ErrUnauthenticated
	}
	if err := validatePeriod(year, month); err != nil {
		return PayslipFile{}, err
	}
	profile, err := s.ownProfile(ctx, actor)
	if err != nil {
		return PayslipFile{}, err
	}
	slip, err := s.repo.FindByPeriod(ctx, profile.ID, year, month, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipFile{}, payrollerrors.ErrPayslipNotFound
		}
		return PayslipFile{}, err
	}

	content, err := renderPayslipPDF(*slip, *profile)
	if err != nil {
		s.logger.Error("render payslip failed", zap.String("payslip_id", slip.ID.String()), zap.Error(err))
		return PayslipFile{}, err
	}
	return PayslipFile{Filename: payslipFilename(profile.EmpID, year, month), Content: content}, nil
}

func (s *service) queueGenerated(ctx context.Context, tx *gorm.DB, slip *Payslip, profile *employee.Profile) error {
	if s.outbox == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	event := events.PayslipGeneratedEvent{
		EventType:  events.TypePayslipGenerated,
		RequestID:  rid,
		PayslipID:  slip.ID.String(),
		UserID:     profile.UserID.String(),
		Email:      profile.WorkEmail,
		Year:       slip.Year,
		Month:      slip.Month,
		NetAmount:  money(slip.NetAmount),
		OccurredAt: s.now().UTC(),
	}
	row, err := kafka.NewOutboxEvent(rid, "payslip", slip.ID.String(), event.EventType, events.PayrollPayslipGeneratedTopic, event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, row)
}

func (s *service) findProfile(ctx context.Context, id uuid.UUID) (*employee.Profile, error) {
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) ownProfile(ctx context.Context, actor *identity.Principal) (*employee.Profile, error) {
	p, err := s.profiles.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) logFailure(op string, actorID uuid.UUID, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
		s.logger.Warn(op+" rejected", zap.String("actor_id", actorID.String()), zap.Error(err))
		return
	}
	s.logger.Error(op+" failed", zap.String("actor_id", actorID.String()), zap.Error(err))
}

func validatePeriod(year, month int) error {
	if year < 2000 || year > 9999 || month < 1 || month > 12 {
		return payrollerrors.ErrInvalidPeriod
	}
	return nil
}

func parseMoney(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		return decimal.Zero, payrollerrors.ErrInvalidMoneyValue
	}
	return v, nil
}

func downloadURL(year, month int) string {
	return fmt.Sprintf("/api/payslips/%d/%d/download/", year, month)
}

func mapPayslip(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:              p.ID.String(),
		ProfileID:       p.ProfileID.String(),
		Year:            p.Year,
		Month:           p.Month,
		WorkingDays:     p.WorkingDays,
		DaysPresent:     p.DaysPresent,
		OvertimeSeconds: p.OvertimeSeconds,
		GrossAmount:     money(p.GrossAmount),
		OvertimeAmount:  money(p.OvertimeAmount),
		Deductions:      money(p.Deductions),
		NetAmount:       money(p.NetAmount),
		Breakdown:       p.Details,
		Finalized:       p.Finalized,
		DownloadURL:     downloadURL(p.Year, p.Month),
	}
	if p.GeneratedByID != nil {
		resp.GeneratedBy = p.GeneratedByID.String()
	}
	if p.FinalizedAt != nil {
		v := p.FinalizedAt.Format(time.RFC3339)
		resp.FinalizedAt = &v
	}
	return resp
}
