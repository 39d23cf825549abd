package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrm/internal/attendance"
	"go-hrm/internal/employee"
	employeemock "go-hrm/internal/employee/mock"
	"go-hrm/internal/employeesalary"
	employeesalaryerrors "go-hrm/internal/employeesalary/errors"
	"go-hrm/internal/events"
	"go-hrm/internal/identity"
	"go-hrm/internal/messaging/kafka"
	kafkamock "go-hrm/internal/messaging/kafka/mock"
	"go-hrm/internal/notification"
	payrollerrors "go-hrm/internal/payroll/errors"
	"go-hrm/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type memPayslips struct {
	rows map[uuid.UUID]*Payslip
}

func (m *memPayslips) WithTx(*gorm.DB) Repository { return m }

func (m *memPayslips) FindByID(_ context.Context, id uuid.UUID, _ bool) (*Payslip, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memPayslips) FindByPeriod(_ context.Context, profileID uuid.UUID, year, month int, _ bool) (*Payslip, error) {
	for _, p := range m.rows {
		if p.ProfileID == profileID && p.Year == year && p.Month == month {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memPayslips) Upsert(_ context.Context, p *Payslip) (bool, error) {
	for id, existing := range m.rows {
		if existing.ProfileID == p.ProfileID && existing.Year == p.Year && existing.Month == p.Month {
			if existing.Finalized {
				return false, nil
			}
			cp := *p
			cp.ID = id
			m.rows[id] = &cp
			return true, nil
		}
	}
	cp := *p
	m.rows[p.ID] = &cp
	return true, nil
}

func (m *memPayslips) Finalize(_ context.Context, id, actorID uuid.UUID, at time.Time) error {
	p := m.rows[id]
	p.Finalized = true
	p.FinalizedByID = &actorID
	p.FinalizedAt = &at
	return nil
}

func (m *memPayslips) ListByProfile(_ context.Context, profileID uuid.UUID, _, _ int) ([]Payslip, int64, error) {
	var out []Payslip
	for _, p := range m.rows {
		if p.ProfileID == profileID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memPayslips) ListByPeriod(_ context.Context, year, month int, _, _ int) ([]PayslipRow, int64, error) {
	var out []PayslipRow
	for _, p := range m.rows {
		if p.Year == year && p.Month == month {
			out = append(out, PayslipRow{Payslip: *p, EmpID: "WZG-AI-0001"})
		}
	}
	return out, int64(len(out)), nil
}

type fakeSalaries struct {
	salary *employeesalary.EmployeeSalary
}

func (f *fakeSalaries) ActiveSalary(context.Context, uuid.UUID) (*employeesalary.EmployeeSalary, error) {
	if f.salary == nil {
		return nil, employeesalaryerrors.ErrNoActiveSalary
	}
	return f.salary, nil
}

type fakeAttendance struct {
	attendance.Repository
	rows []attendance.Attendance
}

func (f *fakeAttendance) ListCompletedByUserBetween(_ context.Context, _ uuid.UUID, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.rows {
		if !a.Date.Before(from) && a.Date.Before(to) && a.Status == attendance.StatusCompleted {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeNotifications struct {
	notification.Repository
	plans []notification.BroadcastPlan
}

func (f *fakeNotifications) WithTx(*gorm.DB) notification.Repository { return f }

func (f *fakeNotifications) Apply(_ context.Context, plans ...notification.BroadcastPlan) (int, error) {
	f.plans = append(f.plans, plans...)
	return len(plans), nil
}

type fixture struct {
	svc        Service
	mock       sqlmock.Sqlmock
	repo       *memPayslips
	profiles   *employeemock.MockRepository
	salaries   *fakeSalaries
	attendance *fakeAttendance
	notifs     *fakeNotifications
	outbox     *kafkamock.MockOutboxRepository
	profile    *employee.Profile
}

var hrActor = &identity.Principal{UserID: uuid.New(), Username: "hr1", Role: identity.RoleHR}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	db, mock := testutil.NewGormMock(t)

	profile := &employee.Profile{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		EmpID:     "WZG-AI-0001",
		WorkEmail: "e1@wzg.test",
		FirstName: "Ayu",
		LastName:  "Lestari",
		IsActive:  true,
	}
	f := &fixture{
		mock:       mock,
		repo:       &memPayslips{rows: map[uuid.UUID]*Payslip{}},
		profiles:   employeemock.NewMockRepository(ctrl),
		salaries:   &fakeSalaries{},
		attendance: &fakeAttendance{},
		notifs:     &fakeNotifications{},
		outbox:     kafkamock.NewMockOutboxRepository(ctrl),
		profile:    profile,
	}
	f.svc = NewService(db, f.repo, f.profiles, f.salaries, f.attendance, f.notifs, f.outbox)
	f.profiles.EXPECT().FindByID(gomock.Any(), profile.ID).Return(profile, nil).AnyTimes()
	f.profiles.EXPECT().FindByUserID(gomock.Any(), profile.UserID).Return(profile, nil).AnyTimes()
	f.outbox.EXPECT().WithTx(gomock.Any()).Return(f.outbox).AnyTimes()
	return f
}

// seedSeptember2026 gives 20 completed weekdays; the first one carries an hour of overtime.
func (f *fixture) seedSeptember2026() {
	f.salaries.salary = &employeesalary.EmployeeSalary{
		ID:        uuid.New(),
		ProfileID: f.profile.ID,
		IsActive:  true,
		Structure: &employeesalary.SalaryStructure{
			MonthlyCTC:         decimal.NewFromInt(60000),
			BasicPercent:       decimal.NewFromInt(50),
			HRAPercent:         decimal.RequireFromString("22.5"),
			OvertimeMultiplier: decimal.RequireFromString("1.25"),
		},
	}

	day := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	for len(f.attendance.rows) < 20 {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			dur := int64(attendance.RegularWorkSeconds)
			if len(f.attendance.rows) == 0 {
				dur += 3600
			}
			f.attendance.rows = append(f.attendance.rows, attendance.Attendance{
				ID:              uuid.New(),
				UserID:          f.profile.UserID,
				Date:            day,
				ClockIn:         day.Add(9 * time.Hour),
				DurationSeconds: dur,
				Status:          attendance.StatusCompleted,
			})
		}
		day = day.AddDate(0, 0, 1)
	}
	// in-progress rows are not attendance days
	f.attendance.rows = append(f.attendance.rows, attendance.Attendance{
		UserID: f.profile.UserID, Date: day, Status: attendance.StatusInProgress,
	})
}

func september() GeneratePayslipRequest {
	return GeneratePayslipRequest{Year: 2026, Month: 9}
}

func TestService_GenerateDeterministic(t *testing.T) {
	f := newFixture(t)
	f.seedSeptember2026()

	var published []kafka.OutboxEvent
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			published = append(published, e)
			return nil
		}).Times(2)

	testutil.ExpectTx(f.mock, true)
	first, err := f.svc.Generate(context.Background(), hrActor, f.profile.ID.String(), september())
	require.NoError(t, err)

	assert.Equal(t, 22, first.WorkingDays)
	assert.Equal(t, 20, first.DaysPresent)
	assert.Equal(t, int64(3600), first.OvertimeSeconds)
	assert.Equal(t, "54545.45", first.GrossAmount)
	assert.Equal(t, "378.79", first.OvertimeAmount)
	assert.Equal(t, "15200.00", first.Deductions)
	assert.Equal(t, "39724.24", first.NetAmount)
	assert.Equal(t, "303.03", first.Breakdown["hourly_rate"])
	assert.Equal(t, hrActor.UserID.String(), first.GeneratedBy)
	assert.Equal(t, "/api/payslips/2026/9/download/", first.DownloadURL)

	testutil.ExpectTx(f.mock, true)
	second, err := f.svc.Generate(context.Background(), hrActor, f.profile.ID.String(), september())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.NetAmount, second.NetAmount)
	assert.Equal(t, first.Breakdown, second.Breakdown)
	assert.Len(t, f.repo.rows, 1)

	require.Len(t, f.notifs.plans, 2)
	assert.Equal(t, notification.TypePayroll, f.notifs.plans[0].Type)
	require.Len(t, published, 2)
	assert.Equal(t, events.PayrollPayslipGeneratedTopic, published[0].Topic)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_GenerateWithDeductions(t *testing.T) {
	f := newFixture(t)
	f.seedSeptember2026()
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	req := september()
	req.Insurance = "500"
	req.ESI = "125.50"

	testutil.ExpectTx(f.mock, true)
	resp, err := f.svc.Generate(context.Background(), hrActor, f.profile.ID.String(), req)
	require.NoError(t, err)
	assert.Equal(t, "15825.50", resp.Deductions)
	assert.Equal(t, "39098.74", resp.NetAmount)
}

func TestService_GenerateRejectsFinalized(t *testing.T) {
	f := newFixture(t)
	f.seedSeptember2026()
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	testutil.ExpectTx(f.mock, true)
	resp, err := f.svc.Generate(context.Background(), hrActor, f.profile.ID.String(), september())
	require.NoError(t, err)

	testutil.ExpectTx(f.mock, true)
	_, err = f.svc.Finalize(context.Background(), hrActor, resp.ID)
	require.NoError(t, err)

	testutil.ExpectTx(f.mock, false)
	_, err = f.svc.Generate(context.Background(), hrActor, f.profile.ID.String(), september())
	assert.ErrorIs(t, err, payrollerrors.ErrPayslipFinalized)

	testutil.ExpectTx(f.mock, false)
	_, err = f.svc.Finalize(context.Background(), hrActor, resp.ID)
	assert.ErrorIs(t, err, payrollerrors.ErrAlreadyFinalized)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_GenerateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   *identity.Principal
		profile string
		req     GeneratePayslipRequest
		wantErr error
	}{
		{"anonymous", nil, f.profile.ID.String(), september(), identity.ErrUnauthenticated},
		{"not hr", &identity.Principal{UserID: uuid.New(), Role: identity.RoleEmployee}, f.profile.ID.String(), september(), identity.ErrForbidden},
		{"bad profile id", hrActor, "x", september(), payrollerrors.ErrInvalidProfileID},
		{"bad month", hrActor, f.profile.ID.String(), GeneratePayslipRequest{Year: 2026, Month: 13}, payrollerrors.ErrInvalidPeriod},
		{"negative insurance", hrActor, f.profile.ID.String(), GeneratePayslipRequest{Year: 2026, Month: 9, Insurance: "-1"}, payrollerrors.ErrInvalidMoneyValue},
		{"no active salary", hrActor, f.profile.ID.String(), september(), employeesalaryerrors.ErrNoActiveSalary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Generate(ctx, tt.actor, tt.profile, tt.req)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
	assert.Empty(t, f.repo.rows)
}

func TestService_MyPayslipsAndDownload(t *testing.T) {
	f := newFixture(t)
	f.seedSeptember2026()
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	testutil.ExpectTx(f.mock, true)
	_, err := f.svc.Generate(context.Background(), hrActor, f.profile.ID.String(), september())
	require.NoError(t, err)

	owner := &identity.Principal{UserID: f.profile.UserID, Role: identity.RoleEmployee}
	items, total, err := f.svc.MyPayslips(context.Background(), owner, 1, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "WZG-AI-0001", items[0].EmpID)

	file, err := f.svc.Download(context.Background(), owner, 2026, 9)
	require.NoError(t, err)
	assert.Equal(t, "WZG-AI-0001-2026-9.pdf", file.Filename)
	assert.True(t, len(file.Content) > 4)
	assert.Equal(t, "%PDF", string(file.Content[:4]))

	_, err = f.svc.Download(context.Background(), owner, 2026, 8)
	assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotFound)
}

func TestService_ListForPeriod(t *testing.T) {
	f := newFixture(t)
	f.seedSeptember2026()
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	testutil.ExpectTx(f.mock, true)
	_, err := f.svc.Generate(context.Background(), hrActor, f.profile.ID.String(), september())
	require.NoError(t, err)

	items, total, err := f.svc.ListForPeriod(context.Background(), hrActor, ListPayslipsFilter{Year: 2026, Month: 9}, 1, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "39724.24", items[0].NetAmount)

	_, _, err = f.svc.ListForPeriod(context.Background(), &identity.Principal{UserID: uuid.New(), Role: identity.RoleTL}, ListPayslipsFilter{Year: 2026, Month: 9}, 1, 25)
	assert.ErrorIs(t, err, identity.ErrForbidden)
}
