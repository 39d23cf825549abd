package leave

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-hrm/internal/employee"
	employeemock "go-hrm/internal/employee/mock"
	"go-hrm/internal/events"
	"go-hrm/internal/identity"
	leaveerrors "go-hrm/internal/leave/errors"
	"go-hrm/internal/messaging/kafka"
	kafkamock "go-hrm/internal/messaging/kafka/mock"
	"go-hrm/internal/notification"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/testutil"
	"go-hrm/internal/user"
	usermock "go-hrm/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type memRepo struct {
	leaves   map[uuid.UUID]*LeaveRequest
	balances map[string]*LeaveBalance
}

func newMemRepo() *memRepo {
	return &memRepo{leaves: map[uuid.UUID]*LeaveRequest{}, balances: map[string]*LeaveBalance{}}
}

func balanceKey(profileID uuid.UUID, leaveType string) string {
	return profileID.String() + "/" + leaveType
}

func overlaps(l *LeaveRequest, start, end time.Time) bool {
	return !(l.EndDate.Before(start) || l.StartDate.After(end))
}

func (m *memRepo) WithTx(*gorm.DB) Repository { return m }

func (m *memRepo) Create(_ context.Context, l *LeaveRequest) error {
	cp := *l
	m.leaves[l.ID] = &cp
	return nil
}

func (m *memRepo) Update(ctx context.Context, l *LeaveRequest) error {
	return m.Create(ctx, l)
}

func (m *memRepo) FindByID(_ context.Context, id uuid.UUID, _ bool) (*LeaveRequest, error) {
	l, ok := m.leaves[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *memRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ int) ([]LeaveRequest, int64, error) {
	var out []LeaveRequest
	for _, l := range m.leaves {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memRepo) ListPendingForTL(_ context.Context, tlID uuid.UUID) ([]LeaveRequest, error) {
	var out []LeaveRequest
	for _, l := range m.leaves {
		if l.TLID != nil && *l.TLID == tlID && l.Status == StatusApplied {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (m *memRepo) ListByStatus(context.Context, string, int, int) ([]LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (m *memRepo) HasOverlappingPeriod(_ context.Context, profileID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	for _, l := range m.leaves {
		if l.ProfileID != profileID || (excludeID != nil && l.ID == *excludeID) {
			continue
		}
		if l.Status == StatusTLRejected || l.Status == StatusHRRejected || l.Status == StatusCancelled {
			continue
		}
		if overlaps(l, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) UsersOnLeave(_ context.Context, userIDs []uuid.UUID, start, end time.Time) ([]uuid.UUID, error) {
	want := map[uuid.UUID]bool{}
	for _, id := range userIDs {
		want[id] = true
	}
	var out []uuid.UUID
	for _, l := range m.leaves {
		if want[l.UserID] && l.Status == StatusHRApproved && overlaps(l, start, end) {
			out = append(out, l.UserID)
			delete(want, l.UserID)
		}
	}
	return out, nil
}

func (m *memRepo) FindBalance(_ context.Context, profileID uuid.UUID, leaveType string, _ bool) (*LeaveBalance, error) {
	b, ok := m.balances[balanceKey(profileID, leaveType)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memRepo) ListBalances(_ context.Context, profileID uuid.UUID) ([]LeaveBalance, error) {
	var out []LeaveBalance
	for _, b := range m.balances {
		if b.ProfileID == profileID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memRepo) SaveBalance(_ context.Context, b *LeaveBalance) error {
	cp := *b
	m.balances[balanceKey(b.ProfileID, b.LeaveType)] = &cp
	return nil
}

func (m *memRepo) SeedBalances(_ context.Context, rows []LeaveBalance) (int64, error) {
	var n int64
	for _, b := range rows {
		key := balanceKey(b.ProfileID, b.LeaveType)
		if _, ok := m.balances[key]; ok {
			continue
		}
		cp := b
		m.balances[key] = &cp
		n++
	}
	return n, nil
}

// fakeNotifications records every applied plan.
type fakeNotifications struct {
	notification.Repository
	plans []notification.BroadcastPlan
}

func (f *fakeNotifications) WithTx(*gorm.DB) notification.Repository { return f }

func (f *fakeNotifications) Apply(_ context.Context, plans ...notification.BroadcastPlan) (int, error) {
	n := 0
	for _, p := range plans {
		f.plans = append(f.plans, p)
		n += len(p.Recipients)
	}
	return n, nil
}

func (f *fakeNotifications) recipients() []uuid.UUID {
	var out []uuid.UUID
	for _, p := range f.plans {
		out = append(out, p.Recipients...)
	}
	return out
}

type fixture struct {
	svc      Service
	mock     sqlmock.Sqlmock
	repo     *memRepo
	profiles *employeemock.MockRepository
	users    *usermock.MockRepository
	outbox   *kafkamock.MockOutboxRepository
	notifs   *fakeNotifications
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	db, mock := testutil.NewGormMock(t)
	f := &fixture{
		mock:     mock,
		repo:     newMemRepo(),
		profiles: employeemock.NewMockRepository(ctrl),
		users:    usermock.NewMockRepository(ctrl),
		outbox:   kafkamock.NewMockOutboxRepository(ctrl),
		notifs:   &fakeNotifications{},
	}
	f.svc = NewService(db, f.repo, f.profiles, f.users, f.notifs, f.outbox, map[string]int{TypeCasual: 12, TypeSick: 6})
	f.profiles.EXPECT().WithTx(gomock.Any()).Return(f.profiles).AnyTimes()
	f.users.EXPECT().WithTx(gomock.Any()).Return(f.users).AnyTimes()
	f.outbox.EXPECT().WithTx(gomock.Any()).Return(f.outbox).AnyTimes()
	return f
}

func principal(role identity.Role) *identity.Principal {
	return &identity.Principal{UserID: uuid.New(), Username: string(role), Role: role}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	return apperror.ToHTTP(err).Status
}

func TestService_TwoStageApproval(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	emp := principal(identity.RoleEmployee)
	tl := principal(identity.RoleTL)
	hr := principal(identity.RoleHR)

	profile := &employee.Profile{
		ID:         uuid.New(),
		UserID:     emp.UserID,
		FirstName:  "Asha",
		WorkEmail:  "asha@wealthzonegroupai.com",
		Department: employee.DepartmentPython,
		TeamLeadID: &tl.UserID,
	}
	f.repo.balances[balanceKey(profile.ID, TypeCasual)] = &LeaveBalance{
		ID: uuid.New(), ProfileID: profile.ID, LeaveType: TypeCasual, Entitled: 5,
	}

	f.profiles.EXPECT().FindByUserID(gomock.Any(), emp.UserID).Return(profile, nil).AnyTimes()
	f.profiles.EXPECT().FindByID(gomock.Any(), profile.ID).Return(profile, nil).AnyTimes()
	f.users.EXPECT().FindByID(gomock.Any(), tl.UserID).
		Return(&user.User{ID: tl.UserID, Role: identity.RoleTL, IsActive: true}, nil).AnyTimes()
	f.users.EXPECT().FindActiveByRoles(gomock.Any(), identity.HRRoles).
		Return([]user.User{{ID: hr.UserID, Role: identity.RoleHR, IsActive: true}}, nil).AnyTimes()

	var queued []kafka.OutboxEvent
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			queued = append(queued, e)
			return nil
		}).AnyTimes()

	// first request: 3 days, fully approved
	testutil.ExpectTx(f.mock, true)
	first, err := f.svc.Apply(ctx, emp, ApplyLeaveRequest{LeaveType: "casual", StartDate: "2025-02-03", EndDate: "2025-02-05"})
	assert.NoError(t, err)
	assert.Equal(t, StatusApplied, first.Status)
	assert.Equal(t, 3, first.Days)
	if assert.NotNil(t, first.TLID) {
		assert.Equal(t, tl.UserID.String(), *first.TLID)
	}
	assert.Equal(t, []uuid.UUID{tl.UserID}, f.notifs.recipients())

	testutil.ExpectTx(f.mock, false)
	_, err = f.svc.HRAction(ctx, hr, first.ID, ActionRequest{Action: "approve"})
	assert.ErrorIs(t, err, leaveerrors.ErrTLApprovalRequired)

	testutil.ExpectTx(f.mock, true)
	resp, err := f.svc.TLAction(ctx, tl, first.ID, ActionRequest{Action: "approve", Remarks: "ok"})
	assert.NoError(t, err)
	assert.Equal(t, StatusTLApproved, resp.Status)
	assert.Equal(t, "ok", resp.TLRemarks)

	testutil.ExpectTx(f.mock, true)
	resp, err = f.svc.HRAction(ctx, hr, first.ID, ActionRequest{Action: "approve"})
	assert.NoError(t, err)
	assert.Equal(t, StatusHRApproved, resp.Status)
	assert.Equal(t, 3, f.repo.balances[balanceKey(profile.ID, TypeCasual)].Used)
	if assert.Len(t, queued, 1) {
		assert.Equal(t, events.LeaveDecidedTopic, queued[0].Topic)
	}

	// second request: another 3 days would exceed the entitlement
	testutil.ExpectTx(f.mock, true)
	second, err := f.svc.Apply(ctx, emp, ApplyLeaveRequest{LeaveType: TypeCasual, StartDate: "2025-03-03", EndDate: "2025-03-05"})
	assert.NoError(t, err)

	testutil.ExpectTx(f.mock, true)
	_, err = f.svc.TLAction(ctx, tl, second.ID, ActionRequest{Action: "approve"})
	assert.NoError(t, err)

	testutil.ExpectTx(f.mock, false)
	_, err = f.svc.HRAction(ctx, hr, second.ID, ActionRequest{Action: "approve"})
	assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)

	sid, _ := uuid.Parse(second.ID)
	assert.Equal(t, StatusTLApproved, f.repo.leaves[sid].Status)
	assert.Equal(t, 3, f.repo.balances[balanceKey(profile.ID, TypeCasual)].Used)
	assert.Len(t, queued, 1)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_ApplyRouting(t *testing.T) {
	ctx := context.Background()

	t.Run("team lead applicant goes to hr", func(t *testing.T) {
		f := newFixture(t)
		tl := principal(identity.RoleTL)
		hrUser := uuid.New()
		profile := &employee.Profile{ID: uuid.New(), UserID: tl.UserID, FirstName: "Ravi"}

		f.profiles.EXPECT().FindByUserID(gomock.Any(), tl.UserID).Return(profile, nil)
		f.users.EXPECT().FindActiveByRoles(gomock.Any(), identity.HRRoles).Return([]user.User{{ID: hrUser}}, nil)

		testutil.ExpectTx(f.mock, true)
		resp, err := f.svc.Apply(ctx, tl, ApplyLeaveRequest{LeaveType: TypeSick, StartDate: "2025-02-10", EndDate: "2025-02-10"})
		assert.NoError(t, err)
		assert.Equal(t, StatusApplied, resp.Status)
		assert.Nil(t, resp.TLID)
		assert.Equal(t, []uuid.UUID{hrUser}, f.notifs.recipients())
	})

	t.Run("inactive team lead goes to hr", func(t *testing.T) {
		f := newFixture(t)
		emp := principal(identity.RoleEmployee)
		tlID := uuid.New()
		profile := &employee.Profile{ID: uuid.New(), UserID: emp.UserID, TeamLeadID: &tlID}

		f.profiles.EXPECT().FindByUserID(gomock.Any(), emp.UserID).Return(profile, nil)
		f.users.EXPECT().FindByID(gomock.Any(), tlID).Return(&user.User{ID: tlID, Role: identity.RoleTL, IsActive: false}, nil)
		f.users.EXPECT().FindActiveByRoles(gomock.Any(), identity.HRRoles).Return(nil, nil)

		testutil.ExpectTx(f.mock, true)
		resp, err := f.svc.Apply(ctx, emp, ApplyLeaveRequest{LeaveType: TypeCasual, StartDate: "2025-02-10", EndDate: "2025-02-11"})
		assert.NoError(t, err)
		assert.Nil(t, resp.TLID)
	})

	t.Run("absent team lead is replaced within the department", func(t *testing.T) {
		f := newFixture(t)
		emp := principal(identity.RoleEmployee)
		primary := uuid.New()
		away := uuid.New()
		free := uuid.New()
		profile := &employee.Profile{
			ID: uuid.New(), UserID: emp.UserID, TeamLeadID: &primary, Department: employee.DepartmentQA,
		}
		for _, id := range []uuid.UUID{primary, away} {
			f.repo.leaves[uuid.New()] = &LeaveRequest{
				UserID:    id,
				ProfileID: uuid.New(),
				Status:    StatusHRApproved,
				StartDate: time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
			}
		}

		f.profiles.EXPECT().FindByUserID(gomock.Any(), emp.UserID).Return(profile, nil)
		f.users.EXPECT().FindByID(gomock.Any(), primary).Return(&user.User{ID: primary, Role: identity.RoleTL, IsActive: true}, nil)
		f.profiles.EXPECT().ListActiveTeamLeads(gomock.Any(), employee.DepartmentQA).Return([]employee.Profile{
			{UserID: primary}, {UserID: away}, {UserID: free},
		}, nil)

		testutil.ExpectTx(f.mock, true)
		resp, err := f.svc.Apply(ctx, emp, ApplyLeaveRequest{LeaveType: TypeCasual, StartDate: "2025-02-10", EndDate: "2025-02-11"})
		assert.NoError(t, err)
		if assert.NotNil(t, resp.TLID) {
			assert.Equal(t, free.String(), *resp.TLID)
		}
	})

	t.Run("draft is not routed", func(t *testing.T) {
		f := newFixture(t)
		emp := principal(identity.RoleEmployee)
		profile := &employee.Profile{ID: uuid.New(), UserID: emp.UserID}
		no := false

		f.profiles.EXPECT().FindByUserID(gomock.Any(), emp.UserID).Return(profile, nil)

		testutil.ExpectTx(f.mock, true)
		resp, err := f.svc.Apply(ctx, emp, ApplyLeaveRequest{LeaveType: TypeCasual, StartDate: "2025-02-10", EndDate: "2025-02-10", Submit: &no})
		assert.NoError(t, err)
		assert.Equal(t, StatusDraft, resp.Status)
		assert.Empty(t, f.notifs.plans)
	})
}

func TestService_ApplyValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := principal(identity.RoleEmployee)

	_, err := f.svc.Apply(ctx, emp, ApplyLeaveRequest{LeaveType: "VACATION", StartDate: "2025-02-10", EndDate: "2025-02-10"})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveType)

	_, err = f.svc.Apply(ctx, emp, ApplyLeaveRequest{LeaveType: TypeCasual, StartDate: "10-02-2025", EndDate: "2025-02-10"})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)

	_, err = f.svc.Apply(ctx, emp, ApplyLeaveRequest{LeaveType: TypeCasual, StartDate: "2025-02-11", EndDate: "2025-02-10"})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)

	profile := &employee.Profile{ID: uuid.New(), UserID: emp.UserID}
	f.repo.leaves[uuid.New()] = &LeaveRequest{
		ProfileID: profile.ID,
		UserID:    emp.UserID,
		Status:    StatusApplied,
		StartDate: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC),
	}
	f.profiles.EXPECT().FindByUserID(gomock.Any(), emp.UserID).Return(profile, nil)

	testutil.ExpectTx(f.mock, false)
	_, err = f.svc.Apply(ctx, emp, ApplyLeaveRequest{LeaveType: TypeCasual, StartDate: "2025-02-12", EndDate: "2025-02-13"})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
}

func TestService_TLActionRequiresAssignedLead(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assigned := uuid.New()
	l := &LeaveRequest{ID: uuid.New(), UserID: uuid.New(), Status: StatusApplied, TLID: &assigned}
	f.repo.leaves[l.ID] = l

	testutil.ExpectTx(f.mock, false)
	_, err := f.svc.TLAction(ctx, principal(identity.RoleTL), l.ID.String(), ActionRequest{Action: "approve"})
	assert.ErrorIs(t, err, leaveerrors.ErrNotYourTeamMember)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	_, err = f.svc.TLAction(ctx, principal(identity.RoleEmployee), l.ID.String(), ActionRequest{Action: "approve"})
	assert.ErrorIs(t, err, identity.ErrForbidden)
}

func TestService_Cancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := principal(identity.RoleEmployee)
	tlID := uuid.New()

	pending := &LeaveRequest{ID: uuid.New(), UserID: owner.UserID, Status: StatusApplied, TLID: &tlID}
	decided := &LeaveRequest{ID: uuid.New(), UserID: owner.UserID, Status: StatusHRApproved}
	f.repo.leaves[pending.ID] = pending
	f.repo.leaves[decided.ID] = decided

	testutil.ExpectTx(f.mock, false)
	_, err := f.svc.Cancel(ctx, principal(identity.RoleEmployee), pending.ID.String())
	assert.ErrorIs(t, err, leaveerrors.ErrNotLeaveOwner)

	testutil.ExpectTx(f.mock, true)
	resp, err := f.svc.Cancel(ctx, owner, pending.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, StatusCancelled, resp.Status)
	assert.Equal(t, []uuid.UUID{tlID}, f.notifs.recipients())

	testutil.ExpectTx(f.mock, false)
	_, err = f.svc.Cancel(ctx, owner, decided.ID.String())
	assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)
}

func TestService_HRApproveWithoutBalanceBook(t *testing.T) {
	ctx := context.Background()
	hr := principal(identity.RoleHR)

	direct := func(f *fixture, profile *employee.Profile, leaveType string, start, end time.Time) *LeaveRequest {
		l := &LeaveRequest{
			ID:        uuid.New(),
			ProfileID: profile.ID,
			UserID:    profile.UserID,
			LeaveType: leaveType,
			StartDate: start,
			EndDate:   end,
			Days:      WholeDays(start, end),
			Status:    StatusApplied,
		}
		f.repo.leaves[l.ID] = l
		return l
	}
	sumApproved := func(f *fixture, profileID uuid.UUID, leaveType string) int {
		total := 0
		for _, l := range f.repo.leaves {
			if l.ProfileID == profileID && l.LeaveType == leaveType && l.Status == StatusHRApproved {
				total += l.Days
			}
		}
		return total
	}

	t.Run("request above the default entitlement is refused", func(t *testing.T) {
		f := newFixture(t)
		profile := &employee.Profile{ID: uuid.New(), UserID: uuid.New(), FirstName: "Nina"}
		l := direct(f, profile, TypeCasual, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC))

		testutil.ExpectTx(f.mock, false)
		_, err := f.svc.HRAction(ctx, hr, l.ID.String(), ActionRequest{Action: "approve"})
		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
		assert.Equal(t, StatusApplied, f.repo.leaves[l.ID].Status)

		// the lifecycle consumer seeding later still sees a consistent book
		_, err = f.svc.SeedDefaultBalances(ctx, profile.ID, map[string]int{TypeCasual: 12})
		assert.NoError(t, err)
		b := f.repo.balances[balanceKey(profile.ID, TypeCasual)]
		assert.Equal(t, 12, b.Entitled)
		assert.Equal(t, sumApproved(f, profile.ID, TypeCasual), b.Used)
	})

	t.Run("book is opened from defaults and debited", func(t *testing.T) {
		f := newFixture(t)
		profile := &employee.Profile{ID: uuid.New(), UserID: uuid.New(), FirstName: "Nina", WorkEmail: "nina@wealthzonegroupai.com"}
		f.profiles.EXPECT().FindByID(gomock.Any(), profile.ID).Return(profile, nil)
		f.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		l := direct(f, profile, TypeCasual, time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC))

		testutil.ExpectTx(f.mock, true)
		resp, err := f.svc.HRAction(ctx, hr, l.ID.String(), ActionRequest{Action: "approve"})
		assert.NoError(t, err)
		assert.Equal(t, StatusHRApproved, resp.Status)

		n, err := f.svc.SeedDefaultBalances(ctx, profile.ID, map[string]int{TypeCasual: 12, TypeSick: 6})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)

		b := f.repo.balances[balanceKey(profile.ID, TypeCasual)]
		assert.Equal(t, 12, b.Entitled)
		assert.Equal(t, 5, b.Used)
		assert.Equal(t, sumApproved(f, profile.ID, TypeCasual), b.Used)
	})

	t.Run("type without a default book is refused", func(t *testing.T) {
		f := newFixture(t)
		profile := &employee.Profile{ID: uuid.New(), UserID: uuid.New()}
		l := direct(f, profile, TypeUnpaid, time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC), time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC))

		testutil.ExpectTx(f.mock, false)
		_, err := f.svc.HRAction(ctx, hr, l.ID.String(), ActionRequest{Action: "approve"})
		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
		_, opened := f.repo.balances[balanceKey(profile.ID, TypeUnpaid)]
		assert.False(t, opened)
	})
}

func TestService_SetEntitlement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hr := principal(identity.RoleHR)
	profileID := uuid.New()
	f.repo.balances[balanceKey(profileID, TypeSick)] = &LeaveBalance{ID: uuid.New(), ProfileID: profileID, LeaveType: TypeSick, Entitled: 6, Used: 4}
	f.profiles.EXPECT().FindByID(gomock.Any(), profileID).Return(&employee.Profile{ID: profileID}, nil).AnyTimes()

	three, ten := 3, 10

	testutil.ExpectTx(f.mock, false)
	_, err := f.svc.SetEntitlement(ctx, hr, EntitlementRequest{ProfileID: profileID.String(), LeaveType: TypeSick, Entitled: &three})
	assert.ErrorIs(t, err, leaveerrors.ErrEntitlementBelowUsed)

	testutil.ExpectTx(f.mock, true)
	resp, err := f.svc.SetEntitlement(ctx, hr, EntitlementRequest{ProfileID: profileID.String(), LeaveType: "sick", Entitled: &ten})
	assert.NoError(t, err)
	assert.Equal(t, 10, resp.Entitled)
	assert.Equal(t, 6, resp.Available)

	_, err = f.svc.SetEntitlement(ctx, principal(identity.RoleTL), EntitlementRequest{ProfileID: profileID.String(), LeaveType: TypeSick, Entitled: &ten})
	assert.ErrorIs(t, err, identity.ErrForbidden)
}

func TestService_SeedDefaultBalances(t *testing.T) {
	f := newFixture(t)
	profileID := uuid.New()
	f.repo.balances[balanceKey(profileID, TypeCasual)] = &LeaveBalance{ProfileID: profileID, LeaveType: TypeCasual, Entitled: 20, Used: 2}

	n, err := f.svc.SeedDefaultBalances(context.Background(), profileID, map[string]int{
		TypeCasual: 12, TypeSick: 6, "BOGUS": 1,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 20, f.repo.balances[balanceKey(profileID, TypeCasual)].Entitled)
	assert.Equal(t, 6, f.repo.balances[balanceKey(profileID, TypeSick)].Entitled)
}
