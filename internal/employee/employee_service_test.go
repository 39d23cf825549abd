package employee_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"
	employeeMock "go-hrm/internal/employee/mock"
	"go-hrm/internal/events"
	"go-hrm/internal/identity"
	"go-hrm/internal/messaging/kafka"
	kafkaMock "go-hrm/internal/messaging/kafka/mock"
	"go-hrm/internal/shared/counter"
	counterMock "go-hrm/internal/shared/counter/mock"
	"go-hrm/internal/shared/testutil"
	"go-hrm/internal/user"
	usererrors "go-hrm/internal/user/errors"
	userMock "go-hrm/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const domain = "wealthzonegroupai.com"

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	users     *userMock.MockRepository
	counter   *counterMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock := testutil.NewGormMock(t)
	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	users := userMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	users.EXPECT().WithTx(gomock.Any()).Return(users).AnyTimes()
	counterRepo.EXPECT().WithTx(gomock.Any()).Return(counterRepo).AnyTimes()
	outboxRepo.EXPECT().WithTx(gomock.Any()).Return(outboxRepo).AnyTimes()

	svc := employee.NewService(db, repo, users, counterRepo, outboxRepo, rdb, domain)

	return &serviceDeps{
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		users:     users,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("success - generated username, email and emp_id", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, true)

		deps.users.EXPECT().UsernameExists(gomock.Any(), "jane.doe").Return(true, nil)
		deps.users.EXPECT().UsernameExists(gomock.Any(), "jane.doe1").Return(false, nil)
		deps.users.EXPECT().EmailExists(gomock.Any(), "jane.doe@"+domain).Return(false, nil)
		deps.repo.EXPECT().WorkEmailExists(gomock.Any(), "jane.doe@"+domain).Return(false, nil)

		deps.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, "jane.doe1", u.Username)
			assert.Equal(t, "Jane", u.FirstName)
			assert.False(t, u.HasUsablePassword())
			return nil
		})
		deps.counter.EXPECT().NextValue(gomock.Any(), counter.EmployeeIDSequence).Return(int64(7), nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *employee.Profile) error {
			assert.Equal(t, "WZG-AI-0007", p.EmpID)
			assert.Equal(t, employee.DepartmentPython, p.Department)
			return nil
		})
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)

			var payload events.EmployeeCreatedEvent
			assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
			assert.Equal(t, "WZG-AI-0007", payload.EmpID)
			return nil
		})
		deps.redismock.ExpectDel(employee.TeamLeadOptionsKey).SetVal(1)

		resp, err := deps.service.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			FirstName:  "jane",
			LastName:   "doe",
			Department: "python",
		})

		assert.NoError(t, err)
		assert.Equal(t, "jane.doe1", resp.Username)
		assert.Equal(t, "jane.doe@"+domain, resp.Email)
		assert.Equal(t, "WZG-AI-0007", resp.Profile.EmpID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("hr role gets no profile", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, true)

		deps.users.EXPECT().UsernameExists(gomock.Any(), "hr.admin").Return(false, nil)
		deps.users.EXPECT().EmailExists(gomock.Any(), "hr@example.com").Return(false, nil)
		deps.repo.EXPECT().WorkEmailExists(gomock.Any(), "hr@example.com").Return(false, nil)
		deps.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(employee.TeamLeadOptionsKey).SetVal(0)

		resp, err := deps.service.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			FirstName: "Hr",
			LastName:  "Admin",
			Email:     "HR@example.com",
			Role:      "hr",
		})

		assert.NoError(t, err)
		assert.Equal(t, "hr", resp.Role)
		assert.Nil(t, resp.Profile)
	})

	t.Run("explicit email already taken", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)

		deps.users.EXPECT().UsernameExists(gomock.Any(), gomock.Any()).Return(false, nil)
		deps.users.EXPECT().EmailExists(gomock.Any(), "taken@example.com").Return(true, nil)

		_, err := deps.service.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			FirstName: "Jane",
			Email:     "taken@example.com",
		})

		assert.ErrorIs(t, err, usererrors.ErrEmailTaken)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unique race on username", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)

		deps.users.EXPECT().UsernameExists(gomock.Any(), gomock.Any()).Return(false, nil)
		deps.users.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().WorkEmailExists(gomock.Any(), gomock.Any()).Return(false, nil)
		deps.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_username"})

		_, err := deps.service.CreateEmployee(ctx, employee.CreateEmployeeRequest{FirstName: "Jane", LastName: "Doe"})

		assert.ErrorIs(t, err, usererrors.ErrUsernameTaken)
	})

	t.Run("invalid department", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.CreateEmployee(ctx, employee.CreateEmployeeRequest{FirstName: "Jane", Department: "SALES"})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDepartment)
	})

	t.Run("team lead must have tl role", func(t *testing.T) {
		deps := setupServiceTest(t)
		leadID := uuid.New()
		deps.users.EXPECT().FindByID(gomock.Any(), leadID).Return(&user.User{ID: leadID, Role: identity.RoleEmployee, IsActive: true}, nil)

		_, err := deps.service.CreateEmployee(ctx, employee.CreateEmployeeRequest{FirstName: "Jane", TeamLeadID: leadID.String()})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidTeamLead)
	})
}

func TestEmployeeService_Signup(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	t.Run("mismatched passwords", func(t *testing.T) {
		_, err := deps.service.Signup(ctx, employee.SignupRequest{FirstName: "A", Password: "Str0ng!pass", Password2: "other"})
		assert.ErrorIs(t, err, usererrors.ErrPasswordMismatch)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := deps.service.Signup(ctx, employee.SignupRequest{FirstName: "A", Password: "short", Password2: "short"})
		assert.Error(t, err)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	profileID := uuid.New()

	newProfile := func() *employee.Profile {
		return &employee.Profile{ID: profileID, UserID: ownerID, EmpID: "WZG-AI-0001", FirstName: "Jane", Role: identity.RoleEmployee}
	}
	owner := &identity.Principal{UserID: ownerID, Role: identity.RoleEmployee}
	hr := &identity.Principal{UserID: uuid.New(), Role: identity.RoleHR}
	phone := "9999999999"

	t.Run("owner updates contact fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, true)

		deps.repo.EXPECT().FindByID(gomock.Any(), profileID).Return(newProfile(), nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(employee.TeamLeadOptionsKey).SetVal(0)

		resp, err := deps.service.Update(ctx, owner, profileID.String(), employee.UpdateEmployeeRequest{PhoneNumber: &phone})

		assert.NoError(t, err)
		assert.Equal(t, phone, resp.PhoneNumber)
	})

	t.Run("owner cannot touch bank fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		bank := "HDFC"
		deps.repo.EXPECT().FindByID(gomock.Any(), profileID).Return(newProfile(), nil)

		_, err := deps.service.Update(ctx, owner, profileID.String(), employee.UpdateEmployeeRequest{BankName: &bank})

		assert.ErrorIs(t, err, employeeerrors.ErrHRFieldsOnly)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		stranger := &identity.Principal{UserID: uuid.New(), Role: identity.RoleTL}
		deps.repo.EXPECT().FindByID(gomock.Any(), profileID).Return(newProfile(), nil)

		_, err := deps.service.GetByID(ctx, stranger, profileID.String())

		assert.ErrorIs(t, err, identity.ErrForbidden)
	})

	t.Run("hr changes role on user and profile", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, true)
		role := "Team_Lead"

		deps.repo.EXPECT().FindByID(gomock.Any(), profileID).Return(newProfile(), nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		deps.users.EXPECT().UpdateRole(gomock.Any(), ownerID, identity.RoleTL).Return(nil)
		deps.redismock.ExpectDel(employee.TeamLeadOptionsKey).SetVal(1)

		resp, err := deps.service.Update(ctx, hr, profileID.String(), employee.UpdateEmployeeRequest{Role: &role})

		assert.NoError(t, err)
		assert.Equal(t, "tl", resp.Role)
	})
}

func TestEmployeeService_GetTeamLeadOptions(t *testing.T) {
	ctx := context.Background()
	expected := []employee.OptionResponse{{UserID: uuid.NewString(), EmpID: "WZG-AI-0002", FullName: "Tara Lead"}}

	t.Run("served from cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		raw, _ := json.Marshal(expected)
		deps.redismock.ExpectGet(employee.TeamLeadOptionsKey).SetVal(string(raw))

		resp, err := deps.service.GetTeamLeadOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		leadID, _ := uuid.Parse(expected[0].UserID)

		deps.redismock.ExpectGet(employee.TeamLeadOptionsKey).RedisNil()
		deps.repo.EXPECT().ListActiveTeamLeads(gomock.Any(), "").Return([]employee.Profile{
			{UserID: leadID, EmpID: "WZG-AI-0002", FirstName: "Tara", LastName: "Lead"},
		}, nil)
		raw, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(employee.TeamLeadOptionsKey, raw, time.Hour).SetVal("OK")

		resp, err := deps.service.GetTeamLeadOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}
