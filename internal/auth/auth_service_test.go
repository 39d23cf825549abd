package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrm/internal/auth"
	autherrors "go-hrm/internal/auth/errors"
	authMock "go-hrm/internal/auth/mock"
	"go-hrm/internal/auth/token"
	"go-hrm/internal/employee"
	employeeMock "go-hrm/internal/employee/mock"
	"go-hrm/internal/identity"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/user"
	userMock "go-hrm/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const refreshTTL = 7 * 24 * time.Hour

type serviceDeps struct {
	service  auth.Service
	repo     *authMock.MockRepository
	users    *userMock.MockRepository
	profiles *employeeMock.MockRepository
	tokens   *token.Manager
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	d := &serviceDeps{
		repo:     authMock.NewMockRepository(ctrl),
		users:    userMock.NewMockRepository(ctrl),
		profiles: employeeMock.NewMockRepository(ctrl),
		tokens:   token.NewManager("test-secret", 50*time.Minute, refreshTTL),
	}
	d.service = auth.NewService(d.repo, d.users, d.profiles, d.tokens)
	return d
}

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func withinRefreshLifetime() gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		d, ok := x.(time.Duration)
		return ok && d > 0 && d <= refreshTTL
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	tl := &user.User{
		ID:       uuid.New(),
		Username: "jane.doe",
		Email:    "jane.doe@wealthzonegroupai.com",
		Password: hashed(t, "S3cret!pass"),
		Role:     identity.RoleTL,
		IsActive: true,
	}

	t.Run("success by username", func(t *testing.T) {
		d := setupServiceTest(t)
		d.users.EXPECT().FindByLogin(ctx, "jane.doe").Return(tl, nil)
		d.users.EXPECT().UpdateLastLogin(ctx, tl.ID, gomock.Any()).Return(nil)

		resp, err := d.service.Login(ctx, auth.LoginRequest{Username: " jane.doe ", Password: "S3cret!pass"})
		require.NoError(t, err)

		assert.Equal(t, "tl", resp.Role)
		assert.Equal(t, "jane.doe", resp.Username)
		assert.Equal(t, "/dashboard/tl", resp.RedirectURL)

		claims, err := d.tokens.Parse(resp.Access, token.TypeAccess)
		require.NoError(t, err)
		assert.Equal(t, "tl", claims.Role)
		assert.Equal(t, "jane.doe", claims.Username)
		_, err = d.tokens.Parse(resp.Refresh, token.TypeRefresh)
		assert.NoError(t, err)
	})

	t.Run("last login failure does not block login", func(t *testing.T) {
		d := setupServiceTest(t)
		d.users.EXPECT().FindByLogin(ctx, tl.Email).Return(tl, nil)
		d.users.EXPECT().UpdateLastLogin(ctx, tl.ID, gomock.Any()).Return(errors.New("db down"))

		_, err := d.service.Login(ctx, auth.LoginRequest{Username: tl.Email, Password: "S3cret!pass"})
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		d := setupServiceTest(t)
		d.users.EXPECT().FindByLogin(ctx, "jane.doe").Return(tl, nil)

		_, err := d.service.Login(ctx, auth.LoginRequest{Username: "jane.doe", Password: "nope"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		d := setupServiceTest(t)
		d.users.EXPECT().FindByLogin(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := d.service.Login(ctx, auth.LoginRequest{Username: "ghost", Password: "x"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		d := setupServiceTest(t)
		inactive := *tl
		inactive.IsActive = false
		d.users.EXPECT().FindByLogin(ctx, "jane.doe").Return(&inactive, nil)

		_, err := d.service.Login(ctx, auth.LoginRequest{Username: "jane.doe", Password: "S3cret!pass"})
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})

	t.Run("unusable password", func(t *testing.T) {
		d := setupServiceTest(t)
		provisioned := *tl
		provisioned.Password = user.UnusablePasswordPrefix + "x"
		d.users.EXPECT().FindByLogin(ctx, "jane.doe").Return(&provisioned, nil)

		_, err := d.service.Login(ctx, auth.LoginRequest{Username: "jane.doe", Password: "!x"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_RefreshRotates(t *testing.T) {
	ctx := context.Background()
	d := setupServiceTest(t)
	u := &user.User{ID: uuid.New(), Username: "emp1", Role: identity.RoleEmployee, IsActive: true}

	pair, err := d.tokens.Issue(u.Principal())
	require.NoError(t, err)
	old, err := d.tokens.Parse(pair.Refresh, token.TypeRefresh)
	require.NoError(t, err)

	gomock.InOrder(
		d.repo.EXPECT().IsRevoked(ctx, old.ID).Return(false, nil),
		d.users.EXPECT().FindByID(ctx, u.ID).Return(u, nil),
		d.repo.EXPECT().Revoke(ctx, old.ID, withinRefreshLifetime()).Return(nil),
	)

	resp, err := d.service.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)

	next, err := d.tokens.Parse(resp.Refresh, token.TypeRefresh)
	require.NoError(t, err)
	assert.NotEqual(t, old.ID, next.ID)

	// the rotated-out token is now on the blacklist
	d.repo.EXPECT().IsRevoked(ctx, old.ID).Return(true, nil)
	_, err = d.service.Refresh(ctx, pair.Refresh)
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestService_RefreshConcurrentRotation(t *testing.T) {
	ctx := context.Background()
	d := setupServiceTest(t)
	u := &user.User{ID: uuid.New(), Username: "emp1", Role: identity.RoleEmployee, IsActive: true}

	pair, err := d.tokens.Issue(u.Principal())
	require.NoError(t, err)
	old, err := d.tokens.Parse(pair.Refresh, token.TypeRefresh)
	require.NoError(t, err)

	// both requests pass the blacklist check before either revokes
	d.repo.EXPECT().IsRevoked(ctx, old.ID).Return(false, nil).Times(2)
	d.users.EXPECT().FindByID(ctx, u.ID).Return(u, nil).Times(2)
	gomock.InOrder(
		d.repo.EXPECT().Revoke(ctx, old.ID, withinRefreshLifetime()).Return(nil),
		d.repo.EXPECT().Revoke(ctx, old.ID, withinRefreshLifetime()).Return(auth.ErrAlreadyRevoked),
	)

	_, err = d.service.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)

	resp, err := d.service.Refresh(ctx, pair.Refresh)
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	assert.Empty(t, resp.Refresh)
}

func TestService_RefreshRejects(t *testing.T) {
	ctx := context.Background()

	t.Run("access token presented", func(t *testing.T) {
		d := setupServiceTest(t)
		pair, err := d.tokens.Issue(&identity.Principal{UserID: uuid.New(), Role: identity.RoleHR})
		require.NoError(t, err)

		_, err = d.service.Refresh(ctx, pair.Access)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("missing token", func(t *testing.T) {
		d := setupServiceTest(t)
		_, err := d.service.Refresh(ctx, "")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})

	t.Run("deactivated since login", func(t *testing.T) {
		d := setupServiceTest(t)
		u := &user.User{ID: uuid.New(), Role: identity.RoleEmployee, IsActive: false}
		pair, err := d.tokens.Issue(u.Principal())
		require.NoError(t, err)

		d.repo.EXPECT().IsRevoked(ctx, gomock.Any()).Return(false, nil)
		d.users.EXPECT().FindByID(ctx, u.ID).Return(u, nil)

		_, err = d.service.Refresh(ctx, pair.Refresh)
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})

	t.Run("token store down", func(t *testing.T) {
		d := setupServiceTest(t)
		pair, err := d.tokens.Issue(&identity.Principal{UserID: uuid.New(), Role: identity.RoleHR})
		require.NoError(t, err)

		d.repo.EXPECT().IsRevoked(ctx, gomock.Any()).Return(false, errors.New("connection refused"))

		_, err = d.service.Refresh(ctx, pair.Refresh)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeDependencyFailure, appErr.Code)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	d := setupServiceTest(t)
	pair, err := d.tokens.Issue(&identity.Principal{UserID: uuid.New(), Role: identity.RoleEmployee})
	require.NoError(t, err)

	d.repo.EXPECT().IsRevoked(ctx, gomock.Any()).Return(false, nil)
	d.repo.EXPECT().Revoke(ctx, gomock.Any(), withinRefreshLifetime()).Return(nil)
	assert.NoError(t, d.service.Logout(ctx, pair.Refresh))

	d.repo.EXPECT().IsRevoked(ctx, gomock.Any()).Return(true, nil)
	assert.ErrorIs(t, d.service.Logout(ctx, pair.Refresh), autherrors.ErrInvalidRefreshToken)
}

func TestService_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("employee with profile", func(t *testing.T) {
		d := setupServiceTest(t)
		lead := uuid.New()
		u := &user.User{ID: uuid.New(), Username: "emp1", Email: "emp1@wzg.test", FirstName: "Ayu", Role: identity.RoleEmployee, IsActive: true}
		d.users.EXPECT().FindByID(ctx, u.ID).Return(u, nil)
		d.profiles.EXPECT().FindByUserID(ctx, u.ID).Return(&employee.Profile{
			ID: uuid.New(), UserID: u.ID, EmpID: "WZG-AI-0001", FirstName: "Ayu", TeamLeadID: &lead,
		}, nil)

		resp, err := d.service.Me(ctx, u.Principal())
		require.NoError(t, err)
		assert.Equal(t, "employee", resp.Role)
		require.NotNil(t, resp.Profile)
		assert.Equal(t, "WZG-AI-0001", resp.Profile.EmpID)
		assert.Equal(t, lead.String(), resp.Profile.TeamLeadID)
	})

	t.Run("hr has no profile", func(t *testing.T) {
		d := setupServiceTest(t)
		u := &user.User{ID: uuid.New(), Username: "hr1", Role: identity.RoleHR, IsActive: true}
		d.users.EXPECT().FindByID(ctx, u.ID).Return(u, nil)

		resp, err := d.service.Me(ctx, u.Principal())
		require.NoError(t, err)
		assert.Nil(t, resp.Profile)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		d := setupServiceTest(t)
		_, err := d.service.Me(ctx, nil)
		assert.ErrorIs(t, err, identity.ErrUnauthenticated)
	})
}
