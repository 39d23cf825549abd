package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/auth/token"
	"go-hrm/internal/employee"
	"go-hrm/internal/identity"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var redirects = map[identity.Role]string{
	identity.RoleManagement: "/dashboard/management",
	identity.RoleHR:         "/dashboard/hr",
	identity.RoleTL:         "/dashboard/tl",
	identity.RoleEmployee:   "/dashboard/employee",
	identity.RoleIntern:     "/dashboard/intern",
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, actor *identity.Principal) (MeResponse, error)
}

type service struct {
	repo     Repository
	users    user.Repository
	profiles employee.Repository
	tokens   *token.Manager
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, users user.Repository, profiles employee.Repository, tokens *token.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:     repo,
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	identifier := strings.TrimSpace(req.Username)
	u, err := s.users.FindByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("login rejected", zap.String("reason", "unknown user"))
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	// akun dari HR belum punya password sampai reset selesai
	if !u.HasUsablePassword() || bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		s.logger.Warn("login rejected", zap.String("user_id", u.ID.String()), zap.String("reason", "bad password"))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		s.logger.Warn("login rejected", zap.String("user_id", u.ID.String()), zap.String("reason", "inactive"))
		return LoginResponse{}, autherrors.ErrUserInactive
	}

	pair, err := s.tokens.Issue(u.Principal())
	if err != nil {
		return LoginResponse{}, err
	}
	if err := s.users.UpdateLastLogin(ctx, u.ID, s.now().UTC()); err != nil {
		s.logger.Warn("update last login failed", zap.String("user_id", u.ID.String()), zap.Error(err))
	}

	s.logger.Info("user logged in", zap.String("user_id", u.ID.String()), zap.String("role", string(u.Role)))

	redirect, ok := redirects[u.Role]
	if !ok {
		redirect = "/"
	}
	return LoginResponse{
		Access:      pair.Access,
		Refresh:     pair.Refresh,
		Role:        strings.ToLower(string(u.Role)),
		Username:    u.Username,
		RedirectURL: redirect,
	}, nil
}

// Refresh rotates the pair. The presented refresh token is revoked for the
// rest of its lifetime; only the request that wins the revocation gets a new
// pair.
func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenResponse, error) {
	claims, err := s.verifyRefresh(ctx, refreshToken)
	if err != nil {
		return TokenResponse{}, err
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenResponse{}, autherrors.ErrInvalidRefreshToken
		}
		return TokenResponse{}, err
	}
	if !u.IsActive {
		return TokenResponse{}, autherrors.ErrUserInactive
	}

	if err := s.revoke(ctx, claims); err != nil {
		return TokenResponse{}, err
	}
	pair, err := s.tokens.Issue(u.Principal())
	if err != nil {
		return TokenResponse{}, err
	}

	s.logger.Debug("refresh token rotated", zap.String("user_id", u.ID.String()))
	return TokenResponse{Access: pair.Access, Refresh: pair.Refresh}, nil
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.verifyRefresh(ctx, refreshToken)
	if err != nil {
		return err
	}
	if err := s.revoke(ctx, claims); err != nil {
		return err
	}
	s.logger.Info("user logged out", zap.String("user_id", claims.UserID))
	return nil
}

func (s *service) Me(ctx context.Context, actor *identity.Principal) (MeResponse, error) {
	if actor == nil {
		return MeResponse{}, identity.ErrUnauthenticated
	}
	u, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeResponse{}, identity.ErrUnauthenticated
		}
		return MeResponse{}, err
	}

	resp := MeResponse{
		UserID:   u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName(),
		Role:     string(u.Role),
	}
	if !u.Role.HasProfile() {
		return resp, nil
	}

	p, err := s.profiles.FindByUserID(ctx, u.ID)
	switch {
	case err == nil:
		resp.Profile = &ProfileSummary{
			ID:          p.ID.String(),
			EmpID:       p.EmpID,
			FullName:    p.FullName(),
			WorkEmail:   p.WorkEmail,
			Department:  p.Department,
			Designation: p.Designation,
		}
		if p.TeamLeadID != nil {
			resp.Profile.TeamLeadID = p.TeamLeadID.String()
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return MeResponse{}, err
	}
	return resp, nil
}

func (s *service) verifyRefresh(ctx context.Context, raw string) (*token.Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperror.RequiredField("refresh")
	}
	claims, err := s.tokens.Parse(raw, token.TypeRefresh)
	if err != nil {
		if errors.Is(err, autherrors.ErrTokenExpired) {
			return nil, err
		}
		return nil, autherrors.ErrInvalidRefreshToken
	}
	revoked, err := s.repo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, apperror.Dependency(err, "token store unavailable")
	}
	if revoked {
		return nil, autherrors.ErrInvalidRefreshToken
	}
	return claims, nil
}

func (s *service) revoke(ctx context.Context, claims *token.Claims) error {
	err := s.repo.Revoke(ctx, claims.ID, claims.Remaining(s.now()))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrAlreadyRevoked):
		s.logger.Warn("refresh token reused", zap.String("user_id", claims.UserID))
		return autherrors.ErrInvalidRefreshToken
	}
	return apperror.Dependency(err, "token store unavailable")
}
