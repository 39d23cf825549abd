package user

import (
	"context"
	"errors"
	"time"

	"go-hrm/internal/shared/apperror"
	usererrors "go-hrm/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	GetByID(ctx context.Context, id string) (UserResponse, error)
	ToggleStatus(ctx context.Context, actorID, id string, isActive bool) error
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) ToggleStatus(ctx context.Context, actorID, id string, isActive bool) error {
	s.logger.Debug("toggle user status requested",
		zap.String("user_id", id),
		zap.Bool("is_active", isActive),
	)

	u, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !isActive && u.ID.String() == actorID {
		s.logger.Warn("user attempted self deactivation", zap.String("user_id", id))
		return usererrors.ErrCannotDeactivateSelf
	}

	if err := s.repo.SetActive(ctx, u.ID, isActive); err != nil {
		s.logger.Error("failed to update user status", zap.String("user_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("user status updated", zap.String("user_id", id), zap.Bool("is_active", isActive))
	return nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	u, err := s.find(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		s.logger.Warn("change password rejected: wrong current password", zap.String("user_id", userID))
		return usererrors.ErrWrongPassword
	}
	if req.NewPassword != req.ConfirmPassword {
		return usererrors.ErrPasswordMismatch
	}
	if problems := ValidatePassword(req.NewPassword); len(problems) > 0 {
		return apperror.Validation(map[string]string{"new_password": problems[0]})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash new password", zap.Error(err))
		return err
	}

	if err := s.repo.UpdatePassword(ctx, u.ID, string(hashed)); err != nil {
		s.logger.Error("failed to update password", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	s.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}

func (s *service) find(ctx context.Context, id string) (*User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, usererrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

const timeLayout = "2006-01-02 15:04:05"

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:         u.ID.String(),
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       string(u.Role),
		IsActive:   u.IsActive,
		DateJoined: u.DateJoined.Format(timeLayout),
	}
	if u.LastLogin != nil {
		v := u.LastLogin.In(time.UTC).Format(timeLayout)
		resp.LastLogin = &v
	}
	return resp
}
