package passwordreset

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"go-hrm/internal/employee"
	"go-hrm/internal/mailer"
	passwordreseterrors "go-hrm/internal/passwordreset/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	CodeDigits         = 6
	MaxRequestsPerHour = 3
	RequestWindow      = time.Hour
	RequestCooldown    = 5 * time.Minute
	OTPTTL             = 10 * time.Minute
)

const sentMessage = "If the email is registered, an OTP has been sent."

//go:generate mockgen -source=password_reset_service.go -destination=mock/password_reset_service_mock.go -package=mock
type Service interface {
	RequestOTP(ctx context.Context, req ForgotPasswordRequest) (MessageResponse, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (MessageResponse, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) (MessageResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	users    user.Repository
	profiles employee.Repository
	mail     mailer.Mailer
	cost     int
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	users user.Repository,
	profiles employee.Repository,
	mail mailer.Mailer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("passwordreset.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("passwordreset.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		users:    users,
		profiles: profiles,
		mail:     mail,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
		logger:   l,
	}
}

// RequestOTP answers the same way for unknown addresses.
func (s *service) RequestOTP(ctx context.Context, req ForgotPasswordRequest) (MessageResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Debug("otp requested", zap.String("email", email))

	u, address, err := s.resolve(ctx, email)
	if err != nil {
		return MessageResponse{}, err
	}
	if u == nil {
		s.logger.Info("otp requested for unknown email")
		return MessageResponse{Message: sentMessage}, nil
	}

	now := s.now().UTC()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		recent, err := qtx.CountSince(ctx, u.ID, now.Add(-RequestWindow))
		if err != nil {
			return err
		}
		if recent >= MaxRequestsPerHour {
			return passwordreseterrors.ErrTooManyRequests
		}

		last, err := qtx.Latest(ctx, u.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if last != nil {
			if age := now.Sub(last.CreatedAt); age < RequestCooldown {
				wait := int(math.Ceil((RequestCooldown - age).Minutes()))
				return passwordreseterrors.ErrCooldownActive.WithDetails(map[string]any{"retry_after_minutes": wait})
			}
		}

		code, err := generateCode()
		if err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(code), s.cost)
		if err != nil {
			return err
		}
		otp := &OTP{ID: uuid.New(), UserID: u.ID, CodeHash: string(hash), CreatedAt: now}
		if err := qtx.Create(ctx, otp); err != nil {
			return err
		}

		// kirim di dalam transaksi: gagal kirim = OTP tidak tersimpan
		msg := mailer.Message{
			To:      address,
			Subject: "Password Reset OTP - HRMS Portal",
			Body:    fmt.Sprintf("Your OTP to reset password is: %s\nValid for %d minutes.", code, int(OTPTTL.Minutes())),
		}
		if err := s.mail.Send(ctx, msg); err != nil {
			return apperror.Dependency(err, "Failed to send OTP email. Please try again later.")
		}
		return nil
	})
	if err != nil {
		s.logFailure("request otp", u.ID, err)
		return MessageResponse{}, err
	}

	s.logger.Info("otp sent", zap.String("user_id", u.ID.String()))
	return MessageResponse{Message: sentMessage}, nil
}

// VerifyOTP checks the newest unused code without consuming it.
func (s *service) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (MessageResponse, error) {
	u, _, err := s.resolve(ctx, req.Email)
	if err != nil {
		return MessageResponse{}, err
	}
	if u == nil {
		return MessageResponse{}, passwordreseterrors.ErrInvalidOTP
	}

	otp, err := s.repo.LatestUnused(ctx, u.ID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MessageResponse{}, passwordreseterrors.ErrInvalidOTP
		}
		return MessageResponse{}, err
	}
	if err := s.check(otp, req.OTP); err != nil {
		s.logFailure("verify otp", u.ID, err)
		return MessageResponse{}, err
	}
	return MessageResponse{Message: "OTP verified."}, nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) (MessageResponse, error) {
	if req.NewPassword != req.ConfirmPassword {
		return MessageResponse{}, passwordreseterrors.ErrPasswordsMismatch
	}
	if problems := user.ValidatePassword(req.NewPassword); len(problems) > 0 {
		return MessageResponse{}, apperror.Validation(map[string]string{"new_password": problems[0]})
	}

	u, _, err := s.resolve(ctx, req.Email)
	if err != nil {
		return MessageResponse{}, err
	}
	if u == nil {
		return MessageResponse{}, passwordreseterrors.ErrInvalidOTP
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		otp, err := qtx.LatestUnused(ctx, u.ID, true)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return passwordreseterrors.ErrInvalidOTP
			}
			return err
		}
		if err := s.check(otp, req.OTP); err != nil {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.cost)
		if err != nil {
			return err
		}
		if err := s.users.WithTx(tx).UpdatePassword(ctx, u.ID, string(hashed)); err != nil {
			return err
		}
		if err := qtx.MarkUsed(ctx, otp.ID, s.now().UTC()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return passwordreseterrors.ErrInvalidOTP
			}
			return err
		}
		return nil
	})
	if err != nil {
		s.logFailure("reset password", u.ID, err)
		return MessageResponse{}, err
	}

	s.logger.Info("password reset", zap.String("user_id", u.ID.String()))
	return MessageResponse{Message: "Password reset successful."}, nil
}

func (s *service) check(otp *OTP, code string) error {
	if otp.Expired(s.now().UTC()) {
		return passwordreseterrors.ErrOTPExpired
	}
	if bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(strings.TrimSpace(code))) != nil {
		return passwordreseterrors.ErrInvalidOTP
	}
	return nil
}

// resolve matches the user email first, then the profile work email. The
// returned address prefers the work email.
func (s *service) resolve(ctx context.Context, email string) (*user.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile, perr := s.profiles.FindByWorkEmail(ctx, email)
		if perr != nil {
			if errors.Is(perr, gorm.ErrRecordNotFound) {
				return nil, "", nil
			}
			return nil, "", perr
		}
		u, err = s.users.FindByID(ctx, profile.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, "", nil
			}
			return nil, "", err
		}
		return u, profile.WorkEmail, nil
	default:
		return nil, "", err
	}

	address := u.Email
	if profile, err := s.profiles.FindByUserID(ctx, u.ID); err == nil && profile.WorkEmail != "" {
		address = profile.WorkEmail
	}
	return u, address, nil
}

func (s *service) logFailure(op string, userID uuid.UUID, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
		s.logger.Warn(op+" rejected", zap.String("user_id", userID.String()), zap.Error(err))
		return
	}
	s.logger.Error(op+" failed", zap.String("user_id", userID.String()), zap.Error(err))
}

func generateCode() (string, error) {
	limit := big.NewInt(int64(math.Pow10(CodeDigits)))
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", CodeDigits, n.Int64()), nil
}
