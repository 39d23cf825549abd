package passwordreseterrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrTooManyRequests = apperror.New(
		apperror.CodeRateLimited,
		"Too many OTP requests. Please try again later.",
		http.StatusTooManyRequests,
	)
	ErrCooldownActive = apperror.New(
		apperror.CodeRateLimited,
		"An OTP was sent recently. Please wait before requesting a new one.",
		http.StatusTooManyRequests,
	)

	ErrInvalidOTP        = apperror.Validation(map[string]string{"otp": "Invalid OTP."})
	ErrOTPExpired        = apperror.Validation(map[string]string{"otp": "OTP expired."})
	ErrPasswordsMismatch = apperror.Validation(map[string]string{"confirm_password": "Passwords do not match"})
)
