package autherrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"No active account found with the given credentials",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token is invalid",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication credentials were not provided",
		http.StatusUnauthorized,
	)

	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Refresh token is invalid or has been revoked",
		http.StatusUnauthorized,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to issue token",
		http.StatusInternalServerError,
	)

	ErrUserInactive = apperror.New(
		apperror.CodeUnauthorized,
		"User account is disabled",
		http.StatusUnauthorized,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to perform this action",
		http.StatusForbidden,
	)
)
