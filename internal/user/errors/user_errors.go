package usererrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"A user with that username already exists",
		http.StatusConflict,
	)

	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"A user with that email already exists",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrWrongPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)

	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Passwords do not match",
		http.StatusBadRequest,
	)

	ErrUserInactive = apperror.New(
		apperror.CodeForbidden,
		"User is inactive",
		http.StatusForbidden,
	)

	ErrCannotDeactivateSelf = apperror.New(
		apperror.CodeInvalidState,
		"You cannot deactivate your own account",
		http.StatusBadRequest,
	)
)
