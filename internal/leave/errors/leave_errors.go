package leaveerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"action must be approve or reject",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrProfileRequired = apperror.New(
		apperror.CodeInvalidState,
		"an employee profile is required to apply for leave",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid leave status transition",
		http.StatusBadRequest,
	)
	ErrTLApprovalRequired = apperror.New(
		apperror.CodeInvalidState,
		"team lead approval is still pending",
		http.StatusBadRequest,
	)
	ErrNotYourTeamMember = apperror.New(
		apperror.CodeForbidden,
		"this leave request is not assigned to you",
		http.StatusForbidden,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already been decided",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInvalidState,
		"insufficient leave balance",
		http.StatusBadRequest,
	)
	ErrNotLeaveOwner = apperror.New(
		apperror.CodeForbidden,
		"only the applicant can change this leave request",
		http.StatusForbidden,
	)
	ErrEntitlementBelowUsed = apperror.New(
		apperror.CodeInvalidInput,
		"entitled days cannot be lower than days already used",
		http.StatusBadRequest,
	)
)
