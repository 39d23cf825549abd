package supporterrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrInvalidTicketID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid ticket id",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"category must be one of HR, IT, PAYROLL, PROJECT, OTHER",
		http.StatusBadRequest,
	)
	ErrInvalidPriority = apperror.New(
		apperror.CodeInvalidInput,
		"priority must be LOW, MEDIUM or HIGH",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of OPEN, IN_PROGRESS, WAITING, CLOSED",
		http.StatusBadRequest,
	)
	ErrInvalidIssueType = apperror.New(
		apperror.CodeInvalidInput,
		"issue_type must be one of OTP, PASSWORD, LOCKED, LOGIN, OTHER",
		http.StatusBadRequest,
	)
	ErrInvalidAssignee = apperror.New(
		apperror.CodeInvalidInput,
		"assignee must be an active support staff member",
		http.StatusBadRequest,
	)
	ErrTicketNotFound = apperror.New(
		apperror.CodeNotFound,
		"ticket not found",
		http.StatusNotFound,
	)
	ErrTicketClosed = apperror.New(
		apperror.CodeInvalidState,
		"Ticket is closed",
		http.StatusBadRequest,
	)
	ErrNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"Not allowed",
		http.StatusForbidden,
	)
)
