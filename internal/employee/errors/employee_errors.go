package employeeerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee profile not found for this user",
		http.StatusNotFound,
	)
	ErrWorkEmailTaken = apperror.New(
		apperror.CodeConflict,
		"An employee with that work email already exists",
		http.StatusConflict,
	)
	ErrEmpIDConflict = apperror.New(
		apperror.CodeConflict,
		"Employee ID already issued, retry the request",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown department",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTeamLead = apperror.New(
		apperror.CodeInvalidInput,
		"Team lead must be an active user with role tl",
		http.StatusBadRequest,
	)
	ErrInvalidManager = apperror.New(
		apperror.CodeInvalidInput,
		"Manager must be an active user",
		http.StatusBadRequest,
	)
	ErrHRFieldsOnly = apperror.New(
		apperror.CodeForbidden,
		"Only HR can change job, bank or reporting fields",
		http.StatusForbidden,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"First name is required",
		http.StatusBadRequest,
	)
)
