package employeesalaryerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid id",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid effective_from, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amounts must be non-negative decimals and percents at most 100",
		http.StatusBadRequest,
	)
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary structure not found",
		http.StatusNotFound,
	)
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee profile not found",
		http.StatusNotFound,
	)
	ErrNoActiveSalary = apperror.New(
		apperror.CodeNotFound,
		"no active salary assigned",
		http.StatusNotFound,
	)
	ErrStructureNameTaken = apperror.New(
		apperror.CodeConflict,
		"salary structure name already exists",
		http.StatusConflict,
	)
	ErrStructureInUse = apperror.New(
		apperror.CodeConflict,
		"salary structure is assigned to employees",
		http.StatusConflict,
	)
	ErrSalaryEffectiveDateAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Salary for this employee and effective date already exists",
		http.StatusConflict,
	)
)
