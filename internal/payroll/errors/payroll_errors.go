package payrollerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrInvalidProfileID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid profile id",
		http.StatusBadRequest,
	)
	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payslip id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period, expected year >= 2000 and month 1-12",
		http.StatusBadRequest,
	)
	ErrInvalidMoneyValue = apperror.New(
		apperror.CodeInvalidInput,
		"insurance and esi must be non-negative decimals",
		http.StatusBadRequest,
	)
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee profile not found",
		http.StatusNotFound,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrPayslipFinalized = apperror.New(
		apperror.CodeInvalidState,
		"payslip is finalized and cannot be regenerated",
		http.StatusBadRequest,
	)
	ErrAlreadyFinalized = apperror.New(
		apperror.CodeInvalidState,
		"payslip is already finalized",
		http.StatusBadRequest,
	)
)
