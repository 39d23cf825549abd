package attendanceerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"You have already clocked in today",
		http.StatusBadRequest,
	)
	ErrAlreadyCompleted = apperror.New(
		apperror.CodeInvalidState,
		"Today's attendance is already completed",
		http.StatusBadRequest,
	)
	ErrNoOpenAttendance = apperror.New(
		apperror.CodeInvalidState,
		"You have not clocked in today",
		http.StatusBadRequest,
	)
	ErrAlreadyClosed = apperror.New(
		apperror.CodeInvalidState,
		"You have already clocked out today",
		http.StatusBadRequest,
	)
	ErrRaceConflict = apperror.New(
		apperror.CodeConflict,
		"Attendance for today was recorded by a concurrent request",
		http.StatusConflict,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found",
		http.StatusNotFound,
	)
	ErrInvalidAttendanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance ID",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid timestamp, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrClockOutBeforeClockIn = apperror.New(
		apperror.CodeInvalidInput,
		"clock_out must be after clock_in",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be in_progress or completed",
		http.StatusBadRequest,
	)
)
