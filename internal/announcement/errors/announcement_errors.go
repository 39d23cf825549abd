package announcementerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid announcement id",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTime = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidPriority = apperror.New(
		apperror.CodeInvalidInput,
		"priority must be LOW, MEDIUM or HIGH",
		http.StatusBadRequest,
	)
	ErrInvalidEventType = apperror.New(
		apperror.CodeInvalidInput,
		"event_type must be meeting, announcement or holiday",
		http.StatusBadRequest,
	)
	ErrPastDate = apperror.New(
		apperror.CodeInvalidInput,
		"Past dates are not allowed.",
		http.StatusBadRequest,
	)
	ErrPastTime = apperror.New(
		apperror.CodeInvalidInput,
		"Past time is not allowed for today's date.",
		http.StatusBadRequest,
	)
	ErrAnnouncementNotFound = apperror.New(
		apperror.CodeNotFound,
		"announcement not found",
		http.StatusNotFound,
	)
	ErrSlotTaken = apperror.New(
		apperror.CodeConflict,
		"An announcement already exists at this date and time.",
		http.StatusConflict,
	)
	ErrNotEditable = apperror.New(
		apperror.CodeForbidden,
		"team announcements can only be changed by their author",
		http.StatusForbidden,
	)
)
