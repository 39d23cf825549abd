package notificationerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrInvalidNotificationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid notification ID",
		http.StatusBadRequest,
	)

	ErrNothingToMark = apperror.New(
		apperror.CodeInvalidInput,
		"Provide ids or set all to true",
		http.StatusBadRequest,
	)
)
