package departmenterrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var ErrUnknownDepartment = apperror.New(
	apperror.CodeNotFound,
	"Department not found",
	http.StatusNotFound,
)
