package projecterrors

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
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status is not a valid target for this item",
		http.StatusBadRequest,
	)
	ErrInvalidDueDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid due_date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"project not found",
		http.StatusNotFound,
	)
	ErrModuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"module not found",
		http.StatusNotFound,
	)
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"task not found",
		http.StatusNotFound,
	)
	ErrSubTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"subtask not found",
		http.StatusNotFound,
	)
	ErrPMAssignNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"a project manager can only be assigned while the project is in draft",
		http.StatusBadRequest,
	)
	ErrSubtasksOpen = apperror.New(
		apperror.CodeInvalidState,
		"all subtasks must be completed first",
		http.StatusBadRequest,
	)
	ErrStatusUnchanged = apperror.New(
		apperror.CodeInvalidState,
		"item already has this status",
		http.StatusBadRequest,
	)
	ErrInvalidProjectManager = apperror.New(
		apperror.CodeInvalidInput,
		"project_manager_id must reference an active project manager",
		http.StatusBadRequest,
	)
	ErrInvalidTeamLead = apperror.New(
		apperror.CodeInvalidInput,
		"team_lead_id must reference an active team lead",
		http.StatusBadRequest,
	)
	ErrInvalidAssignee = apperror.New(
		apperror.CodeInvalidInput,
		"assigned_to_id must reference an active user",
		http.StatusBadRequest,
	)
)
