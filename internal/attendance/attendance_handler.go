package attendance

import (
	"net/http"

	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// bindOptional accepts an empty body as the zero request.
func bindOptional(c *gin.Context, req any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(req); err != nil {
		return apperror.MapValidationError(err)
	}
	return nil
}

func (h *Handler) ClockIn(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var req ClockRequest
	if err := bindOptional(c, &req); err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.ClockIn(c.Request.Context(), actor.UserID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var req ClockRequest
	if err := bindOptional(c, &req); err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.ClockOut(c.Request.Context(), actor.UserID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Today(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.TodayStatus(c.Request.Context(), actor.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MyMonthly(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.MonthlySummary(c.Request.Context(), actor.UserID, c.Query("month"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TeamToday(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.TeamToday(c.Request.Context(), actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Correct(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var req CorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Correct(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
