package leave

import (
	"context"
	"net/http"

	"go-hrm/internal/identity"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Apply(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req ApplyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http apply leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Apply(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Cancel(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MyLeaves(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, pageSize := response.PageQuery(c, response.DefaultPageSize)

	items, total, err := h.service.MyLeaves(c.Request.Context(), actor, page, pageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) MyBalances(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.MyBalances(c.Request.Context(), actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TLPending(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.TLPending(c.Request.Context(), actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TLAction(c *gin.Context) {
	h.action(c, h.service.TLAction)
}

func (h *Handler) HRAction(c *gin.Context) {
	h.action(c, h.service.HRAction)
}

func (h *Handler) action(c *gin.Context, decide func(ctx context.Context, actor *identity.Principal, id string, req ActionRequest) (LeaveResponse, error)) {
	actor, err := middleware.Principal(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http leave action validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := decide(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) HRList(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, pageSize := response.PageQuery(c, response.DefaultPageSize)

	items, total, err := h.service.HRList(c.Request.Context(), actor, c.Query("status"), page, pageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) SetEntitlement(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req EntitlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SetEntitlement(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
