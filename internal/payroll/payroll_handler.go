package payroll

import (
	"net/http"
	"strconv"

	"go-hrm/internal/middleware"
	payrollerrors "go-hrm/internal/payroll/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Generate(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var req GeneratePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResult(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Finalize(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.Finalize(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListForPeriod(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var filter ListPayslipsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	page, pageSize := response.PageQuery(c, response.DefaultPageSize)
	items, total, err := h.service.ListForPeriod(c.Request.Context(), actor, filter, page, pageSize)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) MyPayslips(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, pageSize := response.PageQuery(c, response.DefaultPageSize)
	items, total, err := h.service.MyPayslips(c.Request.Context(), actor, page, pageSize)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Download(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	year, yerr := strconv.Atoi(c.Param("year"))
	month, merr := strconv.Atoi(c.Param("month"))
	if yerr != nil || merr != nil {
		writeServiceError(c, payrollerrors.ErrInvalidPeriod)
		return
	}

	file, err := h.service.Download(c.Request.Context(), actor, year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", file.Content)
}
