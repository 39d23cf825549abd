package announcement

import (
	"context"
	"net/http"

	"go-hrm/internal/identity"
	"go-hrm/internal/middleware"
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

type createFunc func(context.Context, *identity.Principal, AnnouncementRequest) (AnnouncementResponse, error)

func (h *Handler) CreateHR(c *gin.Context) {
	h.create(c, h.service.CreateHR)
}

func (h *Handler) CreateTeam(c *gin.Context) {
	h.create(c, h.service.CreateTeam)
}

func (h *Handler) create(c *gin.Context, fn createFunc) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := fn(c.Request.Context(), actor, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResult(c, h.rdb, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) List(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, pageSize := response.PageQuery(c, response.DefaultPageSize)
	items, total, err := h.service.List(c.Request.Context(), actor, page, pageSize)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Calendar(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var filter CalendarFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	items, err := h.service.CalendarEvents(c.Request.Context(), actor, filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) CreateEvent(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var req CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateEvent(c.Request.Context(), actor, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}
