package department

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

func (h *Handler) List(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	items, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) Members(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, pageSize := response.PageQuery(c, response.DefaultPageSize)
	items, total, err := h.service.Members(c.Request.Context(), actor, c.Param("code"), page, pageSize)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}
