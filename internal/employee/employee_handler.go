package employee

import (
	"net/http"
	"strings"

	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/media"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const photoField = "profile_photo"

type Handler struct {
	service Service
	media   *media.Store
	logger  *zap.Logger
}

func NewHandler(service Service, store *media.Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, media: store, logger: l}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateEmployee(ctx, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	page, pageSize := response.PageQuery(c, response.DefaultPageSize)

	items, total, err := h.service.List(c.Request.Context(), strings.TrimSpace(c.Query("search")), page, pageSize)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var req UpdateEmployeeRequest
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

func (h *Handler) UploadPhoto(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	fh, err := c.FormFile(photoField)
	if err != nil {
		writeServiceError(c, apperror.RequiredField(photoField))
		return
	}
	if err := media.Validate(photoField, fh); err != nil {
		writeServiceError(c, err)
		return
	}

	// cek akses dulu sebelum file ditulis ke disk
	if _, err := h.service.GetByID(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	path, err := h.media.Save(photoField, fh)
	if err != nil {
		h.logger.Error("save profile photo failed", zap.Error(err))
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.SetProfilePhoto(c.Request.Context(), actor, c.Param("id"), path)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TeamLeadOptions(c *gin.Context) {
	resp, err := h.service.GetTeamLeadOptions(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
