package auth

import (
	"net/http"
	"time"

	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	platform "go-hrm/internal/shared/request"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

// CookieConfig controls the cookies set for browser clients.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Handler struct {
	service Service
	cookies CookieConfig
}

func NewHandler(s Service, cookies CookieConfig) *Handler {
	return &Handler{service: s, cookies: cookies}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func isWeb(c *gin.Context) bool {
	return platform.IsWebClient(platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent")))
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) setTokenCookies(c *gin.Context, access, refresh string) {
	if !isWeb(c) {
		return
	}
	h.setCookie(c, accessCookie, access, int(h.cookies.AccessTTL.Seconds()))
	h.setCookie(c, refreshCookie, refresh, int(h.cookies.RefreshTTL.Seconds()))
}

// refreshToken reads the body first, then the cookie browsers carry.
func refreshToken(c *gin.Context) (string, error) {
	var req RefreshRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", apperror.MapValidationError(err)
		}
	}
	if req.Refresh == "" {
		if cookie, err := c.Cookie(refreshCookie); err == nil {
			req.Refresh = cookie
		}
	}
	return req.Refresh, nil
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.setTokenCookies(c, resp.Access, resp.Refresh)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	raw, err := refreshToken(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), raw)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.setTokenCookies(c, resp.Access, resp.Refresh)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	raw, err := refreshToken(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if err := h.service.Logout(c.Request.Context(), raw); err != nil {
		writeServiceError(c, err)
		return
	}

	h.setCookie(c, accessCookie, "", -1)
	h.setCookie(c, refreshCookie, "", -1)
	response.Success(c, http.StatusOK, gin.H{"message": "Logout success."}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	actor, err := middleware.Principal(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.Me(c.Request.Context(), actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
