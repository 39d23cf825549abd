package passwordreset

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the anonymous, IP-throttled reset flow.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	r.POST("/forgot-password/", append(guards.Anonymous(), handler.ForgotPassword)...)
	r.POST("/verify-otp/", append(guards.Anonymous(), handler.VerifyOTP)...)
	r.POST("/reset-password/", append(guards.Anonymous(), handler.ResetPassword)...)
}
