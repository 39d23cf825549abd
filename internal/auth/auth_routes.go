package auth

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	r.POST("/login/", append(guards.Anonymous(), handler.Login)...)
	r.POST("/refresh/", append(guards.Anonymous(), handler.Refresh)...)
	r.POST("/logout/", append(guards.Anonymous(), handler.Logout)...)
	r.GET("/me/", append(guards.Authenticated(), handler.Me)...)
}
