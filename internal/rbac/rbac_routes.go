package rbac

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	group := r.Group("/rbac")
	group.Use(guards.Authenticated()...)
	{
		group.GET("/me/", handler.MyPermissions)
		group.POST("/enforce/", handler.Enforce)
	}
}
