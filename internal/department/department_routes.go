package department

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guards middleware.Guards) {
	departments := r.Group("/departments")
	departments.Use(guards.Authenticated()...)
	{
		departments.GET("/", h.List)
		departments.GET("/:code/members/", h.Members)
	}
}
