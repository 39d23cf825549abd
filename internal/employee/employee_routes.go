package employee

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	r.POST("/signup/", append(guards.Anonymous(), handler.Signup)...)

	hr := r.Group("")
	hr.Use(guards.Authenticated()...)
	{
		hr.POST("/create-employee/",
			guards.Allow(rbac.ResourceEmployee, rbac.ActionCreate),
			handler.Create,
		)
		hr.GET("/employee-list/",
			guards.Allow(rbac.ResourceEmployee, rbac.ActionList),
			handler.List,
		)
		hr.GET("/team-lead-options/",
			guards.Allow(rbac.ResourceEmployee, rbac.ActionList),
			handler.TeamLeadOptions,
		)
	}

	// owner or HR, decided by the service
	employees := r.Group("/employees")
	employees.Use(guards.Authenticated()...)
	{
		employees.GET("/:id/", handler.GetByID)
		employees.PATCH("/:id/", handler.Update)
		employees.POST("/:id/photo/", handler.UploadPhoto)
	}
}
