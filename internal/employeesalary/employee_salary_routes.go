package employeesalary

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	hr := r.Group("/hr")
	hr.Use(guards.Authenticated()...)
	hr.Use(guards.Allow(rbac.ResourceSalary, rbac.ActionManage))
	{
		hr.GET("/salary-structures/", handler.ListStructures)
		hr.POST("/salary-structures/", handler.CreateStructure)
		hr.GET("/salary-structures/:id/", handler.GetStructure)
		hr.PUT("/salary-structures/:id/", handler.UpdateStructure)
		hr.DELETE("/salary-structures/:id/", handler.DeleteStructure)
		hr.GET("/employees/:id/salaries/", handler.ListForProfile)
		hr.POST("/employees/:id/assign-salary/", handler.Assign)
	}

	my := r.Group("/salary")
	my.Use(guards.Authenticated()...)
	my.GET("/my/", handler.MySalary)
}
