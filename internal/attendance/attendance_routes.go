package attendance

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	att := r.Group("/attendance")
	att.Use(guards.Authenticated()...)
	{
		att.POST("/clock-in/", handler.ClockIn)
		att.POST("/clock-out/", handler.ClockOut)
		att.GET("/today/", handler.Today)
		att.GET("/my-monthly/", handler.MyMonthly)
		att.GET("/team-today/", handler.TeamToday)
	}

	hr := r.Group("/hr/attendance")
	hr.Use(guards.Authenticated()...)
	hr.Use(guards.Allow(rbac.ResourceAttendance, rbac.ActionCorrect))
	{
		hr.POST("/:id/correct/", handler.Correct)
	}
}
