package payroll

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	hr := r.Group("/hr")
	hr.Use(guards.Authenticated()...)
	{
		hr.POST(
			"/employees/:id/generate-payslip/",
			guards.Idempotent(),
			guards.Allow(rbac.ResourcePayroll, rbac.ActionCreate),
			handler.Generate,
		)
		hr.GET("/payslips/", guards.Allow(rbac.ResourcePayroll, rbac.ActionList), handler.ListForPeriod)
		hr.POST("/payslips/:id/finalize/", guards.Allow(rbac.ResourcePayroll, rbac.ActionFinalize), handler.Finalize)
	}

	payslips := r.Group("/payslips")
	payslips.Use(guards.Authenticated()...)
	{
		payslips.GET("/my/", handler.MyPayslips)
		payslips.GET("/:year/:month/download/", handler.Download)
	}
}
