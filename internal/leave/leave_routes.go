package leave

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	leaves := r.Group("/leave")
	leaves.Use(guards.Authenticated()...)
	{
		leaves.POST("/apply/", handler.Apply)
		leaves.GET("/my/", handler.MyLeaves)
		leaves.GET("/balances/", handler.MyBalances)
		leaves.POST("/:id/submit/", handler.Submit)
		leaves.POST("/:id/cancel/", handler.Cancel)
	}

	tl := r.Group("/tl/leave")
	tl.Use(guards.Authenticated()...)
	tl.Use(guards.Allow(rbac.ResourceLeave, rbac.ActionTeam))
	{
		tl.GET("/pending/", handler.TLPending)
		tl.POST("/:id/action/", handler.TLAction)
	}

	hr := r.Group("/hr")
	hr.Use(guards.Authenticated()...)
	{
		hr.GET("/leaves/", guards.Allow(rbac.ResourceLeave, rbac.ActionDecide), handler.HRList)
		hr.POST("/leaves/:id/action/", guards.Allow(rbac.ResourceLeave, rbac.ActionDecide), handler.HRAction)
		hr.PUT("/leave-balances/", guards.Allow(rbac.ResourceLeaveBalance, rbac.ActionUpdate), handler.SetEntitlement)
	}
}
