package support

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	tickets := r.Group("/tickets")
	tickets.Use(guards.Authenticated()...)
	{
		tickets.POST("/create/", handler.CreateTicket)
		tickets.GET("/my/", handler.MyTickets)
		tickets.GET("/:id/", handler.GetTicket)
		tickets.POST("/:id/message/", handler.PostMessage)
		tickets.PATCH("/:id/status/", guards.Allow(rbac.ResourceSupport, rbac.ActionManage), handler.UpdateStatus)
		tickets.PATCH("/:id/assign/", guards.Allow(rbac.ResourceSupport, rbac.ActionManage), handler.Assign)
	}

	queue := r.Group("/support")
	queue.Use(guards.Authenticated()...)
	{
		queue.GET("/queue/", guards.Allow(rbac.ResourceSupport, rbac.ActionManage), handler.Queue)
		queue.GET("/login-issues/", guards.Allow(rbac.ResourceLoginSupport, rbac.ActionManage), handler.ListLoginTickets)
		queue.POST("/login-issues/:id/resolve/", guards.Allow(rbac.ResourceLoginSupport, rbac.ActionManage), handler.ResolveLoginTicket)
	}

	r.POST("/login-issues/create/", append(guards.Anonymous(), handler.CreateLoginTicket)...)
}
