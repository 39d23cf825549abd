package announcement

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
			"/announcements/",
			guards.Idempotent(),
			guards.Allow(rbac.ResourceAnnouncement, rbac.ActionCreate),
			handler.CreateHR,
		)
		hr.PUT("/announcements/:id/", guards.Allow(rbac.ResourceAnnouncement, rbac.ActionUpdate), handler.Update)
		hr.DELETE("/announcements/:id/", guards.Allow(rbac.ResourceAnnouncement, rbac.ActionDelete), handler.Delete)
		hr.POST("/calendar/", guards.Allow(rbac.ResourceAnnouncement, rbac.ActionCreate), handler.CreateEvent)
	}

	tl := r.Group("/tl")
	tl.Use(guards.Authenticated()...)
	{
		tl.POST(
			"/announcements/",
			guards.Idempotent(),
			guards.Allow(rbac.ResourceAnnouncement, rbac.ActionTeam),
			handler.CreateTeam,
		)
		tl.PUT("/announcements/:id/", guards.Allow(rbac.ResourceAnnouncement, rbac.ActionTeam), handler.Update)
		tl.DELETE("/announcements/:id/", guards.Allow(rbac.ResourceAnnouncement, rbac.ActionTeam), handler.Delete)
	}

	authed := r.Group("")
	authed.Use(guards.Authenticated()...)
	{
		authed.GET("/announcements/", handler.List)
		authed.GET("/calendar/", handler.Calendar)
	}
}
