package notification

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	notifications := r.Group("/notifications")
	notifications.Use(guards.Authenticated()...)
	{
		notifications.GET("/", handler.List)
		notifications.GET("/unread-count/", handler.UnreadCount)
		notifications.POST("/mark-read/", handler.MarkRead)
	}
}
