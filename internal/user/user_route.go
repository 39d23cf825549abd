package user

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	users := r.Group("/users")
	users.Use(guards.Authenticated()...)
	{
		users.POST("/change-password/", handler.ChangePassword)

		users.GET("/:id/",
			guards.Allow(rbac.ResourceEmployee, rbac.ActionList),
			handler.GetByID,
		)

		users.PATCH("/:id/status/",
			guards.Allow(rbac.ResourceEmployee, rbac.ActionUpdate),
			handler.ToggleStatus,
		)
	}
}
