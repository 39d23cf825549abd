package project

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts under /projects. Per-object rules (own project, own
// module, assignee) are enforced by the service.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	projects := r.Group("/projects")
	projects.Use(guards.Authenticated()...)
	{
		projects.GET("/", handler.ListProjects)
		projects.GET("/project/:id/tree/", handler.ProjectTree)
		projects.GET("/project/:id/audit/", handler.ProjectAudits)

		projects.POST("/dm/project/create/", guards.Allow(rbac.ResourceProject, rbac.ActionCreate), handler.CreateProject)
		projects.POST("/dm/project/:id/assign-pm/", guards.Allow(rbac.ResourceProject, rbac.ActionAssign), handler.AssignPM)
		projects.POST("/pm/project/:id/module/create/", guards.Allow(rbac.ResourceProject, rbac.ActionManage), handler.CreateModule)
		projects.POST("/tl/module/:id/task/create/", guards.Allow(rbac.ResourceProject, rbac.ActionManage), handler.CreateTask)
		projects.POST("/employee/task/:id/subtask/create/", handler.CreateSubTask)
		projects.GET("/employee/tasks/", handler.MyTasks)

		projects.POST("/project/:id/status/", handler.ProjectStatus)
		projects.POST("/module/:id/status/", handler.ModuleStatus)
		projects.POST("/task/:id/status/", handler.TaskStatus)
		projects.POST("/subtask/:id/status/", handler.SubTaskStatus)

		projects.GET("/dashboard/dm/", handler.DMDashboard)
		projects.GET("/dashboard/pm/", handler.PMDashboard)
		projects.GET("/dashboard/tl/", handler.TLDashboard)
	}
}
