package project

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

type AssignPMRequest struct {
	ProjectManagerID string `json:"project_manager_id" binding:"required,uuid"`
}

type CreateModuleRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
	TeamLeadID  string `json:"team_lead_id" binding:"required,uuid"`
}

type CreateTaskRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	AssignedToID string `json:"assigned_to_id" binding:"required,uuid"`
	DueDate      string `json:"due_date"`
}

type CreateSubTaskRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ProjectResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	DeliveryManagerID string  `json:"delivery_manager_id"`
	ProjectManagerID  *string `json:"project_manager_id"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type ModuleResponse struct {
	ID          string         `json:"id"`
	ProjectID   string         `json:"project_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	TeamLeadID  string         `json:"team_lead_id"`
	Status      string         `json:"status"`
	Tasks       []TaskResponse `json:"tasks,omitempty"`
}

type TaskResponse struct {
	ID           string            `json:"id"`
	ModuleID     string            `json:"module_id"`
	ProjectID    string            `json:"project_id"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	AssignedToID string            `json:"assigned_to_id"`
	CreatedByID  string            `json:"created_by_id"`
	Status       string            `json:"status"`
	AssignedDate string            `json:"assigned_date"`
	DueDate      *string           `json:"due_date"`
	SubTasks     []SubTaskResponse `json:"subtasks,omitempty"`
}

type SubTaskResponse struct {
	ID             string  `json:"id"`
	TaskID         string  `json:"task_id"`
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	CreatedByID    string  `json:"created_by_id"`
	Status         string  `json:"status"`
	ApprovedByTLID *string `json:"approved_by_tl_id"`
}

type ProjectTreeResponse struct {
	ProjectResponse
	Modules []ModuleResponse `json:"modules"`
}

type AuditResponse struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"project_id"`
	ActorID   *string `json:"actor_id"`
	Action    string  `json:"action"`
	EntityID  string  `json:"entity_id"`
	OldValue  string  `json:"old_value"`
	NewValue  string  `json:"new_value"`
	CreatedAt string  `json:"created_at"`
}

type DMDashboardResponse struct {
	TotalProjects int64 `json:"total_projects"`
	InProgress    int64 `json:"in_progress"`
	AtRisk        int64 `json:"at_risk"`
	Completed     int64 `json:"completed"`
}

type PMDashboardResponse struct {
	TotalModules int64 `json:"total_modules"`
	Blocked      int64 `json:"blocked"`
	Completed    int64 `json:"completed"`
}

type TLDashboardResponse struct {
	AssignedTasks int64 `json:"assigned_tasks"`
	PendingReview int64 `json:"pending_review"`
	Completed     int64 `json:"completed"`
}
