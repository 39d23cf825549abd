package project

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProjectDraft      = "draft"
	ProjectAssignedPM = "assigned_pm"
	ProjectInProgress = "in_progress"
	ProjectAtRisk     = "at_risk"
	ProjectOnHold     = "on_hold"
	ProjectCompleted  = "completed"
	ProjectClosed     = "closed"
)

const (
	ModuleAssigned   = "assigned"
	ModuleInProgress = "in_progress"
	ModuleBlocked    = "blocked"
	ModuleCompleted  = "completed"
	ModuleReturned   = "returned"
)

const (
	TaskAssigned   = "assigned"
	TaskInProgress = "in_progress"
	TaskReview     = "review"
	TaskRework     = "rework"
	TaskCompleted  = "completed"
)

const (
	SubTaskCreated    = "created"
	SubTaskInProgress = "in_progress"
	SubTaskCompleted  = "completed"
	SubTaskRejected   = "rejected"
)

// Audit action kinds.
const (
	AuditProjectStatus = "project_status"
	AuditModuleStatus  = "module_status"
	AuditTaskStatus    = "task_status"
	AuditSubTaskStatus = "subtask_status"
)

type Project struct {
	ID                uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Name              string     `gorm:"column:name;type:varchar(200);not null"`
	Description       string     `gorm:"column:description;type:text"`
	DeliveryManagerID uuid.UUID  `gorm:"column:delivery_manager_id;type:uuid;not null;index"`
	ProjectManagerID  *uuid.UUID `gorm:"column:project_manager_id;type:uuid;index"`
	Status            string     `gorm:"column:status;type:varchar(30);not null;index"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}

type Module struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProjectID   uuid.UUID `gorm:"column:project_id;type:uuid;not null;index"`
	Name        string    `gorm:"column:name;type:varchar(200);not null"`
	Description string    `gorm:"column:description;type:text"`
	TeamLeadID  uuid.UUID `gorm:"column:team_lead_id;type:uuid;not null;index"`
	Status      string    `gorm:"column:status;type:varchar(30);not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Module) TableName() string {
	return "project_modules"
}

type Task struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	ModuleID     uuid.UUID  `gorm:"column:module_id;type:uuid;not null;index"`
	ProjectID    uuid.UUID  `gorm:"column:project_id;type:uuid;not null;index"`
	Title        string     `gorm:"column:title;type:varchar(200);not null"`
	Description  string     `gorm:"column:description;type:text"`
	AssignedToID uuid.UUID  `gorm:"column:assigned_to_id;type:uuid;not null;index"`
	CreatedByID  uuid.UUID  `gorm:"column:created_by_id;type:uuid;not null;index"`
	Status       string     `gorm:"column:status;type:varchar(30);not null"`
	AssignedDate time.Time  `gorm:"column:assigned_date;type:date;not null"`
	DueDate      *time.Time `gorm:"column:due_date;type:date"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Task) TableName() string {
	return "project_tasks"
}

type SubTask struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	TaskID         uuid.UUID  `gorm:"column:task_id;type:uuid;not null;index"`
	Title          string     `gorm:"column:title;type:varchar(200);not null"`
	Description    string     `gorm:"column:description;type:text"`
	CreatedByID    uuid.UUID  `gorm:"column:created_by_id;type:uuid;not null"`
	Status         string     `gorm:"column:status;type:varchar(30);not null"`
	ApprovedByTLID *uuid.UUID `gorm:"column:approved_by_tl_id;type:uuid"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (SubTask) TableName() string {
	return "project_subtasks"
}

// Audit is append-only; ActorID becomes NULL when the user row is removed.
type Audit struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	ProjectID uuid.UUID  `gorm:"column:project_id;type:uuid;not null;index"`
	ActorID   *uuid.UUID `gorm:"column:actor_id;type:uuid"`
	Action    string     `gorm:"column:action;type:varchar(30);not null"`
	EntityID  uuid.UUID  `gorm:"column:entity_id;type:uuid;not null"`
	OldValue  string     `gorm:"column:old_value;type:varchar(50);not null"`
	NewValue  string     `gorm:"column:new_value;type:varchar(50);not null"`
	CreatedAt time.Time  `gorm:"column:created_at;not null"`
}

func (Audit) TableName() string {
	return "project_audits"
}
