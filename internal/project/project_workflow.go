package project

import (
	"fmt"

	"go-hrm/internal/identity"
	"go-hrm/internal/notification"
	projecterrors "go-hrm/internal/project/errors"

	"github.com/google/uuid"
)

// Change is the outcome of an accepted status transition: the audit row
// and the notification to write alongside the status update.
type Change struct {
	Kind     string
	EntityID uuid.UUID
	Old      string
	New      string
	Plan     notification.BroadcastPlan
}

func (c Change) Audit(projectID uuid.UUID, actor *identity.Principal) Audit {
	a := Audit{
		ID:        uuid.New(),
		ProjectID: projectID,
		Action:    c.Kind,
		EntityID:  c.EntityID,
		OldValue:  c.Old,
		NewValue:  c.New,
	}
	if actor != nil {
		id := actor.UserID
		a.ActorID = &id
	}
	return a
}

func isProjectManager(p *identity.Principal, pr *Project) bool {
	return p != nil && pr.ProjectManagerID != nil && *pr.ProjectManagerID == p.UserID
}

// isDeliveryManager: management oversees every project, a delivery manager only their own.
func isDeliveryManager(p *identity.Principal, pr *Project) bool {
	if p == nil {
		return false
	}
	if p.Role == identity.RoleManagement {
		return true
	}
	return p.Role == identity.RoleDeliveryManager && pr.DeliveryManagerID == p.UserID
}

func unchanged(cur, target string) error {
	if cur == target {
		return projecterrors.ErrStatusUnchanged
	}
	return nil
}

func CheckAssignPM(p *identity.Principal, pr *Project) error {
	if err := identity.Require(p, identity.IsDM); err != nil {
		return err
	}
	if !isDeliveryManager(p, pr) {
		return identity.ErrForbidden
	}
	if pr.Status != ProjectDraft {
		return projecterrors.ErrPMAssignNotAllowed
	}
	return nil
}

// ProjectTransition decides who may move a project to target.
// in_progress and at_risk belong to the PM, completed and closed to the DM,
// on_hold to either of them.
func ProjectTransition(p *identity.Principal, pr *Project, target string) (Change, error) {
	if p == nil {
		return Change{}, identity.ErrUnauthenticated
	}
	var allowed bool
	switch target {
	case ProjectInProgress, ProjectAtRisk:
		allowed = isProjectManager(p, pr)
	case ProjectCompleted, ProjectClosed:
		allowed = isDeliveryManager(p, pr)
	case ProjectOnHold:
		allowed = isProjectManager(p, pr) || isDeliveryManager(p, pr)
	default:
		return Change{}, projecterrors.ErrInvalidStatus
	}
	if !allowed {
		return Change{}, identity.ErrForbidden
	}
	if err := unchanged(pr.Status, target); err != nil {
		return Change{}, err
	}

	var recipients []uuid.UUID
	recipients = append(recipients, pr.DeliveryManagerID)
	if pr.ProjectManagerID != nil {
		recipients = append(recipients, *pr.ProjectManagerID)
	}
	plan := notification.NewPlan(
		"Project status updated",
		fmt.Sprintf("Project %s moved from %s to %s", pr.Name, pr.Status, target),
		notification.TypeProject,
		map[string]any{"project_id": pr.ID.String(), "status": target},
		recipients...,
	).Exclude(p.UserID)

	return Change{Kind: AuditProjectStatus, EntityID: pr.ID, Old: pr.Status, New: target, Plan: plan}, nil
}

// ModuleTransition: the module's team lead drives progress, the project
// manager may return the module.
func ModuleTransition(p *identity.Principal, pr *Project, m *Module, target string) (Change, error) {
	if p == nil {
		return Change{}, identity.ErrUnauthenticated
	}
	var allowed bool
	switch target {
	case ModuleInProgress, ModuleBlocked, ModuleCompleted:
		allowed = m.TeamLeadID == p.UserID
	case ModuleReturned:
		allowed = isProjectManager(p, pr)
	default:
		return Change{}, projecterrors.ErrInvalidStatus
	}
	if !allowed {
		return Change{}, identity.ErrForbidden
	}
	if err := unchanged(m.Status, target); err != nil {
		return Change{}, err
	}

	var recipients []uuid.UUID
	if pr.ProjectManagerID != nil {
		recipients = append(recipients, *pr.ProjectManagerID)
	}
	recipients = append(recipients, m.TeamLeadID)
	plan := notification.NewPlan(
		"Module status updated",
		fmt.Sprintf("Module %s moved from %s to %s", m.Name, m.Status, target),
		notification.TypeProject,
		map[string]any{"project_id": pr.ID.String(), "module_id": m.ID.String(), "status": target},
		recipients...,
	).Exclude(p.UserID)

	return Change{Kind: AuditModuleStatus, EntityID: m.ID, Old: m.Status, New: target, Plan: plan}, nil
}

// TaskTransition: the assignee starts work and submits for review, the
// module's team lead sends it back or completes it. Completion needs every
// subtask completed.
func TaskTransition(p *identity.Principal, m *Module, t *Task, target string, openSubtasks int64) (Change, error) {
	if p == nil {
		return Change{}, identity.ErrUnauthenticated
	}
	var allowed bool
	switch target {
	case TaskInProgress, TaskReview:
		allowed = t.AssignedToID == p.UserID
	case TaskRework, TaskCompleted:
		allowed = m.TeamLeadID == p.UserID
	default:
		return Change{}, projecterrors.ErrInvalidStatus
	}
	if !allowed {
		return Change{}, identity.ErrForbidden
	}
	if err := unchanged(t.Status, target); err != nil {
		return Change{}, err
	}
	if target == TaskCompleted && openSubtasks > 0 {
		return Change{}, projecterrors.ErrSubtasksOpen
	}

	plan := notification.NewPlan(
		"Task status updated",
		fmt.Sprintf("Task %s moved from %s to %s", t.Title, t.Status, target),
		notification.TypeProject,
		map[string]any{"project_id": t.ProjectID.String(), "task_id": t.ID.String(), "status": target},
		t.CreatedByID, t.AssignedToID,
	).Exclude(p.UserID)

	return Change{Kind: AuditTaskStatus, EntityID: t.ID, Old: t.Status, New: target, Plan: plan}, nil
}

// SubTaskTransition: the creator may only start work; the module's team lead
// may set any state and is recorded as the approver.
func SubTaskTransition(p *identity.Principal, m *Module, t *Task, st *SubTask, target string) (Change, error) {
	if p == nil {
		return Change{}, identity.ErrUnauthenticated
	}
	switch target {
	case SubTaskInProgress, SubTaskCompleted, SubTaskRejected:
	default:
		return Change{}, projecterrors.ErrInvalidStatus
	}
	isLead := m.TeamLeadID == p.UserID
	if !isLead && !(st.CreatedByID == p.UserID && target == SubTaskInProgress) {
		return Change{}, identity.ErrForbidden
	}
	if err := unchanged(st.Status, target); err != nil {
		return Change{}, err
	}

	plan := notification.NewPlan(
		"Subtask status updated",
		fmt.Sprintf("Subtask %s moved from %s to %s", st.Title, st.Status, target),
		notification.TypeProject,
		map[string]any{"project_id": t.ProjectID.String(), "task_id": t.ID.String(), "subtask_id": st.ID.String(), "status": target},
		st.CreatedByID,
	).Exclude(p.UserID)

	return Change{Kind: AuditSubTaskStatus, EntityID: st.ID, Old: st.Status, New: target, Plan: plan}, nil
}

// CanView reports whether p may read the project. Employees need an assigned
// task in it, which the caller resolves.
func CanView(p *identity.Principal, pr *Project, leadsModule, hasTask bool) bool {
	switch {
	case p == nil:
		return false
	case identity.IsHR(p), isDeliveryManager(p, pr), isProjectManager(p, pr):
		return true
	case leadsModule, hasTask:
		return true
	}
	return false
}
