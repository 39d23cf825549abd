package project

import (
	"testing"

	"go-hrm/internal/identity"
	projecterrors "go-hrm/internal/project/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func principal(role identity.Role) *identity.Principal {
	return &identity.Principal{UserID: uuid.New(), Username: string(role), Role: role}
}

func TestProjectTransition(t *testing.T) {
	dm := principal(identity.RoleDeliveryManager)
	pm := principal(identity.RoleProjectManager)
	mgmt := principal(identity.RoleManagement)
	otherDM := principal(identity.RoleDeliveryManager)
	tl := principal(identity.RoleTL)

	base := Project{ID: uuid.New(), Name: "Atlas", DeliveryManagerID: dm.UserID, ProjectManagerID: &pm.UserID, Status: ProjectAssignedPM}

	tests := []struct {
		name   string
		actor  *identity.Principal
		target string
		err    error
	}{
		{"pm starts", pm, ProjectInProgress, nil},
		{"pm flags risk", pm, ProjectAtRisk, nil},
		{"dm cannot start", dm, ProjectInProgress, identity.ErrForbidden},
		{"tl outside hierarchy", tl, ProjectInProgress, identity.ErrForbidden},
		{"dm completes", dm, ProjectCompleted, nil},
		{"management closes any project", mgmt, ProjectClosed, nil},
		{"other dm cannot complete", otherDM, ProjectCompleted, identity.ErrForbidden},
		{"pm cannot complete", pm, ProjectCompleted, identity.ErrForbidden},
		{"pm holds", pm, ProjectOnHold, nil},
		{"dm holds", dm, ProjectOnHold, nil},
		{"draft is not a target", dm, ProjectDraft, projecterrors.ErrInvalidStatus},
		{"unchanged", pm, ProjectAssignedPM, projecterrors.ErrInvalidStatus},
		{"anonymous", nil, ProjectInProgress, identity.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := base
			change, err := ProjectTransition(tt.actor, &pr, tt.target)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, AuditProjectStatus, change.Kind)
			assert.Equal(t, ProjectAssignedPM, change.Old)
			assert.Equal(t, tt.target, change.New)
			assert.NotContains(t, change.Plan.Recipients, tt.actor.UserID)
		})
	}
}

func TestProjectTransition_StatusUnchanged(t *testing.T) {
	pm := principal(identity.RoleProjectManager)
	pr := Project{ID: uuid.New(), DeliveryManagerID: uuid.New(), ProjectManagerID: &pm.UserID, Status: ProjectInProgress}

	_, err := ProjectTransition(pm, &pr, ProjectInProgress)
	assert.ErrorIs(t, err, projecterrors.ErrStatusUnchanged)
}

func TestProjectTransition_NotifiesDMAndPM(t *testing.T) {
	dm := principal(identity.RoleDeliveryManager)
	pm := principal(identity.RoleProjectManager)
	mgmt := principal(identity.RoleManagement)
	pr := Project{ID: uuid.New(), Name: "Atlas", DeliveryManagerID: dm.UserID, ProjectManagerID: &pm.UserID, Status: ProjectInProgress}

	change, err := ProjectTransition(mgmt, &pr, ProjectClosed)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{dm.UserID, pm.UserID}, change.Plan.Recipients)
}

func TestCheckAssignPM(t *testing.T) {
	dm := principal(identity.RoleDeliveryManager)
	pr := Project{ID: uuid.New(), DeliveryManagerID: dm.UserID, Status: ProjectDraft}

	assert.NoError(t, CheckAssignPM(dm, &pr))
	assert.ErrorIs(t, CheckAssignPM(principal(identity.RoleProjectManager), &pr), identity.ErrForbidden)
	assert.ErrorIs(t, CheckAssignPM(principal(identity.RoleDeliveryManager), &pr), identity.ErrForbidden)
	assert.NoError(t, CheckAssignPM(principal(identity.RoleManagement), &pr))

	pr.Status = ProjectInProgress
	assert.ErrorIs(t, CheckAssignPM(dm, &pr), projecterrors.ErrPMAssignNotAllowed)
}

func TestModuleTransition(t *testing.T) {
	pm := principal(identity.RoleProjectManager)
	tl := principal(identity.RoleTL)
	pr := Project{ID: uuid.New(), DeliveryManagerID: uuid.New(), ProjectManagerID: &pm.UserID, Status: ProjectInProgress}
	m := Module{ID: uuid.New(), ProjectID: pr.ID, TeamLeadID: tl.UserID, Status: ModuleAssigned}

	_, err := ModuleTransition(tl, &pr, &m, ModuleInProgress)
	assert.NoError(t, err)
	_, err = ModuleTransition(pm, &pr, &m, ModuleBlocked)
	assert.ErrorIs(t, err, identity.ErrForbidden)
	_, err = ModuleTransition(tl, &pr, &m, ModuleReturned)
	assert.ErrorIs(t, err, identity.ErrForbidden)

	change, err := ModuleTransition(pm, &pr, &m, ModuleReturned)
	assert.NoError(t, err)
	assert.Equal(t, AuditModuleStatus, change.Kind)
	assert.Equal(t, []uuid.UUID{tl.UserID}, change.Plan.Recipients)
}

func TestTaskTransition(t *testing.T) {
	tl := principal(identity.RoleTL)
	emp := principal(identity.RoleEmployee)
	m := Module{ID: uuid.New(), TeamLeadID: tl.UserID}
	task := Task{ID: uuid.New(), ModuleID: m.ID, ProjectID: uuid.New(), AssignedToID: emp.UserID, CreatedByID: tl.UserID, Status: TaskInProgress}

	tests := []struct {
		name   string
		actor  *identity.Principal
		target string
		open   int64
		err    error
	}{
		{"assignee submits for review", emp, TaskReview, 0, nil},
		{"tl cannot submit for review", tl, TaskReview, 0, identity.ErrForbidden},
		{"tl sends back", tl, TaskRework, 0, nil},
		{"assignee cannot complete", emp, TaskCompleted, 0, identity.ErrForbidden},
		{"open subtasks block completion", tl, TaskCompleted, 1, projecterrors.ErrSubtasksOpen},
		{"tl completes", tl, TaskCompleted, 0, nil},
		{"assigned is not a target", tl, TaskAssigned, 0, projecterrors.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := task
			change, err := TaskTransition(tt.actor, &m, &tk, tt.target, tt.open)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, AuditTaskStatus, change.Kind)
			assert.Equal(t, TaskInProgress, change.Old)
		})
	}
}

func TestSubTaskTransition(t *testing.T) {
	tl := principal(identity.RoleTL)
	owner := principal(identity.RoleEmployee)
	m := Module{ID: uuid.New(), TeamLeadID: tl.UserID}
	task := Task{ID: uuid.New(), ModuleID: m.ID, ProjectID: uuid.New(), AssignedToID: owner.UserID}
	st := SubTask{ID: uuid.New(), TaskID: task.ID, CreatedByID: owner.UserID, Status: SubTaskCreated}

	_, err := SubTaskTransition(owner, &m, &task, &st, SubTaskInProgress)
	assert.NoError(t, err)
	_, err = SubTaskTransition(owner, &m, &task, &st, SubTaskCompleted)
	assert.ErrorIs(t, err, identity.ErrForbidden)
	_, err = SubTaskTransition(principal(identity.RoleEmployee), &m, &task, &st, SubTaskInProgress)
	assert.ErrorIs(t, err, identity.ErrForbidden)

	change, err := SubTaskTransition(tl, &m, &task, &st, SubTaskRejected)
	assert.NoError(t, err)
	assert.Equal(t, AuditSubTaskStatus, change.Kind)
	assert.Equal(t, []uuid.UUID{owner.UserID}, change.Plan.Recipients)
}

func TestCanView(t *testing.T) {
	dm := principal(identity.RoleDeliveryManager)
	pm := principal(identity.RoleProjectManager)
	pr := Project{ID: uuid.New(), DeliveryManagerID: dm.UserID, ProjectManagerID: &pm.UserID}
	emp := principal(identity.RoleEmployee)

	assert.True(t, CanView(principal(identity.RoleHR), &pr, false, false))
	assert.True(t, CanView(principal(identity.RoleManagement), &pr, false, false))
	assert.True(t, CanView(dm, &pr, false, false))
	assert.True(t, CanView(pm, &pr, false, false))
	assert.False(t, CanView(principal(identity.RoleDeliveryManager), &pr, false, false))
	assert.False(t, CanView(emp, &pr, false, false))
	assert.True(t, CanView(emp, &pr, false, true))
	assert.True(t, CanView(principal(identity.RoleTL), &pr, true, false))
	assert.False(t, CanView(nil, &pr, true, true))
}
