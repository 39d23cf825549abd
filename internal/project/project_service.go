package project

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrm/internal/identity"
	"go-hrm/internal/notification"
	projecterrors "go-hrm/internal/project/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	CreateProject(ctx context.Context, actor *identity.Principal, req CreateProjectRequest) (ProjectResponse, error)
	AssignPM(ctx context.Context, actor *identity.Principal, projectID string, req AssignPMRequest) (ProjectResponse, error)
	UpdateProjectStatus(ctx context.Context, actor *identity.Principal, projectID string, req StatusRequest) (ProjectResponse, error)
	ListProjects(ctx context.Context, actor *identity.Principal, page, pageSize int) ([]ProjectResponse, int64, error)
	GetProjectTree(ctx context.Context, actor *identity.Principal, projectID string) (ProjectTreeResponse, error)
	ListAudits(ctx context.Context, actor *identity.Principal, projectID string, page, pageSize int) ([]AuditResponse, int64, error)

	CreateModule(ctx context.Context, actor *identity.Principal, projectID string, req CreateModuleRequest) (ModuleResponse, error)
	UpdateModuleStatus(ctx context.Context, actor *identity.Principal, moduleID string, req StatusRequest) (ModuleResponse, error)

	CreateTask(ctx context.Context, actor *identity.Principal, moduleID string, req CreateTaskRequest) (TaskResponse, error)
	UpdateTaskStatus(ctx context.Context, actor *identity.Principal, taskID string, req StatusRequest) (TaskResponse, error)
	MyTasks(ctx context.Context, actor *identity.Principal, page, pageSize int) ([]TaskResponse, int64, error)

	CreateSubTask(ctx context.Context, actor *identity.Principal, taskID string, req CreateSubTaskRequest) (SubTaskResponse, error)
	UpdateSubTaskStatus(ctx context.Context, actor *identity.Principal, subTaskID string, req StatusRequest) (SubTaskResponse, error)

	DMDashboard(ctx context.Context, actor *identity.Principal) (DMDashboardResponse, error)
	PMDashboard(ctx context.Context, actor *identity.Principal) (PMDashboardResponse, error)
	TLDashboard(ctx context.Context, actor *identity.Principal) (TLDashboardResponse, error)
}

type service struct {
	db            *gorm.DB
	repo          Repository
	users         user.Repository
	notifications notification.Repository
	now           func() time.Time
	logger        *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	users user.Repository,
	notifications notification.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		users:         users,
		notifications: notifications,
		now:           time.Now,
		logger:        l,
	}
}

func (s *service) CreateProject(ctx context.Context, actor *identity.Principal, req CreateProjectRequest) (ProjectResponse, error) {
	if err := identity.Require(actor, identity.IsDM); err != nil {
		return ProjectResponse{}, err
	}
	s.logger.Debug("create project requested", zap.String("actor_id", actor.UserID.String()), zap.String("name", req.Name))

	p := &Project{
		ID:                uuid.New(),
		Name:              strings.TrimSpace(req.Name),
		Description:       strings.TrimSpace(req.Description),
		DeliveryManagerID: actor.UserID,
		Status:            ProjectDraft,
	}
	if p.Name == "" {
		return ProjectResponse{}, apperror.RequiredField("name")
	}
	if err := s.repo.CreateProject(ctx, p); err != nil {
		s.logger.Error("create project failed", zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("project created", zap.String("project_id", p.ID.String()))
	return mapProject(*p), nil
}

func (s *service) AssignPM(ctx context.Context, actor *identity.Principal, projectID string, req AssignPMRequest) (ProjectResponse, error) {
	if err := identity.Require(actor, identity.IsDM); err != nil {
		return ProjectResponse{}, err
	}
	id, err := parseID(projectID)
	if err != nil {
		return ProjectResponse{}, err
	}
	pmID, err := uuid.Parse(strings.TrimSpace(req.ProjectManagerID))
	if err != nil {
		return ProjectResponse{}, apperror.InvalidField("project_manager_id")
	}
	s.logger.Debug("assign pm requested",
		zap.String("actor_id", actor.UserID.String()),
		zap.String("project_id", id.String()),
		zap.String("project_manager_id", pmID.String()),
	)

	if err := s.requireUser(ctx, pmID, projecterrors.ErrInvalidProjectManager, identity.RoleProjectManager); err != nil {
		return ProjectResponse{}, err
	}

	var out Project
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		p, err := s.findProject(ctx, qtx, id, true)
		if err != nil {
			return err
		}
		if err := CheckAssignPM(actor, p); err != nil {
			return err
		}

		change := Change{
			Kind:     AuditProjectStatus,
			EntityID: p.ID,
			Old:      p.Status,
			New:      ProjectAssignedPM,
			Plan: notification.NewPlan(
				"Project assigned",
				"You have been assigned as project manager of "+p.Name,
				notification.TypeProject,
				map[string]any{"project_id": p.ID.String()},
				pmID,
			).Exclude(actor.UserID),
		}

		p.ProjectManagerID = &pmID
		p.Status = ProjectAssignedPM
		if err := qtx.UpdateProject(ctx, p); err != nil {
			return err
		}
		if err := s.record(ctx, tx, qtx, p.ID, actor, change); err != nil {
			return err
		}
		out = *p
		return nil
	})
	if err != nil {
		s.logFailure("assign pm", actor.UserID, err)
		return ProjectResponse{}, err
	}

	s.logger.Info("assign pm success", zap.String("project_id", out.ID.String()))
	return mapProject(out), nil
}

func (s *service) UpdateProjectStatus(ctx context.Context, actor *identity.Principal, projectID string, req StatusRequest) (ProjectResponse, error) {
	if actor == nil {
		return ProjectResponse{}, identity.ErrUnauthenticated
	}
	id, err := parseID(projectID)
	if err != nil {
		return ProjectResponse{}, err
	}
	target := normalizeStatus(req.Status)
	s.logger.Debug("project status requested",
		zap.String("actor_id", actor.UserID.String()),
		zap.String("project_id", id.String()),
		zap.String("status", target),
	)

	var out Project
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		p, err := s.findProject(ctx, qtx, id, true)
		if err != nil {
			return err
		}
		change, err := ProjectTransition(actor, p, target)
		if err != nil {
			return err
		}

		p.Status = target
		if err := qtx.UpdateProject(ctx, p); err != nil {
			return err
		}
		if err := s.record(ctx, tx, qtx, p.ID, actor, change); err != nil {
			return err
		}
		out = *p
		return nil
	})
	if err != nil {
		s.logFailure("project status", actor.UserID, err)
		return ProjectResponse{}, err
	}

	s.logger.Info("project status updated",
		zap.String("project_id", out.ID.String()),
		zap.String("status", out.Status),
	)
	return mapProject(out), nil
}

func (s *service) ListProjects(ctx context.Context, actor *identity.Principal, page, pageSize int) ([]ProjectResponse, int64, error) {
	if actor == nil {
		return nil, 0, identity.ErrUnauthenticated
	}
	all := identity.IsHR(actor)
	items, total, err := s.repo.ListVisible(ctx, actor.UserID, all, page, pageSize)
	if err != nil {
		s.logger.Error("list projects failed", zap.Error(err))
		return nil, 0, err
	}
	out := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, mapProject(p))
	}
	return out, total, nil
}

func (s *service) GetProjectTree(ctx context.Context, actor *identity.Principal, projectID string) (ProjectTreeResponse, error) {
	p, err := s.visibleProject(ctx, actor, projectID)
	if err != nil {
		return ProjectTreeResponse{}, err
	}

	modules, err := s.repo.ListModules(ctx, p.ID)
	if err != nil {
		return ProjectTreeResponse{}, err
	}
	tasks, err := s.repo.ListTasks(ctx, p.ID)
	if err != nil {
		return ProjectTreeResponse{}, err
	}
	taskIDs := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}
	subtasks, err := s.repo.ListSubTasks(ctx, taskIDs)
	if err != nil {
		return ProjectTreeResponse{}, err
	}

	subByTask := make(map[uuid.UUID][]SubTaskResponse)
	for _, st := range subtasks {
		subByTask[st.TaskID] = append(subByTask[st.TaskID], mapSubTask(st))
	}
	tasksByModule := make(map[uuid.UUID][]TaskResponse)
	for _, t := range tasks {
		tr := mapTask(t)
		tr.SubTasks = subByTask[t.ID]
		tasksByModule[t.ModuleID] = append(tasksByModule[t.ModuleID], tr)
	}

	tree := ProjectTreeResponse{ProjectResponse: mapProject(*p), Modules: make([]ModuleResponse, 0, len(modules))}
	for _, m := range modules {
		mr := mapModule(m)
		mr.Tasks = tasksByModule[m.ID]
		tree.Modules = append(tree.Modules, mr)
	}
	return tree, nil
}

func (s *service) ListAudits(ctx context.Context, actor *identity.Principal, projectID string, page, pageSize int) ([]AuditResponse, int64, error) {
	p, err := s.visibleProject(ctx, actor, projectID)
	if err != nil {
		return nil, 0, err
	}
	items, total, err := s.repo.ListAudits(ctx, p.ID, page, pageSize)
	if err != nil {
		s.logger.Error("list project audits failed", zap.Error(err))
		return nil, 0, err
	}
	out := make([]AuditResponse, 0, len(items))
	for _, a := range items {
		out = append(out, mapAudit(a))
	}
	return out, total, nil
}

func (s *service) CreateModule(ctx context.Context, actor *identity.Principal, projectID string, req CreateModuleRequest) (ModuleResponse, error) {
	if actor == nil {
		return ModuleResponse{}, identity.ErrUnauthenticated
	}
	id, err := parseID(projectID)
	if err != nil {
		return ModuleResponse{}, err
	}
	tlID, err := uuid.Parse(strings.TrimSpace(req.TeamLeadID))
	if err != nil {
		return ModuleResponse{}, apperror.InvalidField("team_lead_id")
	}

	p, err := s.findProject(ctx, s.repo, id, false)
	if err != nil {
		return ModuleResponse{}, err
	}
	if !isProjectManager(actor, p) {
		return ModuleResponse{}, identity.ErrForbidden
	}
	if err := s.requireUser(ctx, tlID, projecterrors.ErrInvalidTeamLead, identity.RoleTL); err != nil {
		return ModuleResponse{}, err
	}

	m := &Module{
		ID:          uuid.New(),
		ProjectID:   p.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		TeamLeadID:  tlID,
		Status:      ModuleAssigned,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).CreateModule(ctx, m); err != nil {
			return err
		}
		plan := notification.NewPlan(
			"Module assigned",
			"You lead module "+m.Name+" in project "+p.Name,
			notification.TypeProject,
			map[string]any{"project_id": p.ID.String(), "module_id": m.ID.String()},
			tlID,
		).Exclude(actor.UserID)
		_, err := s.notifications.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		s.logFailure("create module", actor.UserID, err)
		return ModuleResponse{}, err
	}

	s.logger.Info("module created", zap.String("module_id", m.ID.String()), zap.String("project_id", p.ID.String()))
	return mapModule(*m), nil
}

func (s *service) UpdateModuleStatus(ctx context.Context, actor *identity.Principal, moduleID string, req StatusRequest) (ModuleResponse, error) {
	if actor == nil {
		return ModuleResponse{}, identity.ErrUnauthenticated
	}
	id, err := parseID(moduleID)
	if err != nil {
		return ModuleResponse{}, err
	}
	target := normalizeStatus(req.Status)

	var out Module
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		m, err := s.findModule(ctx, qtx, id, true)
		if err != nil {
			return err
		}
		p, err := s.findProject(ctx, qtx, m.ProjectID, false)
		if err != nil {
			return err
		}
		change, err := ModuleTransition(actor, p, m, target)
		if err != nil {
			return err
		}

		m.Status = target
		if err := qtx.UpdateModule(ctx, m); err != nil {
			return err
		}
		if err := s.record(ctx, tx, qtx, p.ID, actor, change); err != nil {
			return err
		}
		out = *m
		return nil
	})
	if err != nil {
		s.logFailure("module status", actor.UserID, err)
		return ModuleResponse{}, err
	}

	s.logger.Info("module status updated", zap.String("module_id", out.ID.String()), zap.String("status", out.Status))
	return mapModule(out), nil
}

func (s *service) CreateTask(ctx context.Context, actor *identity.Principal, moduleID string, req CreateTaskRequest) (TaskResponse, error) {
	if actor == nil {
		return TaskResponse{}, identity.ErrUnauthenticated
	}
	id, err := parseID(moduleID)
	if err != nil {
		return TaskResponse{}, err
	}
	assigneeID, err := uuid.Parse(strings.TrimSpace(req.AssignedToID))
	if err != nil {
		return TaskResponse{}, apperror.InvalidField("assigned_to_id")
	}
	var due *time.Time
	if raw := strings.TrimSpace(req.DueDate); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return TaskResponse{}, projecterrors.ErrInvalidDueDate
		}
		due = &d
	}

	m, err := s.findModule(ctx, s.repo, id, false)
	if err != nil {
		return TaskResponse{}, err
	}
	if m.TeamLeadID != actor.UserID {
		return TaskResponse{}, identity.ErrForbidden
	}
	if err := s.requireUser(ctx, assigneeID, projecterrors.ErrInvalidAssignee); err != nil {
		return TaskResponse{}, err
	}

	now := s.now()
	t := &Task{
		ID:           uuid.New(),
		ModuleID:     m.ID,
		ProjectID:    m.ProjectID,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		AssignedToID: assigneeID,
		CreatedByID:  actor.UserID,
		Status:       TaskAssigned,
		AssignedDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		DueDate:      due,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).CreateTask(ctx, t); err != nil {
			return err
		}
		plan := notification.NewPlan(
			"Task assigned",
			"New task: "+t.Title,
			notification.TypeProject,
			map[string]any{"project_id": t.ProjectID.String(), "task_id": t.ID.String()},
			assigneeID,
		).Exclude(actor.UserID)
		_, err := s.notifications.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		s.logFailure("create task", actor.UserID, err)
		return TaskResponse{}, err
	}

	s.logger.Info("task created", zap.String("task_id", t.ID.String()), zap.String("module_id", m.ID.String()))
	return mapTask(*t), nil
}

func (s *service) UpdateTaskStatus(ctx context.Context, actor *identity.Principal, taskID string, req StatusRequest) (TaskResponse, error) {
	if actor == nil {
		return TaskResponse{}, identity.ErrUnauthenticated
	}
	id, err := parseID(taskID)
	if err != nil {
		return TaskResponse{}, err
	}
	target := normalizeStatus(req.Status)

	var out Task
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		t, err := s.findTask(ctx, qtx, id, true)
		if err != nil {
			return err
		}
		m, err := s.findModule(ctx, qtx, t.ModuleID, false)
		if err != nil {
			return err
		}
		var open int64
		if target == TaskCompleted {
			if open, err = qtx.CountOpenSubTasks(ctx, t.ID); err != nil {
				return err
			}
		}
		change, err := TaskTransition(actor, m, t, target, open)
		if err != nil {
			return err
		}

		t.Status = target
		if err := qtx.UpdateTask(ctx, t); err != nil {
			return err
		}
		if err := s.record(ctx, tx, qtx, t.ProjectID, actor, change); err != nil {
			return err
		}
		out = *t
		return nil
	})
	if err != nil {
		s.logFailure("task status", actor.UserID, err)
		return TaskResponse{}, err
	}

	s.logger.Info("task status updated", zap.String("task_id", out.ID.String()), zap.String("status", out.Status))
	return mapTask(out), nil
}

func (s *service) MyTasks(ctx context.Context, actor *identity.Principal, page, pageSize int) ([]TaskResponse, int64, error) {
	if actor == nil {
		return nil, 0, identity.ErrUnauthenticated
	}
	items, total, err := s.repo.ListTasksByAssignee(ctx, actor.UserID, page, pageSize)
	if err != nil {
		s.logger.Error("list my tasks failed", zap.Error(err))
		return nil, 0, err
	}
	out := make([]TaskResponse, 0, len(items))
	for _, t := range items {
		out = append(out, mapTask(t))
	}
	return out, total, nil
}

func (s *service) CreateSubTask(ctx context.Context, actor *identity.Principal, taskID string, req CreateSubTaskRequest) (SubTaskResponse, error) {
	if actor == nil {
		return SubTaskResponse{}, identity.ErrUnauthenticated
	}
	id, err := parseID(taskID)
	if err != nil {
		return SubTaskResponse{}, err
	}

	t, err := s.findTask(ctx, s.repo, id, false)
	if err != nil {
		return SubTaskResponse{}, err
	}
	if t.AssignedToID != actor.UserID {
		return SubTaskResponse{}, identity.ErrForbidden
	}

	st := &SubTask{
		ID:          uuid.New(),
		TaskID:      t.ID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		CreatedByID: actor.UserID,
		Status:      SubTaskCreated,
	}
	if err := s.repo.CreateSubTask(ctx, st); err != nil {
		s.logger.Error("create subtask failed", zap.Error(err))
		return SubTaskResponse{}, err
	}

	s.logger.Info("subtask created", zap.String("subtask_id", st.ID.String()), zap.String("task_id", t.ID.String()))
	return mapSubTask(*st), nil
}

func (s *service) UpdateSubTaskStatus(ctx context.Context, actor *identity.Principal, subTaskID string, req StatusRequest) (SubTaskResponse, error) {
	if actor == nil {
		return SubTaskResponse{}, identity.ErrUnauthenticated
	}
	id, err := parseID(subTaskID)
	if err != nil {
		return SubTaskResponse{}, err
	}
	target := normalizeStatus(req.Status)

	var out SubTask
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		st, err := qtx.FindSubTask(ctx, id, true)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return projecterrors.ErrSubTaskNotFound
			}
			return err
		}
		t, err := s.findTask(ctx, qtx, st.TaskID, false)
		if err != nil {
			return err
		}
		m, err := s.findModule(ctx, qtx, t.ModuleID, false)
		if err != nil {
			return err
		}
		change, err := SubTaskTransition(actor, m, t, st, target)
		if err != nil {
			return err
		}

		st.Status = target
		if m.TeamLeadID == actor.UserID {
			approver := actor.UserID
			st.ApprovedByTLID = &approver
		}
		if err := qtx.UpdateSubTask(ctx, st); err != nil {
			return err
		}
		if err := s.record(ctx, tx, qtx, t.ProjectID, actor, change); err != nil {
			return err
		}
		out = *st
		return nil
	})
	if err != nil {
		s.logFailure("subtask status", actor.UserID, err)
		return SubTaskResponse{}, err
	}

	s.logger.Info("subtask status updated", zap.String("subtask_id", out.ID.String()), zap.String("status", out.Status))
	return mapSubTask(out), nil
}

func (s *service) DMDashboard(ctx context.Context, actor *identity.Principal) (DMDashboardResponse, error) {
	if err := identity.Require(actor, identity.IsDM); err != nil {
		return DMDashboardResponse{}, err
	}
	var scope *uuid.UUID
	if actor.Role != identity.RoleManagement {
		scope = &actor.UserID
	}
	rows, err := s.repo.CountProjectsByStatus(ctx, scope)
	if err != nil {
		s.logger.Error("dm dashboard failed", zap.Error(err))
		return DMDashboardResponse{}, err
	}
	counts, total := tally(rows)
	return DMDashboardResponse{
		TotalProjects: total,
		InProgress:    counts[ProjectInProgress],
		AtRisk:        counts[ProjectAtRisk],
		Completed:     counts[ProjectCompleted],
	}, nil
}

func (s *service) PMDashboard(ctx context.Context, actor *identity.Principal) (PMDashboardResponse, error) {
	if err := identity.Require(actor, identity.IsPM); err != nil {
		return PMDashboardResponse{}, err
	}
	rows, err := s.repo.CountModulesByStatus(ctx, actor.UserID)
	if err != nil {
		s.logger.Error("pm dashboard failed", zap.Error(err))
		return PMDashboardResponse{}, err
	}
	counts, total := tally(rows)
	return PMDashboardResponse{
		TotalModules: total,
		Blocked:      counts[ModuleBlocked],
		Completed:    counts[ModuleCompleted],
	}, nil
}

func (s *service) TLDashboard(ctx context.Context, actor *identity.Principal) (TLDashboardResponse, error) {
	if err := identity.Require(actor, identity.IsTL); err != nil {
		return TLDashboardResponse{}, err
	}
	rows, err := s.repo.CountTasksByStatus(ctx, actor.UserID)
	if err != nil {
		s.logger.Error("tl dashboard failed", zap.Error(err))
		return TLDashboardResponse{}, err
	}
	counts, total := tally(rows)
	return TLDashboardResponse{
		AssignedTasks: total,
		PendingReview: counts[TaskReview],
		Completed:     counts[TaskCompleted],
	}, nil
}

// record writes the audit row and the stakeholder notifications inside tx.
func (s *service) record(ctx context.Context, tx *gorm.DB, qtx Repository, projectID uuid.UUID, actor *identity.Principal, change Change) error {
	a := change.Audit(projectID, actor)
	a.CreatedAt = s.now()
	if err := qtx.CreateAudit(ctx, &a); err != nil {
		return err
	}
	if change.Plan.Empty() {
		return nil
	}
	_, err := s.notifications.WithTx(tx).Apply(ctx, change.Plan)
	return err
}

func (s *service) visibleProject(ctx context.Context, actor *identity.Principal, projectID string) (*Project, error) {
	if actor == nil {
		return nil, identity.ErrUnauthenticated
	}
	id, err := parseID(projectID)
	if err != nil {
		return nil, err
	}
	p, err := s.findProject(ctx, s.repo, id, false)
	if err != nil {
		return nil, err
	}
	if CanView(actor, p, false, false) {
		return p, nil
	}

	leads, err := s.repo.LeadsModuleIn(ctx, p.ID, actor.UserID)
	if err != nil {
		return nil, err
	}
	hasTask := false
	if !leads {
		if hasTask, err = s.repo.HasTaskIn(ctx, p.ID, actor.UserID); err != nil {
			return nil, err
		}
	}
	if !CanView(actor, p, leads, hasTask) {
		// disembunyikan, bukan forbidden
		return nil, projecterrors.ErrProjectNotFound
	}
	return p, nil
}

// requireUser checks the referenced user exists, is active and, when roles
// are given, holds one of them.
func (s *service) requireUser(ctx context.Context, id uuid.UUID, invalid error, roles ...identity.Role) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalid
		}
		return err
	}
	if !u.IsActive {
		return invalid
	}
	if len(roles) == 0 {
		return nil
	}
	for _, r := range roles {
		if u.Role == r {
			return nil
		}
	}
	return invalid
}

func (s *service) findProject(ctx context.Context, repo Repository, id uuid.UUID, forUpdate bool) (*Project, error) {
	p, err := repo.FindProject(ctx, id, forUpdate)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, projecterrors.ErrProjectNotFound
	}
	return p, err
}

func (s *service) findModule(ctx context.Context, repo Repository, id uuid.UUID, forUpdate bool) (*Module, error) {
	m, err := repo.FindModule(ctx, id, forUpdate)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, projecterrors.ErrModuleNotFound
	}
	return m, err
}

func (s *service) findTask(ctx context.Context, repo Repository, id uuid.UUID, forUpdate bool) (*Task, error) {
	t, err := repo.FindTask(ctx, id, forUpdate)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, projecterrors.ErrTaskNotFound
	}
	return t, err
}

func (s *service) logFailure(op string, actorID uuid.UUID, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
		s.logger.Warn(op+" rejected", zap.String("actor_id", actorID.String()), zap.Error(err))
		return
	}
	s.logger.Error(op+" failed", zap.String("actor_id", actorID.String()), zap.Error(err))
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, projecterrors.ErrInvalidID
	}
	return id, nil
}

func normalizeStatus(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func tally(rows []StatusCount) (map[string]int64, int64) {
	counts := make(map[string]int64, len(rows))
	var total int64
	for _, r := range rows {
		counts[r.Status] += r.Count
		total += r.Count
	}
	return counts, total
}

func formatID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapProject(p Project) ProjectResponse {
	return ProjectResponse{
		ID:                p.ID.String(),
		Name:              p.Name,
		Description:       p.Description,
		DeliveryManagerID: p.DeliveryManagerID.String(),
		ProjectManagerID:  formatID(p.ProjectManagerID),
		Status:            p.Status,
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapModule(m Module) ModuleResponse {
	return ModuleResponse{
		ID:          m.ID.String(),
		ProjectID:   m.ProjectID.String(),
		Name:        m.Name,
		Description: m.Description,
		TeamLeadID:  m.TeamLeadID.String(),
		Status:      m.Status,
	}
}

func mapTask(t Task) TaskResponse {
	var due *string
	if t.DueDate != nil {
		v := t.DueDate.Format(dateLayout)
		due = &v
	}
	return TaskResponse{
		ID:           t.ID.String(),
		ModuleID:     t.ModuleID.String(),
		ProjectID:    t.ProjectID.String(),
		Title:        t.Title,
		Description:  t.Description,
		AssignedToID: t.AssignedToID.String(),
		CreatedByID:  t.CreatedByID.String(),
		Status:       t.Status,
		AssignedDate: t.AssignedDate.Format(dateLayout),
		DueDate:      due,
	}
}

func mapSubTask(st SubTask) SubTaskResponse {
	return SubTaskResponse{
		ID:             st.ID.String(),
		TaskID:         st.TaskID.String(),
		Title:          st.Title,
		Description:    st.Description,
		CreatedByID:    st.CreatedByID.String(),
		Status:         st.Status,
		ApprovedByTLID: formatID(st.ApprovedByTLID),
	}
}

func mapAudit(a Audit) AuditResponse {
	return AuditResponse{
		ID:        a.ID.String(),
		ProjectID: a.ProjectID.String(),
		ActorID:   formatID(a.ActorID),
		Action:    a.Action,
		EntityID:  a.EntityID.String(),
		OldValue:  a.OldValue,
		NewValue:  a.NewValue,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
