package project

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatusCount struct {
	Status string
	Count  int64
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateProject(ctx context.Context, p *Project) error
	UpdateProject(ctx context.Context, p *Project) error
	FindProject(ctx context.Context, id uuid.UUID, forUpdate bool) (*Project, error)
	ListVisible(ctx context.Context, viewerID uuid.UUID, all bool, page, pageSize int) ([]Project, int64, error)

	CreateModule(ctx context.Context, m *Module) error
	UpdateModule(ctx context.Context, m *Module) error
	FindModule(ctx context.Context, id uuid.UUID, forUpdate bool) (*Module, error)
	ListModules(ctx context.Context, projectID uuid.UUID) ([]Module, error)
	LeadsModuleIn(ctx context.Context, projectID, userID uuid.UUID) (bool, error)

	CreateTask(ctx context.Context, t *Task) error
	UpdateTask(ctx context.Context, t *Task) error
	FindTask(ctx context.Context, id uuid.UUID, forUpdate bool) (*Task, error)
	ListTasks(ctx context.Context, projectID uuid.UUID) ([]Task, error)
	ListTasksByAssignee(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]Task, int64, error)
	HasTaskIn(ctx context.Context, projectID, userID uuid.UUID) (bool, error)

	CreateSubTask(ctx context.Context, st *SubTask) error
	UpdateSubTask(ctx context.Context, st *SubTask) error
	FindSubTask(ctx context.Context, id uuid.UUID, forUpdate bool) (*SubTask, error)
	ListSubTasks(ctx context.Context, taskIDs []uuid.UUID) ([]SubTask, error)
	CountOpenSubTasks(ctx context.Context, taskID uuid.UUID) (int64, error)

	CreateAudit(ctx context.Context, a *Audit) error
	ListAudits(ctx context.Context, projectID uuid.UUID, page, pageSize int) ([]Audit, int64, error)

	CountProjectsByStatus(ctx context.Context, deliveryManagerID *uuid.UUID) ([]StatusCount, error)
	CountModulesByStatus(ctx context.Context, projectManagerID uuid.UUID) ([]StatusCount, error)
	CountTasksByStatus(ctx context.Context, createdByID uuid.UUID) ([]StatusCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) lock(db *gorm.DB, forUpdate bool) *gorm.DB {
	if forUpdate {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func paginate(q *gorm.DB, page, pageSize int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return q
	}
	return q.Offset((page - 1) * pageSize).Limit(pageSize)
}

func (r *repository) CreateProject(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) UpdateProject(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) FindProject(ctx context.Context, id uuid.UUID, forUpdate bool) (*Project, error) {
	var p Project
	if err := r.lock(r.db.WithContext(ctx), forUpdate).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListVisible lists projects the viewer manages, leads a module in, or has a
// task in. all skips the filter.
func (r *repository) ListVisible(ctx context.Context, viewerID uuid.UUID, all bool, page, pageSize int) ([]Project, int64, error) {
	q := r.db.WithContext(ctx).Model(&Project{})
	if !all {
		q = q.Where(
			"delivery_manager_id = ? OR project_manager_id = ? OR id IN (?) OR id IN (?)",
			viewerID,
			viewerID,
			r.db.Model(&Module{}).Select("project_id").Where("team_lead_id = ?", viewerID),
			r.db.Model(&Task{}).Select("project_id").Where("assigned_to_id = ?", viewerID),
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Project
	err := paginate(q.Order("created_at DESC"), page, pageSize).Find(&items).Error
	return items, total, err
}

func (r *repository) CreateModule(ctx context.Context, m *Module) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) UpdateModule(ctx context.Context, m *Module) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repository) FindModule(ctx context.Context, id uuid.UUID, forUpdate bool) (*Module, error) {
	var m Module
	if err := r.lock(r.db.WithContext(ctx), forUpdate).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) ListModules(ctx context.Context, projectID uuid.UUID) ([]Module, error) {
	var items []Module
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) LeadsModuleIn(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Module{}).
		Where("project_id = ? AND team_lead_id = ?", projectID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) CreateTask(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) UpdateTask(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) FindTask(ctx context.Context, id uuid.UUID, forUpdate bool) (*Task, error) {
	var t Task
	if err := r.lock(r.db.WithContext(ctx), forUpdate).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListTasks(ctx context.Context, projectID uuid.UUID) ([]Task, error) {
	var items []Task
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) ListTasksByAssignee(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]Task, int64, error) {
	q := r.db.WithContext(ctx).Model(&Task{}).Where("assigned_to_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Task
	err := paginate(q.Order("due_date ASC NULLS LAST, created_at DESC"), page, pageSize).Find(&items).Error
	return items, total, err
}

func (r *repository) HasTaskIn(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Task{}).
		Where("project_id = ? AND assigned_to_id = ?", projectID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) CreateSubTask(ctx context.Context, st *SubTask) error {
	return r.db.WithContext(ctx).Create(st).Error
}

func (r *repository) UpdateSubTask(ctx context.Context, st *SubTask) error {
	return r.db.WithContext(ctx).Save(st).Error
}

func (r *repository) FindSubTask(ctx context.Context, id uuid.UUID, forUpdate bool) (*SubTask, error) {
	var st SubTask
	if err := r.lock(r.db.WithContext(ctx), forUpdate).First(&st, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *repository) ListSubTasks(ctx context.Context, taskIDs []uuid.UUID) ([]SubTask, error) {
	var items []SubTask
	if len(taskIDs) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).
		Where("task_id IN ?", taskIDs).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) CountOpenSubTasks(ctx context.Context, taskID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&SubTask{}).
		Where("task_id = ? AND status <> ?", taskID, SubTaskCompleted).
		Count(&n).Error
	return n, err
}

func (r *repository) CreateAudit(ctx context.Context, a *Audit) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) ListAudits(ctx context.Context, projectID uuid.UUID, page, pageSize int) ([]Audit, int64, error) {
	q := r.db.WithContext(ctx).Model(&Audit{}).Where("project_id = ?", projectID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Audit
	err := paginate(q.Order("created_at DESC"), page, pageSize).Find(&items).Error
	return items, total, err
}

func (r *repository) countByStatus(q *gorm.DB) ([]StatusCount, error) {
	var rows []StatusCount
	err := q.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error
	return rows, err
}

// CountProjectsByStatus counts every project when deliveryManagerID is nil.
func (r *repository) CountProjectsByStatus(ctx context.Context, deliveryManagerID *uuid.UUID) ([]StatusCount, error) {
	q := r.db.WithContext(ctx).Model(&Project{})
	if deliveryManagerID != nil {
		q = q.Where("delivery_manager_id = ?", *deliveryManagerID)
	}
	return r.countByStatus(q)
}

func (r *repository) CountModulesByStatus(ctx context.Context, projectManagerID uuid.UUID) ([]StatusCount, error) {
	q := r.db.WithContext(ctx).Model(&Module{}).
		Where("project_id IN (?)", r.db.Model(&Project{}).Select("id").Where("project_manager_id = ?", projectManagerID))
	return r.countByStatus(q)
}

func (r *repository) CountTasksByStatus(ctx context.Context, createdByID uuid.UUID) ([]StatusCount, error) {
	q := r.db.WithContext(ctx).Model(&Task{}).Where("created_by_id = ?", createdByID)
	return r.countByStatus(q)
}
