package employee

import (
	"context"
	"strings"

	"go-hrm/internal/identity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFilter narrows the HR employee listing.
type ListFilter struct {
	Search   string
	Page     int
	PageSize int
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]Profile, error)
	FindByWorkEmail(ctx context.Context, email string) (*Profile, error)
	WorkEmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, f ListFilter) ([]Profile, int64, error)
	ListByTeamLead(ctx context.Context, teamLeadID uuid.UUID) ([]Profile, error)
	ListActiveTeamLeads(ctx context.Context, department string) ([]Profile, error)
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

func (r *repository) Create(ctx context.Context, p *Profile) error {
	p.WorkEmail = strings.ToLower(strings.TrimSpace(p.WorkEmail))
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	var p Profile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	var p Profile
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]Profile, error) {
	var items []Profile
	if len(userIDs) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&items).Error
	return items, err
}

func (r *repository) FindByWorkEmail(ctx context.Context, email string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).
		Where("LOWER(work_email) = LOWER(?)", strings.TrimSpace(email)).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) WorkEmailExists(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Profile{}).
		Where("LOWER(work_email) = LOWER(?)", email).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]Profile, int64, error) {
	var (
		items []Profile
		total int64
	)

	q := r.db.WithContext(ctx).Model(&Profile{})
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR emp_id ILIKE ? OR department ILIKE ?",
			like, like, like, like,
		)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("emp_id ASC").
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&items).Error
	return items, total, err
}

func (r *repository) ListByTeamLead(ctx context.Context, teamLeadID uuid.UUID) ([]Profile, error) {
	var items []Profile
	err := r.db.WithContext(ctx).
		Where("team_lead_id = ? AND is_active = ?", teamLeadID, true).
		Order("first_name ASC").
		Find(&items).Error
	return items, err
}

// ListActiveTeamLeads returns profiles of active users with role tl.
// An empty department lists every team lead.
func (r *repository) ListActiveTeamLeads(ctx context.Context, department string) ([]Profile, error) {
	var items []Profile
	q := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = employee_profiles.user_id").
		Where("users.role = ? AND users.is_active = ?", identity.RoleTL, true)
	if department != "" {
		q = q.Where("employee_profiles.department = ?", department)
	}
	err := q.Order("employee_profiles.first_name ASC").Find(&items).Error
	return items, err
}
