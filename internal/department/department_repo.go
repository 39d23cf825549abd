package department

import (
	"context"

	"go-hrm/internal/employee"
	"go-hrm/internal/identity"

	"gorm.io/gorm"
)

// Repository reads the department view of active employee profiles.
type Repository interface {
	Headcounts(ctx context.Context) (map[string]int64, error)
	ActiveTeamLeads(ctx context.Context) ([]employee.Profile, error)
	Members(ctx context.Context, department string, page, pageSize int) ([]employee.Profile, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Headcounts(ctx context.Context) (map[string]int64, error) {
	var rows []headcount
	err := r.db.WithContext(ctx).
		Model(&employee.Profile{}).
		Select("department, COUNT(*) AS total").
		Where("is_active = ?", true).
		Group("department").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Department] = row.Total
	}
	return out, nil
}

func (r *repository) ActiveTeamLeads(ctx context.Context) ([]employee.Profile, error) {
	var profiles []employee.Profile
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND role = ?", true, identity.RoleTL).
		Order("department ASC, emp_id ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *repository) Members(ctx context.Context, department string, page, pageSize int) ([]employee.Profile, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&employee.Profile{}).
		Where("is_active = ? AND department = ?", true, department)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	var profiles []employee.Profile
	err := q.Order("emp_id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&profiles).Error
	return profiles, total, err
}
