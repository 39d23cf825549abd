package employeesalary

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateStructure(ctx context.Context, s *SalaryStructure) error
	UpdateStructure(ctx context.Context, s *SalaryStructure) error
	FindStructure(ctx context.Context, id uuid.UUID) (*SalaryStructure, error)
	ListStructures(ctx context.Context) ([]SalaryStructure, error)
	DeleteStructure(ctx context.Context, id uuid.UUID) error
	StructureInUse(ctx context.Context, id uuid.UUID) (bool, error)

	CreateAssignment(ctx context.Context, es *EmployeeSalary) error
	DeactivateOthers(ctx context.Context, profileID, keepID uuid.UUID) error
	FindActive(ctx context.Context, profileID uuid.UUID) (*EmployeeSalary, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]EmployeeSalary, error)
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

func (r *repository) CreateStructure(ctx context.Context, s *SalaryStructure) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) UpdateStructure(ctx context.Context, s *SalaryStructure) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) FindStructure(ctx context.Context, id uuid.UUID) (*SalaryStructure, error) {
	var s SalaryStructure
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListStructures(ctx context.Context) ([]SalaryStructure, error) {
	var items []SalaryStructure
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *repository) DeleteStructure(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&SalaryStructure{}, "id = ?", id).Error
}

func (r *repository) StructureInUse(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&EmployeeSalary{}).Where("structure_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *repository) CreateAssignment(ctx context.Context, es *EmployeeSalary) error {
	return r.db.WithContext(ctx).Omit("Structure").Create(es).Error
}

func (r *repository) DeactivateOthers(ctx context.Context, profileID, keepID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&EmployeeSalary{}).
		Where("profile_id = ? AND id <> ? AND is_active", profileID, keepID).
		Update("is_active", false).Error
}

// FindActive picks the newest active row when more than one survived.
func (r *repository) FindActive(ctx context.Context, profileID uuid.UUID) (*EmployeeSalary, error) {
	var es EmployeeSalary
	err := r.db.WithContext(ctx).
		Preload("Structure").
		Where("profile_id = ? AND is_active", profileID).
		Order("effective_from DESC").
		Order("created_at DESC").
		First(&es).Error
	if err != nil {
		return nil, err
	}
	return &es, nil
}

func (r *repository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]EmployeeSalary, error) {
	var items []EmployeeSalary
	err := r.db.WithContext(ctx).
		Preload("Structure").
		Where("profile_id = ?", profileID).
		Order("effective_from DESC").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
