package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Payslip, error)
	FindByPeriod(ctx context.Context, profileID uuid.UUID, year, month int, forUpdate bool) (*Payslip, error)
	Upsert(ctx context.Context, p *Payslip) (bool, error)
	Finalize(ctx context.Context, id, actorID uuid.UUID, at time.Time) error
	ListByProfile(ctx context.Context, profileID uuid.UUID, page, pageSize int) ([]Payslip, int64, error)
	ListByPeriod(ctx context.Context, year, month int, page, pageSize int) ([]PayslipRow, int64, error)
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

func (r *repository) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Payslip, error) {
	var p Payslip
	if err := r.lock(r.db.WithContext(ctx), forUpdate).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByPeriod(ctx context.Context, profileID uuid.UUID, year, month int, forUpdate bool) (*Payslip, error) {
	var p Payslip
	err := r.lock(r.db.WithContext(ctx), forUpdate).
		Where("profile_id = ? AND year = ? AND month = ?", profileID, year, month).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or overwrites the payslip of the period. It reports false
// when the stored row is finalized and was left untouched.
func (r *repository) Upsert(ctx context.Context, p *Payslip) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "profile_id"}, {Name: "year"}, {Name: "month"}},
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: clause.Column{Table: "payslips", Name: "finalized"}, Value: false},
		}},
		DoUpdates: clause.AssignmentColumns([]string{
			"working_days", "days_present", "overtime_seconds",
			"gross_amount", "overtime_amount", "deductions", "net_amount",
			"details", "generated_by_id", "updated_at",
		}),
	}).Create(p)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Finalize(ctx context.Context, id, actorID uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&Payslip{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"finalized":       true,
			"finalized_by_id": actorID,
			"finalized_at":    at,
		}).Error
}

func (r *repository) ListByProfile(ctx context.Context, profileID uuid.UUID, page, pageSize int) ([]Payslip, int64, error) {
	q := r.db.WithContext(ctx).Model(&Payslip{}).Where("profile_id = ?", profileID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Payslip
	err := q.Order("year DESC, month DESC").Scopes(paginate(page, pageSize)).Find(&rows).Error
	return rows, total, err
}

func (r *repository) ListByPeriod(ctx context.Context, year, month int, page, pageSize int) ([]PayslipRow, int64, error) {
	q := r.db.WithContext(ctx).
		Table("payslips").
		Joins("JOIN employee_profiles ON employee_profiles.id = payslips.profile_id").
		Where("payslips.year = ? AND payslips.month = ?", year, month)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []PayslipRow
	err := q.Select("payslips.*, employee_profiles.emp_id, employee_profiles.first_name, employee_profiles.last_name").
		Order("employee_profiles.emp_id ASC").
		Scopes(paginate(page, pageSize)).
		Scan(&rows).Error
	return rows, total, err
}

func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
