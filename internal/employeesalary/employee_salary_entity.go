package employeesalary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	DefaultBasicPercent       = decimal.NewFromInt(50)
	DefaultHRAPercent         = decimal.NewFromInt(45)
	DefaultOvertimeMultiplier = decimal.RequireFromString("1.25")
)

type SalaryStructure struct {
	ID                 uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name               string          `gorm:"column:name;type:varchar(150);not null;uniqueIndex:uq_salary_structures_name"`
	MonthlyCTC         decimal.Decimal `gorm:"column:monthly_ctc;type:numeric(12,2);not null"`
	BasicPercent       decimal.Decimal `gorm:"column:basic_percent;type:numeric(5,2);not null"`
	HRAPercent         decimal.Decimal `gorm:"column:hra_percent;type:numeric(5,2);not null"`
	OtherAllowances    decimal.Decimal `gorm:"column:other_allowances;type:numeric(12,2);not null"`
	OvertimeMultiplier decimal.Decimal `gorm:"column:overtime_multiplier;type:numeric(4,2);not null"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

var (
	hundred   = decimal.NewFromInt(100)
	pfOfBasic = decimal.RequireFromString("0.50")
)

func (s SalaryStructure) Basic() decimal.Decimal {
	return s.MonthlyCTC.Mul(s.BasicPercent).Div(hundred)
}

func (s SalaryStructure) HRA() decimal.Decimal {
	return s.MonthlyCTC.Mul(s.HRAPercent).Div(hundred)
}

// PF is half of basic.
func (s SalaryStructure) PF() decimal.Decimal {
	return s.Basic().Mul(pfOfBasic)
}

// EmployeeSalary binds a profile to a structure. Only one row per profile
// is active at a time.
type EmployeeSalary struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	ProfileID     uuid.UUID        `gorm:"column:profile_id;type:uuid;not null;uniqueIndex:uq_employee_salary_effective,priority:1"`
	StructureID   uuid.UUID        `gorm:"column:structure_id;type:uuid;not null;index"`
	Structure     *SalaryStructure `gorm:"foreignKey:StructureID;references:ID"`
	EffectiveFrom time.Time        `gorm:"column:effective_from;type:date;not null;uniqueIndex:uq_employee_salary_effective,priority:2"`
	IsActive      bool             `gorm:"column:is_active;not null"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (EmployeeSalary) TableName() string {
	return "employee_salaries"
}
