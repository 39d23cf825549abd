package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Payslip is unique per (profile, year, month). Amounts are rounded to two
// places before they are stored.
type Payslip struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"column:profile_id;type:uuid;not null;uniqueIndex:uq_payslips_period,priority:1"`
	Year      int       `gorm:"column:year;not null;uniqueIndex:uq_payslips_period,priority:2"`
	Month     int       `gorm:"column:month;not null;uniqueIndex:uq_payslips_period,priority:3"`

	WorkingDays     int   `gorm:"column:working_days;not null"`
	DaysPresent     int   `gorm:"column:days_present;not null"`
	OvertimeSeconds int64 `gorm:"column:overtime_seconds;not null"`

	GrossAmount    decimal.Decimal `gorm:"column:gross_amount;type:numeric(12,2);not null"`
	OvertimeAmount decimal.Decimal `gorm:"column:overtime_amount;type:numeric(12,2);not null"`
	Deductions     decimal.Decimal `gorm:"column:deductions;type:numeric(12,2);not null"`
	NetAmount      decimal.Decimal `gorm:"column:net_amount;type:numeric(12,2);not null"`

	// Breakdown
	Details datatypes.JSONMap `gorm:"column:details;type:jsonb"`

	GeneratedByID *uuid.UUID `gorm:"column:generated_by_id;type:uuid"`
	Finalized     bool       `gorm:"column:finalized;not null;default:false"`
	FinalizedByID *uuid.UUID `gorm:"column:finalized_by_id;type:uuid"`
	FinalizedAt   *time.Time `gorm:"column:finalized_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Payslip) TableName() string {
	return "payslips"
}

// PayslipRow is a payslip joined with the owner's profile for listings.
type PayslipRow struct {
	Payslip   `gorm:"embedded"`
	EmpID     string `gorm:"column:emp_id"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
}
