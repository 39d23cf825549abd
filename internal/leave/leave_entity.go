package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeCasual    = "CASUAL"
	TypeSick      = "SICK"
	TypePaid      = "PAID"
	TypeUnpaid    = "UNPAID"
	TypeMaternity = "MATERNITY"
	TypePaternity = "PATERNITY"
)

var Types = []string{TypeCasual, TypeSick, TypePaid, TypeUnpaid, TypeMaternity, TypePaternity}

func ValidType(t string) bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

const (
	StatusDraft      = "draft"
	StatusApplied    = "applied"
	StatusTLApproved = "tl_approved"
	StatusTLRejected = "tl_rejected"
	StatusHRApproved = "hr_approved"
	StatusHRRejected = "hr_rejected"
	StatusCancelled  = "cancelled"
)

// rejectedStatuses never block a new application over the same days.
var rejectedStatuses = []string{StatusTLRejected, StatusHRRejected, StatusCancelled}

type LeaveRequest struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"column:profile_id;type:uuid;not null;index:idx_leave_requests_profile_dates"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`

	LeaveType string    `gorm:"column:leave_type;type:varchar(20);not null"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null;index:idx_leave_requests_profile_dates"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null;index:idx_leave_requests_profile_dates"`
	Days      int       `gorm:"column:days;not null"`
	Reason    string    `gorm:"column:reason;type:text"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;index"`

	TLID        *uuid.UUID `gorm:"column:tl_id;type:uuid;index"`
	TLRemarks   string     `gorm:"column:tl_remarks;type:text"`
	TLDecidedAt *time.Time `gorm:"column:tl_decided_at"`

	HRID        *uuid.UUID `gorm:"column:hr_id;type:uuid"`
	HRRemarks   string     `gorm:"column:hr_remarks;type:text"`
	HRDecidedAt *time.Time `gorm:"column:hr_decided_at"`

	AppliedAt   *time.Time `gorm:"column:applied_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// LeaveBalance is the per-type whole-day book of a profile. Used never exceeds Entitled.
type LeaveBalance struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"column:profile_id;type:uuid;not null;uniqueIndex:uq_leave_balances_profile_type"`
	LeaveType string    `gorm:"column:leave_type;type:varchar(20);not null;uniqueIndex:uq_leave_balances_profile_type"`
	Entitled  int       `gorm:"column:entitled;not null"`
	Used      int       `gorm:"column:used;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

func (b LeaveBalance) Available() int {
	return b.Entitled - b.Used
}
