package support

import (
	"time"

	"go-hrm/internal/identity"

	"github.com/google/uuid"
)

const (
	CategoryHR      = "HR"
	CategoryIT      = "IT"
	CategoryPayroll = "PAYROLL"
	CategoryProject = "PROJECT"
	CategoryOther   = "OTHER"
)

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

const (
	StatusOpen       = "OPEN"
	StatusInProgress = "IN_PROGRESS"
	StatusWaiting    = "WAITING"
	StatusClosed     = "CLOSED"
)

const (
	IssueOTP      = "OTP"
	IssuePassword = "PASSWORD"
	IssueLocked   = "LOCKED"
	IssueLogin    = "LOGIN"
	IssueOther    = "OTHER"
)

var (
	categories = []string{CategoryHR, CategoryIT, CategoryPayroll, CategoryProject, CategoryOther}
	priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
	statuses   = []string{StatusOpen, StatusInProgress, StatusWaiting, StatusClosed}
	issueTypes = []string{IssueOTP, IssuePassword, IssueLocked, IssueLogin, IssueOther}
)

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

type Ticket struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	CreatedByID  uuid.UUID  `gorm:"column:created_by_id;type:uuid;not null;index"`
	Category     string     `gorm:"column:category;type:varchar(20);not null"`
	Priority     string     `gorm:"column:priority;type:varchar(10);not null"`
	Subject      string     `gorm:"column:subject;type:varchar(200);not null"`
	Status       string     `gorm:"column:status;type:varchar(20);not null;index"`
	AssignedToID *uuid.UUID `gorm:"column:assigned_to_id;type:uuid;index"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Ticket) TableName() string {
	return "support_tickets"
}

func (t Ticket) Closed() bool {
	return t.Status == StatusClosed
}

// Message keeps the sender's role at the time of sending.
type Message struct {
	ID         uuid.UUID     `gorm:"column:id;type:uuid;primaryKey"`
	TicketID   uuid.UUID     `gorm:"column:ticket_id;type:uuid;not null;index"`
	SenderID   uuid.UUID     `gorm:"column:sender_id;type:uuid;not null"`
	SenderRole identity.Role `gorm:"column:sender_role;type:varchar(30);not null"`
	Body       string        `gorm:"column:message;type:text;not null"`
	CreatedAt  time.Time     `gorm:"column:created_at;autoCreateTime"`
}

func (Message) TableName() string {
	return "support_messages"
}

type LoginTicket struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmailOrEmpID string     `gorm:"column:email_or_empid;type:varchar(150);not null"`
	IssueType    string     `gorm:"column:issue_type;type:varchar(20);not null"`
	Message      string     `gorm:"column:message;type:text"`
	Resolved     bool       `gorm:"column:resolved;not null;index"`
	ResolvedByID *uuid.UUID `gorm:"column:resolved_by_id;type:uuid"`
	ResolvedAt   *time.Time `gorm:"column:resolved_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (LoginTicket) TableName() string {
	return "login_support_tickets"
}
