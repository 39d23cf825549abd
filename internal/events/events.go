package events

import "time"

const (
	EmployeeLifecycleTopic       = "hrm.employee.lifecycle.v1"
	LeaveDecidedTopic            = "hrm.leave.decided.v1"
	AnnouncementPublishedTopic   = "hrm.announcement.published.v1"
	PayrollPayslipGeneratedTopic = "hrm.payroll.payslip.generated.v1"
)

const (
	TypeEmployeeCreated       = "employee_created"
	TypeLeaveDecided          = "leave_decided"
	TypeAnnouncementPublished = "announcement_published"
	TypePayslipGenerated      = "payslip_generated"
)

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id"`
	ProfileID  string    `json:"profile_id,omitempty"`
	EmpID      string    `json:"emp_id,omitempty"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}

type LeaveDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Status     string    `json:"status"`
	DecidedBy  string    `json:"decided_by"`
	Remarks    string    `json:"remarks,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type AnnouncementPublishedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	AnnouncementID  string    `json:"announcement_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Priority        string    `json:"priority"`
	Audience        string    `json:"audience"`
	RecipientEmails []string  `json:"recipient_emails"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type PayslipGeneratedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayslipID  string    `json:"payslip_id"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	NetAmount  string    `json:"net_amount"`
	OccurredAt time.Time `json:"occurred_at"`
}
