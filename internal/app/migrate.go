package app

import (
	"go-hrm/internal/announcement"
	"go-hrm/internal/attendance"
	"go-hrm/internal/employee"
	"go-hrm/internal/employeesalary"
	"go-hrm/internal/leave"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/notification"
	"go-hrm/internal/passwordreset"
	"go-hrm/internal/payroll"
	"go-hrm/internal/project"
	"go-hrm/internal/shared/counter"
	"go-hrm/internal/support"
	"go-hrm/internal/user"

	"gorm.io/gorm"
)

// Migrate keeps a development database in step with the entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&counter.Sequence{},
		&employee.Profile{},
		&attendance.Attendance{},
		&leave.LeaveRequest{},
		&leave.LeaveBalance{},
		&project.Project{},
		&project.Module{},
		&project.Task{},
		&project.SubTask{},
		&project.Audit{},
		&employeesalary.SalaryStructure{},
		&employeesalary.EmployeeSalary{},
		&payroll.Payslip{},
		&passwordreset.OTP{},
		&notification.Notification{},
		&announcement.Announcement{},
		&announcement.CalendarEvent{},
		&support.Ticket{},
		&support.Message{},
		&support.LoginTicket{},
		&kafka.OutboxEvent{},
	)
}
