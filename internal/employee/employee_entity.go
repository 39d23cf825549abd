package employee

import (
	"fmt"
	"time"

	"go-hrm/internal/identity"

	"github.com/google/uuid"
)

const EmpIDFormat = "WZG-AI-%04d"

const (
	DepartmentPython           = "PYTHON"
	DepartmentQA               = "QA"
	DepartmentJava             = "JAVA"
	DepartmentUIUX             = "UIUX"
	DepartmentReact            = "REACT"
	DepartmentCyberSecurity    = "CYBER_SECURITY"
	DepartmentDigitalMarketing = "DIGITAL_MARKETING"
	DepartmentHR               = "HR"
	DepartmentBDM              = "BDM"
	DepartmentNetworking       = "NETWORKING"
	DepartmentCloud            = "CLOUD"
)

var Departments = []string{
	DepartmentPython,
	DepartmentQA,
	DepartmentJava,
	DepartmentUIUX,
	DepartmentReact,
	DepartmentCyberSecurity,
	DepartmentDigitalMarketing,
	DepartmentHR,
	DepartmentBDM,
	DepartmentNetworking,
	DepartmentCloud,
}

func ValidDepartment(d string) bool {
	for _, v := range Departments {
		if v == d {
			return true
		}
	}
	return false
}

func FormatEmpID(n int64) string {
	return fmt.Sprintf(EmpIDFormat, n)
}

// Profile is the HR record bound 1:1 to a user.
type Profile struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_profiles_user"`
	EmpID     string    `gorm:"column:emp_id;type:varchar(20);not null;uniqueIndex:uq_profiles_emp_id"`
	WorkEmail string    `gorm:"column:work_email;type:varchar(254);not null;uniqueIndex:uq_profiles_work_email"`
	Username  string    `gorm:"column:username;type:varchar(150)"`

	FirstName  string `gorm:"column:first_name;type:varchar(80);not null"`
	LastName   string `gorm:"column:last_name;type:varchar(80)"`
	MiddleName string `gorm:"column:middle_name;type:varchar(80)"`

	PersonalEmail   string     `gorm:"column:personal_email;type:varchar(254)"`
	PhoneNumber     string     `gorm:"column:phone_number;type:varchar(20)"`
	AlternateNumber string     `gorm:"column:alternate_number;type:varchar(20)"`
	DOB             *time.Time `gorm:"column:dob;type:date"`
	BloodGroup      string     `gorm:"column:blood_group;type:varchar(5)"`
	Gender          string     `gorm:"column:gender;type:varchar(20)"`
	MaritalStatus   string     `gorm:"column:marital_status;type:varchar(20)"`
	ProfilePhoto    string     `gorm:"column:profile_photo;type:varchar(255)"`

	JobTitle       string     `gorm:"column:job_title;type:varchar(150)"`
	Department     string     `gorm:"column:department;type:varchar(100);index"`
	Designation    string     `gorm:"column:designation;type:varchar(100)"`
	DateOfJoining  *time.Time `gorm:"column:date_of_joining;type:date"`
	EmploymentType string     `gorm:"column:employment_type;type:varchar(50)"`
	Location       string     `gorm:"column:location;type:varchar(150)"`
	TeamLeadID     *uuid.UUID `gorm:"column:team_lead_id;type:uuid;index"`
	ManagerID      *uuid.UUID `gorm:"column:manager_id;type:uuid;index"`

	BankName      string `gorm:"column:bank_name;type:varchar(150)"`
	AccountNumber string `gorm:"column:account_number;type:varchar(64)"`
	IFSCCode      string `gorm:"column:ifsc_code;type:varchar(20)"`
	Branch        string `gorm:"column:branch;type:varchar(150)"`
	PAN           string `gorm:"column:pan;type:varchar(20)"`

	Role      identity.Role `gorm:"column:role;type:varchar(30);not null"`
	IsActive  bool          `gorm:"column:is_active;not null"`
	CreatedAt time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string {
	return "employee_profiles"
}

func (p Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
