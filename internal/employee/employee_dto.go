package employee

type CreateEmployeeRequest struct {
	FirstName     string `json:"first_name" binding:"required,max=80"`
	LastName      string `json:"last_name" binding:"omitempty,max=80"`
	Email         string `json:"email" binding:"omitempty,email"`
	Username      string `json:"username" binding:"omitempty,max=150"`
	Role          string `json:"role"`
	Department    string `json:"department"`
	Designation   string `json:"designation" binding:"omitempty,max=100"`
	DateOfJoining string `json:"date_of_joining"`
	TeamLeadID    string `json:"team_lead_id" binding:"omitempty,uuid"`
	ManagerID     string `json:"manager_id" binding:"omitempty,uuid"`
	PhoneNumber   string `json:"phone_number" binding:"omitempty,max=20"`
}

type SignupRequest struct {
	FirstName string `json:"first_name" binding:"required,max=80"`
	LastName  string `json:"last_name" binding:"omitempty,max=80"`
	Email     string `json:"email" binding:"omitempty,email"`
	Username  string `json:"username" binding:"omitempty,max=150"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

// UpdateEmployeeRequest is a partial update; nil fields are left unchanged.
type UpdateEmployeeRequest struct {
	// contact fields, editable by the owner
	PhoneNumber     *string `json:"phone_number" binding:"omitempty,max=20"`
	AlternateNumber *string `json:"alternate_number" binding:"omitempty,max=20"`
	PersonalEmail   *string `json:"personal_email" binding:"omitempty,email"`
	BloodGroup      *string `json:"blood_group" binding:"omitempty,max=5"`
	Gender          *string `json:"gender" binding:"omitempty,max=20"`
	MaritalStatus   *string `json:"marital_status" binding:"omitempty,max=20"`
	DOB             *string `json:"dob"`

	// HR fields
	JobTitle       *string `json:"job_title" binding:"omitempty,max=150"`
	Department     *string `json:"department"`
	Designation    *string `json:"designation" binding:"omitempty,max=100"`
	DateOfJoining  *string `json:"date_of_joining"`
	EmploymentType *string `json:"employment_type" binding:"omitempty,max=50"`
	Location       *string `json:"location" binding:"omitempty,max=150"`
	TeamLeadID     *string `json:"team_lead_id"`
	ManagerID      *string `json:"manager_id"`
	Role           *string `json:"role"`
	BankName       *string `json:"bank_name" binding:"omitempty,max=150"`
	AccountNumber  *string `json:"account_number" binding:"omitempty,max=64"`
	IFSCCode       *string `json:"ifsc_code" binding:"omitempty,max=20"`
	Branch         *string `json:"branch" binding:"omitempty,max=150"`
	PAN            *string `json:"pan" binding:"omitempty,max=20"`
}

func (r UpdateEmployeeRequest) touchesHRFields() bool {
	return r.JobTitle != nil || r.Department != nil || r.Designation != nil ||
		r.DateOfJoining != nil || r.EmploymentType != nil || r.Location != nil ||
		r.TeamLeadID != nil || r.ManagerID != nil || r.Role != nil ||
		r.BankName != nil || r.AccountNumber != nil || r.IFSCCode != nil ||
		r.Branch != nil || r.PAN != nil
}

type EmployeeResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	EmpID           string `json:"emp_id"`
	Username        string `json:"username,omitempty"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	FullName        string `json:"full_name"`
	WorkEmail       string `json:"work_email"`
	PersonalEmail   string `json:"personal_email,omitempty"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	AlternateNumber string `json:"alternate_number,omitempty"`
	DOB             string `json:"dob,omitempty"`
	BloodGroup      string `json:"blood_group,omitempty"`
	Gender          string `json:"gender,omitempty"`
	MaritalStatus   string `json:"marital_status,omitempty"`
	ProfilePhoto    string `json:"profile_photo,omitempty"`
	JobTitle        string `json:"job_title,omitempty"`
	Department      string `json:"department,omitempty"`
	Designation     string `json:"designation,omitempty"`
	DateOfJoining   string `json:"date_of_joining,omitempty"`
	EmploymentType  string `json:"employment_type,omitempty"`
	Location        string `json:"location,omitempty"`
	TeamLeadID      string `json:"team_lead_id,omitempty"`
	ManagerID       string `json:"manager_id,omitempty"`
	BankName        string `json:"bank_name,omitempty"`
	AccountNumber   string `json:"account_number,omitempty"`
	IFSCCode        string `json:"ifsc_code,omitempty"`
	Branch          string `json:"branch,omitempty"`
	PAN             string `json:"pan,omitempty"`
	Role            string `json:"role"`
	IsActive        bool   `json:"is_active"`
}

type CreatedEmployeeResponse struct {
	UserID   string            `json:"user_id"`
	Username string            `json:"username"`
	Email    string            `json:"email"`
	Role     string            `json:"role"`
	Profile  *EmployeeResponse `json:"profile,omitempty"`
}

type OptionResponse struct {
	UserID     string `json:"user_id"`
	EmpID      string `json:"emp_id"`
	FullName   string `json:"full_name"`
	Department string `json:"department,omitempty"`
}
