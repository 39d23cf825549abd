package department

type TeamLeadSummary struct {
	UserID   string `json:"user_id"`
	EmpID    string `json:"emp_id"`
	FullName string `json:"full_name"`
}

type DepartmentResponse struct {
	Code      string            `json:"code"`
	Name      string            `json:"name"`
	Headcount int64             `json:"headcount"`
	TeamLeads []TeamLeadSummary `json:"team_leads"`
}

type MemberResponse struct {
	UserID      string `json:"user_id"`
	EmpID       string `json:"emp_id"`
	FullName    string `json:"full_name"`
	WorkEmail   string `json:"work_email"`
	Designation string `json:"designation,omitempty"`
	Role        string `json:"role"`
}
