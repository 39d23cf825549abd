package auth

// LoginRequest accepts a username or an email address in Username.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type LoginResponse struct {
	Access      string `json:"access"`
	Refresh     string `json:"refresh"`
	Role        string `json:"role"`
	Username    string `json:"username"`
	RedirectURL string `json:"redirect_url"`
}

type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type ProfileSummary struct {
	ID          string `json:"id"`
	EmpID       string `json:"emp_id"`
	FullName    string `json:"full_name"`
	WorkEmail   string `json:"work_email"`
	Department  string `json:"department,omitempty"`
	Designation string `json:"designation,omitempty"`
	TeamLeadID  string `json:"team_lead_id,omitempty"`
}

type MeResponse struct {
	UserID   string          `json:"user_id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	Role     string          `json:"role"`
	Profile  *ProfileSummary `json:"profile,omitempty"`
}
