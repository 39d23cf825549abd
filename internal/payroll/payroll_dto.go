package payroll

// Insurance and ESI are optional decimal strings; empty means zero.
type GeneratePayslipRequest struct {
	Year      int    `json:"year" binding:"required,min=2000,max=9999"`
	Month     int    `json:"month" binding:"required,min=1,max=12"`
	Insurance string `json:"insurance"`
	ESI       string `json:"esi"`
}

type ListPayslipsFilter struct {
	Year  int `form:"year" binding:"required,min=2000,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

type PayslipResponse struct {
	ID              string         `json:"id"`
	ProfileID       string         `json:"profile_id"`
	EmpID           string         `json:"emp_id,omitempty"`
	EmployeeName    string         `json:"employee_name,omitempty"`
	Year            int            `json:"year"`
	Month           int            `json:"month"`
	WorkingDays     int            `json:"working_days"`
	DaysPresent     int            `json:"days_present"`
	OvertimeSeconds int64          `json:"overtime_seconds"`
	GrossAmount     string         `json:"gross_amount"`
	OvertimeAmount  string         `json:"overtime_amount"`
	Deductions      string         `json:"deductions"`
	NetAmount       string         `json:"net_amount"`
	Breakdown       map[string]any `json:"breakdown,omitempty"`
	GeneratedBy     string         `json:"generated_by,omitempty"`
	Finalized       bool           `json:"finalized"`
	FinalizedAt     *string        `json:"finalized_at,omitempty"`
	DownloadURL     string         `json:"download_url"`
}

// PayslipFile is a rendered payslip ready to stream.
type PayslipFile struct {
	Filename string
	Content  []byte
}
