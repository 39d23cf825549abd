package employeesalary

// Amounts travel as decimal strings so no precision is lost in JSON.
type StructureRequest struct {
	Name               string `json:"name" binding:"required,max=150"`
	MonthlyCTC         string `json:"monthly_ctc" binding:"required"`
	BasicPercent       string `json:"basic_percent"`
	HRAPercent         string `json:"hra_percent"`
	OtherAllowances    string `json:"other_allowances"`
	OvertimeMultiplier string `json:"overtime_multiplier"`
}

type AssignSalaryRequest struct {
	StructureID   string `json:"structure_id" binding:"required,uuid"`
	EffectiveFrom string `json:"effective_from" binding:"required"`
}

type StructureResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	MonthlyCTC         string `json:"monthly_ctc"`
	BasicPercent       string `json:"basic_percent"`
	HRAPercent         string `json:"hra_percent"`
	OtherAllowances    string `json:"other_allowances"`
	OvertimeMultiplier string `json:"overtime_multiplier"`
	Basic              string `json:"basic"`
	HRA                string `json:"hra"`
	PF                 string `json:"pf"`
}

type EmployeeSalaryResponse struct {
	ID            string             `json:"id"`
	ProfileID     string             `json:"profile_id"`
	EffectiveFrom string             `json:"effective_from"`
	IsActive      bool               `json:"is_active"`
	Structure     *StructureResponse `json:"structure,omitempty"`
}
