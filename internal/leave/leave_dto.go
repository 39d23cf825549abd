package leave

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"omitempty,max=2000"`
	// Submit defaults to true; false keeps the request as a draft.
	Submit *bool `json:"submit"`
}

type ActionRequest struct {
	Action  string `json:"action" binding:"required,oneof=approve reject"`
	Remarks string `json:"remarks" binding:"omitempty,max=2000"`
}

func (r ActionRequest) approve() bool {
	return r.Action == "approve"
}

type EntitlementRequest struct {
	ProfileID string `json:"profile_id" binding:"required,uuid"`
	LeaveType string `json:"leave_type" binding:"required"`
	Entitled  *int   `json:"entitled" binding:"required,min=0"`
}

type LeaveResponse struct {
	ID          string  `json:"id"`
	ProfileID   string  `json:"profile_id"`
	UserID      string  `json:"user_id"`
	LeaveType   string  `json:"leave_type"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Days        int     `json:"days"`
	Reason      string  `json:"reason,omitempty"`
	Status      string  `json:"status"`
	TLID        *string `json:"tl_id,omitempty"`
	TLRemarks   string  `json:"tl_remarks,omitempty"`
	TLDecidedAt *string `json:"tl_decided_at,omitempty"`
	HRID        *string `json:"hr_id,omitempty"`
	HRRemarks   string  `json:"hr_remarks,omitempty"`
	HRDecidedAt *string `json:"hr_decided_at,omitempty"`
	AppliedAt   *string `json:"applied_at,omitempty"`
}

type BalanceResponse struct {
	ProfileID string `json:"profile_id"`
	LeaveType string `json:"leave_type"`
	Entitled  int    `json:"entitled"`
	Used      int    `json:"used"`
	Available int    `json:"available"`
}
