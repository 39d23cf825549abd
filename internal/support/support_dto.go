package support

type CreateTicketRequest struct {
	Category string `json:"category" binding:"required"`
	Priority string `json:"priority"`
	Subject  string `json:"subject" binding:"required,max=200"`
	Message  string `json:"message"`
}

type PostMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignRequest struct {
	AssigneeID string `json:"assigned_to" binding:"omitempty,uuid"`
}

type QueueFilter struct {
	Status string `form:"status"`
}

type CreateLoginTicketRequest struct {
	EmailOrEmpID string `json:"email_or_empid" binding:"required,max=150"`
	IssueType    string `json:"issue_type" binding:"required"`
	Message      string `json:"message"`
}

type LoginTicketFilter struct {
	Resolved *bool `form:"resolved"`
}

type MessageResponse struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender"`
	SenderRole string `json:"sender_role"`
	Message    string `json:"message"`
	CreatedAt  string `json:"created_at"`
}

type TicketResponse struct {
	ID         string            `json:"id"`
	Subject    string            `json:"subject"`
	Category   string            `json:"category"`
	Priority   string            `json:"priority"`
	Status     string            `json:"status"`
	CreatedBy  string            `json:"created_by"`
	AssignedTo string            `json:"assigned_to,omitempty"`
	CreatedAt  string            `json:"created_at"`
	Messages   []MessageResponse `json:"messages,omitempty"`
}

type LoginTicketResponse struct {
	ID           string `json:"id"`
	EmailOrEmpID string `json:"email_or_empid"`
	IssueType    string `json:"issue_type"`
	Message      string `json:"message,omitempty"`
	Resolved     bool   `json:"resolved"`
	ResolvedAt   string `json:"resolved_at,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type LoginTicketReceipt struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
