package announcement

type AnnouncementRequest struct {
	Title          string `json:"title" binding:"required,max=200"`
	Description    string `json:"description" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Department     string `json:"department" binding:"omitempty,max=50"`
	Location       string `json:"location" binding:"omitempty,max=255"`
	Priority       string `json:"priority"`
	ShowInCalendar bool   `json:"show_in_calendar"`
}

type AnnouncementResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Department     string `json:"department,omitempty"`
	Location       string `json:"location,omitempty"`
	Priority       string `json:"priority"`
	Audience       string `json:"audience"`
	CreatedByID    string `json:"created_by"`
	ShowInCalendar bool   `json:"show_in_calendar"`
	CreatedAt      string `json:"created_at"`
}

type CalendarFilter struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

type CalendarEventRequest struct {
	Title         string         `json:"title" binding:"required,max=250"`
	Description   string         `json:"description"`
	EventType     string         `json:"event_type" binding:"required"`
	Date          string         `json:"date" binding:"required"`
	StartTime     string         `json:"start_time"`
	EndTime       string         `json:"end_time"`
	VisibleToTLHR bool           `json:"visible_to_tl_hr"`
	Extra         map[string]any `json:"extra"`
}

type CalendarEventResponse struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	EventType      string         `json:"event_type"`
	Date           string         `json:"date"`
	StartTime      string         `json:"start_time,omitempty"`
	EndTime        string         `json:"end_time,omitempty"`
	AnnouncementID string         `json:"announcement_id,omitempty"`
	VisibleToTLHR  bool           `json:"visible_to_tl_hr"`
	Extra          map[string]any `json:"extra,omitempty"`
}
