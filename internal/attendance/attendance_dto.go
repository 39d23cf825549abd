package attendance

type ClockRequest struct {
	Note string `json:"note" binding:"omitempty,max=500"`
}

type CorrectionRequest struct {
	ClockIn  *string `json:"clock_in"`
	ClockOut *string `json:"clock_out"`
	Status   *string `json:"status"`
	Note     string  `json:"note" binding:"omitempty,max=500"`
}

type AttendanceResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	Date            string  `json:"date"`
	ClockIn         string  `json:"clock_in"`
	ClockOut        *string `json:"clock_out,omitempty"`
	DurationSeconds int64   `json:"duration_seconds"`
	Duration        string  `json:"duration"`
	Status          string  `json:"status"`
	Late            bool    `json:"late"`
	Note            string  `json:"note,omitempty"`
	ManualEntry     bool    `json:"manual_entry"`
}

// ClockResponse reports the state after a clock-in or clock-out.
type ClockResponse struct {
	Status          string `json:"status"`
	AttendanceID    string `json:"attendance_id"`
	Date            string `json:"date"`
	ClockIn         string `json:"clock_in"`
	ClockOut        string `json:"clock_out,omitempty"`
	DurationSeconds int64  `json:"duration_seconds"`
}

const (
	TodayNotClockedIn = "not_clocked_in"
	TodayClockedIn    = "clocked_in"
	TodayCompleted    = "completed"
)

type TodayStatusResponse struct {
	State           string `json:"state"`
	ClockIn         string `json:"clock_in,omitempty"`
	ClockOut        string `json:"clock_out,omitempty"`
	DurationSeconds int64  `json:"duration_seconds,omitempty"`
}

type MonthlySummaryResponse struct {
	Month           string               `json:"month"`
	Days            []AttendanceResponse `json:"days"`
	DaysPresent     int                  `json:"days_present"`
	TotalSeconds    int64                `json:"total_seconds"`
	TotalHours      string               `json:"total_hours"`
	AverageSeconds  int64                `json:"average_seconds"`
	AverageHours    string               `json:"average_hours"`
	OvertimeSeconds int64                `json:"overtime_seconds"`
	Overtime        string               `json:"overtime"`
	LateCount       int                  `json:"late_count"`
}

type CorrectionResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	DateMoved  bool               `json:"date_moved"`
}

type TeamAttendanceResponse struct {
	AttendanceResponse
	Username string `json:"username"`
	FullName string `json:"full_name"`
}
