package attendance

import "time"

const (
	RegularWorkSeconds = 9 * 60 * 60

	lateHour   = 9
	lateMinute = 45
)

// LocalDate returns the calendar date of t in loc, as midnight UTC so it
// compares cleanly with DATE columns.
func LocalDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsLate reports whether the local clock-in time is strictly after 09:45.
func IsLate(clockIn time.Time, loc *time.Location) bool {
	local := clockIn.In(loc)
	limit := time.Date(local.Year(), local.Month(), local.Day(), lateHour, lateMinute, 0, 0, loc)
	return local.After(limit)
}

// OvertimeSeconds is the positive part of worked time over a regular day.
func OvertimeSeconds(a Attendance) int64 {
	if a.Status != StatusCompleted || a.DurationSeconds <= RegularWorkSeconds {
		return 0
	}
	return a.DurationSeconds - RegularWorkSeconds
}

// DurationSeconds floors the elapsed time to whole seconds.
func DurationSeconds(in, out time.Time) int64 {
	d := out.Sub(in)
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}

// MonthRange returns [first day, first day of next month) for year/month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

type Summary struct {
	DaysPresent     int
	CompletedDays   int
	TotalSeconds    int64
	AverageSeconds  int64
	OvertimeSeconds int64
	LateCount       int
}

func Summarize(rows []Attendance, loc *time.Location) Summary {
	var s Summary
	for _, a := range rows {
		s.DaysPresent++
		if a.Status == StatusCompleted {
			s.CompletedDays++
			s.TotalSeconds += a.DurationSeconds
			s.OvertimeSeconds += OvertimeSeconds(a)
		}
		if IsLate(a.ClockIn, loc) {
			s.LateCount++
		}
	}
	if s.CompletedDays > 0 {
		s.AverageSeconds = s.TotalSeconds / int64(s.CompletedDays)
	}
	return s
}
