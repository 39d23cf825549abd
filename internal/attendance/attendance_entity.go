package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Attendance struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	UserID          uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_attendance_user_date,priority:1"`
	Date            time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_user_date,priority:2;index"`
	ClockIn         time.Time  `gorm:"column:clock_in;type:timestamptz;not null"`
	ClockOut        *time.Time `gorm:"column:clock_out;type:timestamptz"`
	DurationSeconds int64      `gorm:"column:duration_seconds;not null"`
	Status          string     `gorm:"column:status;type:varchar(20);not null;index"`
	Note            string     `gorm:"column:note;type:text"`
	ManualEntry     bool       `gorm:"column:manual_entry;not null"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// TeamRow is an attendance joined with the owner's names.
type TeamRow struct {
	Attendance `gorm:"embedded"`
	Username   string `gorm:"column:username"`
	FirstName  string `gorm:"column:first_name"`
	LastName   string `gorm:"column:last_name"`
}
