package announcement

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

const (
	AudienceAll  = "all"
	AudienceTeam = "team"
)

const (
	EventMeeting      = "meeting"
	EventAnnouncement = "announcement"
	EventHoliday      = "holiday"
)

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func ValidEventType(t string) bool {
	switch t {
	case EventMeeting, EventAnnouncement, EventHoliday:
		return true
	}
	return false
}

// Announcement covers both HR (audience all) and TL (audience team) posts.
// The (date, time) slot is unique among HR posts only.
type Announcement struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Title          string    `gorm:"column:title;type:varchar(200);not null"`
	Description    string    `gorm:"column:description;type:text;not null"`
	Date           time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_announcements_slot,priority:1,where:audience = 'all'"`
	Time           string    `gorm:"column:time;type:time;not null;uniqueIndex:uq_announcements_slot,priority:2"`
	Department     string    `gorm:"column:department;type:varchar(50)"`
	Location       string    `gorm:"column:location;type:varchar(255)"`
	Priority       string    `gorm:"column:priority;type:varchar(10);not null"`
	Audience       string    `gorm:"column:audience;type:varchar(10);not null;index"`
	CreatedByID    uuid.UUID `gorm:"column:created_by_id;type:uuid;not null;index"`
	ShowInCalendar bool      `gorm:"column:show_in_calendar;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Announcement) TableName() string {
	return "announcements"
}

type CalendarEvent struct {
	ID             uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	Title          string            `gorm:"column:title;type:varchar(250);not null"`
	Description    string            `gorm:"column:description;type:text"`
	EventType      string            `gorm:"column:event_type;type:varchar(50);not null"`
	Date           time.Time         `gorm:"column:date;type:date;not null;index"`
	StartTime      *string           `gorm:"column:start_time;type:time"`
	EndTime        *string           `gorm:"column:end_time;type:time"`
	CreatedByID    *uuid.UUID        `gorm:"column:created_by_id;type:uuid"`
	AnnouncementID *uuid.UUID        `gorm:"column:announcement_id;type:uuid;uniqueIndex"`
	VisibleToTLHR  bool              `gorm:"column:visible_to_tl_hr;not null"`
	Extra          datatypes.JSONMap `gorm:"column:extra;type:jsonb"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
