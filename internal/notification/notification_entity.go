package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TypeAnnouncement = "announcement"
	TypeMeeting      = "meeting"
	TypeBirthday     = "birthday"
	TypeAnniversary  = "anniversary"
	TypeLeave        = "leave"
	TypePayroll      = "payroll"
	TypePolicy       = "policy"
	TypeProject      = "project"
	TypeSupport      = "support"
)

type Notification struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	ToUserID  uuid.UUID         `gorm:"column:to_user_id;type:uuid;not null;index:idx_notifications_user_read"`
	Title     string            `gorm:"column:title;type:varchar(255);not null"`
	Body      string            `gorm:"column:body;type:text"`
	Type      string            `gorm:"column:type_tag;type:varchar(30);not null"`
	Extra     datatypes.JSONMap `gorm:"column:extra;type:jsonb"`
	IsRead    bool              `gorm:"column:is_read;not null;index:idx_notifications_user_read"`
	CreatedAt time.Time         `gorm:"column:created_at;not null;index"`
}

func (Notification) TableName() string {
	return "notifications"
}
