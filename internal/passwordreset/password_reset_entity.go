package passwordreset

import (
	"time"

	"github.com/google/uuid"
)

// OTP stores only the bcrypt hash of the code sent to the user.
type OTP struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index:idx_otp_user_created,priority:1"`
	CodeHash  string     `gorm:"column:code_hash;type:varchar(100);not null"`
	IsUsed    bool       `gorm:"column:is_used;not null;default:false;index:idx_otp_used_created,priority:1"`
	UsedAt    *time.Time `gorm:"column:used_at"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;index:idx_otp_user_created,priority:2,sort:desc;index:idx_otp_used_created,priority:2"`
}

func (OTP) TableName() string {
	return "password_reset_otps"
}

func (o OTP) Expired(now time.Time) bool {
	return now.Sub(o.CreatedAt) > OTPTTL
}
