package user

import (
	"time"

	"go-hrm/internal/identity"

	"github.com/google/uuid"
)

// UnusablePasswordPrefix marks hashes that can never match a bcrypt comparison.
const UnusablePasswordPrefix = "!"

type User struct {
	ID         uuid.UUID     `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username   string        `gorm:"column:username;type:varchar(150);not null;uniqueIndex:uq_users_username"`
	Email      string        `gorm:"column:email;type:varchar(254);not null;uniqueIndex:uq_users_email"`
	FirstName  string        `gorm:"column:first_name;type:varchar(150)"`
	LastName   string        `gorm:"column:last_name;type:varchar(150)"`
	Password   string        `gorm:"column:password;type:text;not null"`
	Role       identity.Role `gorm:"column:role;type:varchar(30);not null;default:employee;index"`
	IsActive   bool          `gorm:"column:is_active;not null;default:true"`
	LastLogin  *time.Time    `gorm:"column:last_login"`
	DateJoined time.Time     `gorm:"column:date_joined;autoCreateTime"`
	UpdatedAt  time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Username
}

func (u User) HasUsablePassword() bool {
	return u.Password != "" && u.Password[:1] != UnusablePasswordPrefix
}

func (u User) Principal() *identity.Principal {
	return &identity.Principal{UserID: u.ID, Username: u.Username, Role: u.Role}
}
