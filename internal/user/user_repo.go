package user

import (
	"context"
	"strings"
	"time"

	"go-hrm/internal/identity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error)
	FindByLogin(ctx context.Context, identifier string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	FindActiveByRoles(ctx context.Context, roles []identity.Role) ([]User, error)
	ListActiveIDs(ctx context.Context) ([]uuid.UUID, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdateRole(ctx context.Context, id uuid.UUID, role identity.Role) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error) {
	var users []User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// FindByLogin accepts either a username or an email address.
func (r *repository) FindByLogin(ctx context.Context, identifier string) (*User, error) {
	var u User
	identifier = strings.TrimSpace(identifier)
	err := r.db.WithContext(ctx).
		Where("username = ? OR LOWER(email) = LOWER(?)", identifier, identifier).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email)).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindActiveByRoles(ctx context.Context, roles []identity.Role) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND role IN ?", true, roles).
		Order("username ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) ListActiveIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("is_active = ?", true).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.updateColumn(ctx, id, "password", hash)
}

func (r *repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.updateColumn(ctx, id, "last_login", at)
}

func (r *repository) UpdateRole(ctx context.Context, id uuid.UUID, role identity.Role) error {
	return r.updateColumn(ctx, id, "role", role)
}

func (r *repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.updateColumn(ctx, id, "is_active", active)
}

func (r *repository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
