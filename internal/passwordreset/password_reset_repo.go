package passwordreset

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, o *OTP) error
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)
	Latest(ctx context.Context, userID uuid.UUID) (*OTP, error)
	LatestUnused(ctx context.Context, userID uuid.UUID, forUpdate bool) (*OTP, error)
	MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error
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

func (r *repository) Create(ctx context.Context, o *OTP) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&OTP{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&n).Error
	return n, err
}

func (r *repository) Latest(ctx context.Context, userID uuid.UUID) (*OTP, error) {
	var o OTP
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) LatestUnused(ctx context.Context, userID uuid.UUID, forUpdate bool) (*OTP, error) {
	q := r.db.WithContext(ctx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var o OTP
	err := q.Where("user_id = ? AND is_used = ?", userID, false).
		Order("created_at DESC").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// MarkUsed only flips rows that are still unused.
func (r *repository) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&OTP{}).
		Where("id = ? AND is_used = ?", id, false).
		Updates(map[string]any{"is_used": true, "used_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
