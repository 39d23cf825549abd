package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const insertBatchSize = 500

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Apply(ctx context.Context, plans ...BroadcastPlan) (int, error)
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]Notification, int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type repository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db, now: time.Now}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx, now: r.now}
}

// Apply writes every plan in a single bulk insert.
func (r *repository) Apply(ctx context.Context, plans ...BroadcastPlan) (int, error) {
	now := r.now().UTC()
	var rows []Notification
	for _, p := range plans {
		rows = append(rows, p.Notifications(now)...)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (r *repository) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]Notification, int64, error) {
	var (
		items []Notification
		total int64
	)

	q := r.db.WithContext(ctx).Model(&Notification{}).Where("to_user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, total, err
}

func (r *repository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Notification{}).
		Where("to_user_id = ? AND is_read = ?", userID, false).
		Count(&total).Error
	return total, err
}

func (r *repository) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&Notification{}).
		Where("to_user_id = ? AND id IN ? AND is_read = ?", userID, ids, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *repository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Notification{}).
		Where("to_user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
