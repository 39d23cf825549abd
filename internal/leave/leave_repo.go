package leave

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	Update(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*LeaveRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]LeaveRequest, int64, error)
	ListPendingForTL(ctx context.Context, tlID uuid.UUID) ([]LeaveRequest, error)
	ListByStatus(ctx context.Context, status string, page, pageSize int) ([]LeaveRequest, int64, error)
	HasOverlappingPeriod(ctx context.Context, profileID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)
	UsersOnLeave(ctx context.Context, userIDs []uuid.UUID, start, end time.Time) ([]uuid.UUID, error)

	FindBalance(ctx context.Context, profileID uuid.UUID, leaveType string, forUpdate bool) (*LeaveBalance, error)
	ListBalances(ctx context.Context, profileID uuid.UUID) ([]LeaveBalance, error)
	SaveBalance(ctx context.Context, b *LeaveBalance) error
	SeedBalances(ctx context.Context, rows []LeaveBalance) (int64, error)
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

func (r *repository) lock(db *gorm.DB, forUpdate bool) *gorm.DB {
	if forUpdate {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*LeaveRequest, error) {
	var l LeaveRequest
	if err := r.lock(r.db.WithContext(ctx), forUpdate).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]LeaveRequest, int64, error) {
	return r.page(r.db.WithContext(ctx).Model(&LeaveRequest{}).Where("user_id = ?", userID), page, pageSize)
}

func (r *repository) ListPendingForTL(ctx context.Context, tlID uuid.UUID) ([]LeaveRequest, error) {
	var items []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("tl_id = ? AND status = ?", tlID, StatusApplied).
		Order("start_date ASC").
		Find(&items).Error
	return items, err
}

// ListByStatus lists every request; an empty status lists all of them.
func (r *repository) ListByStatus(ctx context.Context, status string, page, pageSize int) ([]LeaveRequest, int64, error) {
	q := r.db.WithContext(ctx).Model(&LeaveRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return r.page(q, page, pageSize)
}

func (r *repository) page(q *gorm.DB, page, pageSize int) ([]LeaveRequest, int64, error) {
	var (
		items []LeaveRequest
		total int64
	)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("start_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, total, err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, profileID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("profile_id = ?", profileID).
		Where("status NOT IN ?", rejectedStatuses).
		Where("NOT (end_date < ? OR start_date > ?)", start.Format(dateLayout), end.Format(dateLayout))

	if excludeID != nil {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

// UsersOnLeave returns the users among userIDs holding approved leave that touches [start, end].
func (r *repository) UsersOnLeave(ctx context.Context, userIDs []uuid.UUID, start, end time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if len(userIDs) == 0 {
		return ids, nil
	}
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Distinct("user_id").
		Where("user_id IN ?", userIDs).
		Where("status = ?", StatusHRApproved).
		Where("NOT (end_date < ? OR start_date > ?)", start.Format(dateLayout), end.Format(dateLayout)).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *repository) FindBalance(ctx context.Context, profileID uuid.UUID, leaveType string, forUpdate bool) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.lock(r.db.WithContext(ctx), forUpdate).
		Where("profile_id = ? AND leave_type = ?", profileID, leaveType).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListBalances(ctx context.Context, profileID uuid.UUID) ([]LeaveBalance, error) {
	var items []LeaveBalance
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("leave_type ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) SaveBalance(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// SeedBalances inserts rows, leaving existing (profile, type) rows untouched.
func (r *repository) SeedBalances(ctx context.Context, rows []LeaveBalance) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "leave_type"}},
			DoNothing: true,
		}).
		Create(&rows)
	return res.RowsAffected, res.Error
}
