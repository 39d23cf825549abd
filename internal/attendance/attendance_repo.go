package attendance

import (
	"context"
	"time"

	"go-hrm/internal/identity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Attendance) error
	Update(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Attendance, error)
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time, forUpdate bool) (*Attendance, error)
	ExistsOnDate(ctx context.Context, userID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error)
	ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Attendance, error)
	ListCompletedByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Attendance, error)
	ListTeamOnDate(ctx context.Context, date time.Time, actorID uuid.UUID, roles []identity.Role) ([]TeamRow, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) lock(db *gorm.DB, forUpdate bool) *gorm.DB {
	if forUpdate {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Attendance, error) {
	var a Attendance
	err := r.lock(r.db.WithContext(ctx), forUpdate).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time, forUpdate bool) (*Attendance, error) {
	var a Attendance
	err := r.lock(r.db.WithContext(ctx), forUpdate).
		Where("user_id = ? AND date = ?", userID, date.Format(dateLayout)).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ExistsOnDate(ctx context.Context, userID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Attendance{}).
		Where("user_id = ? AND date = ? AND id <> ?", userID, date.Format(dateLayout), excludeID).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from.Format(dateLayout), to.Format(dateLayout)).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListCompletedByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND date >= ? AND date < ?",
			userID, StatusCompleted, from.Format(dateLayout), to.Format(dateLayout)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

// ListTeamOnDate returns the actor's own row plus rows of users whose role is in roles.
func (r *repository) ListTeamOnDate(ctx context.Context, date time.Time, actorID uuid.UUID, roles []identity.Role) ([]TeamRow, error) {
	var rows []TeamRow
	q := r.db.WithContext(ctx).
		Table("attendances").
		Select("attendances.*, users.username, users.first_name, users.last_name").
		Joins("JOIN users ON users.id = attendances.user_id").
		Where("attendances.date = ?", date.Format(dateLayout))
	if len(roles) > 0 {
		q = q.Where("attendances.user_id = ? OR users.role IN ?", actorID, roles)
	} else {
		q = q.Where("attendances.user_id = ?", actorID)
	}
	err := q.Order("attendances.clock_in ASC").Scan(&rows).Error
	return rows, err
}
