package announcement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// VisibilityScope narrows the announcement list. Nil authors means every post.
type VisibilityScope struct {
	Authors []uuid.UUID
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Announcement) error
	Update(ctx context.Context, a *Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Announcement, error)
	SlotTaken(ctx context.Context, date time.Time, at string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, scope VisibilityScope, page, pageSize int) ([]Announcement, int64, error)

	CreateEvent(ctx context.Context, e *CalendarEvent) error
	UpdateEvent(ctx context.Context, e *CalendarEvent) error
	FindEventByAnnouncement(ctx context.Context, announcementID uuid.UUID) (*CalendarEvent, error)
	DeleteEventByAnnouncement(ctx context.Context, announcementID uuid.UUID) error
	ListEvents(ctx context.Context, from, to time.Time, includeRestricted bool) ([]CalendarEvent, error)
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

func (r *repository) Create(ctx context.Context, a *Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Announcement{}, "id = ?", id).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Announcement, error) {
	q := r.db.WithContext(ctx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var a Announcement
	if err := q.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) SlotTaken(ctx context.Context, date time.Time, at string, excludeID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Announcement{}).
		Where("audience = ? AND date = ? AND time = ? AND id <> ?", AudienceAll, date.Format(dateLayout), at, excludeID).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) List(ctx context.Context, scope VisibilityScope, page, pageSize int) ([]Announcement, int64, error) {
	q := r.db.WithContext(ctx).Model(&Announcement{})
	if scope.Authors != nil {
		q = q.Where("audience = ? OR (audience = ? AND created_by_id IN ?)", AudienceAll, AudienceTeam, scope.Authors)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	var rows []Announcement
	q = q.Order("date DESC, time DESC")
	if pageSize > 0 {
		q = q.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	err := q.Find(&rows).Error
	return rows, total, err
}

func (r *repository) CreateEvent(ctx context.Context, e *CalendarEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) UpdateEvent(ctx context.Context, e *CalendarEvent) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) FindEventByAnnouncement(ctx context.Context, announcementID uuid.UUID) (*CalendarEvent, error) {
	var e CalendarEvent
	if err := r.db.WithContext(ctx).First(&e, "announcement_id = ?", announcementID).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) DeleteEventByAnnouncement(ctx context.Context, announcementID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&CalendarEvent{}, "announcement_id = ?", announcementID).Error
}

// ListEvents returns events in [from, to). Restricted events are HR/TL only.
func (r *repository) ListEvents(ctx context.Context, from, to time.Time, includeRestricted bool) ([]CalendarEvent, error) {
	q := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from.Format(dateLayout), to.Format(dateLayout))
	if !includeRestricted {
		q = q.Where("visible_to_tl_hr = ?", false)
	}
	var rows []CalendarEvent
	err := q.Order("date ASC, start_time ASC").Find(&rows).Error
	return rows, err
}
