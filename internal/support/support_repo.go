package support

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TicketFilter narrows ticket listings. An empty filter matches everything.
type TicketFilter struct {
	CreatedByID   *uuid.UUID
	Status        string
	ExcludeClosed bool
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateTicket(ctx context.Context, t *Ticket) error
	FindTicket(ctx context.Context, id uuid.UUID, forUpdate bool) (*Ticket, error)
	ListTickets(ctx context.Context, filter TicketFilter, page, pageSize int) ([]Ticket, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Assign(ctx context.Context, id uuid.UUID, assigneeID *uuid.UUID) error
	Touch(ctx context.Context, id uuid.UUID) error

	CreateMessage(ctx context.Context, m *Message) error
	ListMessages(ctx context.Context, ticketID uuid.UUID) ([]Message, error)

	CreateLoginTicket(ctx context.Context, t *LoginTicket) error
	FindLoginTicket(ctx context.Context, id uuid.UUID, forUpdate bool) (*LoginTicket, error)
	ListLoginTickets(ctx context.Context, resolved *bool, page, pageSize int) ([]LoginTicket, int64, error)
	ResolveLoginTicket(ctx context.Context, id, actorID uuid.UUID, at time.Time) error
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

func lock(db *gorm.DB, forUpdate bool) *gorm.DB {
	if forUpdate {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

func (r *repository) CreateTicket(ctx context.Context, t *Ticket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindTicket(ctx context.Context, id uuid.UUID, forUpdate bool) (*Ticket, error) {
	var t Ticket
	if err := lock(r.db.WithContext(ctx), forUpdate).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListTickets(ctx context.Context, filter TicketFilter, page, pageSize int) ([]Ticket, int64, error) {
	q := r.db.WithContext(ctx).Model(&Ticket{})
	if filter.CreatedByID != nil {
		q = q.Where("created_by_id = ?", *filter.CreatedByID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ExcludeClosed {
		q = q.Where("status <> ?", StatusClosed)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []Ticket
	err := q.Order("created_at DESC").Scopes(paginate(page, pageSize)).Find(&rows).Error
	return rows, total, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&Ticket{}).Where("id = ?", id).Update("status", status).Error
}

func (r *repository) Assign(ctx context.Context, id uuid.UUID, assigneeID *uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&Ticket{}).Where("id = ?", id).Update("assigned_to_id", assigneeID).Error
}

func (r *repository) Touch(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&Ticket{}).Where("id = ?", id).Update("updated_at", gorm.Expr("NOW()")).Error
}

func (r *repository) CreateMessage(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) ListMessages(ctx context.Context, ticketID uuid.UUID) ([]Message, error) {
	var rows []Message
	err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).Order("created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) CreateLoginTicket(ctx context.Context, t *LoginTicket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindLoginTicket(ctx context.Context, id uuid.UUID, forUpdate bool) (*LoginTicket, error) {
	var t LoginTicket
	if err := lock(r.db.WithContext(ctx), forUpdate).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListLoginTickets(ctx context.Context, resolved *bool, page, pageSize int) ([]LoginTicket, int64, error) {
	q := r.db.WithContext(ctx).Model(&LoginTicket{})
	if resolved != nil {
		q = q.Where("resolved = ?", *resolved)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []LoginTicket
	err := q.Order("created_at DESC").Scopes(paginate(page, pageSize)).Find(&rows).Error
	return rows, total, err
}

func (r *repository) ResolveLoginTicket(ctx context.Context, id, actorID uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&LoginTicket{}).
		Where("id = ?", id).
		Updates(map[string]any{"resolved": true, "resolved_by_id": actorID, "resolved_at": at}).Error
}
