package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BroadcastPlan describes one notification fanned out to many users.
// Engines build plans; the repository applies them inside the caller's transaction.
type BroadcastPlan struct {
	Title      string
	Body       string
	Type       string
	Extra      map[string]any
	Recipients []uuid.UUID
}

// NewPlan deduplicates recipients and drops empty ids, keeping first-seen order.
func NewPlan(title, body, typ string, extra map[string]any, recipients ...uuid.UUID) BroadcastPlan {
	p := BroadcastPlan{Title: title, Body: body, Type: typ, Extra: extra}
	return p.With(recipients...)
}

func (p BroadcastPlan) With(recipients ...uuid.UUID) BroadcastPlan {
	seen := make(map[uuid.UUID]bool, len(p.Recipients)+len(recipients))
	out := make([]uuid.UUID, 0, len(p.Recipients)+len(recipients))
	for _, id := range append(append([]uuid.UUID{}, p.Recipients...), recipients...) {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	p.Recipients = out
	return p
}

// Exclude removes recipients, typically the actor who caused the event.
func (p BroadcastPlan) Exclude(ids ...uuid.UUID) BroadcastPlan {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := make([]uuid.UUID, 0, len(p.Recipients))
	for _, id := range p.Recipients {
		if !drop[id] {
			out = append(out, id)
		}
	}
	p.Recipients = out
	return p
}

func (p BroadcastPlan) Empty() bool {
	return len(p.Recipients) == 0
}

// Notifications expands the plan into one row per recipient.
func (p BroadcastPlan) Notifications(now time.Time) []Notification {
	rows := make([]Notification, 0, len(p.Recipients))
	for _, id := range p.Recipients {
		var extra datatypes.JSONMap
		if len(p.Extra) > 0 {
			extra = make(datatypes.JSONMap, len(p.Extra))
			for k, v := range p.Extra {
				extra[k] = v
			}
		}
		rows = append(rows, Notification{
			ID:        uuid.New(),
			ToUserID:  id,
			Title:     p.Title,
			Body:      p.Body,
			Type:      p.Type,
			Extra:     extra,
			CreatedAt: now,
		})
	}
	return rows
}
