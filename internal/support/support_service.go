package support

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrm/internal/identity"
	"go-hrm/internal/notification"
	"go-hrm/internal/shared/apperror"
	supporterrors "go-hrm/internal/support/errors"
	"go-hrm/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const loginReceipt = "Your login issue has been reported. Support will contact you."

//go:generate mockgen -source=support_service.go -destination=mock/support_service_mock.go -package=mock
type Service interface {
	CreateTicket(ctx context.Context, actor *identity.Principal, req CreateTicketRequest) (TicketResponse, error)
	MyTickets(ctx context.Context, actor *identity.Principal, page, pageSize int) ([]TicketResponse, int64, error)
	GetTicket(ctx context.Context, actor *identity.Principal, id string) (TicketResponse, error)
	PostMessage(ctx context.Context, actor *identity.Principal, id string, req PostMessageRequest) (MessageResponse, error)
	Queue(ctx context.Context, actor *identity.Principal, filter QueueFilter, page, pageSize int) ([]TicketResponse, int64, error)
	UpdateStatus(ctx context.Context, actor *identity.Principal, id string, req UpdateStatusRequest) (TicketResponse, error)
	Assign(ctx context.Context, actor *identity.Principal, id string, req AssignRequest) (TicketResponse, error)

	CreateLoginTicket(ctx context.Context, req CreateLoginTicketRequest) (LoginTicketReceipt, error)
	ListLoginTickets(ctx context.Context, actor *identity.Principal, filter LoginTicketFilter, page, pageSize int) ([]LoginTicketResponse, int64, error)
	ResolveLoginTicket(ctx context.Context, actor *identity.Principal, id string) (LoginTicketResponse, error)
}

type service struct {
	db            *gorm.DB
	repo          Repository
	users         user.Repository
	notifications notification.Repository
	now           func() time.Time
	logger        *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	users user.Repository,
	notifications notification.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("support.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("support.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		users:         users,
		notifications: notifications,
		now:           time.Now,
		logger:        l,
	}
}

func (s *service) CreateTicket(ctx context.Context, actor *identity.Principal, req CreateTicketRequest) (TicketResponse, error) {
	if actor == nil {
		return TicketResponse{}, identity.ErrUnauthenticated
	}
	category := strings.ToUpper(strings.TrimSpace(req.Category))
	if !oneOf(category, categories) {
		return TicketResponse{}, supporterrors.ErrInvalidCategory
	}
	priority := strings.ToUpper(strings.TrimSpace(req.Priority))
	if priority == "" {
		priority = PriorityMedium
	}
	if !oneOf(priority, priorities) {
		return TicketResponse{}, supporterrors.ErrInvalidPriority
	}
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return TicketResponse{}, apperror.RequiredField("subject")
	}

	ticket := &Ticket{
		ID:          uuid.New(),
		CreatedByID: actor.UserID,
		Category:    category,
		Priority:    priority,
		Subject:     subject,
		Status:      StatusOpen,
	}
	var first *Message
	if body := strings.TrimSpace(req.Message); body != "" {
		first = &Message{ID: uuid.New(), TicketID: ticket.ID, SenderID: actor.UserID, SenderRole: actor.Role, Body: body}
	}

	staff, err := s.staffIDs(ctx)
	if err != nil {
		s.logFailure("create ticket", actor.UserID, err)
		return TicketResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.CreateTicket(ctx, ticket); err != nil {
			return err
		}
		if first != nil {
			if err := qtx.CreateMessage(ctx, first); err != nil {
				return err
			}
		}
		plan := notification.NewPlan(
			"New support ticket",
			"["+ticket.Category+"] "+ticket.Subject,
			notification.TypeSupport,
			map[string]any{"ticket_id": ticket.ID.String(), "priority": ticket.Priority},
			staff...,
		).Exclude(actor.UserID)
		return s.apply(ctx, tx, plan)
	})
	if err != nil {
		s.logFailure("create ticket", actor.UserID, err)
		return TicketResponse{}, err
	}

	s.logger.Info("support ticket created",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("category", ticket.Category),
		zap.String("priority", ticket.Priority),
	)
	resp := mapTicket(*ticket)
	if first != nil {
		resp.Messages = []MessageResponse{mapMessage(*first)}
	}
	return resp, nil
}

func (s *service) MyTickets(ctx context.Context, actor *identity.Principal, page, pageSize int) ([]TicketResponse, int64, error) {
	if actor == nil {
		return nil, 0, identity.ErrUnauthenticated
	}
	rows, total, err := s.repo.ListTickets(ctx, TicketFilter{CreatedByID: &actor.UserID}, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return mapTickets(rows), total, nil
}

func (s *service) GetTicket(ctx context.Context, actor *identity.Principal, id string) (TicketResponse, error) {
	if actor == nil {
		return TicketResponse{}, identity.ErrUnauthenticated
	}
	ticket, err := s.visibleTicket(ctx, s.repo, actor, id, false)
	if err != nil {
		return TicketResponse{}, err
	}
	messages, err := s.repo.ListMessages(ctx, ticket.ID)
	if err != nil {
		return TicketResponse{}, err
	}

	resp := mapTicket(*ticket)
	resp.Messages = make([]MessageResponse, len(messages))
	for i, m := range messages {
		resp.Messages[i] = mapMessage(m)
	}
	return resp, nil
}

// PostMessage appends to the ticket log. The other side of the conversation
// is notified: staff replies reach the creator, creator replies reach the assignee.
func (s *service) PostMessage(ctx context.Context, actor *identity.Principal, id string, req PostMessageRequest) (MessageResponse, error) {
	if actor == nil {
		return MessageResponse{}, identity.ErrUnauthenticated
	}
	body := strings.TrimSpace(req.Message)
	if body == "" {
		return MessageResponse{}, apperror.RequiredField("message")
	}

	var msg Message
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		ticket, err := s.visibleTicket(ctx, qtx, actor, id, true)
		if err != nil {
			return err
		}
		if ticket.Closed() {
			return supporterrors.ErrTicketClosed
		}

		msg = Message{ID: uuid.New(), TicketID: ticket.ID, SenderID: actor.UserID, SenderRole: actor.Role, Body: body}
		if err := qtx.CreateMessage(ctx, &msg); err != nil {
			return err
		}
		if err := qtx.Touch(ctx, ticket.ID); err != nil {
			return err
		}

		var to []uuid.UUID
		if actor.UserID == ticket.CreatedByID {
			if ticket.AssignedToID != nil {
				to = append(to, *ticket.AssignedToID)
			}
		} else {
			to = append(to, ticket.CreatedByID)
		}
		plan := notification.NewPlan(
			"New reply on ticket",
			ticket.Subject,
			notification.TypeSupport,
			map[string]any{"ticket_id": ticket.ID.String()},
			to...,
		).Exclude(actor.UserID)
		return s.apply(ctx, tx, plan)
	})
	if err != nil {
		s.logFailure("post ticket message", actor.UserID, err)
		return MessageResponse{}, err
	}

	s.logger.Info("support message posted",
		zap.String("ticket_id", msg.TicketID.String()),
		zap.String("sender_role", string(msg.SenderRole)),
	)
	return mapMessage(msg), nil
}

func (s *service) Queue(ctx context.Context, actor *identity.Principal, filter QueueFilter, page, pageSize int) ([]TicketResponse, int64, error) {
	if err := identity.Require(actor, identity.IsSupportStaff); err != nil {
		return nil, 0, err
	}
	tf := TicketFilter{ExcludeClosed: true}
	if st := strings.ToUpper(strings.TrimSpace(filter.Status)); st != "" {
		if !oneOf(st, statuses) {
			return nil, 0, supporterrors.ErrInvalidStatus
		}
		tf = TicketFilter{Status: st}
	}
	rows, total, err := s.repo.ListTickets(ctx, tf, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return mapTickets(rows), total, nil
}

func (s *service) UpdateStatus(ctx context.Context, actor *identity.Principal, id string, req UpdateStatusRequest) (TicketResponse, error) {
	if err := identity.Require(actor, identity.IsSupportStaff); err != nil {
		return TicketResponse{}, err
	}
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if !oneOf(status, statuses) {
		return TicketResponse{}, supporterrors.ErrInvalidStatus
	}

	var out Ticket
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		ticket, err := s.visibleTicket(ctx, qtx, actor, id, true)
		if err != nil {
			return err
		}
		if ticket.Status == status {
			out = *ticket
			return nil
		}
		if err := qtx.UpdateStatus(ctx, ticket.ID, status); err != nil {
			return err
		}
		ticket.Status = status
		out = *ticket

		plan := notification.NewPlan(
			"Ticket "+strings.ToLower(strings.ReplaceAll(status, "_", " ")),
			ticket.Subject,
			notification.TypeSupport,
			map[string]any{"ticket_id": ticket.ID.String(), "status": status},
			ticket.CreatedByID,
		).Exclude(actor.UserID)
		return s.apply(ctx, tx, plan)
	})
	if err != nil {
		s.logFailure("update ticket status", actor.UserID, err)
		return TicketResponse{}, err
	}

	s.logger.Info("support ticket status changed", zap.String("ticket_id", out.ID.String()), zap.String("status", out.Status))
	return mapTicket(out), nil
}

// Assign sets or clears the ticket owner on the staff side.
func (s *service) Assign(ctx context.Context, actor *identity.Principal, id string, req AssignRequest) (TicketResponse, error) {
	if err := identity.Require(actor, identity.IsSupportStaff); err != nil {
		return TicketResponse{}, err
	}

	var assignee *uuid.UUID
	if raw := strings.TrimSpace(req.AssigneeID); raw != "" {
		aid, err := uuid.Parse(raw)
		if err != nil {
			return TicketResponse{}, supporterrors.ErrInvalidAssignee
		}
		u, err := s.users.FindByID(ctx, aid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return TicketResponse{}, supporterrors.ErrInvalidAssignee
			}
			return TicketResponse{}, err
		}
		if !u.IsActive || !identity.IsSupportStaff(u.Principal()) {
			return TicketResponse{}, supporterrors.ErrInvalidAssignee
		}
		assignee = &aid
	}

	var out Ticket
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		ticket, err := s.visibleTicket(ctx, qtx, actor, id, true)
		if err != nil {
			return err
		}
		if err := qtx.Assign(ctx, ticket.ID, assignee); err != nil {
			return err
		}
		ticket.AssignedToID = assignee
		if assignee != nil && ticket.Status == StatusOpen {
			if err := qtx.UpdateStatus(ctx, ticket.ID, StatusInProgress); err != nil {
				return err
			}
			ticket.Status = StatusInProgress
		}
		out = *ticket

		if assignee == nil {
			return nil
		}
		plan := notification.NewPlan(
			"Ticket assigned to you",
			ticket.Subject,
			notification.TypeSupport,
			map[string]any{"ticket_id": ticket.ID.String()},
			*assignee,
		).Exclude(actor.UserID)
		return s.apply(ctx, tx, plan)
	})
	if err != nil {
		s.logFailure("assign ticket", actor.UserID, err)
		return TicketResponse{}, err
	}

	s.logger.Info("support ticket assigned", zap.String("ticket_id", out.ID.String()))
	return mapTicket(out), nil
}

// CreateLoginTicket is reachable without a session.
func (s *service) CreateLoginTicket(ctx context.Context, req CreateLoginTicketRequest) (LoginTicketReceipt, error) {
	who := strings.TrimSpace(req.EmailOrEmpID)
	if who == "" {
		return LoginTicketReceipt{}, apperror.Validation(map[string]string{"email_or_empid": "Email or Employee ID is required."})
	}
	issue := strings.ToUpper(strings.TrimSpace(req.IssueType))
	if !oneOf(issue, issueTypes) {
		return LoginTicketReceipt{}, supporterrors.ErrInvalidIssueType
	}

	staff, err := s.staffIDs(ctx)
	if err != nil {
		s.logger.Error("create login ticket failed", zap.Error(err))
		return LoginTicketReceipt{}, err
	}

	ticket := &LoginTicket{
		ID:           uuid.New(),
		EmailOrEmpID: who,
		IssueType:    issue,
		Message:      strings.TrimSpace(req.Message),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).CreateLoginTicket(ctx, ticket); err != nil {
			return err
		}
		plan := notification.NewPlan(
			"Login issue reported",
			who+" ("+issue+")",
			notification.TypeSupport,
			map[string]any{"login_ticket_id": ticket.ID.String()},
			staff...,
		)
		return s.apply(ctx, tx, plan)
	})
	if err != nil {
		s.logger.Error("create login ticket failed", zap.Error(err))
		return LoginTicketReceipt{}, err
	}

	s.logger.Info("login ticket created", zap.String("login_ticket_id", ticket.ID.String()), zap.String("issue_type", issue))
	return LoginTicketReceipt{Success: true, Message: loginReceipt}, nil
}

func (s *service) ListLoginTickets(ctx context.Context, actor *identity.Principal, filter LoginTicketFilter, page, pageSize int) ([]LoginTicketResponse, int64, error) {
	if err := identity.Require(actor, identity.IsSupportStaff); err != nil {
		return nil, 0, err
	}
	rows, total, err := s.repo.ListLoginTickets(ctx, filter.Resolved, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]LoginTicketResponse, len(rows))
	for i, t := range rows {
		out[i] = mapLoginTicket(t)
	}
	return out, total, nil
}

func (s *service) ResolveLoginTicket(ctx context.Context, actor *identity.Principal, id string) (LoginTicketResponse, error) {
	if err := identity.Require(actor, identity.IsSupportStaff); err != nil {
		return LoginTicketResponse{}, err
	}
	tid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return LoginTicketResponse{}, supporterrors.ErrInvalidTicketID
	}

	var out LoginTicket
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		ticket, err := qtx.FindLoginTicket(ctx, tid, true)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return supporterrors.ErrTicketNotFound
			}
			return err
		}
		if !ticket.Resolved {
			at := s.now().UTC()
			if err := qtx.ResolveLoginTicket(ctx, ticket.ID, actor.UserID, at); err != nil {
				return err
			}
			resolver := actor.UserID
			ticket.Resolved = true
			ticket.ResolvedByID = &resolver
			ticket.ResolvedAt = &at
		}
		out = *ticket
		return nil
	})
	if err != nil {
		s.logFailure("resolve login ticket", actor.UserID, err)
		return LoginTicketResponse{}, err
	}
	return mapLoginTicket(out), nil
}

// visibleTicket loads a ticket the actor may see: its creator or support staff.
func (s *service) visibleTicket(ctx context.Context, repo Repository, actor *identity.Principal, id string, forUpdate bool) (*Ticket, error) {
	tid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, supporterrors.ErrInvalidTicketID
	}
	ticket, err := repo.FindTicket(ctx, tid, forUpdate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, supporterrors.ErrTicketNotFound
		}
		return nil, err
	}
	if ticket.CreatedByID != actor.UserID && !identity.IsSupportStaff(actor) {
		return nil, supporterrors.ErrNotAllowed
	}
	return ticket, nil
}

func (s *service) staffIDs(ctx context.Context) ([]uuid.UUID, error) {
	staff, err := s.users.FindActiveByRoles(ctx, identity.SupportStaffRoles)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(staff))
	for i, u := range staff {
		ids[i] = u.ID
	}
	return ids, nil
}

func (s *service) apply(ctx context.Context, tx *gorm.DB, plan notification.BroadcastPlan) error {
	if plan.Empty() {
		return nil
	}
	_, err := s.notifications.WithTx(tx).Apply(ctx, plan)
	return err
}

func (s *service) logFailure(op string, actorID uuid.UUID, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
		s.logger.Warn(op+" rejected", zap.String("actor_id", actorID.String()), zap.Error(err))
		return
	}
	s.logger.Error(op+" failed", zap.String("actor_id", actorID.String()), zap.Error(err))
}

func mapTicket(t Ticket) TicketResponse {
	resp := TicketResponse{
		ID:        t.ID.String(),
		Subject:   t.Subject,
		Category:  t.Category,
		Priority:  t.Priority,
		Status:    t.Status,
		CreatedBy: t.CreatedByID.String(),
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.AssignedToID != nil {
		resp.AssignedTo = t.AssignedToID.String()
	}
	return resp
}

func mapTickets(rows []Ticket) []TicketResponse {
	out := make([]TicketResponse, len(rows))
	for i, t := range rows {
		out[i] = mapTicket(t)
	}
	return out
}

func mapMessage(m Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID.String(),
		SenderID:   m.SenderID.String(),
		SenderRole: string(m.SenderRole),
		Message:    m.Body,
		CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapLoginTicket(t LoginTicket) LoginTicketResponse {
	resp := LoginTicketResponse{
		ID:           t.ID.String(),
		EmailOrEmpID: t.EmailOrEmpID,
		IssueType:    t.IssueType,
		Message:      t.Message,
		Resolved:     t.Resolved,
		CreatedAt:    t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.ResolvedAt != nil {
		resp.ResolvedAt = t.ResolvedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
