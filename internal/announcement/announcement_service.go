package announcement

import (
	"context"
	"errors"
	"strings"
	"time"

	announcementerrors "go-hrm/internal/announcement/errors"
	"go-hrm/internal/employee"
	"go-hrm/internal/events"
	"go-hrm/internal/identity"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/notification"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/pgerr"
	"go-hrm/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	timeLayout  = "15:04:05"
	slotIndex   = "uq_announcements_slot"
	defaultPrio = PriorityMedium
)

//go:generate mockgen -source=announcement_service.go -destination=mock/announcement_service_mock.go -package=mock
type Service interface {
	CreateHR(ctx context.Context, actor *identity.Principal, req AnnouncementRequest) (AnnouncementResponse, error)
	CreateTeam(ctx context.Context, actor *identity.Principal, req AnnouncementRequest) (AnnouncementResponse, error)
	Update(ctx context.Context, actor *identity.Principal, id string, req AnnouncementRequest) (AnnouncementResponse, error)
	Delete(ctx context.Context, actor *identity.Principal, id string) error
	List(ctx context.Context, actor *identity.Principal, page, pageSize int) ([]AnnouncementResponse, int64, error)
	CalendarEvents(ctx context.Context, actor *identity.Principal, filter CalendarFilter) ([]CalendarEventResponse, error)
	CreateEvent(ctx context.Context, actor *identity.Principal, req CalendarEventRequest) (CalendarEventResponse, error)
}

type service struct {
	db            *gorm.DB
	repo          Repository
	users         user.Repository
	profiles      employee.Repository
	notifications notification.Repository
	outbox        kafka.OutboxRepository
	loc           *time.Location
	now           func() time.Time
	logger        *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	users user.Repository,
	profiles employee.Repository,
	notifications notification.Repository,
	outbox kafka.OutboxRepository,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("announcement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("announcement.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		db:            db,
		repo:          repo,
		users:         users,
		profiles:      profiles,
		notifications: notifications,
		outbox:        outbox,
		loc:           loc,
		now:           time.Now,
		logger:        l,
	}
}

func (s *service) CreateHR(ctx context.Context, actor *identity.Principal, req AnnouncementRequest) (AnnouncementResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return AnnouncementResponse{}, err
	}
	a, err := s.build(req, AudienceAll, actor.UserID)
	if err != nil {
		return AnnouncementResponse{}, err
	}
	recipients, err := s.recipients(ctx, a)
	if err != nil {
		s.logFailure("create announcement", actor.UserID, err)
		return AnnouncementResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		taken, err := qtx.SlotTaken(ctx, a.Date, a.Time, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return announcementerrors.ErrSlotTaken
		}
		if err := qtx.Create(ctx, a); err != nil {
			if pgerr.IsUniqueViolation(err, slotIndex) {
				return announcementerrors.ErrSlotTaken
			}
			return err
		}
		if a.ShowInCalendar {
			if err := qtx.CreateEvent(ctx, calendarEventFor(a)); err != nil {
				return err
			}
		}
		if err := s.broadcast(ctx, tx, "New announcement", a, recipients, actor.UserID); err != nil {
			return err
		}
		return s.queuePublished(ctx, tx, a, recipients)
	})
	if err != nil {
		s.logFailure("create announcement", actor.UserID, err)
		return AnnouncementResponse{}, err
	}

	s.logger.Info("announcement created",
		zap.String("announcement_id", a.ID.String()),
		zap.String("audience", a.Audience),
		zap.String("priority", a.Priority),
		zap.Int("recipients", len(recipients)),
	)
	return mapAnnouncement(*a), nil
}

// CreateTeam posts to the caller's team members. Team posts never reach the calendar.
func (s *service) CreateTeam(ctx context.Context, actor *identity.Principal, req AnnouncementRequest) (AnnouncementResponse, error) {
	if err := identity.Require(actor, identity.IsTL); err != nil {
		return AnnouncementResponse{}, err
	}
	req.ShowInCalendar = false
	a, err := s.build(req, AudienceTeam, actor.UserID)
	if err != nil {
		return AnnouncementResponse{}, err
	}
	recipients, err := s.recipients(ctx, a)
	if err != nil {
		s.logFailure("create team announcement", actor.UserID, err)
		return AnnouncementResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, a); err != nil {
			return err
		}
		if err := s.broadcast(ctx, tx, "Team announcement", a, recipients, actor.UserID); err != nil {
			return err
		}
		return s.queuePublished(ctx, tx, a, recipients)
	})
	if err != nil {
		s.logFailure("create team announcement", actor.UserID, err)
		return AnnouncementResponse{}, err
	}

	s.logger.Info("team announcement created",
		zap.String("announcement_id", a.ID.String()),
		zap.Int("recipients", len(recipients)),
	)
	return mapAnnouncement(*a), nil
}

func (s *service) Update(ctx context.Context, actor *identity.Principal, id string, req AnnouncementRequest) (AnnouncementResponse, error) {
	if actor == nil {
		return AnnouncementResponse{}, identity.ErrUnauthenticated
	}
	aid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return AnnouncementResponse{}, announcementerrors.ErrInvalidID
	}

	var out Announcement
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := s.editable(ctx, qtx, actor, aid)
		if err != nil {
			return err
		}
		if current.Audience == AudienceTeam {
			req.ShowInCalendar = false
		}
		next, err := s.build(req, current.Audience, current.CreatedByID)
		if err != nil {
			return err
		}
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt

		if next.Audience == AudienceAll {
			taken, err := qtx.SlotTaken(ctx, next.Date, next.Time, next.ID)
			if err != nil {
				return err
			}
			if taken {
				return announcementerrors.ErrSlotTaken
			}
		}
		if err := qtx.Update(ctx, next); err != nil {
			if pgerr.IsUniqueViolation(err, slotIndex) {
				return announcementerrors.ErrSlotTaken
			}
			return err
		}
		if err := s.syncCalendar(ctx, qtx, next); err != nil {
			return err
		}

		recipients, err := s.recipients(ctx, next)
		if err != nil {
			return err
		}
		if err := s.broadcast(ctx, tx, "Announcement updated", next, recipients, actor.UserID); err != nil {
			return err
		}
		out = *next
		return nil
	})
	if err != nil {
		s.logFailure("update announcement", actor.UserID, err)
		return AnnouncementResponse{}, err
	}

	s.logger.Info("announcement updated", zap.String("announcement_id", out.ID.String()))
	return mapAnnouncement(out), nil
}

func (s *service) Delete(ctx context.Context, actor *identity.Principal, id string) error {
	if actor == nil {
		return identity.ErrUnauthenticated
	}
	aid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return announcementerrors.ErrInvalidID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := s.editable(ctx, qtx, actor, aid)
		if err != nil {
			return err
		}
		recipients, err := s.recipients(ctx, current)
		if err != nil {
			return err
		}
		if err := qtx.DeleteEventByAnnouncement(ctx, current.ID); err != nil {
			return err
		}
		if err := qtx.Delete(ctx, current.ID); err != nil {
			return err
		}
		return s.broadcast(ctx, tx, "Announcement cancelled", current, recipients, actor.UserID)
	})
	if err != nil {
		s.logFailure("delete announcement", actor.UserID, err)
		return err
	}

	s.logger.Info("announcement deleted", zap.String("announcement_id", aid.String()))
	return nil
}

// List returns HR-wide posts plus the team posts the caller is entitled to:
// their own, and those of their team lead.
func (s *service) List(ctx context.Context, actor *identity.Principal, page, pageSize int) ([]AnnouncementResponse, int64, error) {
	if actor == nil {
		return nil, 0, identity.ErrUnauthenticated
	}

	var scope VisibilityScope
	if !identity.IsHR(actor) {
		scope.Authors = []uuid.UUID{actor.UserID}
		if actor.Role.HasProfile() {
			p, err := s.profiles.FindByUserID(ctx, actor.UserID)
			switch {
			case err == nil:
				if p.TeamLeadID != nil {
					scope.Authors = append(scope.Authors, *p.TeamLeadID)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
			default:
				return nil, 0, err
			}
		}
	}

	rows, total, err := s.repo.List(ctx, scope, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]AnnouncementResponse, len(rows))
	for i, a := range rows {
		out[i] = mapAnnouncement(a)
	}
	return out, total, nil
}

func (s *service) CalendarEvents(ctx context.Context, actor *identity.Principal, filter CalendarFilter) ([]CalendarEventResponse, error) {
	if actor == nil {
		return nil, identity.ErrUnauthenticated
	}

	now := s.now().In(s.loc)
	year, month := filter.Year, time.Month(filter.Month)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	if year < 2000 || year > 9999 || month < 1 || month > 12 {
		return nil, apperror.Validation(map[string]string{"month": "year and month must describe a valid calendar month"})
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	restricted := identity.IsHR(actor) || identity.IsTL(actor)

	rows, err := s.repo.ListEvents(ctx, from, to, restricted)
	if err != nil {
		return nil, err
	}
	out := make([]CalendarEventResponse, len(rows))
	for i, e := range rows {
		out[i] = mapEvent(e)
	}
	return out, nil
}

func (s *service) CreateEvent(ctx context.Context, actor *identity.Principal, req CalendarEventRequest) (CalendarEventResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return CalendarEventResponse{}, err
	}
	eventType := strings.ToLower(strings.TrimSpace(req.EventType))
	if !ValidEventType(eventType) {
		return CalendarEventResponse{}, announcementerrors.ErrInvalidEventType
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return CalendarEventResponse{}, announcementerrors.ErrInvalidDate
	}
	start, err := optionalTime(req.StartTime)
	if err != nil {
		return CalendarEventResponse{}, err
	}
	end, err := optionalTime(req.EndTime)
	if err != nil {
		return CalendarEventResponse{}, err
	}
	if start != nil && end != nil && *end < *start {
		return CalendarEventResponse{}, apperror.Validation(map[string]string{"end_time": "end_time must not be before start_time"})
	}

	createdBy := actor.UserID
	e := &CalendarEvent{
		ID:            uuid.New(),
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		EventType:     eventType,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		CreatedByID:   &createdBy,
		VisibleToTLHR: req.VisibleToTLHR,
	}
	if len(req.Extra) > 0 {
		e.Extra = datatypes.JSONMap(req.Extra)
	}
	if err := s.repo.CreateEvent(ctx, e); err != nil {
		s.logFailure("create calendar event", actor.UserID, err)
		return CalendarEventResponse{}, err
	}

	s.logger.Info("calendar event created", zap.String("event_id", e.ID.String()), zap.String("event_type", e.EventType))
	return mapEvent(*e), nil
}

// build validates the request and rejects slots that already passed in the
// company timezone.
func (s *service) build(req AnnouncementRequest, audience string, author uuid.UUID) (*Announcement, error) {
	priority := strings.ToUpper(strings.TrimSpace(req.Priority))
	if priority == "" {
		priority = defaultPrio
	}
	if !ValidPriority(priority) {
		return nil, announcementerrors.ErrInvalidPriority
	}

	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(req.Date), s.loc)
	if err != nil {
		return nil, announcementerrors.ErrInvalidDate
	}
	at, err := parseClock(req.Time)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	if date.Before(today) {
		return nil, announcementerrors.ErrPastDate
	}
	if date.Equal(today) {
		slot := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), at.Second(), 0, s.loc)
		if slot.Before(now) {
			return nil, announcementerrors.ErrPastTime
		}
	}

	return &Announcement{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(req.Title),
		Description:    strings.TrimSpace(req.Description),
		Date:           time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Time:           at.Format(timeLayout),
		Department:     strings.ToUpper(strings.TrimSpace(req.Department)),
		Location:       strings.TrimSpace(req.Location),
		Priority:       priority,
		Audience:       audience,
		CreatedByID:    author,
		ShowInCalendar: req.ShowInCalendar,
	}, nil
}

func (s *service) editable(ctx context.Context, repo Repository, actor *identity.Principal, id uuid.UUID) (*Announcement, error) {
	current, err := repo.FindByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, announcementerrors.ErrAnnouncementNotFound
		}
		return nil, err
	}
	switch current.Audience {
	case AudienceAll:
		if !identity.IsHR(actor) {
			return nil, identity.ErrForbidden
		}
	default:
		if current.CreatedByID != actor.UserID {
			return nil, announcementerrors.ErrNotEditable
		}
	}
	return current, nil
}

func (s *service) recipients(ctx context.Context, a *Announcement) ([]uuid.UUID, error) {
	if a.Audience == AudienceAll {
		return s.users.ListActiveIDs(ctx)
	}
	members, err := s.profiles.ListByTeamLead(ctx, a.CreatedByID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		if m.IsActive {
			ids = append(ids, m.UserID)
		}
	}
	return ids, nil
}

func (s *service) broadcast(ctx context.Context, tx *gorm.DB, title string, a *Announcement, recipients []uuid.UUID, actorID uuid.UUID) error {
	plan := notification.NewPlan(
		title+": "+a.Title,
		a.Description,
		notification.TypeAnnouncement,
		map[string]any{
			"announcement_id": a.ID.String(),
			"date":            a.Date.Format(dateLayout),
			"time":            a.Time,
			"priority":        a.Priority,
		},
		recipients...,
	).Exclude(actorID)
	if plan.Empty() {
		return nil
	}
	_, err := s.notifications.WithTx(tx).Apply(ctx, plan)
	return err
}

func (s *service) syncCalendar(ctx context.Context, repo Repository, a *Announcement) error {
	existing, err := repo.FindEventByAnnouncement(ctx, a.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	switch {
	case a.ShowInCalendar && existing == nil:
		return repo.CreateEvent(ctx, calendarEventFor(a))
	case a.ShowInCalendar:
		next := calendarEventFor(a)
		next.ID = existing.ID
		next.CreatedAt = existing.CreatedAt
		return repo.UpdateEvent(ctx, next)
	case existing != nil:
		return repo.DeleteEventByAnnouncement(ctx, a.ID)
	}
	return nil
}

// queuePublished mails HIGH priority announcements through the outbox.
func (s *service) queuePublished(ctx context.Context, tx *gorm.DB, a *Announcement, recipients []uuid.UUID) error {
	if s.outbox == nil || a.Priority != PriorityHigh || len(recipients) == 0 {
		return nil
	}
	users, err := s.users.FindByIDs(ctx, recipients)
	if err != nil {
		return err
	}
	emails := make([]string, 0, len(users))
	for _, u := range users {
		if u.Email != "" && u.ID != a.CreatedByID {
			emails = append(emails, u.Email)
		}
	}
	if len(emails) == 0 {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.AnnouncementPublishedEvent{
		EventType:       events.TypeAnnouncementPublished,
		RequestID:       rid,
		AnnouncementID:  a.ID.String(),
		Title:           a.Title,
		Description:     a.Description,
		Priority:        a.Priority,
		Audience:        a.Audience,
		RecipientEmails: emails,
		OccurredAt:      s.now().UTC(),
	}
	row, err := kafka.NewOutboxEvent(rid, "announcement", a.ID.String(), event.EventType, events.AnnouncementPublishedTopic, event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, row)
}

func (s *service) logFailure(op string, actorID uuid.UUID, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
		s.logger.Warn(op+" rejected", zap.String("actor_id", actorID.String()), zap.Error(err))
		return
	}
	s.logger.Error(op+" failed", zap.String("actor_id", actorID.String()), zap.Error(err))
}

func calendarEventFor(a *Announcement) *CalendarEvent {
	start := a.Time
	createdBy := a.CreatedByID
	announcementID := a.ID
	extra := datatypes.JSONMap{"priority": a.Priority}
	if a.Location != "" {
		extra["location"] = a.Location
	}
	if a.Department != "" {
		extra["department"] = a.Department
	}
	return &CalendarEvent{
		ID:             uuid.New(),
		Title:          a.Title,
		Description:    a.Description,
		EventType:      EventAnnouncement,
		Date:           a.Date,
		StartTime:      &start,
		CreatedByID:    &createdBy,
		AnnouncementID: &announcementID,
		VisibleToTLHR:  true,
		Extra:          extra,
	}
}

// parseClock accepts HH:MM and HH:MM:SS.
func parseClock(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04", timeLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, announcementerrors.ErrInvalidTime
}

func optionalTime(raw string) (*string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := parseClock(raw)
	if err != nil {
		return nil, err
	}
	v := t.Format(timeLayout)
	return &v, nil
}

func mapAnnouncement(a Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:             a.ID.String(),
		Title:          a.Title,
		Description:    a.Description,
		Date:           a.Date.Format(dateLayout),
		Time:           clock(a.Time),
		Department:     a.Department,
		Location:       a.Location,
		Priority:       a.Priority,
		Audience:       a.Audience,
		CreatedByID:    a.CreatedByID.String(),
		ShowInCalendar: a.ShowInCalendar,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapEvent(e CalendarEvent) CalendarEventResponse {
	resp := CalendarEventResponse{
		ID:            e.ID.String(),
		Title:         e.Title,
		Description:   e.Description,
		EventType:     e.EventType,
		Date:          e.Date.Format(dateLayout),
		VisibleToTLHR: e.VisibleToTLHR,
		Extra:         e.Extra,
	}
	if e.StartTime != nil {
		resp.StartTime = clock(*e.StartTime)
	}
	if e.EndTime != nil {
		resp.EndTime = clock(*e.EndTime)
	}
	if e.AnnouncementID != nil {
		resp.AnnouncementID = e.AnnouncementID.String()
	}
	return resp
}

// clock trims the seconds postgres returns for time columns.
func clock(v string) string {
	if len(v) >= 5 {
		return v[:5]
	}
	return v
}
