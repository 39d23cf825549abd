package announcement

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	announcementerrors "go-hrm/internal/announcement/errors"
	"go-hrm/internal/employee"
	employeemock "go-hrm/internal/employee/mock"
	"go-hrm/internal/events"
	"go-hrm/internal/identity"
	"go-hrm/internal/messaging/kafka"
	kafkamock "go-hrm/internal/messaging/kafka/mock"
	"go-hrm/internal/notification"
	"go-hrm/internal/shared/testutil"
	"go-hrm/internal/user"
	usermock "go-hrm/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type memAnnouncements struct {
	rows   map[uuid.UUID]*Announcement
	events map[uuid.UUID]*CalendarEvent
}

func newMemAnnouncements() *memAnnouncements {
	return &memAnnouncements{rows: map[uuid.UUID]*Announcement{}, events: map[uuid.UUID]*CalendarEvent{}}
}

func (m *memAnnouncements) WithTx(*gorm.DB) Repository { return m }

func (m *memAnnouncements) Create(_ context.Context, a *Announcement) error {
	cp := *a
	m.rows[a.ID] = &cp
	return nil
}

func (m *memAnnouncements) Update(_ context.Context, a *Announcement) error {
	cp := *a
	m.rows[a.ID] = &cp
	return nil
}

func (m *memAnnouncements) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.rows, id)
	return nil
}

func (m *memAnnouncements) FindByID(_ context.Context, id uuid.UUID, _ bool) (*Announcement, error) {
	a, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAnnouncements) SlotTaken(_ context.Context, date time.Time, at string, excludeID uuid.UUID) (bool, error) {
	for _, a := range m.rows {
		if a.Audience == AudienceAll && a.ID != excludeID && a.Date.Equal(date) && a.Time == at {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAnnouncements) List(_ context.Context, scope VisibilityScope, _, _ int) ([]Announcement, int64, error) {
	var out []Announcement
	for _, a := range m.rows {
		if scope.Authors == nil || a.Audience == AudienceAll {
			out = append(out, *a)
			continue
		}
		for _, id := range scope.Authors {
			if a.CreatedByID == id {
				out = append(out, *a)
				break
			}
		}
	}
	return out, int64(len(out)), nil
}

func (m *memAnnouncements) CreateEvent(_ context.Context, e *CalendarEvent) error {
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m *memAnnouncements) UpdateEvent(_ context.Context, e *CalendarEvent) error {
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m *memAnnouncements) FindEventByAnnouncement(_ context.Context, announcementID uuid.UUID) (*CalendarEvent, error) {
	for _, e := range m.events {
		if e.AnnouncementID != nil && *e.AnnouncementID == announcementID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memAnnouncements) DeleteEventByAnnouncement(_ context.Context, announcementID uuid.UUID) error {
	for id, e := range m.events {
		if e.AnnouncementID != nil && *e.AnnouncementID == announcementID {
			delete(m.events, id)
		}
	}
	return nil
}

func (m *memAnnouncements) ListEvents(_ context.Context, from, to time.Time, includeRestricted bool) ([]CalendarEvent, error) {
	var out []CalendarEvent
	for _, e := range m.events {
		if e.Date.Before(from) || !e.Date.Before(to) {
			continue
		}
		if e.VisibleToTLHR && !includeRestricted {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

type fakeNotifications struct {
	notification.Repository
	plans []notification.BroadcastPlan
}

func (f *fakeNotifications) WithTx(*gorm.DB) notification.Repository { return f }

func (f *fakeNotifications) Apply(_ context.Context, plans ...notification.BroadcastPlan) (int, error) {
	f.plans = append(f.plans, plans...)
	return len(plans), nil
}

var wib = time.FixedZone("WIB", 7*3600)

type fixture struct {
	svc      *service
	mock     sqlmock.Sqlmock
	repo     *memAnnouncements
	users    *usermock.MockRepository
	profiles *employeemock.MockRepository
	notifs   *fakeNotifications
	outbox   *kafkamock.MockOutboxRepository

	hr, tl, member, other uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	db, mock := testutil.NewGormMock(t)

	f := &fixture{
		mock:     mock,
		repo:     newMemAnnouncements(),
		users:    usermock.NewMockRepository(ctrl),
		profiles: employeemock.NewMockRepository(ctrl),
		notifs:   &fakeNotifications{},
		outbox:   kafkamock.NewMockOutboxRepository(ctrl),
		hr:       uuid.New(),
		tl:       uuid.New(),
		member:   uuid.New(),
		other:    uuid.New(),
	}
	svc := NewService(db, f.repo, f.users, f.profiles, f.notifs, f.outbox, wib).(*service)
	svc.now = func() time.Time { return time.Date(2026, time.October, 14, 9, 30, 0, 0, wib) }
	f.svc = svc

	f.users.EXPECT().ListActiveIDs(gomock.Any()).Return([]uuid.UUID{f.hr, f.tl, f.member, f.other}, nil).AnyTimes()
	f.profiles.EXPECT().ListByTeamLead(gomock.Any(), f.tl).Return([]employee.Profile{
		{UserID: f.member, TeamLeadID: &f.tl, IsActive: true},
		{UserID: uuid.New(), TeamLeadID: &f.tl, IsActive: false},
	}, nil).AnyTimes()
	f.outbox.EXPECT().WithTx(gomock.Any()).Return(f.outbox).AnyTimes()
	return f
}

func (f *fixture) actor(id uuid.UUID, role identity.Role) *identity.Principal {
	return &identity.Principal{UserID: id, Username: string(role), Role: role}
}

func townHall() AnnouncementRequest {
	return AnnouncementRequest{
		Title:          "Town hall",
		Description:    "Quarterly update",
		Date:           "2026-10-20",
		Time:           "10:00",
		Department:     "hr",
		Location:       "Main hall",
		Priority:       "medium",
		ShowInCalendar: true,
	}
}

func TestService_CreateHRBroadcastsAndBridgesCalendar(t *testing.T) {
	f := newFixture(t)

	testutil.ExpectTx(f.mock, true)
	resp, err := f.svc.CreateHR(context.Background(), f.actor(f.hr, identity.RoleHR), townHall())
	require.NoError(t, err)

	assert.Equal(t, "MEDIUM", resp.Priority)
	assert.Equal(t, "HR", resp.Department)
	assert.Equal(t, "10:00", resp.Time)
	assert.Equal(t, AudienceAll, resp.Audience)

	require.Len(t, f.notifs.plans, 1)
	plan := f.notifs.plans[0]
	assert.Equal(t, notification.TypeAnnouncement, plan.Type)
	assert.ElementsMatch(t, []uuid.UUID{f.tl, f.member, f.other}, plan.Recipients)

	require.Len(t, f.repo.events, 1)
	for _, e := range f.repo.events {
		assert.Equal(t, EventAnnouncement, e.EventType)
		assert.True(t, e.VisibleToTLHR)
		require.NotNil(t, e.AnnouncementID)
		assert.Equal(t, resp.ID, e.AnnouncementID.String())
	}
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_CreateHRRejectsTakenSlot(t *testing.T) {
	f := newFixture(t)
	hr := f.actor(f.hr, identity.RoleHR)

	testutil.ExpectTx(f.mock, true)
	_, err := f.svc.CreateHR(context.Background(), hr, townHall())
	require.NoError(t, err)

	req := townHall()
	req.Title = "Another"
	req.Time = "10:00:00"
	testutil.ExpectTx(f.mock, false)
	_, err = f.svc.CreateHR(context.Background(), hr, req)

	assert.ErrorIs(t, err, announcementerrors.ErrSlotTaken)
	assert.Len(t, f.repo.rows, 1)
	assert.Len(t, f.notifs.plans, 1)
}

func TestService_CreateHRValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *AnnouncementRequest)
		wantErr error
	}{
		{"past date", func(r *AnnouncementRequest) { r.Date = "2026-10-13" }, announcementerrors.ErrPastDate},
		{"past time today", func(r *AnnouncementRequest) { r.Date = "2026-10-14"; r.Time = "09:00" }, announcementerrors.ErrPastTime},
		{"bad priority", func(r *AnnouncementRequest) { r.Priority = "urgent" }, announcementerrors.ErrInvalidPriority},
		{"bad date", func(r *AnnouncementRequest) { r.Date = "20/10/2026" }, announcementerrors.ErrInvalidDate},
		{"bad time", func(r *AnnouncementRequest) { r.Time = "25:00" }, announcementerrors.ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := townHall()
			tt.mutate(&req)

			_, err := f.svc.CreateHR(context.Background(), f.actor(f.hr, identity.RoleHR), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.repo.rows)
		})
	}
}

func TestService_LaterTodayIsAllowed(t *testing.T) {
	f := newFixture(t)
	req := townHall()
	req.Date = "2026-10-14"
	req.Time = "16:00"

	testutil.ExpectTx(f.mock, true)
	_, err := f.svc.CreateHR(context.Background(), f.actor(f.hr, identity.RoleHR), req)
	assert.NoError(t, err)
}

func TestService_CreateHRForbiddenForEmployee(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateHR(context.Background(), f.actor(f.member, identity.RoleEmployee), townHall())
	assert.ErrorIs(t, err, identity.ErrForbidden)

	_, err = f.svc.CreateHR(context.Background(), nil, townHall())
	assert.ErrorIs(t, err, identity.ErrUnauthenticated)
}

func TestService_HighPriorityQueuesMail(t *testing.T) {
	f := newFixture(t)
	req := townHall()
	req.Priority = "HIGH"

	f.users.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return([]user.User{
		{ID: f.tl, Email: "tl@wzg.test"},
		{ID: f.member, Email: "member@wzg.test"},
		{ID: f.other, Email: ""},
	}, nil)

	var queued kafka.OutboxEvent
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			queued = e
			return nil
		})

	testutil.ExpectTx(f.mock, true)
	_, err := f.svc.CreateHR(context.Background(), f.actor(f.hr, identity.RoleHR), req)
	require.NoError(t, err)

	assert.Equal(t, events.AnnouncementPublishedTopic, queued.Topic)
	var payload events.AnnouncementPublishedEvent
	require.NoError(t, json.Unmarshal([]byte(queued.Payload), &payload))
	assert.Equal(t, "HIGH", payload.Priority)
	assert.ElementsMatch(t, []string{"tl@wzg.test", "member@wzg.test"}, payload.RecipientEmails)
}

func TestService_CreateTeamReachesOnlyActiveMembers(t *testing.T) {
	f := newFixture(t)
	req := townHall()

	testutil.ExpectTx(f.mock, true)
	resp, err := f.svc.CreateTeam(context.Background(), f.actor(f.tl, identity.RoleTL), req)
	require.NoError(t, err)

	assert.Equal(t, AudienceTeam, resp.Audience)
	assert.False(t, resp.ShowInCalendar)
	assert.Empty(t, f.repo.events)
	require.Len(t, f.notifs.plans, 1)
	assert.Equal(t, []uuid.UUID{f.member}, f.notifs.plans[0].Recipients)

	// team posts do not occupy the HR slot
	testutil.ExpectTx(f.mock, true)
	_, err = f.svc.CreateHR(context.Background(), f.actor(f.hr, identity.RoleHR), req)
	assert.NoError(t, err)
}

func TestService_UpdateSyncsCalendar(t *testing.T) {
	f := newFixture(t)
	hr := f.actor(f.hr, identity.RoleHR)

	testutil.ExpectTx(f.mock, true)
	created, err := f.svc.CreateHR(context.Background(), hr, townHall())
	require.NoError(t, err)

	req := townHall()
	req.Time = "11:30"
	testutil.ExpectTx(f.mock, true)
	updated, err := f.svc.Update(context.Background(), hr, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "11:30", updated.Time)
	require.Len(t, f.repo.events, 1)
	for _, e := range f.repo.events {
		require.NotNil(t, e.StartTime)
		assert.Equal(t, "11:30:00", *e.StartTime)
	}

	req.ShowInCalendar = false
	testutil.ExpectTx(f.mock, true)
	_, err = f.svc.Update(context.Background(), hr, created.ID, req)
	require.NoError(t, err)
	assert.Empty(t, f.repo.events)
	assert.Len(t, f.notifs.plans, 3)
}

func TestService_UpdatePermissions(t *testing.T) {
	f := newFixture(t)

	testutil.ExpectTx(f.mock, true)
	hrPost, err := f.svc.CreateHR(context.Background(), f.actor(f.hr, identity.RoleHR), townHall())
	require.NoError(t, err)
	testutil.ExpectTx(f.mock, true)
	teamPost, err := f.svc.CreateTeam(context.Background(), f.actor(f.tl, identity.RoleTL), townHall())
	require.NoError(t, err)

	testutil.ExpectTx(f.mock, false)
	_, err = f.svc.Update(context.Background(), f.actor(f.tl, identity.RoleTL), hrPost.ID, townHall())
	assert.ErrorIs(t, err, identity.ErrForbidden)

	testutil.ExpectTx(f.mock, false)
	_, err = f.svc.Update(context.Background(), f.actor(f.hr, identity.RoleHR), teamPost.ID, townHall())
	assert.ErrorIs(t, err, announcementerrors.ErrNotEditable)

	testutil.ExpectTx(f.mock, false)
	err = f.svc.Delete(context.Background(), f.actor(f.hr, identity.RoleHR), uuid.NewString())
	assert.ErrorIs(t, err, announcementerrors.ErrAnnouncementNotFound)

	err = f.svc.Delete(context.Background(), f.actor(f.hr, identity.RoleHR), "nope")
	assert.ErrorIs(t, err, announcementerrors.ErrInvalidID)
}

func TestService_DeleteRemovesCalendarEvent(t *testing.T) {
	f := newFixture(t)
	hr := f.actor(f.hr, identity.RoleHR)

	testutil.ExpectTx(f.mock, true)
	created, err := f.svc.CreateHR(context.Background(), hr, townHall())
	require.NoError(t, err)

	testutil.ExpectTx(f.mock, true)
	require.NoError(t, f.svc.Delete(context.Background(), hr, created.ID))

	assert.Empty(t, f.repo.rows)
	assert.Empty(t, f.repo.events)
	require.Len(t, f.notifs.plans, 2)
	assert.Contains(t, f.notifs.plans[1].Title, "cancelled")
}

func TestService_ListVisibility(t *testing.T) {
	f := newFixture(t)

	testutil.ExpectTx(f.mock, true)
	_, err := f.svc.CreateHR(context.Background(), f.actor(f.hr, identity.RoleHR), townHall())
	require.NoError(t, err)
	testutil.ExpectTx(f.mock, true)
	_, err = f.svc.CreateTeam(context.Background(), f.actor(f.tl, identity.RoleTL), townHall())
	require.NoError(t, err)

	f.profiles.EXPECT().FindByUserID(gomock.Any(), f.member).
		Return(&employee.Profile{UserID: f.member, TeamLeadID: &f.tl}, nil)
	f.profiles.EXPECT().FindByUserID(gomock.Any(), f.other).
		Return(&employee.Profile{UserID: f.other}, nil)

	items, total, err := f.svc.List(context.Background(), f.actor(f.member, identity.RoleEmployee), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)

	items, _, err = f.svc.List(context.Background(), f.actor(f.other, identity.RoleEmployee), 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, AudienceAll, items[0].Audience)

	items, _, err = f.svc.List(context.Background(), f.actor(f.hr, identity.RoleHR), 1, 10)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestService_CalendarEvents(t *testing.T) {
	f := newFixture(t)
	hr := f.actor(f.hr, identity.RoleHR)

	testutil.ExpectTx(f.mock, true)
	_, err := f.svc.CreateHR(context.Background(), hr, townHall())
	require.NoError(t, err)

	holiday, err := f.svc.CreateEvent(context.Background(), hr, CalendarEventRequest{
		Title:     "Diwali",
		EventType: "Holiday",
		Date:      "2026-11-08",
	})
	require.NoError(t, err)
	assert.Equal(t, EventHoliday, holiday.EventType)

	_, err = f.svc.CreateEvent(context.Background(), hr, CalendarEventRequest{
		Title:     "Standup",
		EventType: "meeting",
		Date:      "2026-10-21",
		StartTime: "10:00",
		EndTime:   "09:00",
	})
	assert.Error(t, err)

	october := CalendarFilter{Year: 2026, Month: 10}

	items, err := f.svc.CalendarEvents(context.Background(), f.actor(f.tl, identity.RoleTL), october)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = f.svc.CalendarEvents(context.Background(), f.actor(f.member, identity.RoleEmployee), october)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = f.svc.CalendarEvents(context.Background(), f.actor(f.member, identity.RoleEmployee), CalendarFilter{Year: 2026, Month: 11})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Diwali", items[0].Title)

	// defaults to the current month
	items, err = f.svc.CalendarEvents(context.Background(), hr, CalendarFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = f.svc.CalendarEvents(context.Background(), hr, CalendarFilter{Year: 2026, Month: 13})
	assert.Error(t, err)
}
