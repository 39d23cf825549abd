package leave

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go-hrm/internal/employee"
	"go-hrm/internal/events"
	"go-hrm/internal/identity"
	leaveerrors "go-hrm/internal/leave/errors"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/notification"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Apply(ctx context.Context, actor *identity.Principal, req ApplyLeaveRequest) (LeaveResponse, error)
	Submit(ctx context.Context, actor *identity.Principal, id string) (LeaveResponse, error)
	Cancel(ctx context.Context, actor *identity.Principal, id string) (LeaveResponse, error)
	MyLeaves(ctx context.Context, actor *identity.Principal, page, pageSize int) ([]LeaveResponse, int64, error)
	MyBalances(ctx context.Context, actor *identity.Principal) ([]BalanceResponse, error)
	TLPending(ctx context.Context, actor *identity.Principal) ([]LeaveResponse, error)
	TLAction(ctx context.Context, actor *identity.Principal, id string, req ActionRequest) (LeaveResponse, error)
	HRList(ctx context.Context, actor *identity.Principal, status string, page, pageSize int) ([]LeaveResponse, int64, error)
	HRAction(ctx context.Context, actor *identity.Principal, id string, req ActionRequest) (LeaveResponse, error)
	SetEntitlement(ctx context.Context, actor *identity.Principal, req EntitlementRequest) (BalanceResponse, error)
	SeedDefaultBalances(ctx context.Context, profileID uuid.UUID, entitlements map[string]int) (int64, error)
}

type service struct {
	db            *gorm.DB
	repo          Repository
	profiles      employee.Repository
	users         user.Repository
	notifications notification.Repository
	outbox        kafka.OutboxRepository
	entitlements  map[string]int
	now           func() time.Time
	logger        *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	profiles employee.Repository,
	users user.Repository,
	notifications notification.Repository,
	outbox kafka.OutboxRepository,
	entitlements map[string]int,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		profiles:      profiles,
		users:         users,
		notifications: notifications,
		outbox:        outbox,
		entitlements:  entitlements,
		now:           time.Now,
		logger:        l,
	}
}

func (s *service) Apply(ctx context.Context, actor *identity.Principal, req ApplyLeaveRequest) (LeaveResponse, error) {
	if actor == nil {
		return LeaveResponse{}, identity.ErrUnauthenticated
	}
	s.logger.Debug("apply leave requested",
		zap.String("user_id", actor.UserID.String()),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	leaveType := strings.ToUpper(strings.TrimSpace(req.LeaveType))
	if !ValidType(leaveType) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	profile, err := s.profiles.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrProfileRequired
		}
		s.logger.Error("apply leave profile lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	submit := req.Submit == nil || *req.Submit
	l := &LeaveRequest{
		ID:        uuid.New(),
		ProfileID: profile.ID,
		UserID:    actor.UserID,
		LeaveType: leaveType,
		StartDate: start,
		EndDate:   end,
		Days:      WholeDays(start, end),
		Reason:    strings.TrimSpace(req.Reason),
		Status:    StatusDraft,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := s.checkOverlap(ctx, qtx, l, nil); err != nil {
			return err
		}
		if submit {
			if err := s.route(ctx, qtx, l, profile, actor.Role); err != nil {
				return err
			}
		}
		if err := qtx.Create(ctx, l); err != nil {
			return err
		}
		if submit {
			return s.notifyRouted(ctx, tx, l, profile, actor.UserID)
		}
		return nil
	})
	if err != nil {
		s.logFailure("apply leave", actor.UserID, err)
		return LeaveResponse{}, err
	}

	s.logger.Info("apply leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("status", l.Status),
		zap.Bool("routed_to_tl", l.TLID != nil),
	)
	return mapToResponse(*l), nil
}

func (s *service) Submit(ctx context.Context, actor *identity.Principal, id string) (LeaveResponse, error) {
	if actor == nil {
		return LeaveResponse{}, identity.ErrUnauthenticated
	}
	lid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	s.logger.Debug("submit leave requested", zap.String("leave_id", id))

	var out *LeaveRequest
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		l, err := s.findLocked(ctx, qtx, lid)
		if err != nil {
			return err
		}
		if err := CheckSubmit(*l, actor.UserID); err != nil {
			return err
		}
		profile, err := s.profiles.WithTx(tx).FindByID(ctx, l.ProfileID)
		if err != nil {
			return err
		}
		if err := s.checkOverlap(ctx, qtx, l, &l.ID); err != nil {
			return err
		}
		if err := s.route(ctx, qtx, l, profile, actor.Role); err != nil {
			return err
		}
		if err := qtx.Update(ctx, l); err != nil {
			return err
		}
		out = l
		return s.notifyRouted(ctx, tx, l, profile, actor.UserID)
	})
	if err != nil {
		s.logFailure("submit leave", actor.UserID, err)
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success", zap.String("leave_id", id), zap.Bool("routed_to_tl", out.TLID != nil))
	return mapToResponse(*out), nil
}

func (s *service) Cancel(ctx context.Context, actor *identity.Principal, id string) (LeaveResponse, error) {
	if actor == nil {
		return LeaveResponse{}, identity.ErrUnauthenticated
	}
	lid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	s.logger.Debug("cancel leave requested", zap.String("leave_id", id))

	var out *LeaveRequest
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		l, err := s.findLocked(ctx, qtx, lid)
		if err != nil {
			return err
		}
		if err := CheckCancel(*l, actor.UserID); err != nil {
			return err
		}
		pendingTL := l.Status == StatusApplied && l.TLID != nil

		now := s.now().UTC()
		l.Status = StatusCancelled
		l.CancelledAt = &now
		if err := qtx.Update(ctx, l); err != nil {
			return err
		}
		out = l

		if !pendingTL {
			return nil
		}
		plan := notification.NewPlan(
			"Leave cancelled",
			fmt.Sprintf("A %s leave request from %s to %s was cancelled", l.LeaveType, l.StartDate.Format(dateLayout), l.EndDate.Format(dateLayout)),
			notification.TypeLeave,
			map[string]any{"leave_id": l.ID.String()},
			*l.TLID,
		).Exclude(actor.UserID)
		_, err = s.notifications.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		s.logFailure("cancel leave", actor.UserID, err)
		return LeaveResponse{}, err
	}

	s.logger.Info("cancel leave success", zap.String("leave_id", id))
	return mapToResponse(*out), nil
}

func (s *service) MyLeaves(ctx context.Context, actor *identity.Principal, page, pageSize int) ([]LeaveResponse, int64, error) {
	if actor == nil {
		return nil, 0, identity.ErrUnauthenticated
	}
	items, total, err := s.repo.ListByUser(ctx, actor.UserID, page, pageSize)
	if err != nil {
		s.logger.Error("list my leaves failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(items), total, nil
}

func (s *service) MyBalances(ctx context.Context, actor *identity.Principal) ([]BalanceResponse, error) {
	if actor == nil {
		return nil, identity.ErrUnauthenticated
	}
	profile, err := s.profiles.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []BalanceResponse{}, nil
		}
		return nil, err
	}
	rows, err := s.repo.ListBalances(ctx, profile.ID)
	if err != nil {
		s.logger.Error("list leave balances failed", zap.Error(err))
		return nil, err
	}
	out := make([]BalanceResponse, 0, len(rows))
	for _, b := range rows {
		out = append(out, mapBalance(b))
	}
	return out, nil
}

func (s *service) TLPending(ctx context.Context, actor *identity.Principal) ([]LeaveResponse, error) {
	if err := identity.Require(actor, identity.IsTL); err != nil {
		return nil, err
	}
	items, err := s.repo.ListPendingForTL(ctx, actor.UserID)
	if err != nil {
		s.logger.Error("list tl pending leaves failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) TLAction(ctx context.Context, actor *identity.Principal, id string, req ActionRequest) (LeaveResponse, error) {
	if err := identity.Require(actor, identity.IsTL); err != nil {
		return LeaveResponse{}, err
	}
	lid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	s.logger.Debug("tl leave action requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actor.UserID.String()),
		zap.String("action", req.Action),
	)

	var out *LeaveRequest
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		l, err := s.findLocked(ctx, qtx, lid)
		if err != nil {
			return err
		}
		next, err := NextTLStatus(*l, actor.UserID, req.approve())
		if err != nil {
			return err
		}

		now := s.now().UTC()
		l.Status = next
		l.TLRemarks = strings.TrimSpace(req.Remarks)
		l.TLDecidedAt = &now
		if err := qtx.Update(ctx, l); err != nil {
			return err
		}
		out = l

		plans := []notification.BroadcastPlan{s.decisionPlan(l, "team lead", l.TLRemarks)}
		if next == StatusTLApproved {
			hrPlan, err := s.hrPlan(ctx, tx, "Leave awaiting HR approval",
				fmt.Sprintf("A %s leave request for %d day(s) was approved by the team lead", l.LeaveType, l.Days), l)
			if err != nil {
				return err
			}
			plans = append(plans, hrPlan.Exclude(actor.UserID))
		}
		if _, err := s.notifications.WithTx(tx).Apply(ctx, plans...); err != nil {
			return err
		}
		if next == StatusTLRejected {
			return s.queueDecided(ctx, tx, l, actor.UserID, l.TLRemarks)
		}
		return nil
	})
	if err != nil {
		s.logFailure("tl leave action", actor.UserID, err)
		return LeaveResponse{}, err
	}

	s.logger.Info("tl leave action success", zap.String("leave_id", id), zap.String("status", out.Status))
	return mapToResponse(*out), nil
}

func (s *service) HRList(ctx context.Context, actor *identity.Principal, status string, page, pageSize int) ([]LeaveResponse, int64, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return nil, 0, err
	}
	items, total, err := s.repo.ListByStatus(ctx, strings.TrimSpace(status), page, pageSize)
	if err != nil {
		s.logger.Error("hr list leaves failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(items), total, nil
}

// HRAction records the HR decision. Approval books the days against the
// locked balance row; a shortfall or a missing book aborts the whole
// transaction.
func (s *service) HRAction(ctx context.Context, actor *identity.Principal, id string, req ActionRequest) (LeaveResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return LeaveResponse{}, err
	}
	lid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	s.logger.Debug("hr leave action requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actor.UserID.String()),
		zap.String("action", req.Action),
	)

	var out *LeaveRequest
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		l, err := s.findLocked(ctx, qtx, lid)
		if err != nil {
			return err
		}
		next, err := NextHRStatus(*l, req.approve())
		if err != nil {
			return err
		}

		if next == StatusHRApproved {
			b, err := s.lockedBalance(ctx, qtx, l.ProfileID, l.LeaveType)
			if err != nil {
				return err
			}
			if err := Debit(b, l.Days); err != nil {
				return err
			}
			if err := qtx.SaveBalance(ctx, b); err != nil {
				return err
			}
		}

		now := s.now().UTC()
		hrID := actor.UserID
		l.Status = next
		l.HRID = &hrID
		l.HRRemarks = strings.TrimSpace(req.Remarks)
		l.HRDecidedAt = &now
		if err := qtx.Update(ctx, l); err != nil {
			return err
		}
		out = l

		if _, err := s.notifications.WithTx(tx).Apply(ctx, s.decisionPlan(l, "HR", l.HRRemarks)); err != nil {
			return err
		}
		return s.queueDecided(ctx, tx, l, actor.UserID, l.HRRemarks)
	})
	if err != nil {
		s.logFailure("hr leave action", actor.UserID, err)
		return LeaveResponse{}, err
	}

	s.logger.Info("hr leave action success", zap.String("leave_id", id), zap.String("status", out.Status))
	return mapToResponse(*out), nil
}

func (s *service) SetEntitlement(ctx context.Context, actor *identity.Principal, req EntitlementRequest) (BalanceResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return BalanceResponse{}, err
	}
	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		return BalanceResponse{}, apperror.InvalidField("profile_id")
	}
	leaveType := strings.ToUpper(strings.TrimSpace(req.LeaveType))
	if !ValidType(leaveType) {
		return BalanceResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	if req.Entitled == nil || *req.Entitled < 0 {
		return BalanceResponse{}, apperror.InvalidField("entitled")
	}

	var out *LeaveBalance
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := s.profiles.WithTx(tx).FindByID(ctx, profileID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrNotFound
			}
			return err
		}

		b, err := qtx.FindBalance(ctx, profileID, leaveType, true)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			b = &LeaveBalance{ID: uuid.New(), ProfileID: profileID, LeaveType: leaveType}
		} else if err != nil {
			return err
		}
		if *req.Entitled < b.Used {
			return leaveerrors.ErrEntitlementBelowUsed
		}
		b.Entitled = *req.Entitled
		if err := qtx.SaveBalance(ctx, b); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		s.logFailure("set leave entitlement", actor.UserID, err)
		return BalanceResponse{}, err
	}

	s.logger.Info("set leave entitlement success",
		zap.String("profile_id", req.ProfileID),
		zap.String("leave_type", leaveType),
		zap.Int("entitled", out.Entitled),
	)
	return mapBalance(*out), nil
}

// SeedDefaultBalances creates the default books for a new profile. Rows
// that already exist keep their values.
func (s *service) SeedDefaultBalances(ctx context.Context, profileID uuid.UUID, entitlements map[string]int) (int64, error) {
	types := make([]string, 0, len(entitlements))
	for t := range entitlements {
		if ValidType(t) {
			types = append(types, t)
		}
	}
	sort.Strings(types)

	rows := make([]LeaveBalance, 0, len(types))
	for _, t := range types {
		rows = append(rows, LeaveBalance{
			ID:        uuid.New(),
			ProfileID: profileID,
			LeaveType: t,
			Entitled:  entitlements[t],
		})
	}

	n, err := s.repo.SeedBalances(ctx, rows)
	if err != nil {
		s.logger.Error("seed leave balances failed", zap.String("profile_id", profileID.String()), zap.Error(err))
		return 0, err
	}
	s.logger.Info("seed leave balances success", zap.String("profile_id", profileID.String()), zap.Int64("created", n))
	return n, nil
}

// lockedBalance returns the (profile, type) book under FOR UPDATE. A profile
// approved before its books were seeded gets the default book opened here.
func (s *service) lockedBalance(ctx context.Context, qtx Repository, profileID uuid.UUID, leaveType string) (*LeaveBalance, error) {
	b, err := qtx.FindBalance(ctx, profileID, leaveType, true)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return b, err
	}

	entitled, ok := s.entitlements[leaveType]
	if !ok {
		s.logger.Warn("leave type has no balance book", zap.String("profile_id", profileID.String()), zap.String("leave_type", leaveType))
		return nil, leaveerrors.ErrInsufficientBalance
	}
	row := LeaveBalance{ID: uuid.New(), ProfileID: profileID, LeaveType: leaveType, Entitled: entitled}
	if _, err := qtx.SeedBalances(ctx, []LeaveBalance{row}); err != nil {
		return nil, err
	}
	s.logger.Info("leave balance opened from defaults",
		zap.String("profile_id", profileID.String()),
		zap.String("leave_type", leaveType),
		zap.Int("entitled", entitled),
	)

	// seeding skips the row if the lifecycle consumer got there first
	b, err = qtx.FindBalance(ctx, profileID, leaveType, true)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, leaveerrors.ErrInsufficientBalance
	}
	return b, err
}

func (s *service) findLocked(ctx context.Context, qtx Repository, id uuid.UUID) (*LeaveRequest, error) {
	l, err := qtx.FindByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	return l, nil
}

func (s *service) checkOverlap(ctx context.Context, qtx Repository, l *LeaveRequest, exclude *uuid.UUID) error {
	overlap, err := qtx.HasOverlappingPeriod(ctx, l.ProfileID, l.StartDate, l.EndDate, exclude)
	if err != nil {
		return err
	}
	if overlap {
		return leaveerrors.ErrLeaveOverlap
	}
	return nil
}

// route moves the request to applied and picks who approves it first.
func (s *service) route(ctx context.Context, qtx Repository, l *LeaveRequest, profile *employee.Profile, role identity.Role) error {
	tl, err := s.resolveTeamLead(ctx, qtx, profile, role, l.StartDate, l.EndDate)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	l.TLID = tl
	l.Status = StatusApplied
	l.AppliedAt = &now
	return nil
}

// resolveTeamLead returns nil when the request goes straight to HR. A team
// lead away on approved leave is replaced by the first available team lead
// of the same department.
func (s *service) resolveTeamLead(ctx context.Context, qtx Repository, profile *employee.Profile, role identity.Role, start, end time.Time) (*uuid.UUID, error) {
	if role == identity.RoleTL || profile.TeamLeadID == nil {
		return nil, nil
	}

	primary, err := s.users.FindByID(ctx, *profile.TeamLeadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !primary.IsActive || primary.Role != identity.RoleTL {
		return nil, nil
	}

	away, err := qtx.UsersOnLeave(ctx, []uuid.UUID{primary.ID}, start, end)
	if err != nil {
		return nil, err
	}
	if len(away) == 0 {
		id := primary.ID
		return &id, nil
	}
	if profile.Department == "" {
		return nil, nil
	}

	leads, err := s.profiles.ListActiveTeamLeads(ctx, profile.Department)
	if err != nil {
		return nil, err
	}
	var candidates []uuid.UUID
	for _, p := range leads {
		if p.UserID != primary.ID && p.UserID != profile.UserID {
			candidates = append(candidates, p.UserID)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	busy, err := qtx.UsersOnLeave(ctx, candidates, start, end)
	if err != nil {
		return nil, err
	}
	skip := make(map[uuid.UUID]bool, len(busy))
	for _, id := range busy {
		skip[id] = true
	}
	for _, id := range candidates {
		if !skip[id] {
			s.logger.Info("leave routed to substitute team lead",
				zap.String("primary_tl", primary.ID.String()),
				zap.String("substitute_tl", id.String()),
			)
			return &id, nil
		}
	}
	return nil, nil
}

func (s *service) notifyRouted(ctx context.Context, tx *gorm.DB, l *LeaveRequest, profile *employee.Profile, actorID uuid.UUID) error {
	title := "New leave request"
	body := fmt.Sprintf("%s applied for %d day(s) of %s leave from %s to %s",
		profile.FullName(), l.Days, l.LeaveType, l.StartDate.Format(dateLayout), l.EndDate.Format(dateLayout))

	var plan notification.BroadcastPlan
	if l.TLID != nil {
		plan = notification.NewPlan(title, body, notification.TypeLeave, map[string]any{"leave_id": l.ID.String()}, *l.TLID)
	} else {
		p, err := s.hrPlan(ctx, tx, title, body, l)
		if err != nil {
			return err
		}
		plan = p
	}
	_, err := s.notifications.WithTx(tx).Apply(ctx, plan.Exclude(actorID))
	return err
}

func (s *service) hrPlan(ctx context.Context, tx *gorm.DB, title, body string, l *LeaveRequest) (notification.BroadcastPlan, error) {
	hrUsers, err := s.users.WithTx(tx).FindActiveByRoles(ctx, identity.HRRoles)
	if err != nil {
		return notification.BroadcastPlan{}, err
	}
	ids := make([]uuid.UUID, 0, len(hrUsers))
	for _, u := range hrUsers {
		ids = append(ids, u.ID)
	}
	return notification.NewPlan(title, body, notification.TypeLeave, map[string]any{"leave_id": l.ID.String()}, ids...), nil
}

func (s *service) decisionPlan(l *LeaveRequest, by, remarks string) notification.BroadcastPlan {
	verb := "approved"
	if l.Status == StatusTLRejected || l.Status == StatusHRRejected {
		verb = "rejected"
	}
	body := remarks
	if body == "" {
		body = fmt.Sprintf("Your leave was %s by %s", verb, by)
	}
	return notification.NewPlan(
		"Leave "+verb,
		body,
		notification.TypeLeave,
		map[string]any{"leave_id": l.ID.String(), "status": l.Status},
		l.UserID,
	)
}

func (s *service) queueDecided(ctx context.Context, tx *gorm.DB, l *LeaveRequest, decidedBy uuid.UUID, remarks string) error {
	if s.outbox == nil {
		return nil
	}
	profile, err := s.profiles.WithTx(tx).FindByID(ctx, l.ProfileID)
	if err != nil {
		return err
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.LeaveDecidedEvent{
		EventType:  events.TypeLeaveDecided,
		RequestID:  rid,
		LeaveID:    l.ID.String(),
		UserID:     l.UserID.String(),
		Email:      profile.WorkEmail,
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		Status:     l.Status,
		DecidedBy:  decidedBy.String(),
		Remarks:    remarks,
		OccurredAt: s.now().UTC(),
	}
	row, err := kafka.NewOutboxEvent(rid, "leave", l.ID.String(), event.EventType, events.LeaveDecidedTopic, event)
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

func parseRange(rawStart, rawEnd string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(rawStart))
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(rawEnd))
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func formatID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:          l.ID.String(),
		ProfileID:   l.ProfileID.String(),
		UserID:      l.UserID.String(),
		LeaveType:   l.LeaveType,
		StartDate:   l.StartDate.Format(dateLayout),
		EndDate:     l.EndDate.Format(dateLayout),
		Days:        l.Days,
		Reason:      l.Reason,
		Status:      l.Status,
		TLID:        formatID(l.TLID),
		TLRemarks:   l.TLRemarks,
		TLDecidedAt: formatTime(l.TLDecidedAt),
		HRID:        formatID(l.HRID),
		HRRemarks:   l.HRRemarks,
		HRDecidedAt: formatTime(l.HRDecidedAt),
		AppliedAt:   formatTime(l.AppliedAt),
	}
}

func mapToListResponse(items []LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(items))
	for _, l := range items {
		out = append(out, mapToResponse(l))
	}
	return out
}

func mapBalance(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		ProfileID: b.ProfileID.String(),
		LeaveType: b.LeaveType,
		Entitled:  b.Entitled,
		Used:      b.Used,
		Available: b.Available(),
	}
}
