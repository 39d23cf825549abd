package leave

import (
	"time"

	leaveerrors "go-hrm/internal/leave/errors"

	"github.com/google/uuid"
)

func IsTerminal(status string) bool {
	switch status {
	case StatusTLRejected, StatusHRApproved, StatusHRRejected, StatusCancelled:
		return true
	}
	return false
}

// WholeDays counts calendar days from start to end, both inclusive.
func WholeDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// NextTLStatus decides a team lead action on an applied request.
func NextTLStatus(l LeaveRequest, actorID uuid.UUID, approve bool) (string, error) {
	if l.TLID == nil || *l.TLID != actorID {
		return "", leaveerrors.ErrNotYourTeamMember
	}
	switch {
	case l.Status == StatusApplied:
	case l.Status == StatusTLApproved, IsTerminal(l.Status):
		return "", leaveerrors.ErrAlreadyDecided
	default:
		return "", leaveerrors.ErrInvalidStatusTransition
	}
	if approve {
		return StatusTLApproved, nil
	}
	return StatusTLRejected, nil
}

// NextHRStatus decides an HR action. HR goes straight from applied only
// when nobody was asked to approve first.
func NextHRStatus(l LeaveRequest, approve bool) (string, error) {
	switch l.Status {
	case StatusTLApproved:
	case StatusApplied:
		if l.TLID != nil {
			return "", leaveerrors.ErrTLApprovalRequired
		}
	case StatusDraft:
		return "", leaveerrors.ErrInvalidStatusTransition
	default:
		return "", leaveerrors.ErrAlreadyDecided
	}
	if approve {
		return StatusHRApproved, nil
	}
	return StatusHRRejected, nil
}

func CheckSubmit(l LeaveRequest, ownerID uuid.UUID) error {
	if l.UserID != ownerID {
		return leaveerrors.ErrNotLeaveOwner
	}
	if l.Status != StatusDraft {
		return leaveerrors.ErrInvalidStatusTransition
	}
	return nil
}

func CheckCancel(l LeaveRequest, ownerID uuid.UUID) error {
	if l.UserID != ownerID {
		return leaveerrors.ErrNotLeaveOwner
	}
	if IsTerminal(l.Status) {
		return leaveerrors.ErrAlreadyDecided
	}
	return nil
}

// Debit books days against the balance, refusing to exceed the entitlement.
func Debit(b *LeaveBalance, days int) error {
	if b.Used+days > b.Entitled {
		return leaveerrors.ErrInsufficientBalance
	}
	b.Used += days
	return nil
}
