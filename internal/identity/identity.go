// Package identity holds the closed role set and the permission predicates
// consulted by every feature before it mutates state.
package identity

import (
	"net/http"
	"strings"

	"go-hrm/internal/shared/apperror"

	"github.com/google/uuid"
)

type Role string

const (
	RoleManagement      Role = "management"
	RoleDeliveryManager Role = "delivery_manager"
	RoleProjectManager  Role = "project_manager"
	RoleHR              Role = "hr"
	RoleTL              Role = "tl"
	RoleEmployee        Role = "employee"
	RoleIntern          Role = "intern"
	RoleIT              Role = "it"
)

var AllRoles = []Role{
	RoleManagement, RoleDeliveryManager, RoleProjectManager,
	RoleHR, RoleTL, RoleEmployee, RoleIntern, RoleIT,
}

var aliases = map[string]Role{
	"dm":               RoleDeliveryManager,
	"pm":               RoleProjectManager,
	"delivery manager": RoleDeliveryManager,
	"project manager":  RoleProjectManager,
	"team_lead":        RoleTL,
}

var (
	ErrUnauthenticated = apperror.New(apperror.CodeUnauthorized, "Authentication credentials were not provided", http.StatusUnauthorized)
	ErrForbidden       = apperror.New(apperror.CodeForbidden, "You do not have permission to perform this action", http.StatusForbidden)
	ErrUnknownRole     = apperror.New(apperror.CodeInvalidInput, "Unknown role", http.StatusBadRequest)
)

// ParseRole normalizes any casing or alias to the canonical role.
func ParseRole(raw string) (Role, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if r, ok := aliases[s]; ok {
		return r, nil
	}
	for _, r := range AllRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", ErrUnknownRole
}

func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// HasProfile reports whether users with this role get an EmployeeProfile.
func (r Role) HasProfile() bool {
	return r != RoleHR && r != RoleManagement
}

type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     Role
}

func HasRole(p *Principal, allowed ...Role) bool {
	if p == nil || p.UserID == uuid.Nil {
		return false
	}
	for _, r := range allowed {
		if p.Role == r {
			return true
		}
	}
	return false
}

var (
	HRRoles           = []Role{RoleHR, RoleManagement}
	TLRoles           = []Role{RoleTL}
	DMRoles           = []Role{RoleManagement, RoleDeliveryManager}
	PMRoles           = []Role{RoleProjectManager}
	EmployeeRoles     = []Role{RoleEmployee, RoleIntern}
	SupportStaffRoles = []Role{RoleHR, RoleManagement, RoleIT}
)

func IsHR(p *Principal) bool           { return HasRole(p, HRRoles...) }
func IsTL(p *Principal) bool           { return HasRole(p, TLRoles...) }
func IsDM(p *Principal) bool           { return HasRole(p, DMRoles...) }
func IsPM(p *Principal) bool           { return HasRole(p, PMRoles...) }
func IsEmployee(p *Principal) bool     { return HasRole(p, EmployeeRoles...) }
func IsSupportStaff(p *Principal) bool { return HasRole(p, SupportStaffRoles...) }

// Require turns a predicate into the matching failure mode.
func Require(p *Principal, pred func(*Principal) bool) error {
	if p == nil || p.UserID == uuid.Nil {
		return ErrUnauthenticated
	}
	if !pred(p) {
		return ErrForbidden
	}
	return nil
}

// NewPrincipal builds a principal from raw token claims.
func NewPrincipal(userID, username, role string) (*Principal, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	r, err := ParseRole(role)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return &Principal{UserID: id, Username: username, Role: r}, nil
}
