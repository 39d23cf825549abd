// Package token issues and verifies the HS256 access / refresh pair.
package token

import (
	"errors"
	"time"

	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/identity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Type     Type   `json:"token_type"`
	jwt.RegisteredClaims
}

// Principal resolves the claims into a validated principal.
func (c *Claims) Principal() (*identity.Principal, error) {
	return identity.NewPrincipal(c.UserID, c.Username, c.Role)
}

// Remaining is how long the token stays valid after now.
func (c *Claims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}

type Pair struct {
	Access  string
	Refresh string
}

type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// WithClock is used by tests to freeze time.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

func (m *Manager) AccessTTL() time.Duration  { return m.accessTTL }
func (m *Manager) RefreshTTL() time.Duration { return m.refreshTTL }

func (m *Manager) Issue(p *identity.Principal) (Pair, error) {
	access, err := m.sign(p, TypeAccess, m.accessTTL)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := m.sign(p, TypeRefresh, m.refreshTTL)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

func (m *Manager) sign(p *identity.Principal, typ Type, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		UserID:   p.UserID.String(),
		Username: p.Username,
		Role:     string(p.Role),
		Type:     typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   p.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

// Parse verifies signature, expiry, and token type.
func (m *Manager) Parse(raw string, want Type) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}
	if !tok.Valid || claims.Type != want || claims.ID == "" {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}
