package employee

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go-hrm/internal/identity"
	"go-hrm/internal/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxNameAttempts = 1000

// NewUserInput is everything CreateUserWithProfile needs to insert a user.
// Empty Username or Email are generated from the names.
type NewUserInput struct {
	FirstName        string
	LastName         string
	Email            string
	Username         string
	Password         string
	UnusablePassword bool
	Role             identity.Role
	Department       string
	Designation      string
	DateOfJoining    *time.Time
	TeamLeadID       *uuid.UUID
	ManagerID        *uuid.UUID
	PhoneNumber      string
}

var titleCaser = cases.Title(language.English)

func displayName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return titleCaser.String(s)
}

func slugPart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// nameBase returns "first.last", falling back to "user" and a random tail.
func nameBase(first, last string) string {
	f, l := slugPart(first), slugPart(last)
	if f == "" {
		f = "user"
	}
	if l == "" {
		l = strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	}
	return f + "." + l
}

// uniqueCandidate tries base, base1, base2, ... until exists reports false.
func uniqueCandidate(ctx context.Context, base string, render func(string) string, exists func(context.Context, string) (bool, error)) (string, error) {
	candidate := render(base)
	for i := 1; i <= maxNameAttempts; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = render(fmt.Sprintf("%s%d", base, i))
	}
	return "", fmt.Errorf("no free candidate for %q after %d attempts", base, maxNameAttempts)
}

// UnusablePassword returns a hash that never matches any bcrypt comparison.
func UnusablePassword() string {
	return user.UnusablePasswordPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func hashPassword(in NewUserInput) (string, error) {
	if in.UnusablePassword || in.Password == "" {
		return UnusablePassword(), nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
