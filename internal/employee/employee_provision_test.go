package employee

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameBase(t *testing.T) {
	assert.Equal(t, "jane.doe", nameBase("Jane", "Doe"))
	assert.Equal(t, "marytom.oneil", nameBase("Mary Tom", "O'Neil"))

	b := nameBase("", "")
	assert.True(t, strings.HasPrefix(b, "user."))
	assert.Len(t, b, len("user.")+4)
}

func TestUniqueCandidate(t *testing.T) {
	taken := map[string]bool{"a.b@x.com": true, "a.b1@x.com": true}

	got, err := uniqueCandidate(context.Background(), "a.b",
		func(c string) string { return c + "@x.com" },
		func(_ context.Context, c string) (bool, error) { return taken[c], nil },
	)

	assert.NoError(t, err)
	assert.Equal(t, "a.b2@x.com", got)
}

func TestFormatEmpID(t *testing.T) {
	assert.Equal(t, "WZG-AI-0042", FormatEmpID(42))
	assert.Equal(t, "WZG-AI-12345", FormatEmpID(12345))
}

func TestHashPassword(t *testing.T) {
	h, err := hashPassword(NewUserInput{UnusablePassword: true, Password: "ignored"})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "!"))

	h, err = hashPassword(NewUserInput{Password: "Secret#123"})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "$2"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Jane Mary", displayName("  jane   mary "))
	assert.Equal(t, "", displayName("  "))
}
