package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "empty", email: "", want: "Email is required"},
		{name: "missing at", email: "user.domain.tld", want: "Please enter a valid email address"},
		{name: "missing dot after at", email: "user@domain", want: "Please enter a valid email address"},
		{name: "whitespace in local part", email: "us er@domain.tld", want: "Please enter a valid email address"},
		{name: "dot before at only", email: "user.name@domain", want: "Please enter a valid email address"},
		{name: "well formed", email: "user@domain.tld", want: ""},
		{name: "subdomain", email: "user@mail.domain.tld", want: ""},
		{name: "plus tag", email: "user+tag@domain.tld", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Email(tt.email))
		})
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Password is required", Password(""))
	assert.Equal(t, "Password must be at least 8 characters long", Password("seven77"))
	assert.Equal(t, "", Password("eight888"))
	assert.Equal(t, "", Password("a much longer passphrase"))
}

func TestTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Title is required", Title(""))
	assert.Equal(t, "Title is required", Title("   "))
	assert.Equal(t, "", Title(strings.Repeat("a", 200)))
	assert.Equal(t, "Title must be 200 characters or less", Title(strings.Repeat("a", 201)))
}

func TestDescription(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Description(""))
	assert.Equal(t, "", Description(strings.Repeat("a", 1000)))
	assert.Equal(t, "Description must be 1000 characters or less", Description(strings.Repeat("a", 1001)))
}

func TestGenericRules(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Nickname is required", Required("", "Nickname"))
	assert.Equal(t, "Nickname is required", Required("  ", "Nickname"))
	assert.Equal(t, "", Required("x", "Nickname"))

	assert.Equal(t, "Note must be 5 characters or less", MaxLength("123456", 5, "Note"))
	assert.Equal(t, "", MaxLength("12345", 5, "Note"))
	assert.Equal(t, "", MaxLength("", 5, "Note"))
}
