package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmailSyntax(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.fr", true},
		{"a@b.c", true},
		{"", false},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"a@b@c.com", false},
		{"@example.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"user name@example.com", false},
		{"user@exa mple.com", false},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidEmailSyntax(tc.email))
		})
	}
}
