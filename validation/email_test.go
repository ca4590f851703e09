/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/storemeter/errors"
)

func TestValidateEmailSyntax(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"minimal", "a@b.co", true},
		{"plus and dots", "first.last+tag@example.co.uk", true},
		{"atext symbols", "!#$%&'*+/=?^_`{|}~-@example.com", true},
		{"hyphenated domain", "user@my-host.example.org", true},
		{"empty", "", false},
		{"no at", "example.com", false},
		{"two ats", "a@b@c.com", false},
		{"leading dot", ".a@b.co", false},
		{"double dot", "a..b@c.co", false},
		{"trailing dot local", "a.@b.co", false},
		{"single letter tld", "a@b.c", false},
		{"numeric tld", "a@b.12", false},
		{"space", "a b@c.co", false},
		{"quoted local part", `"a b"@c.co`, false},
		{"address literal", "a@[127.0.0.1]", false},
		{"non ascii", "ü@b.co", false},
		{"local part 64", strings.Repeat("a", 64) + "@b.co", true},
		{"local part 65", strings.Repeat("a", 65) + "@b.co", false},
		{"local part 70", strings.Repeat("a", 70) + "@b.co", false},
		{"label 63", "a@" + strings.Repeat("b", 63) + ".co", true},
		{"label 64", "a@" + strings.Repeat("b", 64) + ".co", false},
		{"total 260", "a@" + strings.Repeat(strings.Repeat("b", 50)+".", 5) + "co" + strings.Repeat("m", 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateEmailSyntax(tt.email))
		})
	}
}

func TestValidateEmailSyntaxTotalLength(t *testing.T) {
	// Four 62-byte labels keep every label and the local part within limits.
	label := strings.Repeat("b", 62)
	domain := label + "." + label + "." + label + ".co"
	ok := "a@" + domain
	require.LessOrEqual(t, len(ok), 254)
	assert.True(t, ValidateEmailSyntax(ok))

	tooLong := strings.Repeat("a", 64) + "@" + label + "." + label + "." + label + ".com"
	require.Greater(t, len(tooLong), 254)
	assert.False(t, ValidateEmailSyntax(tooLong))

	assert.False(t, ValidateEmailSyntax(strings.Repeat("a", 260)))
}

type signup struct {
	Email string `json:"email" validate:"required,email_syntax"`
	Name  string `json:"name,omitempty" validate:"max=10"`
}

func TestStructValidator(t *testing.T) {
	sv, err := NewStructValidator()
	require.NoError(t, err)

	require.NoError(t, sv.Struct(signup{Email: "a@b.co", Name: "ada"}))

	err = sv.Struct(signup{Email: "not-an-email", Name: "ada"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), `"email"`)
	assert.Contains(t, err.Error(), "valid email address")

	err = sv.Struct(&signup{Email: "", Name: "a very long name"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is required")
	assert.Contains(t, err.Error(), `"name"`)
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(signup{Email: "ops@example.com"}))

	err := ValidateStruct(signup{Email: "ops@@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}
