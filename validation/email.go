/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package validation

import (
	"regexp"
	"strings"
)

const (
	maxEmailLength       = 254
	maxLocalPartLength   = 64
	maxDomainLabelLength = 63

	// atext characters allowed in the local part
	localChars = "-!#$%&'*+/0-9=?A-Z^_a-z`{|}~"
)

// emailPattern approximates RFC 5321/5322 addresses without quoted local parts
// or address literals: dot-separated atoms, '@', then a dotted domain whose
// last label starts with a letter and has at least two characters.
var emailPattern = regexp.MustCompile(
	`^[` + localChars + `](\.?[` + localChars + `])*` +
		`@[a-zA-Z0-9](-*\.?[a-zA-Z0-9])*\.[a-zA-Z](-?[a-zA-Z0-9])+$`,
)

// ValidateEmailSyntax reports whether s is a syntactically acceptable email
// address. Lengths are measured in bytes.
func ValidateEmailSyntax(s string) bool {
	if s == "" || len(s) > maxEmailLength {
		return false
	}
	if !emailPattern.MatchString(s) {
		return false
	}

	// The pattern admits exactly one '@'.
	local, domain, _ := strings.Cut(s, "@")
	if len(local) > maxLocalPartLength {
		return false
	}
	for _, label := range strings.Split(domain, ".") {
		if len(label) > maxDomainLabelLength {
			return false
		}
	}
	return true
}
