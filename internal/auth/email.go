package auth

import "strings"

// ValidEmailSyntax applies the pre-flight address check: exactly one @ with
// non-whitespace on both sides, and at least one dot in the domain part.
// Anything passing here may still bounce; the verification code is the real
// proof of ownership.
func ValidEmailSyntax(email string) bool {
	if strings.Count(email, "@") != 1 {
		return false
	}
	at := strings.Index(email, "@")
	local, domain := email[:at], email[at+1:]
	if local == "" || domain == "" {
		return false
	}
	if strings.ContainsAny(local, " \t\r\n") || strings.ContainsAny(domain, " \t\r\n") {
		return false
	}
	return strings.Contains(domain, ".")
}
