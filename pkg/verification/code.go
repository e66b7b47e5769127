// Package verification generates and normalizes the 6-digit codes used to
// confirm email ownership during account sign-up.
package verification

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// CodeLength is the number of digits in a verification code.
const CodeLength = 6

const (
	codeMin  = 100000
	codeSpan = 900000
)

// ErrInvalidCode signals input that cannot be normalized into a code.
var ErrInvalidCode = fmt.Errorf("verification code must be %d digits", CodeLength)

// Generate returns a uniformly random 6-digit code as a string. The range
// starts at 100000 so codes never carry a leading zero.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%d", codeMin+n.Int64()), nil
}

// ParseInput normalizes a typed-in code. Surrounding whitespace is dropped,
// then the input must be exactly six ASCII digits.
func ParseInput(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if len(code) != CodeLength || !allDigits(code) {
		return "", ErrInvalidCode
	}
	return code, nil
}

// ParsePasted normalizes clipboard input. Pastes longer than six characters
// are truncated to the first six. Any non-digit anywhere in the truncated
// value rejects the whole paste rather than keeping a partial prefix.
func ParsePasted(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if len(code) > CodeLength {
		code = code[:CodeLength]
	}
	if len(code) != CodeLength || !allDigits(code) {
		return "", ErrInvalidCode
	}
	return code, nil
}

// Match compares a submitted code against the stored one in constant time.
func Match(submitted, stored string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(stored)) == 1
}

func allDigits(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
