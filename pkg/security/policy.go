package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Character classes a valid password must draw from.
const (
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*()_+-=[]{}|;:,.?"
)

// MinPasswordLength is the shortest password the policy accepts.
const MinPasswordLength = 8

// GeneratedPasswordLength is the length of policy-compliant generated passwords.
const GeneratedPasswordLength = 12

// PolicyViolation describes one unmet password requirement.
type PolicyViolation string

const (
	ViolationTooShort  PolicyViolation = "must be at least 8 characters"
	ViolationNoUpper   PolicyViolation = "must contain an uppercase letter"
	ViolationNoLower   PolicyViolation = "must contain a lowercase letter"
	ViolationNoDigit   PolicyViolation = "must contain a digit"
	ViolationNoSpecial PolicyViolation = "must contain a special character"
)

// ValidatePassword checks a candidate against the account password policy and
// returns every unmet requirement. An empty slice means the password passes.
func ValidatePassword(password string) []PolicyViolation {
	var violations []PolicyViolation
	if len(password) < MinPasswordLength {
		violations = append(violations, ViolationTooShort)
	}
	if !strings.ContainsAny(password, upperChars) {
		violations = append(violations, ViolationNoUpper)
	}
	if !strings.ContainsAny(password, lowerChars) {
		violations = append(violations, ViolationNoLower)
	}
	if !strings.ContainsAny(password, digitChars) {
		violations = append(violations, ViolationNoDigit)
	}
	if !strings.ContainsAny(password, specialChars) {
		violations = append(violations, ViolationNoSpecial)
	}
	return violations
}

// GeneratePassword produces a random password that satisfies the policy. One
// character from each class is guaranteed, the rest are drawn from the union,
// then the result is shuffled so class positions are not predictable.
func GeneratePassword() (string, error) {
	all := upperChars + lowerChars + digitChars + specialChars

	chars := make([]byte, 0, GeneratedPasswordLength)
	for _, class := range []string{upperChars, lowerChars, digitChars, specialChars} {
		c, err := randByte(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for len(chars) < GeneratedPasswordLength {
		c, err := randByte(all)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	// Fisher-Yates with crypto randomness.
	for i := len(chars) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

func randByte(charset string) (byte, error) {
	idx, err := randInt(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[idx], nil
}

func randInt(max int) (int, error) {
	if max <= 0 {
		return 0, fmt.Errorf("invalid max %d", max)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
