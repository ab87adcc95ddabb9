package utils

import (
	"regexp"
	"strings"
)

// Input validation mirrors the rules enforced on registration and login:
// proper email shape, password strength, and rejection of anything carrying
// Mongo operators or HTML/script payloads.

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

	// Minimum 8 characters with at least one letter, one digit and one
	// special character. Go's regexp has no lookahead, so the three
	// requirements are checked separately.
	passwordAllowed = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
	hasLetter       = regexp.MustCompile(`[A-Za-z]`)
	hasDigit        = regexp.MustCompile(`\d`)
	hasSpecial      = regexp.MustCompile(`[@$!%*?&]`)

	htmlTagPattern    = regexp.MustCompile(`</?[^>]+(>|$)`)
	jsEventPattern    = regexp.MustCompile(`on\w+=".*?"`)
	jsProtocolPattern = regexp.MustCompile(`(?i)javascript:`)
)

// containsUnsafeInput flags NoSQL-operator, HTML tag, inline-handler and
// javascript: payloads.
func containsUnsafeInput(s string) bool {
	if strings.Contains(s, "$") {
		return true
	}
	return htmlTagPattern.MatchString(s) ||
		jsEventPattern.MatchString(s) ||
		jsProtocolPattern.MatchString(s)
}

// ValidateEmail checks format and rejects unsafe payloads.
func ValidateEmail(email string) bool {
	if !emailPattern.MatchString(email) {
		return false
	}
	return !containsUnsafeInput(email)
}

// ValidatePassword enforces the strength rules.
func ValidatePassword(password string) bool {
	if containsUnsafeInput(password) {
		return false
	}
	return passwordAllowed.MatchString(password) &&
		hasLetter.MatchString(password) &&
		hasDigit.MatchString(password) &&
		hasSpecial.MatchString(password)
}

// NormalizeAmenities trims entries, drops empties, de-duplicates preserving
// order, and splits single comma-separated values.
func NormalizeAmenities(amenities []string) []string {
	out := make([]string, 0, len(amenities))
	seen := make(map[string]struct{}, len(amenities))
	for _, raw := range amenities {
		for _, a := range strings.Split(raw, ",") {
			a = strings.TrimSpace(a)
			if a == "" {
				continue
			}
			if _, dup := seen[a]; dup {
				continue
			}
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}

// NormalizeDocuments guarantees a non-nil slice with blanks removed so
// document arrays always marshal as [].
func NormalizeDocuments(docs []string) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		d = strings.TrimSpace(d)
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}
