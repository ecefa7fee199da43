package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	idRegex    = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,128}$`)
	clockRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
)

// ValidateID reports whether id can be placed in a backend URL path.
func ValidateID(id string) bool {
	return idRegex.MatchString(id)
}

// ValidateClock reports whether value is an HH:MM time of day.
func ValidateClock(value string) bool {
	return clockRegex.MatchString(value)
}

// OnHalfHour reports whether an HH:MM value falls on :00 or :30.
func OnHalfHour(value string) bool {
	m := clockRegex.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	return m[2] == "00" || m[2] == "30"
}

// SanitizeText drops markup characters and control runes other than line
// breaks and tabs, then trims the result.
func SanitizeText(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '<' || r == '>' || r == '`':
			return -1
		case r == '\n' || r == '\t':
			return r
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(cleaned)
}

// CollapseSpaces trims s and folds internal whitespace runs into one space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
