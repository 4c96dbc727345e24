// Package validate holds pure syntactic predicates for candidate fields.
// Invalid input returns false; the predicates never panic.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	emailRe      = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phoneStripRe = regexp.MustCompile(`[\s\-()+]`)
)

// Name reports whether s looks like a person name: trimmed length >= 2 and
// every character alphabetic or whitespace.
func Name(s string) bool {
	if len(strings.TrimSpace(s)) < 2 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Email reports whether s matches a local@domain.tld shaped address.
func Email(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// Phone strips whitespace, hyphens, parentheses and plus signs, then requires
// at least 10 remaining digits.
func Phone(s string) bool {
	cleaned := phoneStripRe.ReplaceAllString(s, "")
	if len(cleaned) < 10 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Experience reports whether s parses as a number of years in [0, 50].
func Experience(s string) bool {
	years, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return false
	}
	return years >= 0 && years <= 50
}
