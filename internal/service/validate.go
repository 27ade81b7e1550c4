package service

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	passportNumberRe = regexp.MustCompile(`^\d{4} \d{6}$`)
	issueDateRe      = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
)

// validFullName requires at least two space-separated tokens.
func validFullName(s string) bool {
	return len(strings.Fields(strings.TrimSpace(s))) >= 2
}

// normalizePhone strips every non-digit character. The result is valid
// when at least 10 digits remain.
func normalizePhone(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	return digits, len(digits) >= 10
}

// validPassportNumber matches the fixed "1234 567890" pattern.
func validPassportNumber(s string) bool {
	return passportNumberRe.MatchString(s)
}

// validIssuedBy is a heuristic completeness check on the issuing
// authority name.
func validIssuedBy(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= 10
}

// validIssueDate matches DD.MM.YYYY.
func validIssueDate(s string) bool {
	return issueDateRe.MatchString(s)
}
