// Package dates converts free-text month/year tokens into canonical YYYY-MM strings.
package dates

import (
	"fmt"
	"regexp"
	"strings"
)

// monthNames maps full English month names to their number.
var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// minMonthPrefix is the shortest accepted month abbreviation.
const minMonthPrefix = 3

var (
	yearPattern      = regexp.MustCompile(`^\d{4}$`)
	canonicalPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	rangeSeparator   = regexp.MustCompile(`(?i)\s*(?:-|–|—|\bto\b)\s*`)
	currentMarker    = regexp.MustCompile(`(?i)\b(?:present|current|now)\b`)
)

// MonthNumber returns 1-12 for a month name or abbreviation of at least three letters, or 0.
func MonthNumber(token string) int {
	token = strings.ToLower(strings.Trim(token, ".,"))
	if len(token) < minMonthPrefix {
		return 0
	}
	for i, name := range monthNames {
		if strings.HasPrefix(name, token) {
			return i + 1
		}
	}
	return 0
}

// NormalizeMonthYear converts "Feb 2024" or "february 2024" into "2024-02".
// Anything that is not exactly a month token followed by a four-digit year yields "".
func NormalizeMonthYear(text string) string {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return ""
	}

	month := MonthNumber(fields[0])
	if month == 0 {
		return ""
	}

	year := strings.Trim(fields[1], ".,")
	if !yearPattern.MatchString(year) {
		return ""
	}

	return fmt.Sprintf("%s-%02d", year, month)
}

// SplitRange splits a "Jan 2022 - Present" style token into canonical start and end dates.
// current is true when the second half mentions present, current or now; end is then "".
func SplitRange(text string) (start, end string, current bool) {
	parts := rangeSeparator.Split(strings.TrimSpace(text), 2)
	start = NormalizeMonthYear(parts[0])
	if len(parts) < 2 {
		return start, "", false
	}
	if currentMarker.MatchString(parts[1]) {
		return start, "", true
	}
	return start, NormalizeMonthYear(parts[1]), false
}

// IsCanonical reports whether s is already a YYYY-MM date.
func IsCanonical(s string) bool {
	return canonicalPattern.MatchString(s)
}

// Coerce keeps canonical dates, normalizes month/year text, and drops anything else.
func Coerce(s string) string {
	s = strings.TrimSpace(s)
	if IsCanonical(s) {
		return s
	}
	return NormalizeMonthYear(s)
}

// Display renders a canonical date as "Feb 2024". Other values are returned unchanged.
func Display(s string) string {
	if !IsCanonical(s) {
		return s
	}
	var month int
	if _, err := fmt.Sscanf(s[5:], "%d", &month); err != nil {
		return s
	}
	name := monthNames[month-1]
	return strings.ToUpper(name[:1]) + name[1:3] + " " + s[:4]
}
