package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

// nameSearchLines is how many non-empty lines from the top are searched for the name.
const nameSearchLines = 5

var (
	namePattern     = regexp.MustCompile(`^[A-Z][A-Za-z'.-]*(?:[ \t]+[A-Z][A-Za-z'.-]*)+`)
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?\d{1,3}[ \t.-]?)?(?:\(?\d{3}\)?[ \t.-]?)?\d{3}[ \t.-]?\d{4}`)
	linkedInPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/in/[A-Za-z0-9_%-]+/?`)
	gitHubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+`)
)

// extractName returns the first capitalized word run found near the top of the text.
func extractName(text string) string {
	checked := 0
	for _, line := range strings.Split(pageMarker.ReplaceAllString(text, ""), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if checked == nameSearchLines || lineHeaderPattern.MatchString(line) {
			break
		}
		checked++

		if strings.Contains(line, "@") && !strings.Contains(line, " ") {
			continue
		}
		if m := namePattern.FindString(line); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return NotFound
}

func extractEmail(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return m
	}
	return NotFound
}

// extractPhone returns the first phone-shaped run that is not part of a longer digit sequence.
// Runs with a full ten digits win over shorter local numbers, so year ranges like 2018-2022 lose.
func extractPhone(text string) string {
	fallback := ""
	for _, loc := range phonePattern.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && isDigitByte(text[loc[0]-1]) {
			continue
		}
		if loc[1] < len(text) && isDigitByte(text[loc[1]]) {
			continue
		}
		m := strings.TrimSpace(text[loc[0]:loc[1]])
		if countDigits(m) >= 10 {
			return m
		}
		if fallback == "" {
			fallback = m
		}
	}
	if fallback != "" {
		return fallback
	}
	return NotFound
}

func isDigitByte(b byte) bool {
	return unicode.IsDigit(rune(b))
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
