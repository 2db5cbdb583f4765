// Package parsing converts raw resume text into structured resume data using
// header segmentation and per-section heuristics. Nothing in this package
// returns an error: text that does not fit a pattern degrades to empty fields.
package parsing

import (
	"regexp"
	"strings"
)

// EntryParser splits one section's text into entries and parses each entry.
type EntryParser[T any] interface {
	// SegmentEntries splits section text into raw entry blocks, in order.
	SegmentEntries(text string) []string
	// ParseEntry parses one block. ok is false when the block holds no content.
	ParseEntry(raw string) (entry T, ok bool)
}

// ParseSection runs p over text. Empty text and the NotFound placeholder yield an empty slice.
func ParseSection[T any](text string, p EntryParser[T]) []T {
	out := []T{}
	if isEmptySection(text) {
		return out
	}
	for _, raw := range p.SegmentEntries(text) {
		if entry, ok := p.ParseEntry(raw); ok {
			out = append(out, entry)
		}
	}
	return out
}

func isEmptySection(text string) bool {
	text = strings.TrimSpace(text)
	return text == "" || text == NotFound
}

// Shared regex fragments.
const (
	monthYearExpr = `[A-Za-z]{3,}\.?,?\s+\d{4}`
	dateTokenExpr = `(?:` + monthYearExpr + `|\d{4})`
	dateRangeExpr = dateTokenExpr + `(?:\s*(?:-|–|—|\bto\b)\s*(?:` + dateTokenExpr + `|(?i:present|current|now)))?`
)

var (
	// nameOrDateStart matches a line that opens a new work, education or activity entry.
	nameOrDateStart = regexp.MustCompile(`^(?:[A-Z][a-z]+ [A-Z][a-z]+|\w+ \d{4})`)
	dateRangeLine   = regexp.MustCompile(`^` + dateRangeExpr + `$`)
	dateRangeAny    = regexp.MustCompile(dateRangeExpr)
	monthYearAny    = regexp.MustCompile(monthYearExpr)
	bulletPrefix    = regexp.MustCompile(`^[•\-*\s]+`)
	fieldSeparators = regexp.MustCompile(`\s{2,}|\s*\|\s*|\s+(?:at|@|-|–|—)\s+`)
)

// capture returns the trimmed group of the first match of re in s, or "" when re does not match.
func capture(re *regexp.Regexp, s string, group int) string {
	m := re.FindStringSubmatch(s)
	if m == nil || group >= len(m) {
		return ""
	}
	return strings.TrimSpace(m[group])
}

// stripBullet removes a leading bullet glyph and surrounding whitespace.
func stripBullet(line string) string {
	return strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
}

// trimSeparators removes dangling punctuation left over after a field was cut out of a line.
func trimSeparators(s string) string {
	return strings.Trim(strings.TrimSpace(s), " \t|,;:-–—()[]")
}

// contentLines returns the trimmed, non-empty lines of text.
func contentLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// bulletLines strips bullet glyphs and drops lines that end up empty.
func bulletLines(lines []string) []string {
	out := []string{}
	for _, line := range lines {
		if b := stripBullet(line); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// splitFields splits a header on runs of 2+ spaces, pipes, spaced dashes, "at" or "@".
func splitFields(s string) []string {
	var out []string
	for _, f := range fieldSeparators.Split(s, -1) {
		if f = trimSeparators(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// takeDateLine removes the first detail line that is nothing but a date range and returns it.
func takeDateLine(rest []string) (dateRange string, remaining []string) {
	for i, line := range rest {
		if line = stripBullet(line); dateRangeLine.MatchString(line) {
			remaining = append(append([]string{}, rest[:i]...), rest[i+1:]...)
			return line, remaining
		}
	}
	return "", rest
}

// lineSplitter splits text into entries at lines for which startsEntry reports true.
// The delimiting line is kept as the first line of the new entry.
type lineSplitter struct {
	startsEntry func(current []string, line string) bool
}

func startsWith(re *regexp.Regexp) func([]string, string) bool {
	return func(_ []string, line string) bool {
		return re.MatchString(line)
	}
}

// startsNamedEntry is startsWith, except that a bare date range stays with the
// current entry until that entry carries a date of its own.
func startsNamedEntry(re *regexp.Regexp) func([]string, string) bool {
	return func(current []string, line string) bool {
		if !re.MatchString(line) {
			return false
		}
		if dateRangeLine.MatchString(line) {
			for _, l := range current {
				if monthYearAny.MatchString(l) {
					return true
				}
			}
			return false
		}
		return true
	}
}

// SegmentEntries implements the splitting half of EntryParser.
func (s lineSplitter) SegmentEntries(text string) []string {
	var entries []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			entries = append(entries, strings.Join(current, "\n"))
		}
		current = nil
	}

	for _, line := range contentLines(text) {
		if len(current) > 0 && s.startsEntry(current, line) {
			flush()
		}
		current = append(current, line)
	}
	flush()
	return entries
}

// splitHeader separates an entry into its header line and bullet-stripped detail lines.
// ok is false when nothing but whitespace and bullet glyphs remains.
func splitHeader(raw string) (header string, rest []string, ok bool) {
	lines := bulletLines(contentLines(raw))
	if len(lines) == 0 {
		return "", nil, false
	}
	return lines[0], lines[1:], true
}
