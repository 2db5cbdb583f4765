package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/dates"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	activityStart  = regexp.MustCompile(`^(?:[A-Z][a-z]+ [A-Z][a-z]+|\w+ \d{4}|["'].*?["'])`)
	activityHeader = regexp.MustCompile(`^(.*?)\s*(?:\||\(|\[|\s-\s|\s:\s)\s*(.*)$`)
	roleLabel      = regexp.MustCompile(`(?i)\b(?:Role|Position)\b\s*:?\s*(.*)`)
	activityDates  = regexp.MustCompile(`(` + monthYearExpr + `)\s*(?:-|–|—|\bto\b)\s*(` + monthYearExpr + `|(?i:present))`)
)

type activityParser struct {
	lineSplitter
}

func newActivityParser() activityParser {
	return activityParser{lineSplitter{startsEntry: startsNamedEntry(activityStart)}}
}

// ParseEntry implements EntryParser.
func (activityParser) ParseEntry(raw string) (types.ActivityEntry, bool) {
	header, rest, ok := splitHeader(raw)
	if !ok {
		return types.ActivityEntry{}, false
	}

	entry := types.ActivityEntry{Organization: trimSeparators(header)}
	details := ""
	if m := activityHeader.FindStringSubmatch(header); m != nil {
		entry.Organization = trimSeparators(m[1])
		details = m[2]
	}

	if m := activityDates.FindStringSubmatch(details); m != nil {
		entry.StartDate = dates.NormalizeMonthYear(m[1])
		if strings.EqualFold(m[2], "present") {
			entry.CurrentlyActive = true
		} else {
			entry.EndDate = dates.NormalizeMonthYear(m[2])
		}
		details = strings.Replace(details, m[0], " ", 1)
	} else if dateRange, remaining := takeDateLine(rest); dateRange != "" {
		entry.StartDate, entry.EndDate, entry.CurrentlyActive = dates.SplitRange(dateRange)
		rest = remaining
	}

	if m := roleLabel.FindStringSubmatch(details); m != nil {
		entry.Role = trimSeparators(m[1])
	} else {
		entry.Role = trimSeparators(details)
	}

	bullets := []string{}
	for _, line := range bulletLines(rest) {
		if entry.Role == "" {
			if m := roleLabel.FindStringSubmatch(line); m != nil && roleLabel.FindStringIndex(line)[0] == 0 {
				entry.Role = trimSeparators(m[1])
				continue
			}
		}
		bullets = append(bullets, line)
	}
	entry.Bullets = bullets

	return entry, true
}

// ParseExtracurriculars parses an extracurricular activities section into entries.
func ParseExtracurriculars(text string) []types.ActivityEntry {
	return ParseSection[types.ActivityEntry](text, newActivityParser())
}

// ParseAchievements returns one achievement per non-empty line, bullet glyphs removed.
func ParseAchievements(text string) []types.AchievementEntry {
	out := []types.AchievementEntry{}
	if isEmptySection(text) {
		return out
	}
	for _, line := range bulletLines(contentLines(text)) {
		out = append(out, types.AchievementEntry{Description: line})
	}
	return out
}
