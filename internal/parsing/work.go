package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/dates"
	"github.com/jonathan/resume-builder/internal/types"
)

// workHeader matches "role | company | dateRange" with |, at or @ between role and company.
var workHeader = regexp.MustCompile(`^(.*?)\s*(?:\||\bat\b|@)\s*(.*?)\s*(?:\||,|-|–|—|\bto\b|\s)\s*(` + dateRangeExpr + `)\s*$`)

type workParser struct {
	lineSplitter
}

func newWorkParser() workParser {
	return workParser{lineSplitter{startsEntry: startsNamedEntry(nameOrDateStart)}}
}

// ParseEntry implements EntryParser.
func (workParser) ParseEntry(raw string) (types.WorkEntry, bool) {
	header, rest, ok := splitHeader(raw)
	if !ok {
		return types.WorkEntry{}, false
	}

	role, company, dateRange := splitEntryHeader(workHeader, header)
	if dateRange == "" {
		dateRange, rest = takeDateLine(rest)
	}

	entry := types.WorkEntry{
		Role:    role,
		Company: company,
		Bullets: bulletLines(rest),
	}
	entry.StartDate, entry.EndDate, entry.CurrentlyWorking = dates.SplitRange(dateRange)
	return entry, true
}

// splitEntryHeader applies a three-group header pattern, falling back to positional fields.
func splitEntryHeader(re *regexp.Regexp, header string) (first, second, dateRange string) {
	if m := re.FindStringSubmatch(header); m != nil {
		return trimSeparators(m[1]), trimSeparators(m[2]), strings.TrimSpace(m[3])
	}

	remaining := header
	if loc := dateRangeAny.FindStringIndex(header); loc != nil {
		dateRange = header[loc[0]:loc[1]]
		remaining = header[:loc[0]] + "  " + header[loc[1]:]
	}

	fields := splitFields(remaining)
	if len(fields) > 0 {
		first = fields[0]
	}
	if len(fields) > 1 {
		second = fields[1]
	}
	if dateRange == "" && len(fields) > 2 {
		dateRange = fields[2]
	}
	return first, second, dateRange
}

// ParseWorkExperience parses a work experience section into entries.
func ParseWorkExperience(text string) []types.WorkEntry {
	return ParseSection[types.WorkEntry](text, newWorkParser())
}
