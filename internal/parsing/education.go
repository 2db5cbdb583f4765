package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/dates"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	// educationHeader matches "institution, degree, dateRange" with |, comma, colon or " - " after the institution.
	educationHeader = regexp.MustCompile(`^(.*?)\s*(?:\||,|:|\s-\s)\s*(.*?)\s*(?:\||,|-|–|—|\bto\b|\s)\s*(` + dateRangeExpr + `)\s*$`)
	gpaPattern      = regexp.MustCompile(`(?i)\b(?:GPA|Grade)\b:?[ \t]*([0-9]+(?:\.[0-9]+)?(?:[ \t]*/[ \t]*[0-9]+(?:\.[0-9]+)?)?)`)
	degreeField     = regexp.MustCompile(`^(.*?)\s+in\s+(.+)$`)
)

type educationParser struct {
	lineSplitter
}

func newEducationParser() educationParser {
	return educationParser{lineSplitter{startsEntry: startsNamedEntry(nameOrDateStart)}}
}

// ParseEntry implements EntryParser.
func (educationParser) ParseEntry(raw string) (types.EducationEntry, bool) {
	header, rest, ok := splitHeader(raw)
	if !ok {
		return types.EducationEntry{}, false
	}

	institution, degree, dateRange := splitEntryHeader(educationHeader, header)
	if dateRange == "" {
		dateRange, rest = takeDateLine(rest)
	}

	entry := types.EducationEntry{
		Institution: institution,
		Degree:      degree,
		GPA:         strings.Join(strings.Fields(capture(gpaPattern, raw, 1)), ""),
	}
	if m := degreeField.FindStringSubmatch(degree); m != nil {
		entry.Degree = trimSeparators(m[1])
		entry.FieldOfStudy = trimSeparators(m[2])
	}

	var details []string
	for _, line := range bulletLines(rest) {
		if line = trimSeparators(gpaPattern.ReplaceAllString(line, "")); line != "" {
			details = append(details, line)
		}
	}
	entry.Description = strings.Join(details, " ")

	entry.StartDate, entry.EndDate, _ = dates.SplitRange(dateRange)
	return entry, true
}

// ParseEducation parses an education section into entries.
func ParseEducation(text string) []types.EducationEntry {
	return ParseSection[types.EducationEntry](text, newEducationParser())
}
