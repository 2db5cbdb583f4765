package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/dates"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	projectStart     = regexp.MustCompile(`^[A-Z].*?\s[-–—]\s*` + monthYearExpr)
	projectNameSplit = regexp.MustCompile(`\s+[-–—]\s+`)
	techLine         = regexp.MustCompile(`(?i)(?:tech(?:nology)?\s*stack|technologies)[^:]*:\s*(.*)$`)
	techSeparator    = regexp.MustCompile(`[,;]`)
)

type projectParser struct {
	lineSplitter
}

func newProjectParser() projectParser {
	return projectParser{lineSplitter{startsEntry: startsWith(projectStart)}}
}

// ParseEntry implements EntryParser.
func (projectParser) ParseEntry(raw string) (types.ProjectEntry, bool) {
	header, rest, ok := splitHeader(raw)
	if !ok {
		return types.ProjectEntry{}, false
	}

	entry := types.ProjectEntry{
		Technologies: types.StringList{},
		Bullets:      []string{},
	}

	var dateRange string
	parts := projectNameSplit.Split(header, 2)
	entry.Name = trimSeparators(parts[0])
	if len(parts) == 2 {
		dateRange = parts[1]
	}

	techFound := false
	for _, line := range rest {
		line = stripBullet(line)
		if line == "" {
			continue
		}
		if !techFound {
			if m := techLine.FindStringSubmatch(line); m != nil {
				techFound = true
				entry.Technologies = splitTechnologies(m[1])
				continue
			}
		}
		entry.Bullets = append(entry.Bullets, line)
	}

	entry.StartDate, entry.EndDate, entry.CurrentlyWorking = dates.SplitRange(dateRange)
	return entry, true
}

func splitTechnologies(s string) types.StringList {
	out := types.StringList{}
	for _, tok := range techSeparator.Split(s, -1) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// ParseProjects parses a projects section into entries.
func ParseProjects(text string) []types.ProjectEntry {
	return ParseSection[types.ProjectEntry](text, newProjectParser())
}
