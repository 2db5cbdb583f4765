package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/dates"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	certStart        = regexp.MustCompile(`^(?:[A-Z][a-z]+ [A-Z][a-z]+|\w+ \d{4}|.*Certificate|["'].*?["'])`)
	trailingDate     = regexp.MustCompile(`^(.*?)\s*(?:[-–—|,]\s*|\(\s*)(` + monthYearExpr + `)\s*\)?\s*$`)
	issuerPattern    = regexp.MustCompile(`(?i)\b(?:by|from)\b\s*(.*?)(?:\s*[-–—]\s*(.*))?$`)
	urlPattern       = regexp.MustCompile(`https?://\S+`)
	credentialIDLine = regexp.MustCompile(`(?i)\bcredential\s*(?:id\b\s*[:#]?|[:#])\s*([A-Za-z0-9-]+)`)
	expiryPattern    = regexp.MustCompile(`(?i)\b(?:expires?|expiry|valid until)\b:?\s*(` + monthYearExpr + `)`)
)

type certificationParser struct {
	lineSplitter
}

func newCertificationParser() certificationParser {
	return certificationParser{lineSplitter{startsEntry: startsCertification}}
}

// startsCertification keeps the issuer line attached to its title: a one-line entry only
// ends early when the candidate line carries its own date.
func startsCertification(current []string, line string) bool {
	if !certStart.MatchString(line) {
		return false
	}
	return len(current) > 1 || monthYearAny.MatchString(line)
}

// ParseEntry implements EntryParser.
func (certificationParser) ParseEntry(raw string) (types.CertificationEntry, bool) {
	header, rest, ok := splitHeader(raw)
	if !ok {
		return types.CertificationEntry{}, false
	}

	var entry types.CertificationEntry
	entry.Title, entry.IssueDate = splitTrailingDate(header)
	entry.Title = strings.Trim(entry.Title, `"'`)

	var details []string
	for _, line := range bulletLines(rest) {
		switch {
		case entry.Link == "" && urlPattern.MatchString(line):
			entry.Link = urlPattern.FindString(line)
		case entry.CredentialID == "" && credentialIDLine.MatchString(line):
			entry.CredentialID = capture(credentialIDLine, line, 1)
		case entry.ExpiryDate == "" && expiryPattern.MatchString(line):
			entry.ExpiryDate = dates.NormalizeMonthYear(capture(expiryPattern, line, 1))
		default:
			details = append(details, line)
		}
	}

	if len(details) > 0 {
		issuerLine := details[0]
		details = details[1:]
		if m := issuerPattern.FindStringSubmatch(issuerLine); m != nil {
			entry.Issuer = trimSeparators(m[1])
			if entry.IssueDate == "" {
				entry.IssueDate = dates.NormalizeMonthYear(m[2])
			}
		} else {
			var issued string
			entry.Issuer, issued = splitTrailingDate(issuerLine)
			if entry.IssueDate == "" {
				entry.IssueDate = issued
			}
		}
	}
	entry.Description = strings.Join(details, " ")

	return entry, true
}

// splitTrailingDate cuts a trailing " - Month Year" or "(Month Year)" off a line.
func splitTrailingDate(line string) (text, date string) {
	if m := trailingDate.FindStringSubmatch(line); m != nil {
		if d := dates.NormalizeMonthYear(m[2]); d != "" {
			return trimSeparators(m[1]), d
		}
	}
	return trimSeparators(line), ""
}

// ParseCertifications parses a certifications section into entries.
func ParseCertifications(text string) []types.CertificationEntry {
	return ParseSection[types.CertificationEntry](text, newCertificationParser())
}
