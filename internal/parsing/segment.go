package parsing

import (
	"regexp"
	"sort"
	"strings"
)

// NotFound is the placeholder stored for any field or section the segmenter could not locate.
const NotFound = "Not found"

// Section names a labeled region of resume text.
type Section string

// Recognized sections.
const (
	SectionSummary          Section = "summary"
	SectionSkills           Section = "skills"
	SectionExperience       Section = "workExperience"
	SectionEducation        Section = "education"
	SectionProjects         Section = "projects"
	SectionAchievements     Section = "achievements"
	SectionCertifications   Section = "certifications"
	SectionExtracurriculars Section = "extracurriculars"
)

// sectionHeaders lists header keywords per section. Longer alternatives come first.
var sectionHeaders = []struct {
	section Section
	group   string
	pattern string
}{
	{SectionSummary, "summary", `(?:PROFESSIONAL\s+)?SUMMARY`},
	{SectionSkills, "skills", `(?:TECHNICAL\s*)?SKILLS`},
	{SectionExperience, "experience", `(?:WORK\s*)?EXPERIENCE`},
	{SectionEducation, "education", `EDUCATION`},
	{SectionProjects, "projects", `PROJECTS`},
	{SectionAchievements, "achievements", `ACHIEVEMENTS`},
	{SectionCertifications, "certifications", `(?:CERTIFICATIONS|CERTIFICATES)`},
	{SectionExtracurriculars, "extracurriculars", `(?:EXTRACURRICULAR\s*ACTIVITIES|ACTIVITIES)`},
}

// Sections returns every recognized section in canonical order.
func Sections() []Section {
	out := make([]Section, len(sectionHeaders))
	for i, h := range sectionHeaders {
		out[i] = h.section
	}
	return out
}

var (
	// lineHeaderPattern matches a header on its own line, optionally followed by a colon and inline content.
	lineHeaderPattern = buildHeaderPattern(`(?im)^[ \t]*`, `[ \t]*(?::|$)`)

	// inlineHeaderPattern matches a header anywhere; used when the text has no line-level headers.
	inlineHeaderPattern = buildHeaderPattern(`(?i)\b`, `\b[ \t]*:?`)

	// upperInlineHeaderPattern matches an upper-case header anywhere, alongside line-level headers.
	upperInlineHeaderPattern = buildHeaderPattern(`\b`, `\b[ \t]*:?`)

	pageMarker = regexp.MustCompile(`(?m)^[ \t]*Page \d+:[ \t]*`)
)

func buildHeaderPattern(prefix, suffix string) *regexp.Regexp {
	alts := make([]string, len(sectionHeaders))
	for i, h := range sectionHeaders {
		alts[i] = `(?P<` + h.group + `>` + h.pattern + `)`
	}
	return regexp.MustCompile(prefix + `(?:` + strings.Join(alts, "|") + `)` + suffix)
}

// Span locates one section inside the segmented text.
// Header text is [HeaderStart, HeaderEnd); the section body is [HeaderEnd, End).
type Span struct {
	Section     Section
	HeaderStart int
	HeaderEnd   int
	End         int
}

// Segmentation is the result of splitting raw resume text into sections.
type Segmentation struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	GitHub   string

	// Chunks holds the body of every recognized section, or NotFound.
	Chunks map[Section]string
	// Spans lists the sections that were found, in document order.
	Spans []Span
}

// Chunk returns the body text for a section, or NotFound.
func (s *Segmentation) Chunk(section Section) string {
	if chunk, ok := s.Chunks[section]; ok {
		return chunk
	}
	return NotFound
}

type headerHit struct {
	section    Section
	start, end int
}

// Segment splits raw text into labeled sections and extracts contact details.
// Each section's body runs from its first header to the next header of a different section.
func Segment(rawText string) *Segmentation {
	text := strings.ReplaceAll(rawText, "\r\n", "\n")

	seg := &Segmentation{
		Name:     extractName(text),
		Email:    extractEmail(text),
		Phone:    extractPhone(text),
		LinkedIn: linkedInPattern.FindString(text),
		GitHub:   gitHubPattern.FindString(text),
		Chunks:   make(map[Section]string, len(sectionHeaders)),
	}
	for _, h := range sectionHeaders {
		seg.Chunks[h.section] = NotFound
	}

	hits := findHeaders(lineHeaderPattern, text)
	if len(hits) == 0 {
		hits = findHeaders(inlineHeaderPattern, text)
	} else {
		hits = addInlineHeaders(hits, findHeaders(upperInlineHeaderPattern, text))
	}

	seen := make(map[Section]bool, len(sectionHeaders))
	for i, hit := range hits {
		if seen[hit.section] {
			continue
		}
		seen[hit.section] = true

		end := len(text)
		for _, next := range hits[i+1:] {
			if next.section != hit.section {
				end = next.start
				break
			}
		}

		seg.Spans = append(seg.Spans, Span{
			Section:     hit.section,
			HeaderStart: hit.start,
			HeaderEnd:   hit.end,
			End:         end,
		})
		if body := cleanChunk(text[hit.end:end]); body != "" {
			seg.Chunks[hit.section] = body
		}
	}

	return seg
}

func findHeaders(re *regexp.Regexp, text string) []headerHit {
	var hits []headerHit
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		for i, h := range sectionHeaders {
			// Group i+1 belongs to sectionHeaders[i].
			if m[2*(i+1)] >= 0 {
				hits = append(hits, headerHit{section: h.section, start: m[0], end: m[1]})
				break
			}
		}
	}
	return hits
}

// addInlineHeaders merges inline hits for sections that have no line-level header.
// Inline hits overlapping a line-level header are dropped. The result is in text order.
func addInlineHeaders(lineHits, inline []headerHit) []headerHit {
	claimed := make(map[Section]bool, len(lineHits))
	for _, hit := range lineHits {
		claimed[hit.section] = true
	}

	hits := append([]headerHit(nil), lineHits...)
	for _, hit := range inline {
		if claimed[hit.section] || overlaps(hit, lineHits) {
			continue
		}
		hits = append(hits, hit)
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].start < hits[j].start })
	return hits
}

func overlaps(hit headerHit, others []headerHit) bool {
	for _, o := range others {
		if hit.start < o.end && o.start < hit.end {
			return true
		}
	}
	return false
}

func cleanChunk(chunk string) string {
	return strings.TrimSpace(pageMarker.ReplaceAllString(chunk, ""))
}
