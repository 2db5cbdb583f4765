package parsing

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// ParseResume segments raw text and runs every section parser over it.
// The result never holds the NotFound placeholder; missing values are empty.
func ParseResume(rawText string) *types.ResumeData {
	seg := Segment(rawText)

	r := types.New()
	r.Name = valueOrEmpty(seg.Name)
	r.Email = valueOrEmpty(seg.Email)
	r.Phone = valueOrEmpty(seg.Phone)
	r.LinkedIn = seg.LinkedIn
	r.GitHub = seg.GitHub
	r.Summary = strings.Join(strings.Fields(valueOrEmpty(seg.Chunk(SectionSummary))), " ")
	r.Skills = NormalizeSkills(seg.Chunk(SectionSkills))
	r.WorkExperience = ParseWorkExperience(seg.Chunk(SectionExperience))
	r.Projects = ParseProjects(seg.Chunk(SectionProjects))
	r.Education = ParseEducation(seg.Chunk(SectionEducation))
	r.Certifications = ParseCertifications(seg.Chunk(SectionCertifications))
	r.Extracurriculars = ParseExtracurriculars(seg.Chunk(SectionExtracurriculars))
	r.Achievements = ParseAchievements(seg.Chunk(SectionAchievements))
	return r
}

// Apply copies every field the parser produces from parsed into dst, replacing previous values.
// Location is not derived from text, so the value already in dst is kept.
func Apply(dst, parsed *types.ResumeData) {
	if dst == nil || parsed == nil {
		return
	}
	location := dst.Location
	*dst = *parsed
	dst.Location = location
	dst.Normalize()
}

func valueOrEmpty(s string) string {
	if s == NotFound {
		return ""
	}
	return s
}
