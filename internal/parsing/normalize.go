package parsing

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
}

// NormalizeSkillName maps known aliases to their canonical spelling.
// Unknown names are only trimmed; their casing is left alone.
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if canonical, ok := skillNormalizations[strings.ToLower(normalized)]; ok {
		return canonical
	}
	return normalized
}

// NormalizeSkills turns a skills section into an ordered list of tokens exactly as written.
// Lines are split on commas, semicolons and bullet glyphs; tokens are trimmed and empty ones dropped.
func NormalizeSkills(text string) types.StringList {
	out := types.StringList{}
	if isEmptySection(text) {
		return out
	}
	for _, line := range contentLines(text) {
		out = append(out, types.SplitList(stripBullet(line))...)
	}
	return out
}

// CanonicalizeSkills rewrites known aliases to their canonical names and drops
// case-insensitive duplicates, keeping the first occurrence. The input is not modified.
func CanonicalizeSkills(skills types.StringList) types.StringList {
	out := types.StringList{}
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		skill = NormalizeSkillName(skill)
		key := strings.ToLower(skill)
		if skill == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, skill)
	}
	return out
}
