package extraction

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/dates"
	"github.com/jonathan/resume-builder/internal/types"
)

// fields reads values out of an untrusted decoded JSON object. Every accessor falls back to
// the zero value of its field when the key is missing or holds an unexpected type.
type fields map[string]any

func (f fields) str(key string) string {
	switch v := f[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func (f fields) date(key string) string {
	return dates.Coerce(f.str(key))
}

func (f fields) flag(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	default:
		return false
	}
}

// strings accepts either a JSON array or a delimited string.
func (f fields) strings(key string) []string {
	switch v := f[key].(type) {
	case string:
		return types.SplitList(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := (fields{"v": item}).str("v"); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// objects returns the object elements of a JSON array, skipping anything else.
func (f fields) objects(key string) []fields {
	items, _ := f[key].([]any)
	out := make([]fields, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, fields(m))
		}
	}
	return out
}

// unwrapResume returns the object under a "resume" key when the reply is wrapped in one.
func unwrapResume(payload map[string]any) fields {
	if inner, ok := payload["resume"].(map[string]any); ok {
		return fields(inner)
	}
	return fields(payload)
}

// toResume maps a decoded reply onto ResumeData field by field.
func toResume(f fields) *types.ResumeData {
	r := &types.ResumeData{
		Name:     f.str("name"),
		Email:    f.str("email"),
		Phone:    f.str("phone"),
		LinkedIn: f.str("linkedIn"),
		GitHub:   f.str("github"),
		Location: f.str("location"),
		Summary:  f.str("summary"),
		Skills:   types.StringList(f.strings("skills")),
	}

	for _, w := range f.objects("workExperience") {
		r.WorkExperience = append(r.WorkExperience, types.WorkEntry{
			Company:          w.str("company"),
			Role:             w.str("role"),
			Location:         w.str("location"),
			StartDate:        w.date("startDate"),
			EndDate:          w.date("endDate"),
			CurrentlyWorking: w.flag("currentlyWorking"),
			Bullets:          w.strings("bullets"),
		})
	}
	for _, p := range f.objects("projects") {
		r.Projects = append(r.Projects, types.ProjectEntry{
			Name:             p.str("name"),
			Technologies:     types.StringList(p.strings("technologies")),
			StartDate:        p.date("startDate"),
			EndDate:          p.date("endDate"),
			CurrentlyWorking: p.flag("currentlyWorking"),
			Bullets:          p.strings("bullets"),
		})
	}
	for _, e := range f.objects("education") {
		r.Education = append(r.Education, types.EducationEntry{
			Institution:  e.str("institution"),
			Degree:       e.str("degree"),
			FieldOfStudy: e.str("fieldOfStudy"),
			GPA:          e.str("gpa"),
			Description:  e.str("description"),
			StartDate:    e.date("startDate"),
			EndDate:      e.date("endDate"),
		})
	}
	for _, c := range f.objects("certifications") {
		r.Certifications = append(r.Certifications, types.CertificationEntry{
			CredentialID: c.str("credentialId"),
			Title:        c.str("title"),
			Issuer:       c.str("issuer"),
			Link:         c.str("link"),
			Description:  c.str("description"),
			IssueDate:    c.date("issueDate"),
			ExpiryDate:   c.date("expiryDate"),
		})
	}
	for _, a := range f.objects("extracurriculars") {
		r.Extracurriculars = append(r.Extracurriculars, types.ActivityEntry{
			Organization:    a.str("organization"),
			Role:            a.str("role"),
			Location:        a.str("location"),
			StartDate:       a.date("startDate"),
			EndDate:         a.date("endDate"),
			CurrentlyActive: a.flag("currentlyActive"),
			Bullets:         a.strings("bullets"),
		})
	}
	items, _ := f["achievements"].([]any)
	for _, item := range items {
		var d string
		switch v := item.(type) {
		case string:
			d = strings.TrimSpace(v)
		case map[string]any:
			d = fields(v).str("description")
		}
		if d != "" {
			r.Achievements = append(r.Achievements, types.AchievementEntry{Description: d})
		}
	}

	r.Normalize()
	return r
}
