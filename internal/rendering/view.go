package rendering

import (
	"net/url"
	"strings"

	"github.com/jonathan/resume-builder/internal/dates"
	"github.com/jonathan/resume-builder/internal/types"
)

// view is the data passed to every layout. Empty slices and strings make a layout omit
// the matching section.
type view struct {
	Title            string
	Header           header
	Summary          string
	Skills           []string
	Work             []entryView
	Companies        []companySection
	Projects         []entryView
	Education        []educationView
	Certifications   []certificationView
	Extracurriculars []entryView
	Achievements     []string
}

type header struct {
	Name     string
	Location string
	Phone    string
	Email    string
	Links    []link
}

// HasContact reports whether any contact line would be shown.
func (h header) HasContact() bool {
	return h.Location != "" || h.Phone != "" || h.Email != "" || len(h.Links) > 0
}

type link struct {
	Label string
	Href  string
}

type entryView struct {
	Title    string
	Subtitle string
	Location string
	Dates    string
	Details  []string
	Bullets  []string
}

// companySection groups the roles held at one company.
type companySection struct {
	Company  string
	Location string
	Dates    string
	Roles    []roleSection
}

type roleSection struct {
	Role    string
	Dates   string
	Bullets []string
}

type educationView struct {
	Degree      string
	Institution string
	GPA         string
	Date        string
}

type certificationView struct {
	Title  string
	Issuer string
	Date   string
	Href   string
}

func newView(r *types.ResumeData) *view {
	if r == nil {
		r = types.New()
	}

	v := &view{
		Title: "Resume",
		Header: header{
			Name:     clean(r.Name),
			Location: clean(r.Location),
			Phone:    clean(r.Phone),
			Email:    clean(r.Email),
		},
		Summary: clean(r.Summary),
		Skills:  nonEmpty(r.Skills),
	}
	if v.Header.Name != "" {
		v.Title = v.Header.Name + " - Resume"
	}
	for _, raw := range []string{r.LinkedIn, r.GitHub} {
		if l, ok := newLink(raw); ok {
			v.Header.Links = append(v.Header.Links, l)
		}
	}

	for _, w := range r.WorkExperience {
		v.Work = append(v.Work, entryView{
			Title:    clean(w.Role),
			Subtitle: clean(w.Company),
			Location: clean(w.Location),
			Dates:    dateRange(w.StartDate, w.EndDate, w.CurrentlyWorking),
			Bullets:  nonEmpty(w.Bullets),
		})
	}
	v.Companies = groupByCompany(r.WorkExperience)

	for _, p := range r.Projects {
		v.Projects = append(v.Projects, entryView{
			Title:   clean(p.Name),
			Dates:   dateRange(p.StartDate, p.EndDate, p.CurrentlyWorking),
			Details: nonEmpty(p.Technologies),
			Bullets: nonEmpty(p.Bullets),
		})
	}
	for _, e := range r.Education {
		degree := clean(e.Degree)
		if field := clean(e.FieldOfStudy); field != "" {
			degree = strings.TrimSpace(degree + " in " + field)
			degree = strings.TrimPrefix(degree, "in ")
		}
		v.Education = append(v.Education, educationView{
			Degree:      degree,
			Institution: clean(e.Institution),
			GPA:         clean(e.GPA),
			Date:        dates.Display(e.EndDate),
		})
	}
	for _, c := range r.Certifications {
		cert := certificationView{
			Title:  clean(c.Title),
			Issuer: clean(c.Issuer),
			Date:   dates.Display(c.IssueDate),
		}
		if l, ok := newLink(c.Link); ok {
			cert.Href = l.Href
		}
		v.Certifications = append(v.Certifications, cert)
	}
	for _, a := range r.Extracurriculars {
		v.Extracurriculars = append(v.Extracurriculars, entryView{
			Title:    clean(a.Role),
			Subtitle: clean(a.Organization),
			Location: clean(a.Location),
			Dates:    dateRange(a.StartDate, a.EndDate, a.CurrentlyActive),
			Bullets:  nonEmpty(a.Bullets),
		})
	}
	for _, a := range r.Achievements {
		if d := clean(a.Description); d != "" {
			v.Achievements = append(v.Achievements, d)
		}
	}
	return v
}

// dateRange formats "Jan 2022 – Present", "Jan 2022 – Dec 2023", or a single date.
func dateRange(start, end string, current bool) string {
	from := dates.Display(start)
	to := dates.Display(end)
	if current {
		to = "Present"
	}
	switch {
	case from != "" && to != "":
		return from + " – " + to
	case from != "":
		return from
	default:
		return to
	}
}

// groupByCompany merges roles held at the same company, keeping the order in which
// companies first appear. Entries without a company are never merged.
func groupByCompany(work []types.WorkEntry) []companySection {
	var sections []companySection
	index := make(map[string]int)
	spans := make(map[int][]types.WorkEntry)

	for _, w := range work {
		company := clean(w.Company)
		key := strings.ToLower(company)
		i, seen := index[key]
		if !seen || key == "" {
			i = len(sections)
			sections = append(sections, companySection{Company: company, Location: clean(w.Location)})
			if key != "" {
				index[key] = i
			}
		}
		sections[i].Roles = append(sections[i].Roles, roleSection{
			Role:    clean(w.Role),
			Dates:   dateRange(w.StartDate, w.EndDate, w.CurrentlyWorking),
			Bullets: nonEmpty(w.Bullets),
		})
		spans[i] = append(spans[i], w)
	}

	for i := range sections {
		sections[i].Dates = mergeDateRanges(spans[i])
	}
	return sections
}

// mergeDateRanges returns the span from the earliest start to the latest end across
// roles, or "Present" as the end when any role is ongoing.
func mergeDateRanges(roles []types.WorkEntry) string {
	var first, last string
	current := false
	for _, r := range roles {
		if r.StartDate != "" && (first == "" || r.StartDate < first) {
			first = r.StartDate
		}
		if r.CurrentlyWorking {
			current = true
		} else if end := r.EffectiveEndDate(); end > last {
			last = end
		}
	}
	return dateRange(first, last, current)
}

// newLink builds a link for a profile URL written with or without a scheme.
func newLink(raw string) (link, bool) {
	raw = clean(raw)
	if raw == "" {
		return link{}, false
	}
	label := strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	label = strings.TrimPrefix(strings.TrimSuffix(label, "/"), "www.")

	href := raw
	if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
		href = "https://" + href
	}
	if _, err := url.Parse(href); err != nil {
		return link{Label: label}, true
	}
	return link{Label: label, Href: href}, true
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func nonEmpty(items []string) []string {
	var out []string
	for _, item := range items {
		if s := clean(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
