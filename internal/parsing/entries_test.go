package parsing

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkExperience_PipeSeparatedCurrentRole(t *testing.T) {
	input := "Jane Doe | Acme Corp | Jan 2022 - Present\n• Led backend redesign\n• Mentored two engineers"

	got := ParseWorkExperience(input)

	require.Len(t, got, 1)
	assert.Equal(t, "Jane Doe", got[0].Role)
	assert.Equal(t, "Acme Corp", got[0].Company)
	assert.Equal(t, "2022-01", got[0].StartDate)
	assert.Equal(t, "", got[0].EndDate)
	assert.True(t, got[0].CurrentlyWorking)
	assert.Equal(t, []string{"Led backend redesign", "Mentored two engineers"}, got[0].Bullets)
	assert.Equal(t, "", got[0].Location)
}

func TestParseWorkExperience_HeaderVariants(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantRole    string
		wantCompany string
		wantStart   string
		wantEnd     string
		wantCurrent bool
	}{
		{
			name:        "at separator",
			header:      "Engineer at Acme Corp Jan 2020 - Mar 2021",
			wantRole:    "Engineer",
			wantCompany: "Acme Corp",
			wantStart:   "2020-01",
			wantEnd:     "2021-03",
		},
		{
			name:        "at sign with to",
			header:      "Engineer @ Initech, Jun 2019 to Dec 2021",
			wantRole:    "Engineer",
			wantCompany: "Initech",
			wantStart:   "2019-06",
			wantEnd:     "2021-12",
		},
		{
			name:        "two space fallback",
			header:      "Data Analyst    Globex    Feb 2018 - Present",
			wantRole:    "Data Analyst",
			wantCompany: "Globex",
			wantStart:   "2018-02",
			wantCurrent: true,
		},
		{
			name:        "dash separated fallback",
			header:      "Software Engineer - Hooli  May 2017 – Jan 2018",
			wantRole:    "Software Engineer",
			wantCompany: "Hooli",
			wantStart:   "2017-05",
			wantEnd:     "2018-01",
		},
		{
			name:     "no dates",
			header:   "Freelance Consultant",
			wantRole: "Freelance Consultant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWorkExperience(tt.header)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantRole, got[0].Role)
			assert.Equal(t, tt.wantCompany, got[0].Company)
			assert.Equal(t, tt.wantStart, got[0].StartDate)
			assert.Equal(t, tt.wantEnd, got[0].EndDate)
			assert.Equal(t, tt.wantCurrent, got[0].CurrentlyWorking)
			assert.Equal(t, []string{}, got[0].Bullets)
		})
	}
}

func TestParseWorkExperience_MultipleEntriesKeepOrder(t *testing.T) {
	input := `Senior Engineer | Acme Corp | Jan 2022 - Present
• Led backend redesign
Software Engineer | Initech | Jun 2019 - Dec 2021
- Built billing pipeline
* Cut costs by 20%`

	got := ParseWorkExperience(input)

	require.Len(t, got, 2)
	assert.Equal(t, "Acme Corp", got[0].Company)
	assert.Equal(t, []string{"Led backend redesign"}, got[0].Bullets)
	assert.Equal(t, "Initech", got[1].Company)
	assert.Equal(t, "2019-06", got[1].StartDate)
	assert.Equal(t, "2021-12", got[1].EndDate)
	assert.False(t, got[1].CurrentlyWorking)
	assert.Equal(t, []string{"Built billing pipeline", "Cut costs by 20%"}, got[1].Bullets)
}

func TestParseWorkExperience_DateOnSecondLine(t *testing.T) {
	got := ParseWorkExperience("Backend Engineer | Acme\nJan 2021 - Present\n• Shipped things")

	require.Len(t, got, 1)
	assert.Equal(t, "Backend Engineer", got[0].Role)
	assert.Equal(t, "Acme", got[0].Company)
	assert.Equal(t, "2021-01", got[0].StartDate)
	assert.True(t, got[0].CurrentlyWorking)
	assert.Equal(t, []string{"Shipped things"}, got[0].Bullets)
}

func TestParseSection_TotalOverAnyInput(t *testing.T) {
	inputs := []string{"", "   \n\t", NotFound, "•\n-\n*", "????", "\n\n\n"}

	for _, in := range inputs {
		assert.NotNil(t, ParseWorkExperience(in))
		assert.NotNil(t, ParseEducation(in))
		assert.NotNil(t, ParseProjects(in))
		assert.NotNil(t, ParseCertifications(in))
		assert.NotNil(t, ParseExtracurriculars(in))
		assert.NotNil(t, ParseAchievements(in))
	}
	assert.Empty(t, ParseWorkExperience(NotFound))
	assert.Empty(t, ParseEducation(""))
	assert.Empty(t, ParseAchievements(NotFound))
}

func TestParseEducation_CommaSeparated(t *testing.T) {
	got := ParseEducation("MIT, BS Computer Science, Sep 2018 - May 2022\nGPA: 3.8/4.0")

	require.Len(t, got, 1)
	assert.Equal(t, "MIT", got[0].Institution)
	assert.Equal(t, "BS Computer Science", got[0].Degree)
	assert.Equal(t, "2018-09", got[0].StartDate)
	assert.Equal(t, "2022-05", got[0].EndDate)
	assert.Equal(t, "3.8/4.0", got[0].GPA)
	assert.Equal(t, "", got[0].Description)
}

func TestParseEducation_FieldOfStudyAndDescription(t *testing.T) {
	input := `Stanford University | MS in Computer Science | Sep 2022 - Jun 2024
Grade: 3.9
Thesis on distributed consensus
University Of Texas - BA in Economics - Aug 2014 - May 2018`

	got := ParseEducation(input)

	require.Len(t, got, 2)
	assert.Equal(t, "Stanford University", got[0].Institution)
	assert.Equal(t, "MS", got[0].Degree)
	assert.Equal(t, "Computer Science", got[0].FieldOfStudy)
	assert.Equal(t, "3.9", got[0].GPA)
	assert.Equal(t, "Thesis on distributed consensus", got[0].Description)
	assert.Equal(t, "2024-06", got[0].EndDate)

	assert.Equal(t, "University Of Texas", got[1].Institution)
	assert.Equal(t, "BA", got[1].Degree)
	assert.Equal(t, "Economics", got[1].FieldOfStudy)
	assert.Equal(t, "2014-08", got[1].StartDate)
	assert.Equal(t, "2018-05", got[1].EndDate)
	assert.Equal(t, "", got[1].GPA)
}

func TestParseProjects(t *testing.T) {
	input := `Resume Builder - Jan 2023 - Present
Tech Stack: Go, HTML; Chrome
• Parsed PDF resumes into JSON
• Rendered five layouts
Chat Bot - Mar 2021 - Jun 2021
Technologies used: Python, Redis
Answered support questions`

	got := ParseProjects(input)

	require.Len(t, got, 2)
	assert.Equal(t, "Resume Builder", got[0].Name)
	assert.Equal(t, types.StringList{"Go", "HTML", "Chrome"}, got[0].Technologies)
	assert.Equal(t, "2023-01", got[0].StartDate)
	assert.True(t, got[0].CurrentlyWorking)
	assert.Equal(t, "", got[0].EndDate)
	assert.Equal(t, []string{"Parsed PDF resumes into JSON", "Rendered five layouts"}, got[0].Bullets)

	assert.Equal(t, "Chat Bot", got[1].Name)
	assert.Equal(t, types.StringList{"Python", "Redis"}, got[1].Technologies)
	assert.Equal(t, "2021-03", got[1].StartDate)
	assert.Equal(t, "2021-06", got[1].EndDate)
	assert.False(t, got[1].CurrentlyWorking)
	assert.Equal(t, []string{"Answered support questions"}, got[1].Bullets)
}

func TestParseProjects_NoDatesNoTech(t *testing.T) {
	got := ParseProjects("Side Project\n• Did a thing")

	require.Len(t, got, 1)
	assert.Equal(t, "Side Project", got[0].Name)
	assert.Equal(t, types.StringList{}, got[0].Technologies)
	assert.Equal(t, "", got[0].StartDate)
	assert.Equal(t, []string{"Did a thing"}, got[0].Bullets)
}

func TestParseCertifications(t *testing.T) {
	input := `AWS Certified Solutions Architect - Mar 2023
Issued by Amazon Web Services
Credential ID: AWS-123
https://aws.example.com/verify/123
Google Cloud Professional (Feb 2022)
Google Cloud Training
Valid until Feb 2025`

	got := ParseCertifications(input)

	require.Len(t, got, 2)
	assert.Equal(t, "AWS Certified Solutions Architect", got[0].Title)
	assert.Equal(t, "2023-03", got[0].IssueDate)
	assert.Equal(t, "Amazon Web Services", got[0].Issuer)
	assert.Equal(t, "AWS-123", got[0].CredentialID)
	assert.Equal(t, "https://aws.example.com/verify/123", got[0].Link)

	assert.Equal(t, "Google Cloud Professional", got[1].Title)
	assert.Equal(t, "2022-02", got[1].IssueDate)
	assert.Equal(t, "Google Cloud Training", got[1].Issuer)
	assert.Equal(t, "2025-02", got[1].ExpiryDate)
}

func TestParseCertifications_IssuerWithDate(t *testing.T) {
	got := ParseCertifications("Certified Kubernetes Administrator\nfrom The Linux Foundation - Jan 2024\nHands-on exam")

	require.Len(t, got, 1)
	assert.Equal(t, "Certified Kubernetes Administrator", got[0].Title)
	assert.Equal(t, "The Linux Foundation", got[0].Issuer)
	assert.Equal(t, "2024-01", got[0].IssueDate)
	assert.Equal(t, "Hands-on exam", got[0].Description)
}

func TestParseCertifications_TitleOnly(t *testing.T) {
	got := ParseCertifications(`"Scrum Master"`)

	require.Len(t, got, 1)
	assert.Equal(t, "Scrum Master", got[0].Title)
	assert.Equal(t, "", got[0].Issuer)
}

func TestParseExtracurriculars(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantOrg     string
		wantRole    string
		wantStart   string
		wantEnd     string
		wantCurrent bool
		wantBullets []string
	}{
		{
			name:        "pipe with present",
			input:       "Chess Club | President | Jan 2020 - Present\n• Organized weekly tournaments",
			wantOrg:     "Chess Club",
			wantRole:    "President",
			wantStart:   "2020-01",
			wantCurrent: true,
			wantBullets: []string{"Organized weekly tournaments"},
		},
		{
			name:        "parenthesized details",
			input:       "Robotics Team (Captain, Sep 2017 - May 2019)",
			wantOrg:     "Robotics Team",
			wantRole:    "Captain",
			wantStart:   "2017-09",
			wantEnd:     "2019-05",
			wantBullets: []string{},
		},
		{
			name:        "role label",
			input:       "Open Source - Role: Maintainer\nReviewed pull requests",
			wantOrg:     "Open Source",
			wantRole:    "Maintainer",
			wantBullets: []string{"Reviewed pull requests"},
		},
		{
			name:        "details on later lines",
			input:       "Food Bank\nPosition: Volunteer\nMar 2018 to Present\n- Sorted donations",
			wantOrg:     "Food Bank",
			wantRole:    "Volunteer",
			wantStart:   "2018-03",
			wantCurrent: true,
			wantBullets: []string{"Sorted donations"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseExtracurriculars(tt.input)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantOrg, got[0].Organization)
			assert.Equal(t, tt.wantRole, got[0].Role)
			assert.Equal(t, tt.wantStart, got[0].StartDate)
			assert.Equal(t, tt.wantEnd, got[0].EndDate)
			assert.Equal(t, tt.wantCurrent, got[0].CurrentlyActive)
			assert.Equal(t, tt.wantBullets, got[0].Bullets)
		})
	}
}

func TestParseAchievements_OneEntityPerLine(t *testing.T) {
	inputs := []string{
		"• Won hackathon\n  - Speaker at GopherCon  \n\n* Published paper",
		"single line",
		"line one\r\nline two",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got := ParseAchievements(in)

			var want []types.AchievementEntry
			for _, line := range strings.Split(strings.ReplaceAll(in, "\r\n", "\n"), "\n") {
				if d := stripBullet(line); d != "" {
					want = append(want, types.AchievementEntry{Description: d})
				}
			}
			assert.Equal(t, want, got)
		})
	}

	got := ParseAchievements("• Won hackathon\n  - Speaker at GopherCon  \n\n* Published paper")
	assert.Equal(t, []types.AchievementEntry{
		{Description: "Won hackathon"},
		{Description: "Speaker at GopherCon"},
		{Description: "Published paper"},
	}, got)

	got = ParseAchievements("· Middle dot kept\n▪ Square kept")
	assert.Equal(t, []types.AchievementEntry{
		{Description: "· Middle dot kept"},
		{Description: "▪ Square kept"},
	}, got, "only •, - and * count as bullet glyphs")
}

func TestLineSplitter_KeepsDelimiterLine(t *testing.T) {
	s := lineSplitter{startsEntry: startsNamedEntry(nameOrDateStart)}

	got := s.SegmentEntries("Jane Doe | A\nbullet\n\nJohn Roe | B\nJan 2020 - Present")

	assert.Equal(t, []string{"Jane Doe | A\nbullet", "John Roe | B\nJan 2020 - Present"}, got)
}

func TestCapture(t *testing.T) {
	assert.Equal(t, "3.8/4.0", capture(gpaPattern, "GPA: 3.8/4.0", 1))
	assert.Equal(t, "", capture(gpaPattern, "no grade", 1))
	assert.Equal(t, "", capture(gpaPattern, "GPA: 3.8", 5))
}
