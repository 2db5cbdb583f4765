package parsing

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResume_FullDocument(t *testing.T) {
	r := ParseResume(sampleResume)

	assert.Equal(t, "Jane Doe", r.Name)
	assert.Equal(t, "jane.doe@example.com", r.Email)
	assert.Equal(t, "(555) 123-4567", r.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", r.LinkedIn)
	assert.Equal(t, "github.com/janedoe", r.GitHub)
	assert.Equal(t, "", r.Location)
	assert.Equal(t, "Backend engineer with seven years of experience building distributed systems.", r.Summary)
	assert.Equal(t, types.StringList{"Go", "Python", "Docker", "Kubernetes"}, r.Skills)

	require.Len(t, r.WorkExperience, 2)
	assert.Equal(t, "Acme Corp", r.WorkExperience[0].Company)
	assert.True(t, r.WorkExperience[0].CurrentlyWorking)
	assert.Equal(t, "Initech", r.WorkExperience[1].Company)

	require.Len(t, r.Education, 1)
	assert.Equal(t, "MIT", r.Education[0].Institution)
	assert.Equal(t, "BS", r.Education[0].Degree)
	assert.Equal(t, "Computer Science", r.Education[0].FieldOfStudy)
	assert.Equal(t, "3.8/4.0", r.Education[0].GPA)

	require.Len(t, r.Projects, 1)
	assert.Equal(t, "Resume Builder", r.Projects[0].Name)

	require.Len(t, r.Achievements, 2)
	assert.Equal(t, "Speaker at GopherCon", r.Achievements[1].Description)

	require.Len(t, r.Certifications, 1)
	assert.Equal(t, "Amazon Web Services", r.Certifications[0].Issuer)

	require.Len(t, r.Extracurriculars, 1)
	assert.Equal(t, "President", r.Extracurriculars[0].Role)
}

func TestParseResume_MixedHeaderStyles(t *testing.T) {
	r := ParseResume(mixedHeaderPages)

	assert.Equal(t, types.StringList{"Go", "Python"}, r.Skills)
	require.Len(t, r.WorkExperience, 1)
	assert.True(t, r.WorkExperience[0].CurrentlyWorking)
	assert.Equal(t, "2020-01", r.WorkExperience[0].StartDate)
	require.Len(t, r.Education, 1)
	assert.Equal(t, "MIT", r.Education[0].Institution)
	require.Len(t, r.Projects, 1)
	assert.Equal(t, "Foo", r.Projects[0].Name)
}

func TestParseResume_EmptyInputHasNoPlaceholders(t *testing.T) {
	r := ParseResume("")

	assert.Equal(t, types.New(), r)
}

func TestParseResume_ResultIsValidJSONRoundTrip(t *testing.T) {
	r := ParseResume(sampleResume)

	data, err := types.Marshal(r)
	require.NoError(t, err)
	back, err := types.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, r, back)
}

func TestApply_ReplacesParsedFieldsKeepsLocation(t *testing.T) {
	dst := types.New()
	dst.Location = "Austin, TX"
	dst.Name = "Old Name"
	dst.Skills = types.StringList{"COBOL"}
	dst.WorkExperience = []types.WorkEntry{{Company: "Old Co"}}

	parsed := ParseResume("Jane Doe\nSKILLS\nGo")
	Apply(dst, parsed)

	assert.Equal(t, "Jane Doe", dst.Name)
	assert.Equal(t, "Austin, TX", dst.Location)
	assert.Equal(t, types.StringList{"Go"}, dst.Skills)
	assert.Empty(t, dst.WorkExperience)
	assert.NotNil(t, dst.WorkExperience)
}

func TestApply_NilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		Apply(nil, types.New())
		Apply(types.New(), nil)
	})
}
