// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// ResumeData is the root aggregate for a single resume.
// Empty strings mean "unset"; list fields are never nil after Normalize.
type ResumeData struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,phone"`
	LinkedIn string `json:"linkedIn" validate:"required"`
	GitHub   string `json:"github"`
	Location string `json:"location" validate:"required"`
	Summary  string `json:"summary" validate:"required"`

	Skills           StringList           `json:"skills"`
	WorkExperience   []WorkEntry          `json:"workExperience" validate:"dive"`
	Projects         []ProjectEntry       `json:"projects" validate:"dive"`
	Education        []EducationEntry     `json:"education" validate:"dive"`
	Certifications   []CertificationEntry `json:"certifications" validate:"dive"`
	Extracurriculars []ActivityEntry      `json:"extracurriculars" validate:"dive"`
	Achievements     []AchievementEntry   `json:"achievements"`
}

// WorkEntry is one position held.
type WorkEntry struct {
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate" validate:"omitempty,datetime=2006-01"`
	EndDate          string   `json:"endDate" validate:"omitempty,datetime=2006-01"`
	CurrentlyWorking bool     `json:"currentlyWorking"`
	Bullets          []string `json:"bullets"`
}

// ProjectEntry is one project.
type ProjectEntry struct {
	Name             string     `json:"name"`
	Technologies     StringList `json:"technologies"`
	StartDate        string     `json:"startDate" validate:"omitempty,datetime=2006-01"`
	EndDate          string     `json:"endDate" validate:"omitempty,datetime=2006-01"`
	CurrentlyWorking bool       `json:"currentlyWorking"`
	Bullets          []string   `json:"bullets"`
}

// EducationEntry is one degree or course of study.
type EducationEntry struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	GPA          string `json:"gpa"`
	Description  string `json:"description"`
	StartDate    string `json:"startDate" validate:"omitempty,datetime=2006-01"`
	EndDate      string `json:"endDate" validate:"omitempty,datetime=2006-01"`
}

// CertificationEntry is one certificate or license.
type CertificationEntry struct {
	CredentialID string `json:"credentialId"`
	Title        string `json:"title"`
	Issuer       string `json:"issuer"`
	Link         string `json:"link"`
	Description  string `json:"description"`
	IssueDate    string `json:"issueDate" validate:"omitempty,datetime=2006-01"`
	ExpiryDate   string `json:"expiryDate" validate:"omitempty,datetime=2006-01"`
}

// ActivityEntry is one extracurricular activity.
type ActivityEntry struct {
	Organization    string   `json:"organization"`
	Role            string   `json:"role"`
	Location        string   `json:"location"`
	StartDate       string   `json:"startDate" validate:"omitempty,datetime=2006-01"`
	EndDate         string   `json:"endDate" validate:"omitempty,datetime=2006-01"`
	CurrentlyActive bool     `json:"currentlyActive"`
	Bullets         []string `json:"bullets"`
}

// AchievementEntry is a single free-text achievement line.
type AchievementEntry struct {
	Description string `json:"description"`
}

// EffectiveEndDate returns the end date, or "" while the position is current.
func (w WorkEntry) EffectiveEndDate() string {
	if w.CurrentlyWorking {
		return ""
	}
	return w.EndDate
}

// EffectiveEndDate returns the end date, or "" while the project is ongoing.
func (p ProjectEntry) EffectiveEndDate() string {
	if p.CurrentlyWorking {
		return ""
	}
	return p.EndDate
}

// EffectiveEndDate returns the end date, or "" while the activity is ongoing.
func (a ActivityEntry) EffectiveEndDate() string {
	if a.CurrentlyActive {
		return ""
	}
	return a.EndDate
}

// New returns an empty resume with every list initialized.
func New() *ResumeData {
	r := &ResumeData{}
	r.Normalize()
	return r
}

// Normalize replaces nil lists (including nested bullets and technologies) with empty ones.
// Skills and technologies are also cleaned of blank items.
func (r *ResumeData) Normalize() {
	r.Skills = r.Skills.Clean()
	if r.WorkExperience == nil {
		r.WorkExperience = []WorkEntry{}
	}
	for i := range r.WorkExperience {
		r.WorkExperience[i].Bullets = emptyIfNil(r.WorkExperience[i].Bullets)
	}
	if r.Projects == nil {
		r.Projects = []ProjectEntry{}
	}
	for i := range r.Projects {
		r.Projects[i].Bullets = emptyIfNil(r.Projects[i].Bullets)
		r.Projects[i].Technologies = r.Projects[i].Technologies.Clean()
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.Certifications == nil {
		r.Certifications = []CertificationEntry{}
	}
	if r.Extracurriculars == nil {
		r.Extracurriculars = []ActivityEntry{}
	}
	for i := range r.Extracurriculars {
		r.Extracurriculars[i].Bullets = emptyIfNil(r.Extracurriculars[i].Bullets)
	}
	if r.Achievements == nil {
		r.Achievements = []AchievementEntry{}
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// UnmarshalJSON decodes a resume and normalizes missing lists.
func (r *ResumeData) UnmarshalJSON(data []byte) error {
	type alias ResumeData
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = ResumeData(a)
	r.Normalize()
	return nil
}

// Marshal serializes a resume as indented JSON.
func Marshal(r *ResumeData) ([]byte, error) {
	if r == nil {
		r = New()
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}
	return data, nil
}

// Unmarshal parses resume JSON into a normalized ResumeData.
func Unmarshal(data []byte) (*ResumeData, error) {
	var r ResumeData
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	return &r, nil
}
