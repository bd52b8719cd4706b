// Package matching computes explainable 0-100 compatibility scores
// between candidate profiles and job postings.
package matching

import "time"

// Profile is a normalized candidate profile supplied by the caller.
// Missing fields mean "unknown" and degrade to conservative defaults
// rather than errors.
type Profile struct {
	Skills          []string     `json:"skills"`
	CurrentRole     string       `json:"currentRole"`
	TargetRole      string       `json:"targetRole"`
	YearsExperience float64      `json:"yearsExperience"`
	Education       []Education  `json:"education"`
	Experience      []Experience `json:"experience"`
}

// Education is one attained degree.
type Education struct {
	Degree string `json:"degree"`
}

// Experience is one past engagement; only the industry participates in
// scoring.
type Experience struct {
	Industry string `json:"industry"`
}

// JobPosting describes a job to score against. Skills may be empty, in
// which case they are derived from Description.
type JobPosting struct {
	ID              string    `json:"id,omitempty"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Industry        string    `json:"industry"`
	Skills          []string  `json:"skills"`
	MinExperience   float64   `json:"minExperience"`
	RequiredDegree  string    `json:"requiredDegree"`
	Location        string    `json:"location"`
	Remote          bool      `json:"remote"`
	SalaryMin       float64   `json:"salaryMin"`
	SalaryMax       float64   `json:"salaryMax"`
	JobType         string    `json:"jobType"`
	ExperienceLevel string    `json:"experienceLevel"`
	PostedDate      time.Time `json:"postedDate"`
}

// Factor is one explainable component of a match score. Score is the
// points awarded, Max the points available to this factor.
type Factor struct {
	Name    string         `json:"name"`
	Score   int            `json:"score"`
	Max     int            `json:"max"`
	Details map[string]any `json:"details,omitempty"`
}

// MatchResult is the outcome of scoring one (profile, job) pair. It is
// never mutated after creation; cached copies are replaced, not edited.
type MatchResult struct {
	JobID    string   `json:"jobId,omitempty"`
	JobTitle string   `json:"jobTitle,omitempty"`
	Score    int      `json:"score"`
	Factors  []Factor `json:"factors"`
}

// Filters narrows a job collection before ranking. Zero-valued fields
// are no-ops.
type Filters struct {
	Location        string     `json:"location,omitempty"`
	Remote          *bool      `json:"remote,omitempty"`
	SalaryMin       float64    `json:"salaryMin,omitempty"`
	SalaryMax       float64    `json:"salaryMax,omitempty"`
	JobType         string     `json:"jobType,omitempty"`
	ExperienceLevel string     `json:"experienceLevel,omitempty"`
	Industry        string     `json:"industry,omitempty"`
	PostedAfter     *time.Time `json:"postedAfter,omitempty"`
}

// Factor point maxima; they sum to 100.
const (
	maxSkillPoints      = 40
	maxTitlePoints      = 20
	maxIndustryPoints   = 10
	maxExperiencePoints = 15
	maxEducationPoints  = 15
)

// Factor names as they appear in result breakdowns.
const (
	FactorSkills     = "skills"
	FactorTitle      = "title"
	FactorIndustry   = "industry"
	FactorExperience = "experience"
	FactorEducation  = "education"
)
