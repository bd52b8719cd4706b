// Package gaps computes missing-skill analyses and seniority-adjusted
// career-readiness scores against a target role or job description.
package gaps

import "careercoach-backend/internal/resources"

// Skill is a value object: a skill name with its taxonomy category.
// Identity is the normalized name; the category is informational.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Target names what the profile is measured against: a known role, or
// free job-description text when the role is absent or unknown.
type Target struct {
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
}

// MatchScores are percentage coverages in [0,100].
type MatchScores struct {
	Required  float64 `json:"required"`
	Preferred float64 `json:"preferred"`
	Overall   float64 `json:"overall"`
}

// SkillSplit partitions a target's skills by whether the profile
// covers them.
type SkillSplit struct {
	Matched []Skill `json:"matched"`
	Missing []Skill `json:"missing"`
}

// Readiness is the seniority-adjusted composite score with its textual
// rating.
type Readiness struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

// GapResult is the outcome of one gap analysis. It is never mutated
// after creation; cached copies are replaced, not edited.
type GapResult struct {
	MatchScores     MatchScores                     `json:"matchScores"`
	RequiredSkills  SkillSplit                      `json:"requiredSkills"`
	PreferredSkills SkillSplit                      `json:"preferredSkills"`
	PrioritizedGaps []Skill                         `json:"prioritizedGaps"`
	CareerReadiness Readiness                       `json:"careerReadiness"`
	Insights        []string                        `json:"insights"`
	Resources       map[string][]resources.Resource `json:"resources"`
}
