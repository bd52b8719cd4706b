package matching

import (
	"math"
	"strings"

	"careercoach-backend/internal/extract"
	"careercoach-backend/internal/shared/telemetry"
	"careercoach-backend/internal/skills"
	"careercoach-backend/internal/taxonomy"
)

// Scorer computes compatibility scores. It holds only immutable shared
// state and is safe for concurrent use.
type Scorer struct {
	Taxonomy *taxonomy.Index
	Matcher  *skills.Matcher
	Extract  *extract.Extractor
}

// NewScorer constructs a scorer over the shared taxonomy and matcher.
func NewScorer(ix *taxonomy.Index, matcher *skills.Matcher, ex *extract.Extractor) *Scorer {
	return &Scorer{Taxonomy: ix, Matcher: matcher, Extract: ex}
}

// Score computes the 0-100 compatibility between a profile and a job,
// with a per-factor breakdown. A job with zero matchable skills gets a
// zero skill factor rather than an error; ErrInvalidInput is returned
// only when the job carries no skills, no description and no title.
func (s *Scorer) Score(profile Profile, job JobPosting) (MatchResult, error) {
	jobSkills := s.resolveJobSkills(job)
	if len(jobSkills) == 0 && strings.TrimSpace(job.Description) == "" && strings.TrimSpace(job.Title) == "" {
		return MatchResult{}, ErrInvalidInput
	}

	factors := []Factor{
		s.skillFactor(profile.Skills, jobSkills),
		s.titleFactor(profile, job.Title),
		s.industryFactor(profile.Experience, job.Industry),
		s.experienceFactor(profile.YearsExperience, job.MinExperience),
		s.educationFactor(profile.Education, job.RequiredDegree),
	}

	total := 0
	for _, f := range factors {
		total += f.Score
	}

	return MatchResult{
		JobID:    job.ID,
		JobTitle: job.Title,
		Score:    clampInt(total, 0, 100),
		Factors:  factors,
	}, nil
}

// resolveJobSkills returns the job's de-duplicated skill list, deriving
// it from the description when the posting carries none.
func (s *Scorer) resolveJobSkills(job JobPosting) []string {
	norm := s.Matcher.Normalizer()
	if len(job.Skills) > 0 {
		return norm.Dedupe(job.Skills)
	}
	derived := s.Extract.Extract(job.Description, "")
	return norm.Dedupe(append(derived.Required, derived.Preferred...))
}

func (s *Scorer) skillFactor(profileSkills, jobSkills []string) Factor {
	details := map[string]any{
		"totalJobSkills": len(jobSkills),
	}
	if len(jobSkills) == 0 {
		details["reason"] = "no job skills to match"
		return Factor{Name: FactorSkills, Score: 0, Max: maxSkillPoints, Details: details}
	}

	var matchedWeight float64
	matched := make([]string, 0, len(jobSkills))
	partial := make([]string, 0)
	missing := make([]string, 0)
	for _, jobSkill := range jobSkills {
		weight, _ := s.Matcher.MatchWeight(jobSkill, profileSkills)
		matchedWeight += weight
		switch weight {
		case 1.0:
			matched = append(matched, jobSkill)
		case 0.5:
			partial = append(partial, jobSkill)
		default:
			missing = append(missing, jobSkill)
		}
	}

	points := math.Min(maxSkillPoints, maxSkillPoints*matchedWeight/float64(len(jobSkills)))
	details["matched"] = matched
	details["partial"] = partial
	details["missing"] = missing
	return Factor{
		Name:    FactorSkills,
		Score:   int(math.Round(points)),
		Max:     maxSkillPoints,
		Details: details,
	}
}

// titleFactor awards full points when either profile role and the job
// title contain each other, else nothing. Binary by design: partial
// title overlap is too noisy to score.
func (s *Scorer) titleFactor(profile Profile, jobTitle string) Factor {
	title := strings.ToLower(strings.TrimSpace(jobTitle))
	for _, role := range []string{profile.CurrentRole, profile.TargetRole} {
		r := strings.ToLower(strings.TrimSpace(role))
		if r == "" || title == "" {
			continue
		}
		if strings.Contains(title, r) || strings.Contains(r, title) {
			return Factor{
				Name:    FactorTitle,
				Score:   maxTitlePoints,
				Max:     maxTitlePoints,
				Details: map[string]any{"matchedRole": role},
			}
		}
	}
	return Factor{Name: FactorTitle, Score: 0, Max: maxTitlePoints}
}

func (s *Scorer) industryFactor(experience []Experience, jobIndustry string) Factor {
	industry := strings.TrimSpace(jobIndustry)
	if industry == "" {
		return Factor{
			Name:    FactorIndustry,
			Score:   0,
			Max:     maxIndustryPoints,
			Details: map[string]any{"reason": "job industry unknown"},
		}
	}
	related := ""
	for _, exp := range experience {
		if strings.EqualFold(strings.TrimSpace(exp.Industry), industry) {
			return Factor{
				Name:    FactorIndustry,
				Score:   maxIndustryPoints,
				Max:     maxIndustryPoints,
				Details: map[string]any{"matchedIndustry": exp.Industry},
			}
		}
		if related == "" && s.Taxonomy.RelatedIndustries(exp.Industry, industry) {
			related = exp.Industry
		}
	}
	if related != "" {
		return Factor{
			Name:    FactorIndustry,
			Score:   maxIndustryPoints / 2,
			Max:     maxIndustryPoints,
			Details: map[string]any{"relatedIndustry": related},
		}
	}
	return Factor{Name: FactorIndustry, Score: 0, Max: maxIndustryPoints}
}

func (s *Scorer) experienceFactor(years, minYears float64) Factor {
	details := map[string]any{
		"years":    years,
		"minYears": minYears,
	}
	score := 0
	switch {
	case years >= minYears && years <= minYears+2:
		score = maxExperiencePoints
	case years > minYears+2:
		// Substantially above the requirement: likely overqualified.
		score = 10
	case minYears > 0 && years >= 0.7*minYears:
		score = 5
	}
	return Factor{Name: FactorExperience, Score: score, Max: maxExperiencePoints, Details: details}
}

func (s *Scorer) educationFactor(education []Education, requiredDegree string) Factor {
	required := strings.TrimSpace(requiredDegree)
	if required == "" {
		return Factor{
			Name:    FactorEducation,
			Score:   maxEducationPoints,
			Max:     maxEducationPoints,
			Details: map[string]any{"reason": "no degree required"},
		}
	}
	requiredLevel := degreeLevel(required)
	if requiredLevel < 0 {
		// Unknown degree requirement degrades to "no requirement".
		telemetry.Info("matching.unknown_degree_requirement", map[string]any{
			"requiredDegree": required,
		})
		return Factor{
			Name:    FactorEducation,
			Score:   maxEducationPoints,
			Max:     maxEducationPoints,
			Details: map[string]any{"reason": "unrecognized degree requirement"},
		}
	}

	highest := -1
	highestName := ""
	for _, edu := range education {
		if level := degreeLevel(edu.Degree); level > highest {
			highest = level
			highestName = edu.Degree
		}
	}
	details := map[string]any{
		"requiredDegree": required,
		"highestDegree":  highestName,
	}
	if highest >= requiredLevel {
		return Factor{Name: FactorEducation, Score: maxEducationPoints, Max: maxEducationPoints, Details: details}
	}
	return Factor{Name: FactorEducation, Score: 0, Max: maxEducationPoints, Details: details}
}

// degreeLevel maps a degree string onto the fixed hierarchy:
// PhD=5, Master=4, Bachelor=3, Associate=2, Diploma/Certificate=1,
// HighSchool=0. Unrecognized degrees return -1.
func degreeLevel(degree string) int {
	d := strings.ToLower(degree)
	switch {
	case strings.Contains(d, "phd") || strings.Contains(d, "ph.d") || strings.Contains(d, "doctor"):
		return 5
	case strings.Contains(d, "master") || strings.Contains(d, "mba") || strings.Contains(d, "m.sc") || strings.Contains(d, "msc"):
		return 4
	case strings.Contains(d, "bachelor") || strings.Contains(d, "b.sc") || strings.Contains(d, "bsc"):
		return 3
	case strings.Contains(d, "associate"):
		return 2
	case strings.Contains(d, "diploma") || strings.Contains(d, "certificate"):
		return 1
	case strings.Contains(d, "high school") || strings.Contains(d, "highschool"):
		return 0
	default:
		return -1
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
