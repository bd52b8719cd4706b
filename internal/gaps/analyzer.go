package gaps

import (
	"strings"

	"careercoach-backend/internal/extract"
	"careercoach-backend/internal/matching"
	"careercoach-backend/internal/resources"
	"careercoach-backend/internal/skills"
	"careercoach-backend/internal/taxonomy"
)

// Analyzer computes gap analyses. It holds only immutable shared state
// and is safe for concurrent use.
type Analyzer struct {
	Taxonomy  *taxonomy.Index
	Matcher   *skills.Matcher
	Extract   *extract.Extractor
	Resources *resources.Lookup
}

// NewAnalyzer constructs an analyzer over the shared taxonomy, matcher
// and learning-resource lookup.
func NewAnalyzer(ix *taxonomy.Index, matcher *skills.Matcher, ex *extract.Extractor, lookup *resources.Lookup) *Analyzer {
	if lookup == nil {
		lookup = resources.NewLookup(nil)
	}
	return &Analyzer{Taxonomy: ix, Matcher: matcher, Extract: ex, Resources: lookup}
}

// Analyze measures a profile against a target and prioritizes the
// missing skills. Roles with no defined requirements score full
// coverage rather than being penalized.
func (a *Analyzer) Analyze(profile matching.Profile, target Target, careerLevel string) (GapResult, error) {
	if strings.TrimSpace(target.Role) == "" && strings.TrimSpace(target.Description) == "" {
		return GapResult{}, ErrInvalidTarget
	}

	roleSkills := a.Extract.Extract(target.Description, target.Role)

	required := a.split(roleSkills.Required, profile.Skills)
	preferred := a.split(roleSkills.Preferred, profile.Skills)

	requiredMatch := coverage(required)
	preferredMatch := coverage(preferred)

	// Prioritized gaps keep the extraction order: taxonomy authors
	// encode priority through list order, so it is never re-sorted.
	// Required always precedes preferred.
	prioritized := make([]Skill, 0, len(required.Missing)+len(preferred.Missing))
	prioritized = append(prioritized, required.Missing...)
	prioritized = append(prioritized, preferred.Missing...)

	readiness := careerReadiness(requiredMatch, preferredMatch, careerLevel)

	result := GapResult{
		MatchScores: MatchScores{
			Required:  round1(requiredMatch * 100),
			Preferred: round1(preferredMatch * 100),
			Overall:   round1((requiredMatch*requiredWeight + preferredMatch*preferredWeight) * 100),
		},
		RequiredSkills:  required,
		PreferredSkills: preferred,
		PrioritizedGaps: prioritized,
		CareerReadiness: readiness,
		Resources:       a.resourcesFor(prioritized),
	}
	result.Insights = buildInsights(result, categoryCoverage(required))
	return result, nil
}

// split partitions target skills into matched and missing against the
// profile, de-duplicated by normalized identity.
func (a *Analyzer) split(targetSkills, profileSkills []string) SkillSplit {
	split := SkillSplit{
		Matched: make([]Skill, 0, len(targetSkills)),
		Missing: make([]Skill, 0),
	}
	for _, name := range a.Matcher.Normalizer().Dedupe(targetSkills) {
		skill := Skill{Name: name, Category: a.Taxonomy.CategoryOf(name)}
		if a.covered(name, profileSkills) {
			split.Matched = append(split.Matched, skill)
		} else {
			split.Missing = append(split.Missing, skill)
		}
	}
	return split
}

func (a *Analyzer) covered(target string, profileSkills []string) bool {
	for _, skill := range profileSkills {
		if a.Matcher.Equivalent(target, skill) {
			return true
		}
	}
	return false
}

func (a *Analyzer) resourcesFor(gapSkills []Skill) map[string][]resources.Resource {
	out := make(map[string][]resources.Resource, len(gapSkills))
	for _, skill := range gapSkills {
		out[skill.Name] = a.Resources.ForSkill(skill.Name)
	}
	return out
}

// coverage returns matched/total, or 1.0 when the target defines no
// skills at all.
func coverage(split SkillSplit) float64 {
	total := len(split.Matched) + len(split.Missing)
	if total == 0 {
		return 1.0
	}
	return float64(len(split.Matched)) / float64(total)
}

// categoryCoverage computes the per-category required-skill match
// ratio, keyed by taxonomy category.
func categoryCoverage(required SkillSplit) map[string]float64 {
	matched := make(map[string]int)
	total := make(map[string]int)
	for _, skill := range required.Matched {
		matched[skill.Category]++
		total[skill.Category]++
	}
	for _, skill := range required.Missing {
		total[skill.Category]++
	}
	out := make(map[string]float64, len(total))
	for category, count := range total {
		out[category] = float64(matched[category]) / float64(count)
	}
	return out
}

func round1(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return float64(int(v*10+0.5)) / 10
}
