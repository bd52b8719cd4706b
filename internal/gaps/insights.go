package gaps

import (
	"fmt"
	"sort"
)

// Insight generation is template-driven: fixed phrasings keyed off the
// computed ratios and per-category required coverage. Thresholds are
// part of the contract; the wording is not.
const (
	strongCategoryThreshold = 0.8
	weakCategoryThreshold   = 0.4
)

func buildInsights(result GapResult, categoryMatch map[string]float64) []string {
	insights := make([]string, 0, 4)

	switch {
	case result.MatchScores.Required >= 90:
		insights = append(insights, "You already cover nearly all required skills for this target.")
	case result.MatchScores.Required >= 60:
		insights = append(insights, fmt.Sprintf("You cover %.0f%% of the required skills; closing the remaining gaps would make you a strong candidate.", result.MatchScores.Required))
	default:
		insights = append(insights, fmt.Sprintf("Required-skill coverage is %.0f%%; focus on the prioritized gaps before applying.", result.MatchScores.Required))
	}

	// Category lines in a stable order so repeated analyses read the same.
	categories := make([]string, 0, len(categoryMatch))
	for category := range categoryMatch {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		ratio := categoryMatch[category]
		if ratio >= strongCategoryThreshold {
			insights = append(insights, fmt.Sprintf("%s skills are a strong match.", category))
		} else if ratio <= weakCategoryThreshold {
			insights = append(insights, fmt.Sprintf("%s is your biggest skill gap area.", category))
		}
	}

	if len(result.PreferredSkills.Missing) > 0 && result.MatchScores.Required >= 60 {
		insights = append(insights, fmt.Sprintf("Picking up preferred skills such as %s would set you apart.", result.PreferredSkills.Missing[0].Name))
	}

	return insights
}
