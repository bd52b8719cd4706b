package gaps

import "strings"

// Readiness blends required and preferred coverage, then adjusts for
// the seniority of the target: senior roles demand fuller coverage, so
// the same raw coverage reads lower the more senior the level.
const (
	requiredWeight  = 0.7
	preferredWeight = 0.3
)

func careerReadiness(requiredMatch, preferredMatch float64, careerLevel string) Readiness {
	composite := requiredMatch*requiredWeight + preferredMatch*preferredWeight
	score := clamp(composite * levelFactor(careerLevel) * 100)
	return Readiness{Score: round1(score), Level: rating(score)}
}

func levelFactor(careerLevel string) float64 {
	switch strings.ToLower(strings.TrimSpace(careerLevel)) {
	case "entry":
		return 1.1
	case "mid":
		return 1.0
	case "senior":
		return 0.9
	case "lead":
		return 0.85
	case "principal":
		return 0.8
	default:
		return 1.0
	}
}

func rating(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Moderate"
	case score >= 40:
		return "Basic"
	default:
		return "Not Ready"
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
