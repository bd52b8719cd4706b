package matching

import "sort"

// Rank filters jobs, scores each survivor and returns at most limit
// results ordered by score descending. The sort is stable so ties keep
// their input order and a smaller limit always returns a prefix of a
// larger one. Every returned result carries its full factor breakdown.
func (s *Scorer) Rank(profile Profile, jobs []JobPosting, limit int, filters *Filters) ([]MatchResult, error) {
	candidates := filters.Apply(jobs)

	results := make([]MatchResult, 0, len(candidates))
	for _, job := range candidates {
		result, err := s.Score(profile, job)
		if err != nil {
			// Un-scorable postings are skipped rather than failing
			// the whole ranking.
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
