package matching

import (
	"sort"
	"strings"
)

// SimilarJobs returns up to limit postings whose titles resemble the
// reference title, most similar first. Similarity is title-only:
// exact match scores 100, containment 90, anything else the Jaccard
// overlap of title tokens scaled to 100.
func SimilarJobs(referenceTitle string, jobs []JobPosting, limit int) []JobPosting {
	ref := strings.ToLower(strings.TrimSpace(referenceTitle))
	if ref == "" {
		return nil
	}

	type scored struct {
		job   JobPosting
		score float64
	}
	candidates := make([]scored, 0, len(jobs))
	for _, job := range jobs {
		score := titleSimilarity(ref, strings.ToLower(strings.TrimSpace(job.Title)))
		if score > 0 {
			candidates = append(candidates, scored{job: job, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]JobPosting, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.job)
	}
	return out
}

func titleSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 90
	}
	return jaccard(titleTokens(a), titleTokens(b)) * 100
}

func titleTokens(title string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(title) {
		tok = strings.Trim(tok, ".,;:()[]/-")
		if tok != "" {
			tokens[tok] = true
		}
	}
	return tokens
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if b[tok] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
