package skills

import "strings"

// SimilarityIndex is the optional fuzzy-matching capability layered on
// top of exact/acronym/substring equivalence. The matcher functions
// without one, with reduced recall.
type SimilarityIndex interface {
	Similar(a, b string) bool
}

// Matcher decides whether two skill strings represent the same skill.
type Matcher struct {
	norm *Normalizer
	sim  SimilarityIndex
}

// NewMatcher constructs a matcher. sim may be nil to disable the
// token-similarity fallback.
func NewMatcher(norm *Normalizer, sim SimilarityIndex) *Matcher {
	if norm == nil {
		norm = NewNormalizer()
	}
	return &Matcher{norm: norm, sim: sim}
}

// Normalizer exposes the matcher's normalizer for callers that need
// canonical forms directly.
func (m *Matcher) Normalizer() *Normalizer {
	return m.norm
}

// Equivalent reports whether a and b represent the same skill. The
// checks run in precedence order, short-circuiting on the first hit:
// exact normalized match, acronym match, bounded containment, then the
// optional token-similarity fallback. Every step is symmetric in its
// arguments.
func (m *Matcher) Equivalent(a, b string) bool {
	na, nb := m.norm.Normalize(a), m.norm.Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	if acronymMatch(na, nb) || acronymMatch(nb, na) {
		return true
	}
	if boundedContainment(na, nb) {
		return true
	}
	return m.sim != nil && m.sim.Similar(na, nb)
}

// MatchWeight scores how well target is covered by any of the candidate
// skills: 1.0 for an exact normalized match, 0.5 for an acronym,
// containment or similarity match, 0 otherwise. The second return is
// the winning candidate.
func (m *Matcher) MatchWeight(target string, candidates []string) (float64, string) {
	nt := m.norm.Normalize(target)
	if nt == "" {
		return 0, ""
	}
	best := 0.0
	bestCandidate := ""
	for _, candidate := range candidates {
		nc := m.norm.Normalize(candidate)
		if nc == "" {
			continue
		}
		if nc == nt {
			return 1.0, candidate
		}
		if best < 0.5 {
			if acronymMatch(nt, nc) || acronymMatch(nc, nt) || boundedContainment(nt, nc) || (m.sim != nil && m.sim.Similar(nt, nc)) {
				best = 0.5
				bestCandidate = candidate
			}
		}
	}
	return best, bestCandidate
}

// acronymMatch reports whether the initials of multi-word phrase a
// equal b.
func acronymMatch(a, b string) bool {
	words := strings.Fields(a)
	if len(words) < 2 || len(words) != len(b) {
		return false
	}
	var initials strings.Builder
	for _, w := range words {
		initials.WriteByte(w[0])
	}
	return initials.String() == b
}

// boundedContainment reports whether one skill's tokens appear as a
// contiguous run inside the other's, requiring the longer side to be
// multi-word. The multi-word requirement prevents single-token false
// positives such as "c" against "c++".
func boundedContainment(a, b string) bool {
	ta, tb := strings.Fields(a), strings.Fields(b)
	if len(ta) < len(tb) {
		ta, tb = tb, ta
	}
	if len(ta) < 2 || len(tb) == 0 {
		return false
	}
	for start := 0; start+len(tb) <= len(ta); start++ {
		match := true
		for i := range tb {
			if ta[start+i] != tb[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
