// Package extract resolves the required and preferred skills of a
// target, either directly from the taxonomy when a known role is named
// or by scanning free job-description text for taxonomy terms.
package extract

import (
	"strings"

	"careercoach-backend/internal/skills"
	"careercoach-backend/internal/taxonomy"
)

// contextWindow is the number of characters inspected on each side of
// a detected skill term when classifying it as required or preferred.
const contextWindow = 80

// requiredSignals and preferredSignals are the phrases scanned for in
// the context window around a skill mention. Required wins when both
// appear.
var (
	requiredSignals = []string{
		"required", "must have", "must-have", "essential", "mandatory",
		"need to have", "proficiency in", "strong knowledge",
	}
	preferredSignals = []string{
		"preferred", "nice to have", "nice-to-have", "bonus", "a plus",
		"desirable", "familiarity with", "good to have",
	}
)

// RoleSkills partitions a target's skills. Required and Preferred are
// disjoint and de-duplicated by normalized identity.
type RoleSkills struct {
	Required  []string
	Preferred []string
}

// Empty reports whether extraction produced no skills at all.
func (rs RoleSkills) Empty() bool {
	return len(rs.Required) == 0 && len(rs.Preferred) == 0
}

// Extractor derives role skill requirements.
type Extractor struct {
	Taxonomy *taxonomy.Index
	Norm     *skills.Normalizer
}

// New constructs an extractor over the given taxonomy.
func New(ix *taxonomy.Index, norm *skills.Normalizer) *Extractor {
	if norm == nil {
		norm = skills.NewNormalizer()
	}
	return &Extractor{Taxonomy: ix, Norm: norm}
}

// Extract resolves the skills for a target. When roleName is known to
// the taxonomy its lists are used directly; otherwise text is scanned
// for taxonomy skill terms classified by their surrounding context.
//
// Skills detected with no requirement signal in context default to
// required. That bias is a deliberate policy: treating unknown-context
// skills as optional would under-count gaps.
func (e *Extractor) Extract(text, roleName string) RoleSkills {
	if roleName != "" {
		if reqs, ok := e.Taxonomy.RequirementsFor(roleName); ok {
			return RoleSkills{
				Required:  e.Norm.Dedupe(reqs.Required),
				Preferred: e.dedupeDisjoint(reqs.Preferred, reqs.Required),
			}
		}
	}
	return e.fromText(text)
}

func (e *Extractor) fromText(text string) RoleSkills {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return RoleSkills{}
	}

	var required, preferred []string
	for _, term := range e.Taxonomy.Vocabulary() {
		positions := findTerm(lower, strings.ToLower(term))
		if len(positions) == 0 {
			continue
		}
		isRequired := false
		isPreferred := false
		for _, pos := range positions {
			switch classifyAt(lower, pos, len(term)) {
			case classRequired:
				isRequired = true
			case classPreferred:
				isPreferred = true
			}
			if isRequired {
				break
			}
		}
		// Required beats preferred; no signal at all defaults to required.
		if isRequired || !isPreferred {
			required = append(required, term)
		} else {
			preferred = append(preferred, term)
		}
	}

	return RoleSkills{
		Required:  e.Norm.Dedupe(required),
		Preferred: e.dedupeDisjoint(preferred, required),
	}
}

// dedupeDisjoint de-duplicates candidates and drops any skill already
// present in taken, keeping required and preferred sets disjoint.
func (e *Extractor) dedupeDisjoint(candidates, taken []string) []string {
	seen := make(map[string]bool, len(taken))
	for _, skill := range taken {
		seen[e.Norm.Normalize(skill)] = true
	}
	out := make([]string, 0, len(candidates))
	for _, skill := range e.Norm.Dedupe(candidates) {
		if seen[e.Norm.Normalize(skill)] {
			continue
		}
		out = append(out, skill)
	}
	return out
}

// findTerm returns the start offsets of whitespace/punctuation-bounded
// occurrences of term in text. Both arguments must already be
// lowercased.
func findTerm(text, term string) []int {
	if term == "" {
		return nil
	}
	var positions []int
	offset := 0
	for {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			return positions
		}
		pos := offset + idx
		if boundedAt(text, pos, len(term)) {
			positions = append(positions, pos)
		}
		offset = pos + 1
	}
}

// boundedAt reports whether text[pos:pos+length] sits on word
// boundaries. '+' and '#' belong to skill tokens so "c++" never matches
// inside "c++11" but "c" never matches inside "c++".
func boundedAt(text string, pos, length int) bool {
	if pos > 0 && isWordChar(text[pos-1]) {
		return false
	}
	end := pos + length
	if end < len(text) && isWordChar(text[end]) {
		return false
	}
	return true
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '+' || c == '#'
}

type signalClass int

const (
	classNone signalClass = iota
	classRequired
	classPreferred
)

// classifyAt inspects the context window around one skill occurrence.
// When both signal classes appear in the window the nearer one wins;
// ties go to required, and an occurrence with no signal at all is
// classified by the caller's conservative default.
func classifyAt(text string, pos, length int) signalClass {
	start := pos - contextWindow
	if start < 0 {
		start = 0
	}
	end := pos + length + contextWindow
	if end > len(text) {
		end = len(text)
	}
	window := text[start:end]
	termStart := pos - start

	reqDist := nearestSignal(window, termStart, length, requiredSignals)
	prefDist := nearestSignal(window, termStart, length, preferredSignals)
	switch {
	case reqDist < 0 && prefDist < 0:
		return classNone
	case prefDist < 0 || (reqDist >= 0 && reqDist <= prefDist):
		return classRequired
	default:
		return classPreferred
	}
}

// nearestSignal returns the smallest gap between the term occupying
// [termStart, termStart+termLen) and any signal phrase in the window,
// or -1 when none is present.
func nearestSignal(window string, termStart, termLen int, signals []string) int {
	best := -1
	for _, signal := range signals {
		offset := 0
		for {
			idx := strings.Index(window[offset:], signal)
			if idx < 0 {
				break
			}
			sigStart := offset + idx
			dist := 0
			if sigStart >= termStart+termLen {
				dist = sigStart - (termStart + termLen)
			} else if sigStart+len(signal) <= termStart {
				dist = termStart - (sigStart + len(signal))
			}
			if best < 0 || dist < best {
				best = dist
			}
			offset = sigStart + 1
		}
	}
	return best
}
