package taxonomy

import (
	"sort"
	"strings"
)

// Index is the read-optimized view of a Taxonomy. It is immutable after
// construction and safe for concurrent use without locking.
type Index struct {
	categoryBySkill  map[string]string
	roleByName       map[string]Requirements
	industryKeywords map[string][]string
	vocabulary       []string
	categoryOrder    []string
}

// NewIndex builds an Index from a loaded taxonomy.
func NewIndex(t Taxonomy) *Index {
	ix := &Index{
		categoryBySkill:  make(map[string]string),
		roleByName:       make(map[string]Requirements, len(t.Roles)),
		industryKeywords: make(map[string][]string, len(t.Industries)),
	}

	categories := make([]string, 0, len(t.Categories))
	for category := range t.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	ix.categoryOrder = categories

	seen := make(map[string]bool)
	for _, category := range categories {
		for _, skill := range t.Categories[category] {
			key := fold(skill)
			if key == "" {
				continue
			}
			if _, ok := ix.categoryBySkill[key]; !ok {
				ix.categoryBySkill[key] = category
			}
			if !seen[key] {
				seen[key] = true
				ix.vocabulary = append(ix.vocabulary, skill)
			}
		}
	}

	for name, reqs := range t.Roles {
		key := fold(name)
		if key == "" {
			continue
		}
		ix.roleByName[key] = Requirements{
			Required:  append([]string(nil), reqs.Required...),
			Preferred: append([]string(nil), reqs.Preferred...),
		}
		// Role skills missing from the category table still belong to
		// the matching vocabulary.
		for _, skill := range append(append([]string(nil), reqs.Required...), reqs.Preferred...) {
			k := fold(skill)
			if k != "" && !seen[k] {
				seen[k] = true
				ix.vocabulary = append(ix.vocabulary, skill)
			}
		}
	}

	for industry, keywords := range t.Industries {
		kws := make([]string, 0, len(keywords))
		for _, kw := range keywords {
			if k := fold(kw); k != "" {
				kws = append(kws, k)
			}
		}
		ix.industryKeywords[fold(industry)] = kws
	}

	sort.Slice(ix.vocabulary, func(i, j int) bool {
		return fold(ix.vocabulary[i]) < fold(ix.vocabulary[j])
	})
	return ix
}

// CategoryOf returns the taxonomy category of a skill, or "Other" when
// the skill is not in the taxonomy.
func (ix *Index) CategoryOf(skill string) string {
	if category, ok := ix.categoryBySkill[fold(skill)]; ok {
		return category
	}
	return OtherCategory
}

// RequirementsFor returns the required/preferred skill lists for a role
// name, preserving taxonomy order. The second return is false when the
// role is unknown.
func (ix *Index) RequirementsFor(roleName string) (Requirements, bool) {
	reqs, ok := ix.roleByName[fold(roleName)]
	if !ok {
		return Requirements{}, false
	}
	return Requirements{
		Required:  append([]string(nil), reqs.Required...),
		Preferred: append([]string(nil), reqs.Preferred...),
	}, true
}

// Vocabulary returns every distinct skill term known to the taxonomy,
// sorted case-insensitively.
func (ix *Index) Vocabulary() []string {
	return append([]string(nil), ix.vocabulary...)
}

// Categories returns the category names in sorted order.
func (ix *Index) Categories() []string {
	return append([]string(nil), ix.categoryOrder...)
}

// RelatedIndustries reports whether two industries share at least one
// taxonomy keyword, or one industry's name appears among the other's
// keywords. Unknown industries are never related.
func (ix *Index) RelatedIndustries(a, b string) bool {
	ka, kb := fold(a), fold(b)
	if ka == "" || kb == "" {
		return false
	}
	kwA, okA := ix.industryKeywords[ka]
	kwB, okB := ix.industryKeywords[kb]
	if okA && containsFold(kwA, kb) {
		return true
	}
	if okB && containsFold(kwB, ka) {
		return true
	}
	if !okA || !okB {
		return false
	}
	set := make(map[string]bool, len(kwA))
	for _, kw := range kwA {
		set[kw] = true
	}
	for _, kw := range kwB {
		if set[kw] {
			return true
		}
	}
	return false
}

func containsFold(keywords []string, needle string) bool {
	for _, kw := range keywords {
		if kw == needle {
			return true
		}
	}
	return false
}

func fold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
