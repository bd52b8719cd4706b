// Package skills canonicalizes skill strings and decides skill
// equivalence for the matching and gap-analysis engines.
package skills

import "strings"

// aliasTable maps normalized synonyms and acronyms to their canonical
// form. Lookups happen after trimming, case-folding and whitespace
// collapsing.
var aliasTable = map[string]string{
	"js":            "javascript",
	"ts":            "typescript",
	"golang":        "go",
	"py":            "python",
	"ml":            "machine learning",
	"dl":            "deep learning",
	"ai":            "artificial intelligence",
	"nlp":           "natural language processing",
	"k8s":           "kubernetes",
	"postgres":      "postgresql",
	"mongo":         "mongodb",
	"node":          "node.js",
	"nodejs":        "node.js",
	"node js":       "node.js",
	"reactjs":       "react",
	"react.js":      "react",
	"vue":           "vue.js",
	"vuejs":         "vue.js",
	"rest":          "restful apis",
	"rest api":      "restful apis",
	"rest apis":     "restful apis",
	"restful api":   "restful apis",
	"ci cd":         "ci/cd",
	"cicd":          "ci/cd",
	"amazon web services": "aws",
	"google cloud":        "gcp",
	"google cloud platform": "gcp",
	"microsoft azure":      "azure",
	"scrum":                "agile",
}

// Normalizer canonicalizes raw skill strings.
type Normalizer struct {
	aliases map[string]string
}

// NewNormalizer constructs a normalizer with the built-in alias table.
func NewNormalizer() *Normalizer {
	return &Normalizer{aliases: aliasTable}
}

// Normalize returns the canonical form of a raw skill string: trimmed,
// case-folded, inner whitespace collapsed, known synonyms mapped.
func (n *Normalizer) Normalize(raw string) string {
	folded := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if canonical, ok := n.aliases[folded]; ok {
		return canonical
	}
	return folded
}

// Dedupe returns the input skills de-duplicated by normalized identity,
// keeping first-encounter order and original spelling.
func (n *Normalizer) Dedupe(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, skill := range raw {
		key := n.Normalize(skill)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(skill))
	}
	return out
}
