package skills

import (
	"math"
	"strings"
	"unicode"
)

// TFIndex implements SimilarityIndex with cosine similarity over a
// term-frequency space weighted by the taxonomy vocabulary: tokens
// common across many taxonomy terms contribute less than distinctive
// ones.
type TFIndex struct {
	weights   map[string]float64
	threshold float64
}

// NewTFIndex builds a similarity index from the taxonomy vocabulary.
// Pairs scoring at or above threshold are considered similar.
func NewTFIndex(vocabulary []string, threshold float64) *TFIndex {
	df := make(map[string]int)
	for _, term := range vocabulary {
		seen := make(map[string]bool)
		for _, token := range tokenize(term) {
			if !seen[token] {
				seen[token] = true
				df[token]++
			}
		}
	}
	weights := make(map[string]float64, len(df))
	for token, count := range df {
		weights[token] = 1.0 / (1.0 + math.Log(float64(count)))
	}
	return &TFIndex{weights: weights, threshold: threshold}
}

// Similar reports whether a and b score at or above the index threshold.
func (ix *TFIndex) Similar(a, b string) bool {
	return ix.Cosine(a, b) >= ix.threshold
}

// Cosine returns the weighted cosine similarity of two skill strings
// in [0,1].
func (ix *TFIndex) Cosine(a, b string) float64 {
	va := ix.vector(a)
	vb := ix.vector(b)
	if len(va) == 0 || len(vb) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for token, wa := range va {
		normA += wa * wa
		if wb, ok := vb[token]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range vb {
		normB += wb * wb
	}
	if dot == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func (ix *TFIndex) vector(s string) map[string]float64 {
	vec := make(map[string]float64)
	for _, token := range tokenize(s) {
		weight, ok := ix.weights[token]
		if !ok {
			weight = 1.0
		}
		vec[token] += weight
	}
	return vec
}

// tokenize splits a skill string into lowercase tokens. '+', '#' and
// '.' count as word characters so terms like "c++", "c#" and "node.js"
// survive intact.
func tokenize(s string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, strings.TrimRight(word.String(), "."))
			word.Reset()
		}
	}
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
