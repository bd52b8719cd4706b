package skills

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer()
	cases := []struct {
		raw  string
		want string
	}{
		{"  Python ", "python"},
		{"JS", "javascript"},
		{"ML", "machine learning"},
		{"Rest   API", "restful apis"},
		{"K8s", "kubernetes"},
		{"Amazon Web Services", "aws"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := n.Normalize(tc.raw); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestDedupe(t *testing.T) {
	n := NewNormalizer()
	got := n.Dedupe([]string{"Python", "python", " PYTHON ", "JS", "JavaScript", "SQL"})
	want := []string{"Python", "JS", "SQL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Dedupe = %v, want %v", got, want)
	}
}

func TestEquivalentPrecedence(t *testing.T) {
	m := NewMatcher(NewNormalizer(), nil)
	cases := []struct {
		name string
		a, b string
		want bool
	}{
		{"exact_case_insensitive", "Python", "python", true},
		{"alias", "JS", "JavaScript", true},
		{"acronym", "Object Oriented Programming", "OOP", true},
		{"containment_multiword", "RESTful APIs", "restful", true},
		{"containment_requires_multiword", "C", "C++", false},
		{"containment_single_tokens", "Java", "JavaScript", false},
		{"unrelated", "Python", "Kubernetes", false},
		{"empty", "", "Python", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Equivalent(tc.a, tc.b); got != tc.want {
				t.Fatalf("Equivalent(%q, %q) = %t, want %t", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestEquivalentSymmetry(t *testing.T) {
	m := NewMatcher(NewNormalizer(), NewTFIndex([]string{"Machine Learning", "Deep Learning", "Data Analysis"}, 0.82))
	pairs := [][2]string{
		{"Python", "python"},
		{"JS", "JavaScript"},
		{"Machine Learning", "ML"},
		{"Machine Learning", "Deep Learning"},
		{"RESTful APIs", "REST"},
		{"C", "C++"},
		{"Go", "Rust"},
	}
	for _, p := range pairs {
		ab := m.Equivalent(p[0], p[1])
		ba := m.Equivalent(p[1], p[0])
		if ab != ba {
			t.Fatalf("Equivalent(%q, %q)=%t but Equivalent(%q, %q)=%t", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestMatchWeight(t *testing.T) {
	m := NewMatcher(NewNormalizer(), nil)
	profile := []string{"Python", "Machine Learning", "PostgreSQL"}

	weight, candidate := m.MatchWeight("python", profile)
	if weight != 1.0 || candidate != "Python" {
		t.Fatalf("expected exact match weight 1.0 on Python, got %v via %q", weight, candidate)
	}

	weight, _ = m.MatchWeight("ML", profile)
	if weight != 1.0 {
		t.Fatalf("expected alias to count as exact, got %v", weight)
	}

	weight, candidate = m.MatchWeight("Machine Learning Engineering", profile)
	if weight != 0.5 || candidate != "Machine Learning" {
		t.Fatalf("expected partial containment weight 0.5, got %v via %q", weight, candidate)
	}

	weight, _ = m.MatchWeight("Kubernetes", profile)
	if weight != 0 {
		t.Fatalf("expected no match weight 0, got %v", weight)
	}
}

func TestMatcherWorksWithoutSimilarityIndex(t *testing.T) {
	m := NewMatcher(NewNormalizer(), nil)
	if !m.Equivalent("SQL", "sql") {
		t.Fatalf("expected exact matching without similarity index")
	}
}
