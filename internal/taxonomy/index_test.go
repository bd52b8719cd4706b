package taxonomy

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func testTaxonomy() Taxonomy {
	return Taxonomy{
		Categories: map[string][]string{
			"Programming Languages": {"Python", "Go"},
			"Databases":             {"PostgreSQL"},
		},
		Roles: map[string]Requirements{
			"Backend Developer": {
				Required:  []string{"Go", "PostgreSQL"},
				Preferred: []string{"Docker"},
			},
		},
		Industries: map[string][]string{
			"Technology": {"software", "cloud"},
			"Finance":    {"banking", "software"},
			"Healthcare": {"medical"},
		},
	}
}

func TestCategoryOfKnownSkill(t *testing.T) {
	ix := NewIndex(testTaxonomy())
	cases := []struct {
		skill string
		want  string
	}{
		{"Python", "Programming Languages"},
		{"python", "Programming Languages"},
		{"  PostgreSQL  ", "Databases"},
		{"Fortran", OtherCategory},
		{"", OtherCategory},
	}
	for _, tc := range cases {
		if got := ix.CategoryOf(tc.skill); got != tc.want {
			t.Fatalf("CategoryOf(%q) = %q, want %q", tc.skill, got, tc.want)
		}
	}
}

func TestRequirementsForPreservesOrder(t *testing.T) {
	ix := NewIndex(testTaxonomy())
	reqs, ok := ix.RequirementsFor("backend developer")
	if !ok {
		t.Fatalf("expected role lookup to succeed")
	}
	if !reflect.DeepEqual(reqs.Required, []string{"Go", "PostgreSQL"}) {
		t.Fatalf("unexpected required order: %v", reqs.Required)
	}
	if !reflect.DeepEqual(reqs.Preferred, []string{"Docker"}) {
		t.Fatalf("unexpected preferred list: %v", reqs.Preferred)
	}

	if _, ok := ix.RequirementsFor("Astronaut"); ok {
		t.Fatalf("expected unknown role to miss")
	}
}

func TestRequirementsForReturnsCopies(t *testing.T) {
	ix := NewIndex(testTaxonomy())
	reqs, _ := ix.RequirementsFor("Backend Developer")
	reqs.Required[0] = "mutated"
	again, _ := ix.RequirementsFor("Backend Developer")
	if again.Required[0] != "Go" {
		t.Fatalf("index mutated through returned slice")
	}
}

func TestVocabularyIncludesRoleOnlySkills(t *testing.T) {
	ix := NewIndex(testTaxonomy())
	vocab := ix.Vocabulary()
	found := false
	for _, term := range vocab {
		if term == "Docker" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected role-only skill Docker in vocabulary, got %v", vocab)
	}
}

func TestRelatedIndustries(t *testing.T) {
	ix := NewIndex(testTaxonomy())
	cases := []struct {
		a, b string
		want bool
	}{
		{"Technology", "Finance", true},  // share "software"
		{"Technology", "Healthcare", false},
		{"technology", "FINANCE", true},
		{"Technology", "Unknown", false},
		{"", "Finance", false},
	}
	for _, tc := range cases {
		if got := ix.RelatedIndustries(tc.a, tc.b); got != tc.want {
			t.Fatalf("RelatedIndustries(%q, %q) = %t, want %t", tc.a, tc.b, got, tc.want)
		}
		if got := ix.RelatedIndustries(tc.b, tc.a); got != tc.want {
			t.Fatalf("RelatedIndustries(%q, %q) = %t, want %t (symmetry)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestLoadIndexFallsBackToDefault(t *testing.T) {
	ix := LoadIndex(context.Background(), nil)
	if _, ok := ix.RequirementsFor("Software Engineer"); !ok {
		t.Fatalf("expected built-in default taxonomy to know Software Engineer")
	}

	failing := sourceFunc(func(ctx context.Context) (Taxonomy, error) {
		return Taxonomy{}, errors.New("connection refused")
	})
	ix = LoadIndex(context.Background(), failing)
	if _, ok := ix.RequirementsFor("Software Engineer"); !ok {
		t.Fatalf("expected fallback to default on source failure")
	}

	empty := &MemorySource{}
	ix = LoadIndex(context.Background(), empty)
	if _, ok := ix.RequirementsFor("Software Engineer"); !ok {
		t.Fatalf("expected fallback to default on empty source")
	}
}

func TestDefaultSoftwareEngineerRequirements(t *testing.T) {
	ix := NewIndex(Default())
	reqs, ok := ix.RequirementsFor("Software Engineer")
	if !ok {
		t.Fatalf("expected Software Engineer role in default taxonomy")
	}
	want := []string{"Python", "Java", "SQL", "RESTful APIs", "Git"}
	if !reflect.DeepEqual(reqs.Required, want) {
		t.Fatalf("unexpected required skills: %v", reqs.Required)
	}
}

type sourceFunc func(ctx context.Context) (Taxonomy, error)

func (f sourceFunc) Load(ctx context.Context) (Taxonomy, error) { return f(ctx) }
