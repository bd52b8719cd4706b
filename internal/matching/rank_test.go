package matching

import (
	"testing"
	"time"
)

func rankFixtureJobs() []JobPosting {
	return []JobPosting{
		{ID: "a", Title: "Backend Developer", Skills: []string{"Python", "SQL"}, Location: "Berlin, Germany", JobType: "full-time", Remote: false},
		{ID: "b", Title: "Data Scientist", Skills: []string{"Machine Learning", "Statistics"}, Location: "Remote", JobType: "full-time", Remote: true},
		{ID: "c", Title: "Backend Developer", Skills: []string{"Python", "SQL"}, Location: "Munich, Germany", JobType: "contract", Remote: false},
		{ID: "d", Title: "Frontend Developer", Skills: []string{"React", "CSS"}, Location: "Berlin, Germany", JobType: "full-time", Remote: false},
	}
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	s := newTestScorer()
	profile := Profile{Skills: []string{"Python", "SQL"}}
	results, err := s.Rank(profile, rankFixtureJobs(), 0, nil)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected all jobs scored, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not ordered by score: %v", results)
		}
	}
	for _, r := range results {
		if len(r.Factors) != 5 {
			t.Fatalf("expected full factor breakdown on %s, got %d factors", r.JobID, len(r.Factors))
		}
	}
}

func TestRankStableTieBreak(t *testing.T) {
	s := newTestScorer()
	profile := Profile{Skills: []string{"Python", "SQL"}}
	results, err := s.Rank(profile, rankFixtureJobs(), 0, nil)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	// Jobs a and c tie exactly; input order must hold.
	posA, posC := -1, -1
	for i, r := range results {
		switch r.JobID {
		case "a":
			posA = i
		case "c":
			posC = i
		}
	}
	if posA < 0 || posC < 0 || posA > posC {
		t.Fatalf("tie between a and c not broken by input order: %v", results)
	}
}

func TestRankLimitIsPrefixOfLargerLimit(t *testing.T) {
	s := newTestScorer()
	profile := Profile{Skills: []string{"Python", "SQL"}}

	full, err := s.Rank(profile, rankFixtureJobs(), 10, nil)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	top2, err := s.Rank(profile, rankFixtureJobs(), 2, nil)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(top2) != 2 {
		t.Fatalf("expected limit to cap results, got %d", len(top2))
	}
	for i := range top2 {
		if top2[i].JobID != full[i].JobID {
			t.Fatalf("limited ranking is not a prefix: %v vs %v", top2, full[:2])
		}
	}
}

func TestFiltersNarrowIndependently(t *testing.T) {
	jobs := rankFixtureJobs()
	remote := true

	cases := []struct {
		name    string
		filters Filters
		wantIDs []string
	}{
		{"location_substring", Filters{Location: "germany"}, []string{"a", "c", "d"}},
		{"remote", Filters{Remote: &remote}, []string{"b"}},
		{"job_type", Filters{JobType: "contract"}, []string{"c"}},
		{"combined", Filters{Location: "Berlin", JobType: "full-time"}, []string{"a", "d"}},
		{"zero_filters_noop", Filters{}, []string{"a", "b", "c", "d"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.filters.Apply(jobs)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("got %d jobs, want %d: %v", len(got), len(tc.wantIDs), got)
			}
			for i, job := range got {
				if job.ID != tc.wantIDs[i] {
					t.Fatalf("unexpected job order: got %s at %d, want %s", job.ID, i, tc.wantIDs[i])
				}
			}
		})
	}
}

func TestFilterSalaryOverlap(t *testing.T) {
	jobs := []JobPosting{
		{ID: "low", SalaryMin: 40000, SalaryMax: 60000, Title: "t", Skills: []string{"Python"}},
		{ID: "high", SalaryMin: 90000, SalaryMax: 120000, Title: "t", Skills: []string{"Python"}},
		{ID: "open", Title: "t", Skills: []string{"Python"}},
	}
	f := Filters{SalaryMin: 70000, SalaryMax: 100000}
	got := f.Apply(jobs)
	if len(got) != 2 || got[0].ID != "high" || got[1].ID != "open" {
		t.Fatalf("unexpected salary filtering: %v", got)
	}
}

func TestFilterPostedAfter(t *testing.T) {
	cutoff := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	jobs := []JobPosting{
		{ID: "old", PostedDate: cutoff.AddDate(0, -1, 0)},
		{ID: "new", PostedDate: cutoff.AddDate(0, 1, 0)},
		{ID: "undated"},
	}
	f := Filters{PostedAfter: &cutoff}
	got := f.Apply(jobs)
	if len(got) != 2 || got[0].ID != "new" || got[1].ID != "undated" {
		t.Fatalf("unexpected posted-after filtering: %v", got)
	}
}
