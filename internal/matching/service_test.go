package matching

import (
	"context"
	"reflect"
	"testing"
	"time"

	"careercoach-backend/internal/cache"
)

func newTestService() *Service {
	return NewService(newTestScorer(), cache.New(), 15*time.Minute)
}

func TestScoreCacheHitSkipsRecomputation(t *testing.T) {
	svc := newTestService()
	profile := Profile{Skills: []string{"Python", "SQL"}}
	job := JobPosting{Title: "Backend Developer", Skills: []string{"Python", "SQL", "Docker"}}

	first, err := svc.Score(context.Background(), profile, job)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if svc.Computed() != 1 {
		t.Fatalf("expected 1 computation, got %d", svc.Computed())
	}

	second, err := svc.Score(context.Background(), profile, job)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if svc.Computed() != 1 {
		t.Fatalf("expected cached result without recomputation, got %d computations", svc.Computed())
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cache-hit result differs from computed result")
	}
}

func TestScoreCacheMissAfterTTL(t *testing.T) {
	current := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	c := cache.NewWithClock(func() time.Time { return current })
	svc := NewService(newTestScorer(), c, 10*time.Minute)

	profile := Profile{Skills: []string{"Python"}}
	job := JobPosting{Title: "Engineer", Skills: []string{"Python"}}

	first, err := svc.Score(context.Background(), profile, job)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	current = current.Add(11 * time.Minute)
	second, err := svc.Score(context.Background(), profile, job)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if svc.Computed() != 2 {
		t.Fatalf("expected recomputation after TTL, got %d computations", svc.Computed())
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recomputed result differs from original for identical inputs")
	}
}

func TestScoreDistinctInputsUseDistinctCacheEntries(t *testing.T) {
	svc := newTestService()
	profile := Profile{Skills: []string{"Python"}}

	if _, err := svc.Score(context.Background(), profile, JobPosting{Title: "A", Skills: []string{"Python"}}); err != nil {
		t.Fatalf("Score: %v", err)
	}
	if _, err := svc.Score(context.Background(), profile, JobPosting{Title: "B", Skills: []string{"Go"}}); err != nil {
		t.Fatalf("Score: %v", err)
	}
	if svc.Computed() != 2 {
		t.Fatalf("expected 2 computations for distinct jobs, got %d", svc.Computed())
	}
}

func TestCacheClearOnlyAffectsLatency(t *testing.T) {
	c := cache.New()
	svc := NewService(newTestScorer(), c, 15*time.Minute)
	profile := Profile{Skills: []string{"Python", "SQL"}}
	job := JobPosting{Title: "Backend Developer", Skills: []string{"Python", "SQL"}}

	before, err := svc.Score(context.Background(), profile, job)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	c.Clear()
	after, err := svc.Score(context.Background(), profile, job)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("cache clear changed the computed result")
	}
}

func TestRankCached(t *testing.T) {
	svc := newTestService()
	profile := Profile{Skills: []string{"Python", "SQL"}}
	jobs := rankFixtureJobs()

	first, err := svc.Rank(context.Background(), profile, jobs, 2, nil)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	second, err := svc.Rank(context.Background(), profile, jobs, 2, nil)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if svc.Computed() != 1 {
		t.Fatalf("expected rank to be served from cache, got %d computations", svc.Computed())
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached ranking differs from computed ranking")
	}
}

func TestServiceHonorsContextCancellation(t *testing.T) {
	svc := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Score(ctx, Profile{}, JobPosting{Title: "x", Skills: []string{"Python"}}); err == nil {
		t.Fatalf("expected context error")
	}
}
