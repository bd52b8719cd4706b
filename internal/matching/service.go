package matching

import (
	"context"
	"sync/atomic"
	"time"

	"careercoach-backend/internal/cache"
	"careercoach-backend/internal/shared/metrics"
)

// Service wraps the scorer with TTL memoization. Identical requests
// within the TTL are served from cache; cache-hit and cache-miss paths
// return equal results by construction.
type Service struct {
	Scorer *Scorer
	Cache  *cache.Cache
	TTL    time.Duration

	computed atomic.Uint64
}

// NewService constructs a cache-aware matching service.
func NewService(scorer *Scorer, c *cache.Cache, ttl time.Duration) *Service {
	return &Service{Scorer: scorer, Cache: c, TTL: ttl}
}

// Score returns the compatibility result for one (profile, job) pair.
func (s *Service) Score(ctx context.Context, profile Profile, job JobPosting) (MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return MatchResult{}, err
	}
	key := cache.Key("match:score", profile, job)
	if key != "" && s.Cache != nil {
		if cached, ok := s.Cache.Get(key); ok {
			if result, ok := cached.(MatchResult); ok {
				metrics.IncScoreCacheHit()
				return result, nil
			}
		}
	}

	start := metrics.NowMillis()
	result, err := s.Scorer.Score(profile, job)
	if err != nil {
		return MatchResult{}, err
	}
	s.computed.Add(1)
	metrics.IncScoreComputed()
	metrics.ObserveEvaluationDurationMs(metrics.NowMillis() - start)

	if key != "" && s.Cache != nil {
		s.Cache.Put(key, result, s.TTL)
	}
	return result, nil
}

// Rank filters, scores and orders a job collection for a profile.
func (s *Service) Rank(ctx context.Context, profile Profile, jobs []JobPosting, limit int, filters *Filters) ([]MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := cache.Key("match:rank", profile, jobs, limit, filters)
	if key != "" && s.Cache != nil {
		if cached, ok := s.Cache.Get(key); ok {
			if results, ok := cached.([]MatchResult); ok {
				metrics.IncScoreCacheHit()
				return results, nil
			}
		}
	}

	start := metrics.NowMillis()
	results, err := s.Scorer.Rank(profile, jobs, limit, filters)
	if err != nil {
		return nil, err
	}
	s.computed.Add(1)
	metrics.IncScoreComputed()
	metrics.ObserveEvaluationDurationMs(metrics.NowMillis() - start)

	if key != "" && s.Cache != nil {
		s.Cache.Put(key, results, s.TTL)
	}
	return results, nil
}

// Similar returns postings with titles resembling the reference title.
// Pure title comparison is cheap enough to skip the cache.
func (s *Service) Similar(ctx context.Context, referenceTitle string, jobs []JobPosting, limit int) ([]JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SimilarJobs(referenceTitle, jobs, limit), nil
}

// Computed reports how many results were computed rather than served
// from cache.
func (s *Service) Computed() uint64 {
	return s.computed.Load()
}
