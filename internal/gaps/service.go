package gaps

import (
	"context"
	"sync/atomic"
	"time"

	"careercoach-backend/internal/cache"
	"careercoach-backend/internal/matching"
	"careercoach-backend/internal/shared/metrics"
)

// Service wraps the analyzer with TTL memoization, sharing the cache
// instance with the matching service.
type Service struct {
	Analyzer *Analyzer
	Cache    *cache.Cache
	TTL      time.Duration

	computed atomic.Uint64
}

// NewService constructs a cache-aware gap-analysis service.
func NewService(analyzer *Analyzer, c *cache.Cache, ttl time.Duration) *Service {
	return &Service{Analyzer: analyzer, Cache: c, TTL: ttl}
}

// Analyze returns the gap analysis for one (profile, target, level)
// triple.
func (s *Service) Analyze(ctx context.Context, profile matching.Profile, target Target, careerLevel string) (GapResult, error) {
	if err := ctx.Err(); err != nil {
		return GapResult{}, err
	}
	key := cache.Key("gap:analyze", profile, target, careerLevel)
	if key != "" && s.Cache != nil {
		if cached, ok := s.Cache.Get(key); ok {
			if result, ok := cached.(GapResult); ok {
				metrics.IncGapCacheHit()
				return result, nil
			}
		}
	}

	start := metrics.NowMillis()
	result, err := s.Analyzer.Analyze(profile, target, careerLevel)
	if err != nil {
		return GapResult{}, err
	}
	s.computed.Add(1)
	metrics.IncGapComputed()
	metrics.ObserveEvaluationDurationMs(metrics.NowMillis() - start)

	if key != "" && s.Cache != nil {
		s.Cache.Put(key, result, s.TTL)
	}
	return result, nil
}

// Computed reports how many analyses were computed rather than served
// from cache.
func (s *Service) Computed() uint64 {
	return s.computed.Load()
}
