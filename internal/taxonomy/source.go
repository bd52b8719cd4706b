package taxonomy

import (
	"context"

	"careercoach-backend/internal/shared/metrics"
	"careercoach-backend/internal/shared/telemetry"
)

// Source loads a taxonomy from a backing store.
type Source interface {
	Load(ctx context.Context) (Taxonomy, error)
}

// MemorySource serves a fixed in-memory taxonomy.
type MemorySource struct {
	Taxonomy Taxonomy
}

func (s *MemorySource) Load(ctx context.Context) (Taxonomy, error) {
	if err := ctx.Err(); err != nil {
		return Taxonomy{}, err
	}
	return s.Taxonomy, nil
}

// LoadIndex builds the process-wide Index from the given source. A nil
// source, a load failure, or an empty result all degrade to the
// built-in default taxonomy; the engine never starts without one.
func LoadIndex(ctx context.Context, src Source) *Index {
	if src == nil {
		metrics.IncTaxonomyFallback()
		return NewIndex(Default())
	}
	tax, err := src.Load(ctx)
	if err != nil {
		telemetry.Error("taxonomy.load_failed", map[string]any{
			"error":    err.Error(),
			"fallback": "builtin_default",
		})
		metrics.IncTaxonomyFallback()
		return NewIndex(Default())
	}
	if tax.Empty() {
		telemetry.Info("taxonomy.source_empty", map[string]any{
			"fallback": "builtin_default",
		})
		metrics.IncTaxonomyFallback()
		return NewIndex(Default())
	}
	return NewIndex(tax)
}
