package cache

import (
	"strings"

	"careercoach-backend/internal/shared/util"
)

// Key derives a stable cache key from an operation kind and its inputs.
// Inputs are hashed through their JSON encoding, so two structurally
// equal requests always map to the same key. Unencodable inputs yield
// an empty key, which callers treat as uncacheable.
func Key(kind string, inputs ...any) string {
	parts := make([]string, 0, len(inputs)+1)
	parts = append(parts, kind)
	for _, in := range inputs {
		h, err := util.HashJSON(in)
		if err != nil {
			return ""
		}
		parts = append(parts, h)
	}
	return util.HashKey(strings.Join(parts, "|"))
}
