package resources

import (
	"context"
	"strings"

	"careercoach-backend/internal/shared/telemetry"
)

// Lookup is the read-optimized view over the resource table, built once
// at startup and read concurrently without locking.
type Lookup struct {
	bySkill map[string][]Resource
	order   []string
}

// NewLookup indexes a resource table.
func NewLookup(table []Resource) *Lookup {
	l := &Lookup{bySkill: make(map[string][]Resource)}
	for _, res := range table {
		key := strings.TrimSpace(res.Skill)
		if key == "" {
			continue
		}
		if _, ok := l.bySkill[key]; !ok {
			l.order = append(l.order, key)
		}
		l.bySkill[key] = append(l.bySkill[key], res)
	}
	return l
}

// Load builds a Lookup from a repo. A nil repo or a load failure yields
// an empty lookup; resource absence is never an error.
func Load(ctx context.Context, repo Repo) *Lookup {
	if repo == nil {
		return NewLookup(nil)
	}
	table, err := repo.ListAll(ctx)
	if err != nil {
		telemetry.Error("resources.load_failed", map[string]any{
			"error":    err.Error(),
			"fallback": "empty_table",
		})
		return NewLookup(nil)
	}
	return NewLookup(table)
}

// ForSkill returns the resources for a skill: exact name first, then
// case-insensitive, then substring fallback. A miss yields an empty
// list, never an error.
func (l *Lookup) ForSkill(name string) []Resource {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if found, ok := l.bySkill[name]; ok {
		return append([]Resource(nil), found...)
	}
	for _, key := range l.order {
		if strings.EqualFold(key, name) {
			return append([]Resource(nil), l.bySkill[key]...)
		}
	}
	lower := strings.ToLower(name)
	for _, key := range l.order {
		keyLower := strings.ToLower(key)
		if strings.Contains(keyLower, lower) || strings.Contains(lower, keyLower) {
			return append([]Resource(nil), l.bySkill[key]...)
		}
	}
	return nil
}
