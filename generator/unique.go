package generator

import (
	"fmt"
	"strings"

	"github.com/pyama86/incidentseed/domain/entity"
)

// Registry hands out values that are unique within one table column.
type Registry struct {
	table entity.TableName
	field string
	limit int
	used  map[string]struct{}
}

// NewRegistry caps every claim at limit candidate draws.
func NewRegistry(table entity.TableName, field string, limit int) *Registry {
	return &Registry{
		table: table,
		field: field,
		limit: max(limit, 1),
		used:  make(map[string]struct{}),
	}
}

// Claim draws candidates until one is unused and records it. candidate receives
// the zero-based attempt number so it can mutate later draws, for example by
// appending a numeric suffix.
func (r *Registry) Claim(candidate func(attempt int) string) (string, error) {
	for attempt := 0; attempt < r.limit; attempt++ {
		v := candidate(attempt)
		if _, ok := r.used[v]; ok {
			continue
		}
		r.used[v] = struct{}{}
		return v, nil
	}
	return "", exhausted(r.table, "no unique %s after %d attempts", r.field, r.limit)
}

func (r *Registry) Len() int {
	return len(r.used)
}

// withSuffix inserts n before the domain of an email address, or appends it to
// any other value.
func withSuffix(v string, n int) string {
	if at := strings.IndexByte(v, '@'); at >= 0 {
		return fmt.Sprintf("%s%d%s", v[:at], n, v[at:])
	}
	return fmt.Sprintf("%s %d", v, n)
}
