package generator

import (
	"math/rand/v2"
	"time"

	"github.com/pyama86/incidentseed/domain/entity"
)

type weighted[T any] struct {
	value  T
	weight int
}

func w[T any](value T, weight int) weighted[T] {
	return weighted[T]{value: value, weight: weight}
}

func pickWeighted[T any](r *rand.Rand, choices ...weighted[T]) T {
	total := 0
	for _, c := range choices {
		total += c.weight
	}
	n := r.IntN(total)
	for _, c := range choices {
		if n < c.weight {
			return c.value
		}
		n -= c.weight
	}
	return choices[len(choices)-1].value
}

// choice panics on an empty slice; use pick when the pool comes from data.
func choice[T any](r *rand.Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

func pick[T any](r *rand.Rand, table entity.TableName, what string, pool []T) (T, error) {
	if len(pool) == 0 {
		var zero T
		return zero, exhausted(table, "no %s to choose from", what)
	}
	return pool[r.IntN(len(pool))], nil
}

// intBetween is inclusive on both ends.
func intBetween(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func coin(r *rand.Rand) bool {
	return r.IntN(2) == 0
}

// sample draws k distinct elements, k clamped to len(xs).
func sample[T any](r *rand.Rand, xs []T, k int) []T {
	k = min(k, len(xs))
	out := make([]T, 0, k)
	for _, i := range r.Perm(len(xs))[:k] {
		out = append(out, xs[i])
	}
	return out
}

// timeBetween returns a second-aligned instant in [lo, hi]; an inverted range
// collapses to lo.
func timeBetween(r *rand.Rand, lo, hi time.Time) time.Time {
	lo = lo.Truncate(time.Second)
	span := int64(hi.Sub(lo) / time.Second)
	if span <= 0 {
		return lo
	}
	return lo.Add(time.Duration(r.Int64N(span+1)) * time.Second)
}

func hours(n int) time.Duration {
	return time.Duration(n) * time.Hour
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func notAfter(t, limit time.Time) time.Time {
	if t.After(limit) {
		return limit
	}
	return t
}

func ptr[T any](v T) *T {
	return &v
}
