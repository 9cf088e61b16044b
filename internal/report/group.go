package report

import "strings"

// GroupReduce folds records into per-group aggregates in a single pass.
// Groups are created lazily via seed on first encounter. The reducer must be
// insensitive to record order; callers sort the result before presentation.
func GroupReduce[T any, A any](records []T, key func(T) string, seed func() A, reduce func(A, T) A) map[string]A {
	out := make(map[string]A)
	for _, rec := range records {
		k := key(rec)
		if k == "" {
			continue
		}
		agg, ok := out[k]
		if !ok {
			agg = seed()
		}
		out[k] = reduce(agg, rec)
	}

	return out
}

// SumBy totals val per group key. Records with an empty key are skipped.
func SumBy[T any](records []T, key func(T) string, val func(T) int) map[string]int {
	return GroupReduce(records, key,
		func() int { return 0 },
		func(sum int, rec T) int { return sum + val(rec) })
}

// Distinct collects the set of trimmed non-empty identifiers.
func Distinct[T any](records []T, id func(T) string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, rec := range records {
		k := strings.TrimSpace(id(rec))
		if k == "" {
			continue
		}
		set[k] = struct{}{}
	}

	return set
}

// CountDistinct counts trimmed non-empty identifiers once each.
func CountDistinct[T any](records []T, id func(T) string) int {
	return len(Distinct(records, id))
}

// GroupBy partitions records by key, skipping empty keys.
func GroupBy[T any](records []T, key func(T) string) map[string][]T {
	out := make(map[string][]T)
	for _, rec := range records {
		k := key(rec)
		if k == "" {
			continue
		}
		out[k] = append(out[k], rec)
	}

	return out
}
