package sliceutils

import (
	"cmp"
	"slices"
)

func Map[T any, U any](values []T, mapper func(v T) U) []U {
	mapped := make([]U, len(values))
	for i, value := range values {
		mapped[i] = mapper(value)
	}
	return mapped
}

func Filter[T any](values []T, keep func(v T) bool) []T {
	filtered := make([]T, 0, len(values))
	for _, value := range values {
		if keep(value) {
			filtered = append(filtered, value)
		}
	}
	return filtered
}

// SortedBy returns a copy of values ordered by the given key. The input is
// left untouched.
func SortedBy[T any, K cmp.Ordered](values []T, key func(v T) K) []T {
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return sorted
}
