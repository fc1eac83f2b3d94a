package sliceutils_test

import (
	"testing"

	sliceutils "github.com/graphite-platforms/gcp-client/pkg/slices"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	got := sliceutils.Map([]int{1, 2, 3}, func(v int) int { return v * 2 })
	require.Equal(t, []int{2, 4, 6}, got)
}

func TestFilter(t *testing.T) {
	got := sliceutils.Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	require.Equal(t, []int{2, 4}, got)
}

func TestSortedBy(t *testing.T) {
	t.Run("sorts by the derived key", func(t *testing.T) {
		type entry struct{ name string }
		values := []entry{{"c"}, {"a"}, {"b"}}

		got := sliceutils.SortedBy(values, func(v entry) string { return v.name })

		require.Equal(t, []entry{{"a"}, {"b"}, {"c"}}, got)
	})

	t.Run("input left untouched", func(t *testing.T) {
		values := []int{3, 1, 2}

		got := sliceutils.SortedBy(values, func(v int) int { return v })

		require.Equal(t, []int{1, 2, 3}, got)
		require.Equal(t, []int{3, 1, 2}, values)
	})
}
