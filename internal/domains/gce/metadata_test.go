package gcedomain_test

import (
	"testing"

	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/stretchr/testify/require"
	compute "google.golang.org/api/compute/v1"
)

func item(key, value string) *compute.MetadataItems {
	return &compute.MetadataItems{Key: key, Value: &value}
}

func keys(items []*compute.MetadataItems) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Key)
	}
	return out
}

func TestMergeMetadataItems(t *testing.T) {
	t.Run("winner entries come first and override by key", func(t *testing.T) {
		winner := []*compute.MetadataItems{item("a", "new"), item("b", "new")}
		loser := []*compute.MetadataItems{item("b", "old"), item("c", "old")}

		merged := gcedomain.MergeMetadataItems(winner, loser)

		require.Equal(t, []string{"a", "b", "c"}, keys(merged))
		require.Equal(t, "new", *merged[1].Value)
		require.Equal(t, "old", *merged[2].Value)
	})

	t.Run("nil loser keeps the winner untouched", func(t *testing.T) {
		winner := []*compute.MetadataItems{item("a", "v")}

		merged := gcedomain.MergeMetadataItems(winner, nil)

		require.Equal(t, []string{"a"}, keys(merged))
	})

	t.Run("empty winner keeps the loser", func(t *testing.T) {
		loser := []*compute.MetadataItems{item("a", "v"), item("b", "v")}

		merged := gcedomain.MergeMetadataItems(nil, loser)

		require.Equal(t, []string{"a", "b"}, keys(merged))
	})

	t.Run("nil loser entries are skipped", func(t *testing.T) {
		loser := []*compute.MetadataItems{nil, item("a", "v")}

		merged := gcedomain.MergeMetadataItems(nil, loser)

		require.Equal(t, []string{"a"}, keys(merged))
	})
}
