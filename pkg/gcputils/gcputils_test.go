package gcputils_test

import (
	"testing"

	"github.com/graphite-platforms/gcp-client/pkg/gcputils"
	"github.com/stretchr/testify/require"
)

func TestNameFromSelfLink(t *testing.T) {
	tests := []struct {
		name     string
		selfLink string
		want     string
	}{
		{
			name:     "full https self link",
			selfLink: "https://www.googleapis.com/compute/v1/projects/p/zones/us-central1-a",
			want:     "us-central1-a",
		},
		{
			name:     "partial path",
			selfLink: "projects/p/global/networks/default",
			want:     "default",
		},
		{
			name:     "short name passes through",
			selfLink: "us-central1-a",
			want:     "us-central1-a",
		},
		{
			name:     "empty string",
			selfLink: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, gcputils.NameFromSelfLink(tt.selfLink))
		})
	}
}

func TestBuildLabelsFilter(t *testing.T) {
	t.Run("keys sorted for a deterministic expression", func(t *testing.T) {
		got := gcputils.BuildLabelsFilter(map[string]string{
			"team": "core",
			"env":  "prod",
		})
		require.Equal(t, "(labels.env eq prod) AND (labels.team eq core)", got)
	})

	t.Run("single label has no conjunction", func(t *testing.T) {
		got := gcputils.BuildLabelsFilter(map[string]string{"env": "prod"})
		require.Equal(t, "(labels.env eq prod)", got)
	})

	t.Run("empty map builds an empty filter", func(t *testing.T) {
		require.Empty(t, gcputils.BuildLabelsFilter(nil))
	})
}
