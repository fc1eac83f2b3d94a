package gcedomain_test

import (
	"testing"

	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/stretchr/testify/require"
	compute "google.golang.org/api/compute/v1"
)

func TestIsOperationDone(t *testing.T) {
	require.False(t, gcedomain.IsOperationDone(nil))
	require.False(t, gcedomain.IsOperationDone(&compute.Operation{Status: "RUNNING"}))
	require.False(t, gcedomain.IsOperationDone(&compute.Operation{Status: "PENDING"}))
	require.True(t, gcedomain.IsOperationDone(&compute.Operation{Status: "DONE"}))
}

func TestFormatOperationError(t *testing.T) {
	t.Run("empty payloads format to the empty string", func(t *testing.T) {
		require.Empty(t, gcedomain.FormatOperationError(nil))
		require.Empty(t, gcedomain.FormatOperationError(&compute.OperationError{}))
	})

	t.Run("entries joined with code prefixes", func(t *testing.T) {
		got := gcedomain.FormatOperationError(&compute.OperationError{
			Errors: []*compute.OperationErrorErrors{
				{Code: "QUOTA_EXCEEDED", Message: "quota exceeded"},
				{Message: "try again later"},
			},
		})
		require.Equal(t, "QUOTA_EXCEEDED: quota exceeded; try again later", got)
	})
}

func TestIsDeprecated(t *testing.T) {
	require.False(t, gcedomain.IsDeprecated(nil))
	require.False(t, gcedomain.IsDeprecated(&compute.DeprecationStatus{State: "OBSOLETE"}))
	require.True(t, gcedomain.IsDeprecated(&compute.DeprecationStatus{State: "DEPRECATED"}))
	require.True(t, gcedomain.IsDeprecated(&compute.DeprecationStatus{State: "deprecated"}))
}
