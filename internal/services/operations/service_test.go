package opsrv_test

import (
	"context"
	"errors"
	"testing"
	"time"

	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	opsrv "github.com/graphite-platforms/gcp-client/internal/services/operations"
	"github.com/graphite-platforms/gcp-client/internal/services/operations/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	compute "google.golang.org/api/compute/v1"
)

func newService(t *testing.T, gateway opsrv.OperationGateway) *opsrv.Service {
	t.Helper()
	svc, err := opsrv.NewService(gateway, nil, opsrv.WithPollInterval(2*time.Millisecond))
	require.NoError(t, err)
	return svc
}

func matchOperation(project, zone, operation string) interface{} {
	return mock.MatchedBy(func(opts *gcedomain.GetZoneOperationOptions) bool {
		return opts != nil &&
			opts.Project == project &&
			opts.Zone == zone &&
			opts.Operation == operation
	})
}

func TestService_NewService(t *testing.T) {
	t.Run("error: nil gateway", func(t *testing.T) {
		svc, err := opsrv.NewService(nil, nil)
		require.Error(t, err)
		require.Nil(t, svc)
	})
}

func TestService_WaitForCompletion_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("error: nil options", func(t *testing.T) {
		svc := newService(t, mocks.NewOperationGateway(t))

		opErr, err := svc.WaitForCompletion(ctx, nil)
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
		require.Nil(t, opErr)
	})

	t.Run("error: empty identifiers", func(t *testing.T) {
		svc := newService(t, mocks.NewOperationGateway(t))

		opErr, err := svc.WaitForCompletion(ctx, &gcedomain.WaitForCompletionOptions{
			Project: "p", Zone: "", Operation: "op-1", Timeout: time.Second,
		})
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
		require.Nil(t, opErr)
	})

	t.Run("error: non-positive timeout, no remote call", func(t *testing.T) {
		svc := newService(t, mocks.NewOperationGateway(t))

		opErr, err := svc.WaitForCompletion(ctx, &gcedomain.WaitForCompletionOptions{
			Project: "p", Zone: "z", Operation: "op-1", Timeout: 0,
		})
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
		require.Nil(t, opErr)
	})
}

func TestService_WaitForCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: done on first poll returns error payload", func(t *testing.T) {
		gateway := mocks.NewOperationGateway(t)
		svc := newService(t, gateway)

		wantPayload := &compute.OperationError{
			Errors: []*compute.OperationErrorErrors{{Code: "QUOTA_EXCEEDED", Message: "quota exceeded"}},
		}
		gateway.EXPECT().
			GetZoneOperation(mock.Anything, matchOperation("p", "us-central1-a", "op-1")).
			Return(&compute.Operation{Name: "op-1", Status: "DONE", Error: wantPayload}, nil).
			Once()

		opErr, err := svc.WaitForCompletion(ctx, &gcedomain.WaitForCompletionOptions{
			Project:   "p",
			Zone:      "https://www.googleapis.com/compute/v1/projects/p/zones/us-central1-a",
			Operation: "op-1",
			Timeout:   time.Second,
		})
		require.NoError(t, err)
		require.Equal(t, wantPayload, opErr)
	})

	t.Run("ok: no polls after the terminal one", func(t *testing.T) {
		gateway := mocks.NewOperationGateway(t)
		svc := newService(t, gateway)

		pending := &compute.Operation{Name: "op-1", Status: "RUNNING"}
		gateway.EXPECT().
			GetZoneOperation(mock.Anything, matchOperation("p", "z", "op-1")).
			Return(pending, nil).
			Times(2)
		gateway.EXPECT().
			GetZoneOperation(mock.Anything, matchOperation("p", "z", "op-1")).
			Return(&compute.Operation{Name: "op-1", Status: "DONE"}, nil).
			Once()

		opErr, err := svc.WaitForCompletion(ctx, &gcedomain.WaitForCompletionOptions{
			Project: "p", Zone: "z", Operation: "op-1", Timeout: time.Second,
		})
		require.NoError(t, err)
		require.Nil(t, opErr)
	})

	t.Run("error: never done times out without payload", func(t *testing.T) {
		gateway := mocks.NewOperationGateway(t)
		svc := newService(t, gateway)

		gateway.EXPECT().
			GetZoneOperation(mock.Anything, matchOperation("p", "z", "op-1")).
			Return(&compute.Operation{Name: "op-1", Status: "RUNNING"}, nil)

		opErr, err := svc.WaitForCompletion(ctx, &gcedomain.WaitForCompletionOptions{
			Project: "p", Zone: "z", Operation: "op-1", Timeout: 20 * time.Millisecond,
		})
		require.ErrorIs(t, err, gcedomain.ErrWaitTimeout)
		require.Nil(t, opErr)
	})

	t.Run("error: persistent transport errors surface as timeout", func(t *testing.T) {
		gateway := mocks.NewOperationGateway(t)
		svc := newService(t, gateway)

		gateway.EXPECT().
			GetZoneOperation(mock.Anything, matchOperation("p", "z", "op-1")).
			Return(nil, errors.New("connection reset"))

		opErr, err := svc.WaitForCompletion(ctx, &gcedomain.WaitForCompletionOptions{
			Project: "p", Zone: "z", Operation: "op-1", Timeout: 20 * time.Millisecond,
		})
		require.ErrorIs(t, err, gcedomain.ErrWaitTimeout)
		require.Nil(t, opErr)
	})

	t.Run("ok: done after transient transport error", func(t *testing.T) {
		gateway := mocks.NewOperationGateway(t)
		svc := newService(t, gateway)

		gateway.EXPECT().
			GetZoneOperation(mock.Anything, matchOperation("p", "z", "op-1")).
			Return(nil, errors.New("connection reset")).
			Once()
		gateway.EXPECT().
			GetZoneOperation(mock.Anything, matchOperation("p", "z", "op-1")).
			Return(&compute.Operation{Name: "op-1", Status: "DONE"}, nil).
			Once()

		opErr, err := svc.WaitForCompletion(ctx, &gcedomain.WaitForCompletionOptions{
			Project: "p", Zone: "z", Operation: "op-1", Timeout: time.Second,
		})
		require.NoError(t, err)
		require.Nil(t, opErr)
	})

	t.Run("error: canceled parent context is not a timeout", func(t *testing.T) {
		gateway := mocks.NewOperationGateway(t)
		svc := newService(t, gateway)

		canceledCtx, cancel := context.WithCancel(ctx)
		gateway.EXPECT().
			GetZoneOperation(mock.Anything, matchOperation("p", "z", "op-1")).
			Run(func(_ context.Context, _ *gcedomain.GetZoneOperationOptions) { cancel() }).
			Return(&compute.Operation{Name: "op-1", Status: "RUNNING"}, nil)

		opErr, err := svc.WaitForCompletion(canceledCtx, &gcedomain.WaitForCompletionOptions{
			Project: "p", Zone: "z", Operation: "op-1", Timeout: time.Second,
		})
		require.ErrorIs(t, err, context.Canceled)
		require.NotErrorIs(t, err, gcedomain.ErrWaitTimeout)
		require.Nil(t, opErr)
	})
}

func TestService_WaitForOperation(t *testing.T) {
	ctx := context.Background()

	t.Run("error: nil operation", func(t *testing.T) {
		svc := newService(t, mocks.NewOperationGateway(t))

		opErr, err := svc.WaitForOperation(ctx, "p", nil, time.Second)
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
		require.Nil(t, opErr)
	})

	t.Run("ok: zone and name derived from the handle", func(t *testing.T) {
		gateway := mocks.NewOperationGateway(t)
		svc := newService(t, gateway)

		gateway.EXPECT().
			GetZoneOperation(mock.Anything, matchOperation("p", "us-east1-b", "op-9")).
			Return(&compute.Operation{Name: "op-9", Status: "DONE"}, nil).
			Once()

		op := &compute.Operation{
			Name: "op-9",
			Zone: "https://www.googleapis.com/compute/v1/projects/p/zones/us-east1-b",
		}
		opErr, err := svc.WaitForOperation(ctx, "p", op, time.Second)
		require.NoError(t, err)
		require.Nil(t, opErr)
	})
}
