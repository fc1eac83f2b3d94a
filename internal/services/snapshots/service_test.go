package snapsrv_test

import (
	"context"
	"errors"
	"testing"
	"time"

	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	snapsrv "github.com/graphite-platforms/gcp-client/internal/services/snapshots"
	"github.com/graphite-platforms/gcp-client/internal/services/snapshots/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	compute "google.golang.org/api/compute/v1"
)

func newService(t *testing.T) (*snapsrv.Service, *mocks.SnapshotGateway, *mocks.OperationWaiter) {
	t.Helper()
	gateway := mocks.NewSnapshotGateway(t)
	waiter := mocks.NewOperationWaiter(t)
	svc, err := snapsrv.NewService(gateway, waiter, nil)
	require.NoError(t, err)
	return svc, gateway, waiter
}

func matchDisk(disk string) interface{} {
	return mock.MatchedBy(func(opts *gcedomain.CreateDiskSnapshotOptions) bool {
		return opts != nil &&
			opts.Disk == disk &&
			opts.Snapshot != nil &&
			opts.Snapshot.Name == disk
	})
}

func matchWait(operation string, timeout time.Duration) interface{} {
	return mock.MatchedBy(func(opts *gcedomain.WaitForCompletionOptions) bool {
		return opts != nil && opts.Operation == operation && opts.Timeout == timeout
	})
}

func TestService_CreateSnapshot_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("error: nil options", func(t *testing.T) {
		svc, _, _ := newService(t)
		err := svc.CreateSnapshot(ctx, nil)
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
	})

	t.Run("error: empty instance", func(t *testing.T) {
		svc, _, _ := newService(t)
		err := svc.CreateSnapshot(ctx, &gcedomain.CreateSnapshotOptions{
			Project: "p", Zone: "z", Instance: "", Timeout: time.Second,
		})
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
	})

	t.Run("error: non-positive timeout, no remote call", func(t *testing.T) {
		svc, _, _ := newService(t)
		err := svc.CreateSnapshot(ctx, &gcedomain.CreateSnapshotOptions{
			Project: "p", Zone: "z", Instance: "i-1", Timeout: -time.Second,
		})
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
	})
}

func TestService_CreateSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("error: instance lookup fails, no snapshots attempted", func(t *testing.T) {
		svc, gateway, _ := newService(t)

		wantErr := errors.New("instance not found")
		gateway.EXPECT().
			GetInstance(ctx, mock.MatchedBy(func(opts *gcedomain.GetInstanceOptions) bool {
				return opts != nil && opts.Instance == "i-1" && opts.Zone == "us-central1-a"
			})).
			Return(nil, wantErr).
			Once()

		err := svc.CreateSnapshot(ctx, &gcedomain.CreateSnapshotOptions{
			Project:  "p",
			Zone:     "https://www.googleapis.com/compute/v1/projects/p/zones/us-central1-a",
			Instance: "i-1",
			Timeout:  time.Second,
		})
		require.ErrorIs(t, err, wantErr)
	})

	t.Run("ok: one snapshot per disk, named after the disk", func(t *testing.T) {
		svc, gateway, waiter := newService(t)

		gateway.EXPECT().
			GetInstance(ctx, mock.Anything).
			Return(&compute.Instance{
				Disks: []*compute.AttachedDisk{
					{Source: "projects/p/zones/z/disks/d1"},
					{Source: "projects/p/zones/z/disks/d2"},
				},
			}, nil).
			Once()

		gateway.EXPECT().
			CreateDiskSnapshot(mock.Anything, matchDisk("d1")).
			Return(&compute.Operation{Name: "op-d1", Status: "RUNNING"}, nil).
			Once()
		gateway.EXPECT().
			CreateDiskSnapshot(mock.Anything, matchDisk("d2")).
			Return(&compute.Operation{Name: "op-d2", Status: "RUNNING"}, nil).
			Once()

		waiter.EXPECT().
			WaitForCompletion(mock.Anything, matchWait("op-d1", time.Second)).
			Return(nil, nil).
			Once()
		waiter.EXPECT().
			WaitForCompletion(mock.Anything, matchWait("op-d2", time.Second)).
			Return(nil, nil).
			Once()

		err := svc.CreateSnapshot(ctx, &gcedomain.CreateSnapshotOptions{
			Project: "p", Zone: "z", Instance: "i-1", Timeout: time.Second,
		})
		require.NoError(t, err)
	})

	t.Run("error: one disk fails at create, aggregate call fails", func(t *testing.T) {
		svc, gateway, waiter := newService(t)

		gateway.EXPECT().
			GetInstance(ctx, mock.Anything).
			Return(&compute.Instance{
				Disks: []*compute.AttachedDisk{
					{Source: "projects/p/zones/z/disks/d1"},
					{Source: "projects/p/zones/z/disks/d2"},
				},
			}, nil).
			Once()

		wantErr := errors.New("disk is busy")
		gateway.EXPECT().
			CreateDiskSnapshot(mock.Anything, matchDisk("d1")).
			Return(&compute.Operation{Name: "op-d1", Status: "RUNNING"}, nil).
			Maybe()
		gateway.EXPECT().
			CreateDiskSnapshot(mock.Anything, matchDisk("d2")).
			Return(nil, wantErr).
			Once()

		// d1 may or may not reach its wait before the group context is
		// canceled by d2's failure.
		waiter.EXPECT().
			WaitForCompletion(mock.Anything, matchWait("op-d1", time.Second)).
			Return(nil, nil).
			Maybe()

		err := svc.CreateSnapshot(ctx, &gcedomain.CreateSnapshotOptions{
			Project: "p", Zone: "z", Instance: "i-1", Timeout: time.Second,
		})
		require.ErrorIs(t, err, wantErr)
	})

	t.Run("error: terminal error payload becomes operation failure", func(t *testing.T) {
		svc, gateway, waiter := newService(t)

		gateway.EXPECT().
			GetInstance(ctx, mock.Anything).
			Return(&compute.Instance{
				Disks: []*compute.AttachedDisk{{Source: "projects/p/zones/z/disks/d1"}},
			}, nil).
			Once()
		gateway.EXPECT().
			CreateDiskSnapshot(mock.Anything, matchDisk("d1")).
			Return(&compute.Operation{Name: "op-d1", Status: "RUNNING"}, nil).
			Once()
		waiter.EXPECT().
			WaitForCompletion(mock.Anything, matchWait("op-d1", time.Second)).
			Return(&compute.OperationError{
				Errors: []*compute.OperationErrorErrors{{Code: "QUOTA_EXCEEDED", Message: "quota exceeded"}},
			}, nil).
			Once()

		err := svc.CreateSnapshot(ctx, &gcedomain.CreateSnapshotOptions{
			Project: "p", Zone: "z", Instance: "i-1", Timeout: time.Second,
		})
		require.ErrorIs(t, err, gcedomain.ErrOperationFailed)
		require.Contains(t, err.Error(), "QUOTA_EXCEEDED")
	})

	t.Run("ok: instance without disks is a no-op", func(t *testing.T) {
		svc, gateway, _ := newService(t)

		gateway.EXPECT().
			GetInstance(ctx, mock.Anything).
			Return(&compute.Instance{}, nil).
			Once()

		err := svc.CreateSnapshot(ctx, &gcedomain.CreateSnapshotOptions{
			Project: "p", Zone: "z", Instance: "i-1", Timeout: time.Second,
		})
		require.NoError(t, err)
	})
}

func TestService_CreateSnapshotForDisk(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty disk", func(t *testing.T) {
		svc, _, _ := newService(t)

		opErr, err := svc.CreateSnapshotForDisk(ctx, &gcedomain.CreateSnapshotForDiskOptions{
			Project: "p", Zone: "z", Disk: "", Timeout: time.Second,
		})
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
		require.Nil(t, opErr)
	})

	t.Run("error: create call fails before any wait", func(t *testing.T) {
		svc, gateway, _ := newService(t)

		wantErr := errors.New("backend unavailable")
		gateway.EXPECT().
			CreateDiskSnapshot(ctx, matchDisk("d1")).
			Return(nil, wantErr).
			Once()

		opErr, err := svc.CreateSnapshotForDisk(ctx, &gcedomain.CreateSnapshotForDiskOptions{
			Project: "p", Zone: "z", Disk: "d1", Timeout: time.Second,
		})
		require.ErrorIs(t, err, wantErr)
		require.Nil(t, opErr)
	})

	t.Run("ok: wait result passed through", func(t *testing.T) {
		svc, gateway, waiter := newService(t)

		gateway.EXPECT().
			CreateDiskSnapshot(ctx, matchDisk("d1")).
			Return(&compute.Operation{Name: "op-d1", Status: "RUNNING"}, nil).
			Once()

		wantPayload := &compute.OperationError{
			Errors: []*compute.OperationErrorErrors{{Message: "disk busy"}},
		}
		waiter.EXPECT().
			WaitForCompletion(ctx, matchWait("op-d1", 30*time.Second)).
			Return(wantPayload, nil).
			Once()

		opErr, err := svc.CreateSnapshotForDisk(ctx, &gcedomain.CreateSnapshotForDiskOptions{
			Project: "p", Zone: "z", Disk: "d1", Timeout: 30 * time.Second,
		})
		require.NoError(t, err)
		require.Equal(t, wantPayload, opErr)
	})
}

func TestService_DeleteSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty snapshot", func(t *testing.T) {
		svc, _, _ := newService(t)

		op, err := svc.DeleteSnapshot(ctx, &gcedomain.DeleteSnapshotOptions{Project: "p"})
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
		require.Nil(t, op)
	})

	t.Run("ok: delegates without waiting", func(t *testing.T) {
		svc, gateway, _ := newService(t)

		opts := &gcedomain.DeleteSnapshotOptions{Project: "p", Snapshot: "snap-1"}
		wantOp := &compute.Operation{Name: "op-del"}
		gateway.EXPECT().DeleteSnapshot(ctx, opts).Return(wantOp, nil).Once()

		op, err := svc.DeleteSnapshot(ctx, opts)
		require.NoError(t, err)
		require.Equal(t, wantOp, op)
	})
}

func TestService_GetSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		svc, gateway, _ := newService(t)

		opts := &gcedomain.GetSnapshotOptions{Project: "p", Snapshot: "snap-1"}
		want := &compute.Snapshot{Name: "snap-1"}
		gateway.EXPECT().GetSnapshot(ctx, opts).Return(want, nil).Once()

		snapshot, err := svc.GetSnapshot(ctx, opts)
		require.NoError(t, err)
		require.Equal(t, want, snapshot)
	})
}
