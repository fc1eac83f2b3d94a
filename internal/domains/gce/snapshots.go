package gcedomain

import (
	"context"
	"time"

	compute "google.golang.org/api/compute/v1"
)

type DiskSnapshotCreator interface {
	CreateDiskSnapshot(ctx context.Context, opts *CreateDiskSnapshotOptions) (*compute.Operation, error)
}

type CreateDiskSnapshotOptions struct {
	Project  string
	Zone     string
	Disk     string
	Snapshot *compute.Snapshot
}

type SnapshotDeleter interface {
	DeleteSnapshot(ctx context.Context, opts *DeleteSnapshotOptions) (*compute.Operation, error)
}

type DeleteSnapshotOptions struct {
	Project  string
	Snapshot string
}

type SnapshotGetter interface {
	GetSnapshot(ctx context.Context, opts *GetSnapshotOptions) (*compute.Snapshot, error)
}

type GetSnapshotOptions struct {
	Project  string
	Snapshot string
}

type InstanceSnapshotCreator interface {
	CreateSnapshot(ctx context.Context, opts *CreateSnapshotOptions) error
}

type CreateSnapshotOptions struct {
	Project  string
	Zone     string
	Instance string
	// Timeout is the completion budget for each disk, not a shared budget:
	// disks are snapshotted in parallel, so the aggregate wall-clock bound
	// stays at one timeout regardless of disk count.
	Timeout time.Duration
}

type CreateSnapshotForDiskOptions struct {
	Project string
	Zone    string
	Disk    string
	Timeout time.Duration
}
