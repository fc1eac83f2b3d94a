package snapsrv

import (
	"context"
	"errors"
	"fmt"

	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/graphite-platforms/gcp-client/pkg/gcputils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	compute "google.golang.org/api/compute/v1"
)

//go:generate mockery --name SnapshotGateway --output ./mocks --outpkg mocks --with-expecter --filename snapshot_gateway.go
type SnapshotGateway interface {
	gcedomain.InstanceGetter
	gcedomain.DiskSnapshotCreator
	gcedomain.SnapshotDeleter
	gcedomain.SnapshotGetter
}

//go:generate mockery --name OperationWaiter --output ./mocks --outpkg mocks --with-expecter --filename operation_waiter.go
type OperationWaiter interface {
	gcedomain.OperationWaiter
}

type Service struct {
	snapshotGateway SnapshotGateway
	operationWaiter OperationWaiter
	log             *zap.Logger
}

func NewService(snapshotGateway SnapshotGateway, operationWaiter OperationWaiter, log *zap.Logger) (*Service, error) {
	if snapshotGateway == nil {
		return nil, errors.New("snapshot gateway is required")
	}
	if operationWaiter == nil {
		return nil, errors.New("operation waiter is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		snapshotGateway: snapshotGateway,
		operationWaiter: operationWaiter,
		log:             log,
	}, nil
}

// CreateSnapshot snapshots every disk attached to the instance, one
// concurrent task per disk, and blocks until all complete. The first failing
// disk aborts the call and cancels the group context, which stops sibling
// waits early; snapshot operations already issued to the remote side keep
// running there.
func (s *Service) CreateSnapshot(ctx context.Context, opts *gcedomain.CreateSnapshotOptions) error {
	if opts == nil {
		return fmt.Errorf("%w: options are required", gcedomain.ErrInvalidArgument)
	}
	if opts.Project == "" || opts.Zone == "" || opts.Instance == "" {
		return fmt.Errorf("%w: project, zone and instance are required", gcedomain.ErrInvalidArgument)
	}
	if opts.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", gcedomain.ErrInvalidArgument)
	}

	zone := gcputils.NameFromSelfLink(opts.Zone)
	instance, err := s.snapshotGateway.GetInstance(ctx, &gcedomain.GetInstanceOptions{
		Project:  opts.Project,
		Zone:     zone,
		Instance: opts.Instance,
	})
	if err != nil {
		s.log.Warn("retrieving instance failed",
			zap.String("instance", opts.Instance),
			zap.Error(err),
		)
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, disk := range instance.Disks {
		diskName := gcputils.NameFromSelfLink(disk.Source)
		group.Go(func() error {
			opErr, err := s.CreateSnapshotForDisk(groupCtx, &gcedomain.CreateSnapshotForDiskOptions{
				Project: opts.Project,
				Zone:    zone,
				Disk:    diskName,
				Timeout: opts.Timeout,
			})
			if err != nil {
				s.log.Warn("creating snapshot failed",
					zap.String("disk", diskName),
					zap.Error(err),
				)
				return err
			}
			if opErr != nil && len(opErr.Errors) > 0 {
				return fmt.Errorf("%w: disk %s: %s",
					gcedomain.ErrOperationFailed, diskName, gcedomain.FormatOperationError(opErr))
			}
			return nil
		})
	}
	return group.Wait()
}

// CreateSnapshotForDisk issues one create-snapshot call, naming the snapshot
// after the disk, and waits for the resulting operation with the caller's
// budget. The returned payload is the operation's terminal error, nil on
// success.
func (s *Service) CreateSnapshotForDisk(ctx context.Context, opts *gcedomain.CreateSnapshotForDiskOptions) (*compute.OperationError, error) {
	if opts == nil {
		return nil, fmt.Errorf("%w: options are required", gcedomain.ErrInvalidArgument)
	}
	if opts.Project == "" || opts.Zone == "" || opts.Disk == "" {
		return nil, fmt.Errorf("%w: project, zone and disk are required", gcedomain.ErrInvalidArgument)
	}
	if opts.Timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", gcedomain.ErrInvalidArgument)
	}

	op, err := s.snapshotGateway.CreateDiskSnapshot(ctx, &gcedomain.CreateDiskSnapshotOptions{
		Project:  opts.Project,
		Zone:     opts.Zone,
		Disk:     opts.Disk,
		Snapshot: &compute.Snapshot{Name: opts.Disk},
	})
	if err != nil {
		return nil, err
	}

	return s.operationWaiter.WaitForCompletion(ctx, &gcedomain.WaitForCompletionOptions{
		Project:   opts.Project,
		Zone:      opts.Zone,
		Operation: op.Name,
		Timeout:   opts.Timeout,
	})
}

// DeleteSnapshot deletes a snapshot by name. It does not block on the
// returned operation.
func (s *Service) DeleteSnapshot(ctx context.Context, opts *gcedomain.DeleteSnapshotOptions) (*compute.Operation, error) {
	if opts == nil || opts.Project == "" || opts.Snapshot == "" {
		return nil, fmt.Errorf("%w: project and snapshot are required", gcedomain.ErrInvalidArgument)
	}
	return s.snapshotGateway.DeleteSnapshot(ctx, opts)
}

func (s *Service) GetSnapshot(ctx context.Context, opts *gcedomain.GetSnapshotOptions) (*compute.Snapshot, error) {
	if opts == nil || opts.Project == "" || opts.Snapshot == "" {
		return nil, fmt.Errorf("%w: project and snapshot are required", gcedomain.ErrInvalidArgument)
	}
	return s.snapshotGateway.GetSnapshot(ctx, opts)
}
