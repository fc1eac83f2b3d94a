package instancesrv

import (
	"context"
	"errors"
	"fmt"

	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/graphite-platforms/gcp-client/pkg/gcputils"
	"go.uber.org/zap"
	compute "google.golang.org/api/compute/v1"
)

//go:generate mockery --name InstanceGateway --output ./mocks --outpkg mocks --with-expecter --filename instance_gateway.go
type InstanceGateway interface {
	gcedomain.InstanceGetter
	gcedomain.InstanceInserter
	gcedomain.InstanceDeleter
	gcedomain.InstanceAggregatedLister
	gcedomain.InstanceMetadataSetter
}

//go:generate mockery --name OperationWaiter --output ./mocks --outpkg mocks --with-expecter --filename operation_waiter.go
type OperationWaiter interface {
	gcedomain.OperationWaiter
}

type Service struct {
	instanceGateway InstanceGateway
	operationWaiter OperationWaiter
	log             *zap.Logger
}

func NewService(instanceGateway InstanceGateway, operationWaiter OperationWaiter, log *zap.Logger) (*Service, error) {
	if instanceGateway == nil {
		return nil, errors.New("instance gateway is required")
	}
	if operationWaiter == nil {
		return nil, errors.New("operation waiter is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		instanceGateway: instanceGateway,
		operationWaiter: operationWaiter,
		log:             log,
	}, nil
}

func (s *Service) GetInstance(ctx context.Context, opts *gcedomain.GetInstanceOptions) (*compute.Instance, error) {
	if opts == nil || opts.Project == "" || opts.Zone == "" || opts.Instance == "" {
		return nil, fmt.Errorf("%w: project, zone and instance are required", gcedomain.ErrInvalidArgument)
	}
	return s.instanceGateway.GetInstance(ctx, &gcedomain.GetInstanceOptions{
		Project:  opts.Project,
		Zone:     gcputils.NameFromSelfLink(opts.Zone),
		Instance: opts.Instance,
	})
}

// InsertInstance creates an instance, optionally seeded from a template self
// link. The zone is taken from the instance definition itself. It does not
// block on the returned operation.
func (s *Service) InsertInstance(ctx context.Context, opts *gcedomain.InsertInstanceOptions) (*compute.Operation, error) {
	if opts == nil || opts.Project == "" {
		return nil, fmt.Errorf("%w: project is required", gcedomain.ErrInvalidArgument)
	}
	if opts.Instance == nil || opts.Instance.Zone == "" {
		return nil, fmt.Errorf("%w: instance with a zone is required", gcedomain.ErrInvalidArgument)
	}

	return s.instanceGateway.InsertInstance(ctx, &gcedomain.InsertInstanceOptions{
		Project:        opts.Project,
		Zone:           gcputils.NameFromSelfLink(opts.Instance.Zone),
		Instance:       opts.Instance,
		SourceTemplate: opts.SourceTemplate,
	})
}

// TerminateInstance deletes the instance and returns the deletion operation
// without waiting on it.
func (s *Service) TerminateInstance(ctx context.Context, opts *gcedomain.DeleteInstanceOptions) (*compute.Operation, error) {
	if opts == nil || opts.Project == "" || opts.Zone == "" || opts.Instance == "" {
		return nil, fmt.Errorf("%w: project, zone and instance are required", gcedomain.ErrInvalidArgument)
	}
	return s.instanceGateway.DeleteInstance(ctx, &gcedomain.DeleteInstanceOptions{
		Project:  opts.Project,
		Zone:     gcputils.NameFromSelfLink(opts.Zone),
		Instance: opts.Instance,
	})
}

// TerminateInstanceWithStatus deletes the instance only when it currently has
// the desired status. A mismatch fails with ErrStatusMismatch and issues no
// delete call.
func (s *Service) TerminateInstanceWithStatus(ctx context.Context, opts *gcedomain.DeleteInstanceWithStatusOptions) (*compute.Operation, error) {
	if opts == nil || opts.Project == "" || opts.Zone == "" || opts.Instance == "" || opts.DesiredStatus == "" {
		return nil, fmt.Errorf("%w: project, zone, instance and desired status are required", gcedomain.ErrInvalidArgument)
	}

	zone := gcputils.NameFromSelfLink(opts.Zone)
	instance, err := s.instanceGateway.GetInstance(ctx, &gcedomain.GetInstanceOptions{
		Project:  opts.Project,
		Zone:     zone,
		Instance: opts.Instance,
	})
	if err != nil {
		return nil, err
	}
	if instance.Status != opts.DesiredStatus {
		return nil, fmt.Errorf("%w: instance %s has status %s, want %s",
			gcedomain.ErrStatusMismatch, opts.Instance, instance.Status, opts.DesiredStatus)
	}

	return s.instanceGateway.DeleteInstance(ctx, &gcedomain.DeleteInstanceOptions{
		Project:  opts.Project,
		Zone:     zone,
		Instance: opts.Instance,
	})
}

// ListInstancesWithLabels returns every instance in the project carrying all
// of the provided labels, across all zones.
func (s *Service) ListInstancesWithLabels(ctx context.Context, opts *gcedomain.ListInstancesWithLabelsOptions) ([]*compute.Instance, error) {
	if opts == nil || opts.Project == "" {
		return nil, fmt.Errorf("%w: project is required", gcedomain.ErrInvalidArgument)
	}
	if opts.Labels == nil {
		return nil, fmt.Errorf("%w: labels are required", gcedomain.ErrInvalidArgument)
	}

	scopes, err := s.instanceGateway.AggregatedListInstances(ctx, &gcedomain.AggregatedListInstancesOptions{
		Project: opts.Project,
		Filter:  gcputils.BuildLabelsFilter(opts.Labels),
	})
	if err != nil {
		return nil, err
	}

	var instances []*compute.Instance
	for _, scope := range scopes {
		instances = append(instances, scope.Instances...)
	}
	return instances, nil
}

// AppendMetadata merges the given items into the instance's metadata, with
// the new items winning on key conflicts, then blocks until the set-metadata
// operation completes. The returned payload is the operation's terminal
// error, nil on success.
func (s *Service) AppendMetadata(ctx context.Context, opts *gcedomain.AppendMetadataOptions) (*compute.OperationError, error) {
	if opts == nil || opts.Project == "" || opts.Zone == "" || opts.Instance == "" {
		return nil, fmt.Errorf("%w: project, zone and instance are required", gcedomain.ErrInvalidArgument)
	}
	if opts.Items == nil {
		return nil, fmt.Errorf("%w: metadata items are required", gcedomain.ErrInvalidArgument)
	}
	if opts.Timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", gcedomain.ErrInvalidArgument)
	}

	zone := gcputils.NameFromSelfLink(opts.Zone)
	instance, err := s.instanceGateway.GetInstance(ctx, &gcedomain.GetInstanceOptions{
		Project:  opts.Project,
		Zone:     zone,
		Instance: opts.Instance,
	})
	if err != nil {
		return nil, err
	}

	metadata := instance.Metadata
	if metadata == nil {
		metadata = &compute.Metadata{}
	}
	metadata.Items = gcedomain.MergeMetadataItems(opts.Items, metadata.Items)

	op, err := s.instanceGateway.SetInstanceMetadata(ctx, &gcedomain.SetInstanceMetadataOptions{
		Project:  opts.Project,
		Zone:     zone,
		Instance: opts.Instance,
		Metadata: metadata,
	})
	if err != nil {
		return nil, err
	}

	return s.operationWaiter.WaitForCompletion(ctx, &gcedomain.WaitForCompletionOptions{
		Project:   opts.Project,
		Zone:      zone,
		Operation: op.Name,
		Timeout:   opts.Timeout,
	})
}
