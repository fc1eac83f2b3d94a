package gcedomain

import (
	"context"
	"time"

	compute "google.golang.org/api/compute/v1"
)

type InstanceGetter interface {
	GetInstance(ctx context.Context, opts *GetInstanceOptions) (*compute.Instance, error)
}

type GetInstanceOptions struct {
	Project  string
	Zone     string
	Instance string
}

type InstanceInserter interface {
	InsertInstance(ctx context.Context, opts *InsertInstanceOptions) (*compute.Operation, error)
}

type InsertInstanceOptions struct {
	Project string
	// Zone is derived from the instance definition when empty.
	Zone     string
	Instance *compute.Instance
	// SourceTemplate optionally names an instance template self link whose
	// configuration seeds the new instance.
	SourceTemplate string
}

type InstanceDeleter interface {
	DeleteInstance(ctx context.Context, opts *DeleteInstanceOptions) (*compute.Operation, error)
}

type DeleteInstanceOptions struct {
	Project  string
	Zone     string
	Instance string
}

type DeleteInstanceWithStatusOptions struct {
	Project  string
	Zone     string
	Instance string
	// DesiredStatus guards the deletion: the instance is deleted only while
	// it reports this status.
	DesiredStatus string
}

type InstanceAggregatedLister interface {
	AggregatedListInstances(ctx context.Context, opts *AggregatedListInstancesOptions) (map[string]compute.InstancesScopedList, error)
}

type AggregatedListInstancesOptions struct {
	Project string
	Filter  string
}

type ListInstancesWithLabelsOptions struct {
	Project string
	Labels  map[string]string
}

type InstanceMetadataSetter interface {
	SetInstanceMetadata(ctx context.Context, opts *SetInstanceMetadataOptions) (*compute.Operation, error)
}

type SetInstanceMetadataOptions struct {
	Project  string
	Zone     string
	Instance string
	Metadata *compute.Metadata
}

type AppendMetadataOptions struct {
	Project  string
	Zone     string
	Instance string
	Items    []*compute.MetadataItems
	Timeout  time.Duration
}
