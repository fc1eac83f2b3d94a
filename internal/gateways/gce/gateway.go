package gcegw

import (
	"context"
	"errors"
	"fmt"

	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/google/uuid"
	compute "google.golang.org/api/compute/v1"
)

// Gateway is the single touch point with the Compute Engine API. It issues
// one remote call per method and owns no state beyond the underlying service,
// so it is safe for concurrent use. Argument validation happens in the
// services; mutating calls carry a fresh request ID so the remote side can
// deduplicate retried requests.
type Gateway struct {
	compute *compute.Service
}

func NewGateway(service *compute.Service) (*Gateway, error) {
	if service == nil {
		return nil, errors.New("compute service is required")
	}
	return &Gateway{compute: service}, nil
}

func (g *Gateway) ListRegions(ctx context.Context, opts *gcedomain.ListRegionsOptions) ([]*compute.Region, error) {
	var regions []*compute.Region
	err := g.compute.Regions.List(opts.Project).Pages(ctx, func(page *compute.RegionList) error {
		regions = append(regions, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return regions, nil
}

func (g *Gateway) ListZones(ctx context.Context, opts *gcedomain.ListZonesOptions) ([]*compute.Zone, error) {
	var zones []*compute.Zone
	err := g.compute.Zones.List(opts.Project).Pages(ctx, func(page *compute.ZoneList) error {
		zones = append(zones, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	return zones, nil
}

func (g *Gateway) GetZone(ctx context.Context, opts *gcedomain.GetZoneOptions) (*compute.Zone, error) {
	zone, err := g.compute.Zones.Get(opts.Project, opts.Zone).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get zone %s: %w", opts.Zone, err)
	}
	return zone, nil
}

func (g *Gateway) ListMachineTypes(ctx context.Context, opts *gcedomain.ListMachineTypesOptions) ([]*compute.MachineType, error) {
	var machineTypes []*compute.MachineType
	err := g.compute.MachineTypes.List(opts.Project, opts.Zone).Pages(ctx, func(page *compute.MachineTypeList) error {
		machineTypes = append(machineTypes, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list machine types: %w", err)
	}
	return machineTypes, nil
}

func (g *Gateway) ListDiskTypes(ctx context.Context, opts *gcedomain.ListDiskTypesOptions) ([]*compute.DiskType, error) {
	var diskTypes []*compute.DiskType
	err := g.compute.DiskTypes.List(opts.Project, opts.Zone).Pages(ctx, func(page *compute.DiskTypeList) error {
		diskTypes = append(diskTypes, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list disk types: %w", err)
	}
	return diskTypes, nil
}

func (g *Gateway) ListImages(ctx context.Context, opts *gcedomain.ListImagesOptions) ([]*compute.Image, error) {
	var images []*compute.Image
	err := g.compute.Images.List(opts.Project).Pages(ctx, func(page *compute.ImageList) error {
		images = append(images, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}

func (g *Gateway) GetImage(ctx context.Context, opts *gcedomain.GetImageOptions) (*compute.Image, error) {
	image, err := g.compute.Images.Get(opts.Project, opts.Image).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get image %s: %w", opts.Image, err)
	}
	return image, nil
}

func (g *Gateway) ListAcceleratorTypes(ctx context.Context, opts *gcedomain.ListAcceleratorTypesOptions) ([]*compute.AcceleratorType, error) {
	var acceleratorTypes []*compute.AcceleratorType
	err := g.compute.AcceleratorTypes.List(opts.Project, opts.Zone).Pages(ctx, func(page *compute.AcceleratorTypeList) error {
		acceleratorTypes = append(acceleratorTypes, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list accelerator types: %w", err)
	}
	return acceleratorTypes, nil
}

func (g *Gateway) ListNetworks(ctx context.Context, opts *gcedomain.ListNetworksOptions) ([]*compute.Network, error) {
	var networks []*compute.Network
	err := g.compute.Networks.List(opts.Project).Pages(ctx, func(page *compute.NetworkList) error {
		networks = append(networks, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list networks: %w", err)
	}
	return networks, nil
}

func (g *Gateway) ListSubnetworks(ctx context.Context, opts *gcedomain.ListSubnetworksOptions) ([]*compute.Subnetwork, error) {
	var subnetworks []*compute.Subnetwork
	err := g.compute.Subnetworks.List(opts.Project, opts.Region).Pages(ctx, func(page *compute.SubnetworkList) error {
		subnetworks = append(subnetworks, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list subnetworks: %w", err)
	}
	return subnetworks, nil
}

func (g *Gateway) GetInstance(ctx context.Context, opts *gcedomain.GetInstanceOptions) (*compute.Instance, error) {
	instance, err := g.compute.Instances.Get(opts.Project, opts.Zone, opts.Instance).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get instance %s: %w", opts.Instance, err)
	}
	return instance, nil
}

func (g *Gateway) InsertInstance(ctx context.Context, opts *gcedomain.InsertInstanceOptions) (*compute.Operation, error) {
	call := g.compute.Instances.Insert(opts.Project, opts.Zone, opts.Instance).RequestId(uuid.NewString())
	if opts.SourceTemplate != "" {
		call = call.SourceInstanceTemplate(opts.SourceTemplate)
	}
	op, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("insert instance: %w", err)
	}
	return op, nil
}

func (g *Gateway) DeleteInstance(ctx context.Context, opts *gcedomain.DeleteInstanceOptions) (*compute.Operation, error) {
	op, err := g.compute.Instances.Delete(opts.Project, opts.Zone, opts.Instance).RequestId(uuid.NewString()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("delete instance %s: %w", opts.Instance, err)
	}
	return op, nil
}

func (g *Gateway) AggregatedListInstances(ctx context.Context, opts *gcedomain.AggregatedListInstancesOptions) (map[string]compute.InstancesScopedList, error) {
	scopes := make(map[string]compute.InstancesScopedList)
	call := g.compute.Instances.AggregatedList(opts.Project)
	if opts.Filter != "" {
		call = call.Filter(opts.Filter)
	}
	err := call.Pages(ctx, func(page *compute.InstanceAggregatedList) error {
		for scope, list := range page.Items {
			existing := scopes[scope]
			existing.Instances = append(existing.Instances, list.Instances...)
			scopes[scope] = existing
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("aggregated list instances: %w", err)
	}
	return scopes, nil
}

func (g *Gateway) SetInstanceMetadata(ctx context.Context, opts *gcedomain.SetInstanceMetadataOptions) (*compute.Operation, error) {
	op, err := g.compute.Instances.SetMetadata(opts.Project, opts.Zone, opts.Instance, opts.Metadata).RequestId(uuid.NewString()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("set instance metadata %s: %w", opts.Instance, err)
	}
	return op, nil
}

func (g *Gateway) GetInstanceTemplate(ctx context.Context, opts *gcedomain.GetInstanceTemplateOptions) (*compute.InstanceTemplate, error) {
	template, err := g.compute.InstanceTemplates.Get(opts.Project, opts.Template).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get instance template %s: %w", opts.Template, err)
	}
	return template, nil
}

func (g *Gateway) InsertInstanceTemplate(ctx context.Context, opts *gcedomain.InsertInstanceTemplateOptions) (*compute.Operation, error) {
	op, err := g.compute.InstanceTemplates.Insert(opts.Project, opts.Template).RequestId(uuid.NewString()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("insert instance template: %w", err)
	}
	return op, nil
}

func (g *Gateway) DeleteInstanceTemplate(ctx context.Context, opts *gcedomain.DeleteInstanceTemplateOptions) (*compute.Operation, error) {
	op, err := g.compute.InstanceTemplates.Delete(opts.Project, opts.Template).RequestId(uuid.NewString()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("delete instance template %s: %w", opts.Template, err)
	}
	return op, nil
}

func (g *Gateway) ListInstanceTemplates(ctx context.Context, opts *gcedomain.ListInstanceTemplatesOptions) ([]*compute.InstanceTemplate, error) {
	var templates []*compute.InstanceTemplate
	err := g.compute.InstanceTemplates.List(opts.Project).Pages(ctx, func(page *compute.InstanceTemplateList) error {
		templates = append(templates, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list instance templates: %w", err)
	}
	return templates, nil
}

func (g *Gateway) CreateDiskSnapshot(ctx context.Context, opts *gcedomain.CreateDiskSnapshotOptions) (*compute.Operation, error) {
	op, err := g.compute.Disks.CreateSnapshot(opts.Project, opts.Zone, opts.Disk, opts.Snapshot).RequestId(uuid.NewString()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("create snapshot of disk %s: %w", opts.Disk, err)
	}
	return op, nil
}

func (g *Gateway) DeleteSnapshot(ctx context.Context, opts *gcedomain.DeleteSnapshotOptions) (*compute.Operation, error) {
	op, err := g.compute.Snapshots.Delete(opts.Project, opts.Snapshot).RequestId(uuid.NewString()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("delete snapshot %s: %w", opts.Snapshot, err)
	}
	return op, nil
}

func (g *Gateway) GetSnapshot(ctx context.Context, opts *gcedomain.GetSnapshotOptions) (*compute.Snapshot, error) {
	snapshot, err := g.compute.Snapshots.Get(opts.Project, opts.Snapshot).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get snapshot %s: %w", opts.Snapshot, err)
	}
	return snapshot, nil
}

func (g *Gateway) GetZoneOperation(ctx context.Context, opts *gcedomain.GetZoneOperationOptions) (*compute.Operation, error) {
	op, err := g.compute.ZoneOperations.Get(opts.Project, opts.Zone, opts.Operation).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get zone operation %s: %w", opts.Operation, err)
	}
	return op, nil
}
