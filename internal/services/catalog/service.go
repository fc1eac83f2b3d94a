package catalogsrv

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/graphite-platforms/gcp-client/pkg/gcputils"
	sliceutils "github.com/graphite-platforms/gcp-client/pkg/slices"
	"go.uber.org/zap"
	compute "google.golang.org/api/compute/v1"
)

//go:generate mockery --name CatalogGateway --output ./mocks --outpkg mocks --with-expecter --filename catalog_gateway.go
type CatalogGateway interface {
	gcedomain.RegionLister
	gcedomain.ZoneLister
	gcedomain.ZoneGetter
	gcedomain.MachineTypeLister
	gcedomain.DiskTypeLister
	gcedomain.ImageLister
	gcedomain.ImageGetter
	gcedomain.AcceleratorTypeLister
	gcedomain.NetworkLister
	gcedomain.SubnetworkLister
}

// Service answers read-only catalog queries about a project: which regions,
// zones, machine shapes, images and networks are available. Listings come
// back sorted by name with actively deprecated entries removed.
type Service struct {
	catalogGateway CatalogGateway
	log            *zap.Logger
}

func NewService(catalogGateway CatalogGateway, log *zap.Logger) (*Service, error) {
	if catalogGateway == nil {
		return nil, errors.New("catalog gateway is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		catalogGateway: catalogGateway,
		log:            log,
	}, nil
}

func (s *Service) Regions(ctx context.Context, opts *gcedomain.ListRegionsOptions) ([]*compute.Region, error) {
	if opts == nil || opts.Project == "" {
		return nil, fmt.Errorf("%w: project is required", gcedomain.ErrInvalidArgument)
	}

	regions, err := s.catalogGateway.ListRegions(ctx, opts)
	if err != nil {
		return nil, err
	}

	regions = sliceutils.Filter(regions, func(r *compute.Region) bool {
		return !gcedomain.IsDeprecated(r.Deprecated)
	})
	return sliceutils.SortedBy(regions, func(r *compute.Region) string { return r.Name }), nil
}

func (s *Service) Zones(ctx context.Context, opts *gcedomain.ListZonesInRegionOptions) ([]*compute.Zone, error) {
	if opts == nil || opts.Project == "" || opts.Region == "" {
		return nil, fmt.Errorf("%w: project and region are required", gcedomain.ErrInvalidArgument)
	}

	zones, err := s.catalogGateway.ListZones(ctx, &gcedomain.ListZonesOptions{Project: opts.Project})
	if err != nil {
		return nil, err
	}

	region := gcputils.NameFromSelfLink(opts.Region)
	zones = sliceutils.Filter(zones, func(z *compute.Zone) bool {
		return strings.EqualFold(gcputils.NameFromSelfLink(z.Region), region)
	})
	return sliceutils.SortedBy(zones, func(z *compute.Zone) string { return z.Name }), nil
}

func (s *Service) MachineTypes(ctx context.Context, opts *gcedomain.ListMachineTypesOptions) ([]*compute.MachineType, error) {
	if opts == nil || opts.Project == "" || opts.Zone == "" {
		return nil, fmt.Errorf("%w: project and zone are required", gcedomain.ErrInvalidArgument)
	}

	machineTypes, err := s.catalogGateway.ListMachineTypes(ctx, &gcedomain.ListMachineTypesOptions{
		Project: opts.Project,
		Zone:    gcputils.NameFromSelfLink(opts.Zone),
	})
	if err != nil {
		return nil, err
	}

	machineTypes = sliceutils.Filter(machineTypes, func(mt *compute.MachineType) bool {
		return !gcedomain.IsDeprecated(mt.Deprecated)
	})
	return sliceutils.SortedBy(machineTypes, func(mt *compute.MachineType) string { return mt.Name }), nil
}

// CpuPlatforms returns the CPU platforms available in a zone, sorted.
func (s *Service) CpuPlatforms(ctx context.Context, opts *gcedomain.GetZoneOptions) ([]string, error) {
	if opts == nil || opts.Project == "" || opts.Zone == "" {
		return nil, fmt.Errorf("%w: project and zone are required", gcedomain.ErrInvalidArgument)
	}

	zone, err := s.catalogGateway.GetZone(ctx, &gcedomain.GetZoneOptions{
		Project: opts.Project,
		Zone:    gcputils.NameFromSelfLink(opts.Zone),
	})
	if err != nil {
		return nil, err
	}

	platforms := slices.Clone(zone.AvailableCpuPlatforms)
	slices.Sort(platforms)
	return platforms, nil
}

func (s *Service) DiskTypes(ctx context.Context, opts *gcedomain.ListDiskTypesOptions) ([]*compute.DiskType, error) {
	if opts == nil || opts.Project == "" || opts.Zone == "" {
		return nil, fmt.Errorf("%w: project and zone are required", gcedomain.ErrInvalidArgument)
	}

	diskTypes, err := s.catalogGateway.ListDiskTypes(ctx, &gcedomain.ListDiskTypesOptions{
		Project: opts.Project,
		Zone:    gcputils.NameFromSelfLink(opts.Zone),
	})
	if err != nil {
		return nil, err
	}

	diskTypes = sliceutils.Filter(diskTypes, func(dt *compute.DiskType) bool {
		return !gcedomain.IsDeprecated(dt.Deprecated)
	})
	return sliceutils.SortedBy(diskTypes, func(dt *compute.DiskType) string { return dt.Name }), nil
}

// BootDiskTypes lists the disk types an instance can boot from. Local SSD
// types cannot back a boot disk and are excluded.
func (s *Service) BootDiskTypes(ctx context.Context, opts *gcedomain.ListDiskTypesOptions) ([]*compute.DiskType, error) {
	diskTypes, err := s.DiskTypes(ctx, opts)
	if err != nil {
		return nil, err
	}

	return sliceutils.Filter(diskTypes, func(dt *compute.DiskType) bool {
		return !strings.HasPrefix(dt.Name, "local-")
	}), nil
}

func (s *Service) Images(ctx context.Context, opts *gcedomain.ListImagesOptions) ([]*compute.Image, error) {
	if opts == nil || opts.Project == "" {
		return nil, fmt.Errorf("%w: project is required", gcedomain.ErrInvalidArgument)
	}

	images, err := s.catalogGateway.ListImages(ctx, opts)
	if err != nil {
		return nil, err
	}

	images = sliceutils.Filter(images, func(i *compute.Image) bool {
		return !gcedomain.IsDeprecated(i.Deprecated)
	})
	return sliceutils.SortedBy(images, func(i *compute.Image) string { return i.Name }), nil
}

func (s *Service) Image(ctx context.Context, opts *gcedomain.GetImageOptions) (*compute.Image, error) {
	if opts == nil || opts.Project == "" || opts.Image == "" {
		return nil, fmt.Errorf("%w: project and image are required", gcedomain.ErrInvalidArgument)
	}
	return s.catalogGateway.GetImage(ctx, opts)
}

func (s *Service) AcceleratorTypes(ctx context.Context, opts *gcedomain.ListAcceleratorTypesOptions) ([]*compute.AcceleratorType, error) {
	if opts == nil || opts.Project == "" || opts.Zone == "" {
		return nil, fmt.Errorf("%w: project and zone are required", gcedomain.ErrInvalidArgument)
	}

	acceleratorTypes, err := s.catalogGateway.ListAcceleratorTypes(ctx, &gcedomain.ListAcceleratorTypesOptions{
		Project: opts.Project,
		Zone:    gcputils.NameFromSelfLink(opts.Zone),
	})
	if err != nil {
		return nil, err
	}

	acceleratorTypes = sliceutils.Filter(acceleratorTypes, func(at *compute.AcceleratorType) bool {
		return !gcedomain.IsDeprecated(at.Deprecated)
	})
	return sliceutils.SortedBy(acceleratorTypes, func(at *compute.AcceleratorType) string { return at.Name }), nil
}

func (s *Service) Networks(ctx context.Context, opts *gcedomain.ListNetworksOptions) ([]*compute.Network, error) {
	if opts == nil || opts.Project == "" {
		return nil, fmt.Errorf("%w: project is required", gcedomain.ErrInvalidArgument)
	}

	networks, err := s.catalogGateway.ListNetworks(ctx, opts)
	if err != nil {
		return nil, err
	}
	return sliceutils.SortedBy(networks, func(n *compute.Network) string { return n.Name }), nil
}

// Subnetworks lists the subnetworks of a region attached to the given
// network. The network may be referenced by name or self link.
func (s *Service) Subnetworks(ctx context.Context, opts *gcedomain.ListSubnetworksInNetworkOptions) ([]*compute.Subnetwork, error) {
	if opts == nil || opts.Project == "" || opts.Region == "" || opts.Network == "" {
		return nil, fmt.Errorf("%w: project, region and network are required", gcedomain.ErrInvalidArgument)
	}

	subnetworks, err := s.catalogGateway.ListSubnetworks(ctx, &gcedomain.ListSubnetworksOptions{
		Project: opts.Project,
		Region:  gcputils.NameFromSelfLink(opts.Region),
	})
	if err != nil {
		return nil, err
	}

	network := gcputils.NameFromSelfLink(opts.Network)
	subnetworks = sliceutils.Filter(subnetworks, func(sn *compute.Subnetwork) bool {
		return strings.EqualFold(gcputils.NameFromSelfLink(sn.Network), network)
	})
	return sliceutils.SortedBy(subnetworks, func(sn *compute.Subnetwork) string { return sn.Name }), nil
}
