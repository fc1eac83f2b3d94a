package gcedomain

import (
	"context"
	"strings"

	compute "google.golang.org/api/compute/v1"
)

type RegionLister interface {
	ListRegions(ctx context.Context, opts *ListRegionsOptions) ([]*compute.Region, error)
}

type ListRegionsOptions struct {
	Project string
}

type ZoneLister interface {
	ListZones(ctx context.Context, opts *ListZonesOptions) ([]*compute.Zone, error)
}

type ListZonesOptions struct {
	Project string
}

type ListZonesInRegionOptions struct {
	Project string
	// Region is a region name or self link. Only zones belonging to it are
	// returned.
	Region string
}

type ZoneGetter interface {
	GetZone(ctx context.Context, opts *GetZoneOptions) (*compute.Zone, error)
}

type GetZoneOptions struct {
	Project string
	Zone    string
}

type MachineTypeLister interface {
	ListMachineTypes(ctx context.Context, opts *ListMachineTypesOptions) ([]*compute.MachineType, error)
}

type ListMachineTypesOptions struct {
	Project string
	Zone    string
}

type DiskTypeLister interface {
	ListDiskTypes(ctx context.Context, opts *ListDiskTypesOptions) ([]*compute.DiskType, error)
}

type ListDiskTypesOptions struct {
	Project string
	Zone    string
}

type ImageLister interface {
	ListImages(ctx context.Context, opts *ListImagesOptions) ([]*compute.Image, error)
}

type ListImagesOptions struct {
	Project string
}

type ImageGetter interface {
	GetImage(ctx context.Context, opts *GetImageOptions) (*compute.Image, error)
}

type GetImageOptions struct {
	Project string
	Image   string
}

type AcceleratorTypeLister interface {
	ListAcceleratorTypes(ctx context.Context, opts *ListAcceleratorTypesOptions) ([]*compute.AcceleratorType, error)
}

type ListAcceleratorTypesOptions struct {
	Project string
	Zone    string
}

type NetworkLister interface {
	ListNetworks(ctx context.Context, opts *ListNetworksOptions) ([]*compute.Network, error)
}

type ListNetworksOptions struct {
	Project string
}

type SubnetworkLister interface {
	ListSubnetworks(ctx context.Context, opts *ListSubnetworksOptions) ([]*compute.Subnetwork, error)
}

type ListSubnetworksOptions struct {
	Project string
	Region  string
}

type ListSubnetworksInNetworkOptions struct {
	Project string
	Region  string
	// Network is a network name or self link. Only subnetworks attached to it
	// are returned.
	Network string
}

// IsDeprecated reports whether a resource carries an active deprecation
// marker. Resources in other deprecation states (OBSOLETE, DELETED) are still
// listed by the remote API but compared here by the DEPRECATED state only,
// matching the remote catalog semantics.
func IsDeprecated(status *compute.DeprecationStatus) bool {
	return status != nil && strings.EqualFold(status.State, "DEPRECATED")
}
