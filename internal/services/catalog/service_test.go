package catalogsrv_test

import (
	"context"
	"errors"
	"testing"

	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	catalogsrv "github.com/graphite-platforms/gcp-client/internal/services/catalog"
	"github.com/graphite-platforms/gcp-client/internal/services/catalog/mocks"
	sliceutils "github.com/graphite-platforms/gcp-client/pkg/slices"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	compute "google.golang.org/api/compute/v1"
)

func newService(t *testing.T) (*catalogsrv.Service, *mocks.CatalogGateway) {
	t.Helper()
	gateway := mocks.NewCatalogGateway(t)
	svc, err := catalogsrv.NewService(gateway, nil)
	require.NoError(t, err)
	return svc, gateway
}

func deprecated() *compute.DeprecationStatus {
	return &compute.DeprecationStatus{State: "DEPRECATED"}
}

func TestNewService(t *testing.T) {
	t.Run("error: nil gateway", func(t *testing.T) {
		svc, err := catalogsrv.NewService(nil, nil)
		require.Error(t, err)
		require.Nil(t, svc)
	})
}

func TestService_Regions(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty project", func(t *testing.T) {
		svc, _ := newService(t)
		regions, err := svc.Regions(ctx, &gcedomain.ListRegionsOptions{})
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
		require.Nil(t, regions)
	})

	t.Run("ok: deprecated regions dropped, rest sorted by name", func(t *testing.T) {
		svc, gateway := newService(t)

		gateway.EXPECT().
			ListRegions(ctx, mock.MatchedBy(func(opts *gcedomain.ListRegionsOptions) bool {
				return opts != nil && opts.Project == "p"
			})).
			Return([]*compute.Region{
				{Name: "b"},
				{Name: "a", Deprecated: deprecated()},
				{Name: "c"},
			}, nil).
			Once()

		regions, err := svc.Regions(ctx, &gcedomain.ListRegionsOptions{Project: "p"})
		require.NoError(t, err)
		require.Equal(t, []string{"b", "c"},
			sliceutils.Map(regions, func(r *compute.Region) string { return r.Name }))
	})

	t.Run("ok: deprecation state compared case-insensitively", func(t *testing.T) {
		svc, gateway := newService(t)

		gateway.EXPECT().
			ListRegions(ctx, mock.Anything).
			Return([]*compute.Region{
				{Name: "a", Deprecated: &compute.DeprecationStatus{State: "deprecated"}},
				{Name: "b", Deprecated: &compute.DeprecationStatus{State: "OBSOLETE"}},
			}, nil).
			Once()

		regions, err := svc.Regions(ctx, &gcedomain.ListRegionsOptions{Project: "p"})
		require.NoError(t, err)
		require.Equal(t, []string{"b"},
			sliceutils.Map(regions, func(r *compute.Region) string { return r.Name }))
	})

	t.Run("error: gateway failure passed through", func(t *testing.T) {
		svc, gateway := newService(t)

		wantErr := errors.New("permission denied")
		gateway.EXPECT().ListRegions(ctx, mock.Anything).Return(nil, wantErr).Once()

		regions, err := svc.Regions(ctx, &gcedomain.ListRegionsOptions{Project: "p"})
		require.ErrorIs(t, err, wantErr)
		require.Nil(t, regions)
	})
}

func TestService_Zones(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty region", func(t *testing.T) {
		svc, _ := newService(t)
		zones, err := svc.Zones(ctx, &gcedomain.ListZonesInRegionOptions{Project: "p"})
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
		require.Nil(t, zones)
	})

	t.Run("ok: zones of other regions excluded, result sorted", func(t *testing.T) {
		svc, gateway := newService(t)

		gateway.EXPECT().
			ListZones(ctx, mock.MatchedBy(func(opts *gcedomain.ListZonesOptions) bool {
				return opts != nil && opts.Project == "p"
			})).
			Return([]*compute.Zone{
				{Name: "us-central1-b", Region: "https://www.googleapis.com/compute/v1/projects/p/regions/us-central1"},
				{Name: "europe-west1-a", Region: "projects/p/regions/europe-west1"},
				{Name: "us-central1-a", Region: "projects/p/regions/US-CENTRAL1"},
			}, nil).
			Once()

		zones, err := svc.Zones(ctx, &gcedomain.ListZonesInRegionOptions{
			Project: "p",
			Region:  "projects/p/regions/us-central1",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"us-central1-a", "us-central1-b"},
			sliceutils.Map(zones, func(z *compute.Zone) string { return z.Name }))
	})
}

func TestService_MachineTypes(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: deprecated shapes dropped, zone self link normalized", func(t *testing.T) {
		svc, gateway := newService(t)

		gateway.EXPECT().
			ListMachineTypes(ctx, mock.MatchedBy(func(opts *gcedomain.ListMachineTypesOptions) bool {
				return opts != nil && opts.Zone == "us-central1-a"
			})).
			Return([]*compute.MachineType{
				{Name: "n1-standard-2"},
				{Name: "n1-standard-1", Deprecated: deprecated()},
				{Name: "e2-medium"},
			}, nil).
			Once()

		machineTypes, err := svc.MachineTypes(ctx, &gcedomain.ListMachineTypesOptions{
			Project: "p",
			Zone:    "projects/p/zones/us-central1-a",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"e2-medium", "n1-standard-2"},
			sliceutils.Map(machineTypes, func(mt *compute.MachineType) string { return mt.Name }))
	})
}

func TestService_CpuPlatforms(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: platforms sorted", func(t *testing.T) {
		svc, gateway := newService(t)

		gateway.EXPECT().
			GetZone(ctx, mock.MatchedBy(func(opts *gcedomain.GetZoneOptions) bool {
				return opts != nil && opts.Zone == "us-central1-a"
			})).
			Return(&compute.Zone{
				Name:                  "us-central1-a",
				AvailableCpuPlatforms: []string{"Intel Skylake", "AMD Rome", "Intel Haswell"},
			}, nil).
			Once()

		platforms, err := svc.CpuPlatforms(ctx, &gcedomain.GetZoneOptions{
			Project: "p", Zone: "us-central1-a",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"AMD Rome", "Intel Haswell", "Intel Skylake"}, platforms)
	})
}

func TestService_BootDiskTypes(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: local SSD types excluded", func(t *testing.T) {
		svc, gateway := newService(t)

		gateway.EXPECT().
			ListDiskTypes(ctx, mock.Anything).
			Return([]*compute.DiskType{
				{Name: "pd-standard"},
				{Name: "local-ssd"},
				{Name: "pd-ssd"},
			}, nil).
			Once()

		diskTypes, err := svc.BootDiskTypes(ctx, &gcedomain.ListDiskTypesOptions{
			Project: "p", Zone: "z",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"pd-ssd", "pd-standard"},
			sliceutils.Map(diskTypes, func(dt *compute.DiskType) string { return dt.Name }))
	})
}

func TestService_Images(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: deprecated images dropped, rest sorted", func(t *testing.T) {
		svc, gateway := newService(t)

		gateway.EXPECT().
			ListImages(ctx, mock.Anything).
			Return([]*compute.Image{
				{Name: "debian-12"},
				{Name: "debian-10", Deprecated: deprecated()},
				{Name: "debian-11"},
			}, nil).
			Once()

		images, err := svc.Images(ctx, &gcedomain.ListImagesOptions{Project: "p"})
		require.NoError(t, err)
		require.Equal(t, []string{"debian-11", "debian-12"},
			sliceutils.Map(images, func(i *compute.Image) string { return i.Name }))
	})
}

func TestService_Image(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty image", func(t *testing.T) {
		svc, _ := newService(t)
		image, err := svc.Image(ctx, &gcedomain.GetImageOptions{Project: "p"})
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
		require.Nil(t, image)
	})

	t.Run("ok: delegates", func(t *testing.T) {
		svc, gateway := newService(t)

		opts := &gcedomain.GetImageOptions{Project: "p", Image: "debian-12"}
		want := &compute.Image{Name: "debian-12"}
		gateway.EXPECT().GetImage(ctx, opts).Return(want, nil).Once()

		image, err := svc.Image(ctx, opts)
		require.NoError(t, err)
		require.Equal(t, want, image)
	})
}

func TestService_AcceleratorTypes(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: sorted with deprecated excluded", func(t *testing.T) {
		svc, gateway := newService(t)

		gateway.EXPECT().
			ListAcceleratorTypes(ctx, mock.Anything).
			Return([]*compute.AcceleratorType{
				{Name: "nvidia-tesla-t4"},
				{Name: "nvidia-tesla-k80", Deprecated: deprecated()},
				{Name: "nvidia-l4"},
			}, nil).
			Once()

		acceleratorTypes, err := svc.AcceleratorTypes(ctx, &gcedomain.ListAcceleratorTypesOptions{
			Project: "p", Zone: "z",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"nvidia-l4", "nvidia-tesla-t4"},
			sliceutils.Map(acceleratorTypes, func(at *compute.AcceleratorType) string { return at.Name }))
	})
}

func TestService_Networks(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: sorted by name", func(t *testing.T) {
		svc, gateway := newService(t)

		gateway.EXPECT().
			ListNetworks(ctx, mock.Anything).
			Return([]*compute.Network{{Name: "default"}, {Name: "backbone"}}, nil).
			Once()

		networks, err := svc.Networks(ctx, &gcedomain.ListNetworksOptions{Project: "p"})
		require.NoError(t, err)
		require.Equal(t, []string{"backbone", "default"},
			sliceutils.Map(networks, func(n *compute.Network) string { return n.Name }))
	})
}

func TestService_Subnetworks(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty network", func(t *testing.T) {
		svc, _ := newService(t)
		subnetworks, err := svc.Subnetworks(ctx, &gcedomain.ListSubnetworksInNetworkOptions{
			Project: "p", Region: "us-central1",
		})
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
		require.Nil(t, subnetworks)
	})

	t.Run("ok: filtered to the requested network", func(t *testing.T) {
		svc, gateway := newService(t)

		gateway.EXPECT().
			ListSubnetworks(ctx, mock.MatchedBy(func(opts *gcedomain.ListSubnetworksOptions) bool {
				return opts != nil && opts.Region == "us-central1"
			})).
			Return([]*compute.Subnetwork{
				{Name: "subnet-b", Network: "projects/p/global/networks/default"},
				{Name: "subnet-a", Network: "projects/p/global/networks/DEFAULT"},
				{Name: "other", Network: "projects/p/global/networks/backbone"},
			}, nil).
			Once()

		subnetworks, err := svc.Subnetworks(ctx, &gcedomain.ListSubnetworksInNetworkOptions{
			Project: "p",
			Region:  "projects/p/regions/us-central1",
			Network: "default",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"subnet-a", "subnet-b"},
			sliceutils.Map(subnetworks, func(sn *compute.Subnetwork) string { return sn.Name }))
	})
}
