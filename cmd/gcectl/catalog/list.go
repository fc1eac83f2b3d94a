package catalogcmd

import (
	"fmt"

	"github.com/graphite-platforms/gcp-client/cmd/gcectl/cliutil"
	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/spf13/cobra"
)

func NewRegionsCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List available regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliutil.LoadConfig()
			if err != nil {
				return err
			}
			project, err := cliutil.ResolveProject(cfg, project)
			if err != nil {
				return err
			}

			client, err := cliutil.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			regions, err := client.Catalog.Regions(cmd.Context(), &gcedomain.ListRegionsOptions{Project: project})
			if err != nil {
				return err
			}

			for _, region := range regions {
				fmt.Fprintf(cmd.OutOrStdout(), "region: name=%s, status=%s\n", region.Name, region.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")

	return cmd
}

func NewZonesCmd() *cobra.Command {
	var (
		project string
		region  string
	)

	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List the zones of a region",
		RunE: func(cmd *cobra.Command, args []string) error {
			if region == "" {
				return fmt.Errorf("--region is required")
			}

			cfg, err := cliutil.LoadConfig()
			if err != nil {
				return err
			}
			project, err := cliutil.ResolveProject(cfg, project)
			if err != nil {
				return err
			}

			client, err := cliutil.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			zones, err := client.Catalog.Zones(cmd.Context(), &gcedomain.ListZonesInRegionOptions{
				Project: project,
				Region:  region,
			})
			if err != nil {
				return err
			}

			for _, zone := range zones {
				fmt.Fprintf(cmd.OutOrStdout(), "zone: name=%s, status=%s\n", zone.Name, zone.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&region, "region", "", "Region name or self link")

	return cmd
}

func NewMachineTypesCmd() *cobra.Command {
	var (
		project string
		zone    string
	)

	cmd := &cobra.Command{
		Use:   "machine-types",
		Short: "List the machine types of a zone",
		RunE: func(cmd *cobra.Command, args []string) error {
			if zone == "" {
				return fmt.Errorf("--zone is required")
			}

			cfg, err := cliutil.LoadConfig()
			if err != nil {
				return err
			}
			project, err := cliutil.ResolveProject(cfg, project)
			if err != nil {
				return err
			}

			client, err := cliutil.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			machineTypes, err := client.Catalog.MachineTypes(cmd.Context(), &gcedomain.ListMachineTypesOptions{
				Project: project,
				Zone:    zone,
			})
			if err != nil {
				return err
			}

			for _, mt := range machineTypes {
				fmt.Fprintf(cmd.OutOrStdout(), "machine-type: name=%s, cpus=%d, memory_mb=%d\n",
					mt.Name, mt.GuestCpus, mt.MemoryMb)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&zone, "zone", "", "Zone name or self link")

	return cmd
}

func NewImagesCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "images",
		Short: "List the images of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliutil.LoadConfig()
			if err != nil {
				return err
			}
			project, err := cliutil.ResolveProject(cfg, project)
			if err != nil {
				return err
			}

			client, err := cliutil.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			images, err := client.Catalog.Images(cmd.Context(), &gcedomain.ListImagesOptions{Project: project})
			if err != nil {
				return err
			}

			for _, image := range images {
				fmt.Fprintf(cmd.OutOrStdout(), "image: name=%s, family=%s, disk_size_gb=%d\n",
					image.Name, image.Family, image.DiskSizeGb)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")

	return cmd
}

func NewNetworksCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the networks of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliutil.LoadConfig()
			if err != nil {
				return err
			}
			project, err := cliutil.ResolveProject(cfg, project)
			if err != nil {
				return err
			}

			client, err := cliutil.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			networks, err := client.Catalog.Networks(cmd.Context(), &gcedomain.ListNetworksOptions{Project: project})
			if err != nil {
				return err
			}

			for _, network := range networks {
				fmt.Fprintf(cmd.OutOrStdout(), "network: name=%s\n", network.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")

	return cmd
}

func NewSubnetworksCmd() *cobra.Command {
	var (
		project string
		region  string
		network string
	)

	cmd := &cobra.Command{
		Use:   "subnetworks",
		Short: "List the subnetworks of a network in a region",
		RunE: func(cmd *cobra.Command, args []string) error {
			if region == "" || network == "" {
				return fmt.Errorf("--region and --network are required")
			}

			cfg, err := cliutil.LoadConfig()
			if err != nil {
				return err
			}
			project, err := cliutil.ResolveProject(cfg, project)
			if err != nil {
				return err
			}

			client, err := cliutil.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			subnetworks, err := client.Catalog.Subnetworks(cmd.Context(), &gcedomain.ListSubnetworksInNetworkOptions{
				Project: project,
				Region:  region,
				Network: network,
			})
			if err != nil {
				return err
			}

			for _, subnetwork := range subnetworks {
				fmt.Fprintf(cmd.OutOrStdout(), "subnetwork: name=%s, cidr=%s\n",
					subnetwork.Name, subnetwork.IpCidrRange)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&region, "region", "", "Region name or self link")
	cmd.Flags().StringVar(&network, "network", "", "Network name or self link")

	return cmd
}
