package catalogcmd

import "github.com/spf13/cobra"

func NewCatalogGroup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Commands for browsing the resource catalog",
	}

	cmd.AddCommand(
		NewRegionsCmd(),
		NewZonesCmd(),
		NewMachineTypesCmd(),
		NewImagesCmd(),
		NewNetworksCmd(),
		NewSubnetworksCmd(),
	)

	return cmd
}
