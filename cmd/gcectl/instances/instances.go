package instancecmd

import "github.com/spf13/cobra"

func NewInstancesGroup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instances",
		Short: "Commands for instance managing",
	}

	cmd.AddCommand(
		NewGetInstanceCmd(),
		NewListInstancesCmd(),
		NewDeleteInstanceCmd(),
		NewAppendMetadataCmd(),
	)

	return cmd
}
